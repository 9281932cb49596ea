package qsieve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorSmallSemiprime(t *testing.T) {
	// 143 = 11 * 13
	n := big.NewInt(143)
	opts := DefaultOptions(30, 50)
	f, err := Factor(n, opts)
	require.NoError(t, err)
	require.True(t, f.Cmp(big.NewInt(1)) > 0 && f.Cmp(n) < 0)

	other := new(big.Int).Quo(n, f)
	require.Equal(t, 0, new(big.Int).Mul(f, other).Cmp(n))
}

func TestFactorLargerSemiprime(t *testing.T) {
	// 15347 = 103 * 149, spec.md's own concrete scenario.
	n := big.NewInt(15347)
	opts := DefaultOptions(30, 200)
	f, err := Factor(n, opts)
	require.NoError(t, err)
	require.True(t, f.Int64() == 103 || f.Int64() == 149, "got factor %v", f)
}

func TestFactorReturnsErrorOnTinyBudget(t *testing.T) {
	n := big.NewInt(15347)
	opts := DefaultOptions(5, 4)
	opts.MaxWindows = 1
	_, err := Factor(n, opts)
	require.Error(t, err)
}
