package crt

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCombineRecoversBothCongruences(t *testing.T) {
	n, l, err := Combine(big.NewInt(2), big.NewInt(3), big.NewInt(3), big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(15), l)
	require.Equal(t, big.NewInt(0).Mod(n, big.NewInt(3)), big.NewInt(2))
	require.Equal(t, big.NewInt(0).Mod(n, big.NewInt(5)), big.NewInt(3))
}

func TestCombineRejectsIncompatibleCongruences(t *testing.T) {
	_, _, err := Combine(big.NewInt(1), big.NewInt(4), big.NewInt(0), big.NewInt(6))
	require.ErrorIs(t, err, ErrNoSolution)
}

// TestCombineSatisfiesBothResiduesForCoprimeModuli checks the defining
// property of the combinator across random coprime modulus pairs: k and
// k+1 are always coprime, so this exercises the GCD(==1) branch of
// Combine over a wide spread of moduli without needing a primality
// generator.
func TestCombineSatisfiesBothResiduesForCoprimeModuli(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("n mod m1 == n1 and n mod m2 == n2 for coprime m1, m2", prop.ForAll(
		func(k int64, r1, r2 int64) bool {
			m1 := big.NewInt(k)
			m2 := big.NewInt(k + 1)
			n1 := new(big.Int).Mod(big.NewInt(r1), m1)
			n2 := new(big.Int).Mod(big.NewInt(r2), m2)

			n, l, err := Combine(n1, m1, n2, m2)
			if err != nil {
				return false
			}
			if l.Cmp(new(big.Int).Mul(m1, m2)) != 0 {
				return false
			}
			got1 := new(big.Int).Mod(n, m1)
			got2 := new(big.Int).Mod(n, m2)
			return got1.Cmp(n1) == 0 && got2.Cmp(n2) == 0
		},
		gen.Int64Range(2, 1_000_000),
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000_000, 1_000_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
