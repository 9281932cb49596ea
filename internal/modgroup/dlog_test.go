package modgroup

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"numtheory/internal/bigmath"
)

func TestDiscreteLogBSGSRecoversExponent(t *testing.T) {
	p := big.NewInt(101) // small prime, exercises the BSGS path
	g, err := ClassifyGroup(p)
	require.NoError(t, err)

	root, ok := NewPrimitiveRoot(g, big.NewInt(2))
	require.True(t, ok, "2 should be a primitive root mod 101")

	for e := int64(0); e < 20; e++ {
		b := bigmath.ModExp(big.NewInt(2), big.NewInt(e), p)
		got, err := DiscreteLog(g, root, b, DefaultDiscreteLogOptions())
		require.NoError(t, err)
		require.Equal(t, e, got.Int64(), "dlog of 2^%d", e)
	}
}

func TestDiscreteLogModFourAndTwo(t *testing.T) {
	g2, _ := ClassifyGroup(big.NewInt(2))
	root2, ok := NewPrimitiveRoot(g2, big.NewInt(1))
	require.True(t, ok)
	e, err := DiscreteLog(g2, root2, big.NewInt(1), DefaultDiscreteLogOptions())
	require.NoError(t, err)
	require.Equal(t, int64(0), e.Int64())

	g4, _ := ClassifyGroup(big.NewInt(4))
	root4, ok := NewPrimitiveRoot(g4, big.NewInt(3))
	require.True(t, ok)
	e0, err := DiscreteLog(g4, root4, big.NewInt(1), DefaultDiscreteLogOptions())
	require.NoError(t, err)
	require.Equal(t, int64(0), e0.Int64())
	e1, err := DiscreteLog(g4, root4, big.NewInt(3), DefaultDiscreteLogOptions())
	require.NoError(t, err)
	require.Equal(t, int64(1), e1.Int64())
}

func TestDiscreteLogPrimePowerBachReduction(t *testing.T) {
	p := big.NewInt(7)
	g, err := ClassifyGroup(big.NewInt(49)) // 7^2
	require.NoError(t, err)

	// 3 is a primitive root mod 7 and lifts to one mod 49.
	root, ok := NewPrimitiveRoot(g, big.NewInt(3))
	require.True(t, ok)

	pk := big.NewInt(49)
	for e := int64(0); e < 10; e++ {
		b := bigmath.ModExp(big.NewInt(3), big.NewInt(e), pk)
		got, err := DiscreteLog(g, root, b, DefaultDiscreteLogOptions())
		require.NoError(t, err)
		recovered := bigmath.ModExp(big.NewInt(3), got, pk)
		require.Equal(t, b.Int64(), recovered.Int64(), "e=%d", e)
	}
	_ = p
}

func TestDiscreteLogRejectsNonMember(t *testing.T) {
	g, _ := ClassifyGroup(big.NewInt(7))
	root, _ := NewPrimitiveRoot(g, big.NewInt(3))
	_, err := DiscreteLog(g, root, big.NewInt(14), DefaultDiscreteLogOptions())
	require.ErrorIs(t, err, ErrNotInGroup)
}

// TestDiscreteLogModThirteenBaseTwoTargetEleven is spec.md §8's
// concrete scenario 2 verbatim: dlog mod 13, base 2, target 11.
func TestDiscreteLogModThirteenBaseTwoTargetEleven(t *testing.T) {
	p := big.NewInt(13)
	g, err := ClassifyGroup(p)
	require.NoError(t, err)

	root, ok := NewPrimitiveRoot(g, big.NewInt(2))
	require.True(t, ok, "2 should be a primitive root mod 13")

	e, err := DiscreteLog(g, root, big.NewInt(11), DefaultDiscreteLogOptions())
	require.NoError(t, err)
	require.Equal(t, int64(7), e.Int64())
}

// TestDiscreteLogThenExponentiateRecoversTarget generalises the BSGS
// scenario above to random exponents: whatever e DiscreteLog returns,
// re-exponentiating the base by it must reproduce the original target,
// grounded on gnark's encoding_test.go round-trip property style.
func TestDiscreteLogThenExponentiateRecoversTarget(t *testing.T) {
	p := big.NewInt(101)
	g, err := ClassifyGroup(p)
	require.NoError(t, err)
	root, ok := NewPrimitiveRoot(g, big.NewInt(2))
	require.True(t, ok)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("2^dlog(2^e) == 2^e mod 101", prop.ForAll(
		func(e int64) bool {
			target := bigmath.ModExp(big.NewInt(2), big.NewInt(e), p)
			got, err := DiscreteLog(g, root, target, DefaultDiscreteLogOptions())
			if err != nil {
				return false
			}
			recovered := bigmath.ModExp(big.NewInt(2), got, p)
			return recovered.Cmp(target) == 0
		},
		gen.Int64Range(0, 99),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
