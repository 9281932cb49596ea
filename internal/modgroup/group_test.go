package modgroup

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyGroupShapes(t *testing.T) {
	cases := []struct {
		m    int64
		kind Kind
	}{
		{2, KindTwo},
		{4, KindFour},
		{7, KindOddPrimePower},   // p^1
		{9, KindOddPrimePower},   // 3^2
		{27, KindOddPrimePower},  // 3^3
		{14, KindTwoOddPrimePower}, // 2*7
		{50, KindTwoOddPrimePower}, // 2*5^2
	}
	for _, c := range cases {
		g, err := ClassifyGroup(big.NewInt(c.m))
		require.NoError(t, err, "m=%d", c.m)
		require.Equal(t, c.kind, g.Kind, "m=%d", c.m)
	}
}

func TestClassifyGroupRejectsNonCyclic(t *testing.T) {
	for _, m := range []int64{8, 12, 15, 24} {
		_, err := ClassifyGroup(big.NewInt(m))
		require.ErrorIs(t, err, ErrNoCyclicGroup, "m=%d", m)
	}
}

func TestIsPrimitiveRootModSevenIs3And5(t *testing.T) {
	g, err := ClassifyGroup(big.NewInt(7))
	require.NoError(t, err)

	require.True(t, IsPrimitiveRoot(g, big.NewInt(3)))
	require.True(t, IsPrimitiveRoot(g, big.NewInt(5)))
	require.False(t, IsPrimitiveRoot(g, big.NewInt(2)))
	require.False(t, IsPrimitiveRoot(g, big.NewInt(1)))
}

func TestNewMultModRejectsNonCoprime(t *testing.T) {
	_, err := NewMultMod(big.NewInt(4), big.NewInt(8))
	require.ErrorIs(t, err, ErrNotCoprime)
}
