package eisenstein

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestNormIsMultiplicative(t *testing.T) {
	z := New(5, 3)
	w := New(-2, 7)
	got := Norm(Mul(z, w))
	want := new(big.Int).Mul(Norm(z), Norm(w))
	require.Equal(t, 0, got.Cmp(want))
}

func TestQuotRemSatisfiesDivisionInvariant(t *testing.T) {
	g := New(17, -4)
	h := New(3, 2)

	q, r := Quot(g, h), Rem(g, h)
	require.True(t, Add(Mul(q, h), r).Equal(g))
	require.True(t, Norm(r).Cmp(Norm(h)) < 0)

	dq, dr := Div(g, h), Mod(g, h)
	require.True(t, Add(Mul(dq, h), dr).Equal(g))
	require.True(t, Norm(dr).Cmp(Norm(h)) < 0)
}

func TestAbsIdempotent(t *testing.T) {
	for _, z := range []Int{New(3, -5), New(-2, -7), New(4, 1), New(0, 6)} {
		a := Abs(z)
		require.True(t, Abs(a).Equal(a), "z=%v", z)
		require.True(t, a.B.Sign() >= 0 && a.A.Cmp(a.B) > 0, "z=%v not in first sextant: %v", z, a)
	}
}

func TestPrimaryIdempotent(t *testing.T) {
	z := New(7, 4) // norm 49-28+16=37, a prime ≡1 mod 3, coprime to 3
	p, ok := Primary(z)
	require.True(t, ok)
	p2, ok := Primary(p)
	require.True(t, ok)
	require.True(t, p.Equal(p2))
}

func TestConjugateInvolution(t *testing.T) {
	z := New(11, -6)
	require.True(t, Conjugate(Conjugate(z)).Equal(z))
}

// TestAbsIsIdempotentAcrossRandomInputs generalises TestAbsIdempotent
// to random coefficients, grounded on gnark's encoding_test.go
// round-trip style: abs(abs(z)) must equal abs(z) for every z, not
// just the four hand-picked ones above.
func TestAbsIsIdempotentAcrossRandomInputs(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("abs(abs(z)) == abs(z)", prop.ForAll(
		func(a, b int64) bool {
			z := New(a, b)
			once := Abs(z)
			twice := Abs(once)
			return twice.Equal(once)
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestPrimaryIsIdempotentAcrossRandomInputs generalises
// TestPrimaryIdempotent to random coefficients whose norm is coprime
// to 3 (Primary has no fixed point otherwise, per Primary's own
// (Int, bool) contract).
func TestPrimaryIsIdempotentAcrossRandomInputs(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("primary(primary(z)) == primary(z) when 3 does not divide Norm(z)", prop.ForAll(
		func(a, b int64) bool {
			z := New(a, b)
			if mod3(Norm(z)) == 0 {
				return true
			}
			once, ok := Primary(z)
			if !ok {
				return false
			}
			twice, ok := Primary(once)
			if !ok {
				return false
			}
			return once.Equal(twice)
		},
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-1000, 1000),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestConjugateIsInvolutionAcrossRandomInputs generalises
// TestConjugateInvolution: conjugate is its own inverse for every z.
func TestConjugateIsInvolutionAcrossRandomInputs(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("conjugate(conjugate(z)) == z", prop.ForAll(
		func(a, b int64) bool {
			z := New(a, b)
			return Conjugate(Conjugate(z)).Equal(z)
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000_000, 1_000_000),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFindPrimeNormEqualsSeven(t *testing.T) {
	pi, ok := FindPrime(big.NewInt(7))
	require.True(t, ok)
	require.Equal(t, 0, Norm(pi).Cmp(big.NewInt(7)))
}

func TestIsPrimeAboveThree(t *testing.T) {
	require.True(t, IsPrime(New(2, 1)))
}

func TestIsPrimeInertRationalPrime(t *testing.T) {
	require.True(t, IsPrime(New(5, 0))) // 5 ≡ 2 mod 3
	require.False(t, IsPrime(New(7, 0))) // 7 ≡ 1 mod 3, splits, not inert
}

func TestFactoriseThreeThreeOmega(t *testing.T) {
	// 3+3ω = (2+ω)^2 up to a unit: N(3,3) = 9-9+9 = 9 = 3^2.
	z := New(3, 3)
	factors := Factorise(z)

	totalNorm := big.NewInt(1)
	for _, f := range factors {
		n := new(big.Int).Exp(Norm(f.Prime), big.NewInt(int64(f.Exp)), nil)
		totalNorm.Mul(totalNorm, n)
	}
	require.Equal(t, 0, totalNorm.Cmp(Norm(z)))

	require.Len(t, factors, 1)
	require.Equal(t, 2, factors[0].Exp)
	require.True(t, factors[0].Prime.Equal(New(2, 1)))
}

func TestFactoriseFiveFiveOmegaIsInertPrimeTimesUnit(t *testing.T) {
	// 5+5ω = 5*(1+ω): 5 is inert (5 ≡ 2 mod 3), so norm 25 factors as
	// the single rational prime 5 with exponent 1, not a split prime.
	z := New(5, 5)
	factors := Factorise(z)

	totalNorm := big.NewInt(1)
	for _, f := range factors {
		n := new(big.Int).Exp(Norm(f.Prime), big.NewInt(int64(f.Exp)), nil)
		totalNorm.Mul(totalNorm, n)
	}
	require.Equal(t, 0, totalNorm.Cmp(Norm(z)))

	require.Len(t, factors, 1)
	require.Equal(t, 1, factors[0].Exp)
	require.True(t, factors[0].Prime.Equal(New(5, 0)))
}

func TestFactoriseProductReconstructsNormUpToUnit(t *testing.T) {
	z := New(11, 4) // N = 121 - 44 + 16 = 93 = 3 * 31
	factors := Factorise(z)
	require.NotEmpty(t, factors)

	totalNorm := big.NewInt(1)
	for _, f := range factors {
		n := new(big.Int).Exp(Norm(f.Prime), big.NewInt(int64(f.Exp)), nil)
		totalNorm.Mul(totalNorm, n)
	}
	require.Equal(t, 0, totalNorm.Cmp(Norm(z)))
}
