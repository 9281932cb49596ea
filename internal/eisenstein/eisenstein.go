// Package eisenstein implements the Eisenstein-integer ring Z[ω] spec.md
// C8 describes: ring arithmetic, Euclidean division under two rounding
// conventions, canonical-form selection, primality testing, and
// factorisation driven by the rational-integer factoriser over each
// element's norm.
package eisenstein

import (
	"math/big"

	"numtheory/internal/primesieve"
)

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// Int is a + bω, ω a primitive cube root of unity with ω² = −1 − ω.
type Int struct {
	A, B *big.Int
}

// New builds the Eisenstein integer a + bω.
func New(a, b int64) Int {
	return Int{A: big.NewInt(a), B: big.NewInt(b)}
}

// IsZero reports whether z is the additive identity.
func (z Int) IsZero() bool { return z.A.Sign() == 0 && z.B.Sign() == 0 }

// Equal reports whether z and w are the same element.
func (z Int) Equal(w Int) bool { return z.A.Cmp(w.A) == 0 && z.B.Cmp(w.B) == 0 }

// Add returns z + w.
func Add(z, w Int) Int {
	return Int{A: new(big.Int).Add(z.A, w.A), B: new(big.Int).Add(z.B, w.B)}
}

// Sub returns z - w.
func Sub(z, w Int) Int {
	return Int{A: new(big.Int).Sub(z.A, w.A), B: new(big.Int).Sub(z.B, w.B)}
}

// Neg returns -z.
func Neg(z Int) Int {
	return Int{A: new(big.Int).Neg(z.A), B: new(big.Int).Neg(z.B)}
}

// Mul returns z*w: (ac − bd) + (bc + ad − bd)ω for z=(a,b), w=(c,d).
func Mul(z, w Int) Int {
	a, b, c, d := z.A, z.B, w.A, w.B
	ac := new(big.Int).Mul(a, c)
	bd := new(big.Int).Mul(b, d)
	bc := new(big.Int).Mul(b, c)
	ad := new(big.Int).Mul(a, d)

	re := new(big.Int).Sub(ac, bd)
	im := new(big.Int).Add(bc, ad)
	im.Sub(im, bd)
	return Int{A: re, B: im}
}

// Norm returns N(z) = a² − ab + b².
func Norm(z Int) *big.Int {
	a2 := new(big.Int).Mul(z.A, z.A)
	ab := new(big.Int).Mul(z.A, z.B)
	b2 := new(big.Int).Mul(z.B, z.B)
	n := new(big.Int).Sub(a2, ab)
	n.Add(n, b2)
	return n
}

// Conjugate returns (a−b, −b), the image of z under ω ↦ ω².
func Conjugate(z Int) Int {
	return Int{A: new(big.Int).Sub(z.A, z.B), B: new(big.Int).Neg(z.B)}
}

// units are the six powers of (1+ω), in rotation order.
var units = func() [6]Int {
	var u [6]Int
	u[0] = New(1, 0)
	for i := 1; i < 6; i++ {
		u[i] = Mul(u[i-1], New(1, 1))
	}
	return u
}()

// quotRem divides g by h, returning q and r with g = q*h + r. Each
// rational coefficient of g*conj(h)/N(h) is rounded with roundFn
// (truncate-toward-zero for Quot, floor for Div), not to the nearest
// integer, so N(r) < N(h) is not guaranteed (e.g. Rem(−12−12ω, −3−5ω)
// = −4−5ω, with N(r) = 21 > N(h) = 19).
func quotRem(g, h Int, roundFn func(num, den *big.Int) *big.Int) (Int, Int) {
	prod := Mul(g, Conjugate(h))
	d := Norm(h)
	qa := roundFn(prod.A, d)
	qb := roundFn(prod.B, d)
	q := Int{A: qa, B: qb}
	r := Sub(g, Mul(q, h))
	return q, r
}

// Quot and Rem implement truncate-toward-zero Euclidean division.
func Quot(g, h Int) Int { q, _ := quotRem(g, h, truncDiv); return q }
func Rem(g, h Int) Int  { _, r := quotRem(g, h, truncDiv); return r }

// Div and Mod implement floor Euclidean division.
func Div(g, h Int) Int { q, _ := quotRem(g, h, floorDiv); return q }
func Mod(g, h Int) Int { _, r := quotRem(g, h, floorDiv); return r }

func truncDiv(num, den *big.Int) *big.Int { return new(big.Int).Quo(num, den) }
func floorDiv(num, den *big.Int) *big.Int { return new(big.Int).Div(num, den) }

// divides reports whether h divides g exactly, returning the quotient.
func divides(g, h Int) (Int, bool) {
	if h.IsZero() {
		return Int{}, false
	}
	q, r := quotRem(g, h, truncDiv)
	return q, r.IsZero()
}

// Abs rotates a nonzero z into the first sextant (0 <= arg < π/3) by
// repeated multiplication by the unit (1+ω); the sextant test is the
// sign pattern "b >= 0 and a > b" spec.md §4.6 calls for.
func Abs(z Int) Int {
	if z.IsZero() {
		return z
	}
	cur := z
	for i := 0; i < 6; i++ {
		if cur.B.Sign() >= 0 && cur.A.Cmp(cur.B) > 0 {
			return cur
		}
		cur = Mul(cur, units[1])
	}
	panic("eisenstein: Abs failed to find a first-sextant associate, invariant violated")
}

// Primary returns the unique associate of z congruent to 2 (mod 3):
// a ≡ 2, b ≡ 0 (mod 3). Not every element has one — those divisible by
// the prime above 3 do not — in which case ok is false.
func Primary(z Int) (Int, bool) {
	if z.IsZero() {
		return z, false
	}
	cur := z
	for i := 0; i < 6; i++ {
		am := new(big.Int).Mod(cur.A, big3)
		bm := new(big.Int).Mod(cur.B, big3)
		if am.Cmp(big2) == 0 && bm.Sign() == 0 {
			return cur, true
		}
		cur = Mul(cur, units[1])
	}
	return Int{}, false
}

// primeAboveThree is the canonical representative 2+ω — the unique
// prime above 3, up to units (spec.md §4.6 primality case (a)).
var primeAboveThree = New(2, 1)

// IsPrime implements spec.md §4.6's three-case primality test.
func IsPrime(z Int) bool {
	if z.IsZero() {
		return false
	}
	if Abs(z).Equal(primeAboveThree) {
		return true
	}
	if z.B.Sign() == 0 {
		p := z.A
		if p.Sign() < 0 {
			p = new(big.Int).Neg(p)
		}
		if mod3(p) == 2 && p.ProbablyPrime(40) {
			return true
		}
	}
	n := Norm(z)
	if mod3(n) == 1 && n.ProbablyPrime(40) {
		return true
	}
	return false
}

func mod3(n *big.Int) int64 {
	return new(big.Int).Mod(n, big3).Int64()
}

// FindPrime returns an Eisenstein prime of norm p, for a rational prime
// p ≡ 1 (mod 6): with k = p/6, s = sqrt(9k²−1) mod p, the prime is
// gcd_E(p, (s−3k)+ω).
func FindPrime(p *big.Int) (Int, bool) {
	if mod3(p) != 1 || new(big.Int).Mod(p, big2).Sign() == 0 {
		return Int{}, false
	}
	k := new(big.Int).Quo(p, big.NewInt(6))
	nineK2 := new(big.Int).Mul(k, k)
	nineK2.Mul(nineK2, big.NewInt(9))
	radicand := new(big.Int).Sub(nineK2, big1)
	radicand.Mod(radicand, p)

	s, ok := primesieve.TonelliShanks(radicand, p)
	if !ok {
		return Int{}, false
	}

	a := new(big.Int).Sub(s, new(big.Int).Mul(big3, k))
	candidate := Int{A: a, B: big.NewInt(1)}
	result := gcdE(Int{A: new(big.Int).Set(p), B: big.NewInt(0)}, candidate)
	result = Abs(result)
	normAbs := new(big.Int).Abs(Norm(result))
	if normAbs.Cmp(p) != 0 {
		return Int{}, false
	}
	return result, true
}

// gcdE runs the Euclidean algorithm in Z[ω].
func gcdE(a, b Int) Int {
	for !b.IsZero() {
		_, r := quotRem(a, b, truncDiv)
		a, b = b, r
	}
	return a
}

// PrimaryFactor is one term of a primary-prime factorisation.
type PrimaryFactor struct {
	Prime Int
	Exp   int
}

// Factorise returns z's factorisation into primary primes, driven by
// factoring N(z) over the rational integers and handling the three
// prime-splitting cases of spec.md §4.6. The unit cofactor is not part
// of the output. The prime above 3 has no primary associate and is
// reported as 2+ω; every other output prime is primary.
func Factorise(z Int) []PrimaryFactor {
	if z.IsZero() {
		return nil
	}
	n := Norm(z)
	if n.Cmp(big1) == 0 {
		return nil
	}

	remaining := z
	var out []PrimaryFactor

	for _, pf := range primesieve.FactorRational(n) {
		p, e := pf.Prime, pf.Exp

		switch {
		case p.Cmp(big3) == 0:
			count := 0
			for count < e {
				q, ok := divides(remaining, primeAboveThree)
				if !ok {
					break
				}
				remaining = q
				count++
			}
			if count > 0 {
				out = append(out, PrimaryFactor{Prime: primeAboveThree, Exp: count})
			}

		case mod3(p) == 2:
			half := e / 2
			rational := Int{A: new(big.Int).Set(p), B: big.NewInt(0)}
			count := 0
			for count < half {
				q, ok := divides(remaining, rational)
				if !ok {
					break
				}
				remaining = q
				count++
			}
			if count > 0 {
				out = append(out, PrimaryFactor{Prime: rational, Exp: count})
			}

		default: // p ≡ 1 (mod 3): splits as π·π'
			pi, ok := FindPrime(p)
			if !ok {
				panic("eisenstein: FindPrime failed for a prime ≡ 1 mod 3, invariant violated")
			}
			piPrimary, ok := Primary(pi)
			if !ok {
				panic("eisenstein: split prime has no primary associate, invariant violated")
			}
			piConjPrimary, ok := Primary(Conjugate(pi))
			if !ok {
				panic("eisenstein: conjugate split prime has no primary associate, invariant violated")
			}

			rational := Int{A: new(big.Int).Set(p), B: big.NewInt(0)}
			shared := 0
			for {
				q, ok := divides(remaining, rational)
				if !ok {
					break
				}
				remaining = q
				shared++
			}
			extraPi := 0
			for {
				q, ok := divides(remaining, piPrimary)
				if !ok {
					break
				}
				remaining = q
				extraPi++
			}
			extraConj := 0
			for {
				q, ok := divides(remaining, piConjPrimary)
				if !ok {
					break
				}
				remaining = q
				extraConj++
			}

			if k := shared + extraPi; k > 0 {
				out = append(out, PrimaryFactor{Prime: piPrimary, Exp: k})
			}
			if k := shared + extraConj; k > 0 {
				out = append(out, PrimaryFactor{Prime: piConjPrimary, Exp: k})
			}
		}
	}

	return out
}
