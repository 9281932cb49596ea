package primesieve

import "math/big"

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// Legendre returns the Legendre symbol (a|p) for an odd prime p: -1,
// 0 or 1.
func Legendre(a, p *big.Int) int {
	A := new(big.Int).Mod(a, p)
	if A.Sign() < 0 {
		A.Add(A, p)
	}
	if A.Sign() == 0 {
		return 0
	}
	e := new(big.Int).Sub(p, big1)
	e.Rsh(e, 1)
	v := new(big.Int).Exp(A, e, p)
	switch {
	case v.Cmp(big1) == 0:
		return 1
	case v.Sign() == 0:
		return 0
	default:
		return -1
	}
}

// TonelliShanks returns a square root of a mod the odd prime p, and
// true, or (nil, false) if a is a non-residue mod p. Grounded on the
// teacher's tonelliBig/legendreBig in internal/ecscan/scan.go, here
// returning ok instead of panicking so callers (the quadratic sieve's
// factor-base setup in particular) can simply skip inert primes.
func TonelliShanks(a, p *big.Int) (*big.Int, bool) {
	A := new(big.Int).Mod(a, p)
	if A.Sign() < 0 {
		A.Add(A, p)
	}
	if A.Sign() == 0 {
		return new(big.Int), true
	}
	if Legendre(A, p) != 1 {
		return nil, false
	}

	// p ≡ 3 (mod 4) shortcut: root = a^((p+1)/4)
	if new(big.Int).And(p, big.NewInt(3)).Cmp(big.NewInt(3)) == 0 {
		e := new(big.Int).Add(p, big1)
		e.Rsh(e, 2)
		return new(big.Int).Exp(A, e, p), true
	}

	q := new(big.Int).Sub(p, big1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	z := big.NewInt(2)
	for Legendre(z, p) != -1 {
		z.Add(z, big1)
	}

	mul := func(a, b *big.Int) *big.Int {
		r := new(big.Int).Mul(a, b)
		return r.Mod(r, p)
	}
	pow := func(a, e *big.Int) *big.Int { return new(big.Int).Exp(a, e, p) }

	c := pow(z, q)
	qp1 := new(big.Int).Add(q, big1)
	qp1.Rsh(qp1, 1)
	x := pow(A, qp1)
	t := pow(A, q)
	m := s

	for t.Cmp(big1) != 0 {
		i := 1
		t2i := mul(t, t)
		for t2i.Cmp(big1) != 0 {
			t2i = mul(t2i, t2i)
			i++
			if i == m {
				// t had no order dividing 2^(m-1): a was not actually
				// a residue, which Legendre should have ruled out.
				return nil, false
			}
		}
		exp := new(big.Int).Lsh(big1, uint(m-i-1))
		b := pow(c, exp)
		x = mul(x, b)
		b2 := mul(b, b)
		t = mul(t, b2)
		c = b2
		m = i
	}
	return x, true
}
