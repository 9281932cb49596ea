// Package crt implements the Chinese remainder combinator (spec.md
// C2): combining two congruences whose moduli need not be coprime.
package crt

import (
	"errors"
	"math/big"
)

// ErrNoSolution is returned when the two congruences are incompatible:
// d = gcd(m1, m2) does not divide n1 - n2.
var ErrNoSolution = errors.New("crt: no solution, moduli disagree on common gcd")

// Combine returns (n, L) such that n ≡ n1 (mod m1), n ≡ n2 (mod m2),
// L = lcm(m1, m2), and n is reduced to [0, L). Returns ErrNoSolution if
// the congruences are incompatible.
func Combine(n1, m1, n2, m2 *big.Int) (*big.Int, *big.Int, error) {
	d, u, v := new(big.Int), new(big.Int), new(big.Int)
	d.GCD(u, v, m1, m2)

	diff := new(big.Int).Sub(n1, n2)
	if d.Cmp(big.NewInt(1)) == 0 {
		l := new(big.Int).Mul(m1, m2)
		n := new(big.Int)
		n.Mul(v, m2)
		n.Mul(n, n1)
		t := new(big.Int).Mul(u, m1)
		t.Mul(t, n2)
		n.Add(n, t)
		n.Mod(n, l)
		if n.Sign() < 0 {
			n.Add(n, l)
		}
		return n, l, nil
	}

	q, r := new(big.Int).QuoRem(diff, d, new(big.Int))
	_ = q
	if r.Sign() != 0 {
		return nil, nil, ErrNoSolution
	}

	l := new(big.Int).Quo(m1, d)
	l.Mul(l, m2)

	m2OverD := new(big.Int).Quo(m2, d)
	m1OverD := new(big.Int).Quo(m1, d)

	n := new(big.Int).Mul(v, m2OverD)
	n.Mul(n, n1)
	t := new(big.Int).Mul(u, m1OverD)
	t.Mul(t, n2)
	n.Add(n, t)
	n.Mod(n, l)
	if n.Sign() < 0 {
		n.Add(n, l)
	}
	return n, l, nil
}
