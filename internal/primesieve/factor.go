package primesieve

import "math/big"

// PrimePower is one term of a rational-integer factorisation.
type PrimePower struct {
	Prime *big.Int
	Exp   int
}

// trialDivisionBound is the trial-division bound; above it we fall back to
// Pollard rho. Eisenstein norms are modest (products of a handful of
// small-ish rational primes), so this split is enough in practice.
const trialDivisionBound = 1 << 16

// FactorRational factors a positive integer n via trial division
// followed by Pollard rho for the remaining cofactor. It is the
// deliberately unsophisticated factoriser spec.md §1 calls out of
// scope for the quadratic sieve itself; `eisenstein.Factorise` uses it
// to factor norms.
func FactorRational(n *big.Int) []PrimePower {
	if n.Sign() <= 0 {
		panic("primesieve: FactorRational requires a positive integer")
	}
	var out []PrimePower
	rem := new(big.Int).Set(n)

	small := Eratosthenes(trialDivisionBound)
	for _, p := range small {
		bp := big.NewInt(p)
		if rem.Cmp(bp) < 0 {
			break
		}
		exp := 0
		for {
			q, r := new(big.Int).QuoRem(rem, bp, new(big.Int))
			if r.Sign() != 0 {
				break
			}
			rem = q
			exp++
		}
		if exp > 0 {
			out = append(out, PrimePower{Prime: bp, Exp: exp})
		}
	}

	one := big.NewInt(1)
	if rem.Cmp(one) == 0 {
		return out
	}

	for _, pp := range factorCofactor(rem) {
		out = append(out, pp)
	}
	return out
}

// factorCofactor recursively splits a cofactor with no small prime
// factors using Pollard rho, merging equal primes on return.
func factorCofactor(n *big.Int) []PrimePower {
	if n.ProbablyPrime(40) {
		return []PrimePower{{Prime: new(big.Int).Set(n), Exp: 1}}
	}
	d := pollardRho(n)
	left := factorCofactor(d)
	right := factorCofactor(new(big.Int).Quo(n, d))
	return mergePrimePowers(left, right)
}

func mergePrimePowers(a, b []PrimePower) []PrimePower {
	counts := map[string]*PrimePower{}
	var order []string
	add := func(list []PrimePower) {
		for _, pp := range list {
			k := pp.Prime.String()
			if cur, ok := counts[k]; ok {
				cur.Exp += pp.Exp
			} else {
				copyPP := PrimePower{Prime: new(big.Int).Set(pp.Prime), Exp: pp.Exp}
				counts[k] = &copyPP
				order = append(order, k)
			}
		}
	}
	add(a)
	add(b)
	out := make([]PrimePower, 0, len(order))
	for _, k := range order {
		out = append(out, *counts[k])
	}
	return out
}

// pollardRho returns a nontrivial factor of composite n (n must not be
// prime and must be odd-or-even composite > 1).
func pollardRho(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return big.NewInt(2)
	}
	one := big.NewInt(1)
	c := big.NewInt(1)
	for attempt := 0; ; attempt++ {
		x := big.NewInt(2)
		y := big.NewInt(2)
		d := big.NewInt(1)
		f := func(v *big.Int) *big.Int {
			r := new(big.Int).Mul(v, v)
			r.Add(r, c)
			r.Mod(r, n)
			return r
		}
		for d.Cmp(one) == 0 {
			x = f(x)
			y = f(f(y))
			diff := new(big.Int).Sub(x, y)
			diff.Abs(diff)
			if diff.Sign() == 0 {
				break
			}
			d.GCD(nil, nil, diff, n)
		}
		if d.Cmp(one) != 0 && d.Cmp(n) != 0 {
			return d
		}
		c.Add(c, one)
	}
}
