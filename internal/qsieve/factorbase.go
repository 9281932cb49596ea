package qsieve

import (
	"math/big"

	"numtheory/internal/primesieve"
)

// factorBasePrime is one factor-base entry: a prime p for which n is a
// quadratic residue, with one of the two Tonelli-Shanks roots of n
// mod p (the other is p - R1, always valid for odd p since the roots
// are never equal: equality would force n ≡ 0 mod p, already excluded
// by the residue test).
type factorBasePrime struct {
	P  int64
	R1 *big.Int
}

// buildFactorBase returns every odd prime p <= b for which n is a
// nonzero quadratic residue mod p (spec.md §4.4: "the implementation
// may further restrict to primes for which n is a quadratic residue
// mod p").
func buildFactorBase(n *big.Int, b int64) []factorBasePrime {
	var base []factorBasePrime
	for _, p := range primesieve.Eratosthenes(b + 1) {
		if p == 2 {
			continue
		}
		bp := big.NewInt(p)
		if primesieve.Legendre(n, bp) != 1 {
			continue
		}
		r, ok := primesieve.TonelliShanks(n, bp)
		if !ok {
			continue
		}
		base = append(base, factorBasePrime{P: p, R1: r})
	}
	return base
}
