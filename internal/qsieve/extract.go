package qsieve

import (
	"math/big"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"numtheory/internal/gf2"
	"numtheory/internal/primeset"
)

// pruneSingletons repeatedly removes any relation containing a prime
// that appears (with odd parity) in exactly one relation, since such a
// "singleton" prime can never cancel in any linear combination
// (spec.md §4.4). It returns a fresh table over exactly the primes
// that survive, and the surviving relations reindexed against it.
func pruneSingletons(relations []relation) (*primeset.Table, []relation) {
	cur := append([]relation(nil), relations...)

	for {
		count := map[int64]int{}
		for _, r := range cur {
			for _, p := range r.Parity.Primes() {
				count[p]++
			}
		}
		var kept []relation
		changed := false
		for _, r := range cur {
			singleton := false
			for _, p := range r.Parity.Primes() {
				if count[p] == 1 {
					singleton = true
					break
				}
			}
			if singleton {
				changed = true
				continue
			}
			kept = append(kept, r)
		}
		cur = kept
		if !changed {
			break
		}
	}

	primeSet := map[int64]bool{}
	for _, r := range cur {
		for _, p := range r.Parity.Primes() {
			primeSet[p] = true
		}
	}
	var primes []int64
	for p := range primeSet {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	table := primeset.NewTable(primes)

	out := make([]relation, len(cur))
	for i, r := range cur {
		ns := primeset.New(table)
		ns.SetSign(r.Parity.Sign())
		for _, p := range r.Parity.Primes() {
			ns.Toggle(p)
		}
		out[i] = relation{J: r.J, Exponents: r.Exponents, Parity: ns}
	}
	return table, out
}

// buildMatrix lays out one GF(2) column per surviving relation.
func buildMatrix(table *primeset.Table, relations []relation) *gf2.Matrix {
	cols := make([]*bitset.BitSet, len(relations))
	for i, r := range relations {
		cols[i] = r.Parity.Bits()
	}
	return gf2.NewMatrix(table.Len(), cols)
}

func solveDependencies(m *gf2.Matrix, seed int64) []gf2.Vector {
	return gf2.Solve(m, seed)
}

// extractFactor implements spec.md §4.4's square-extraction step for
// one dependency vector: X = ∏ j_i mod n, Y = ∏ p^(total(p)/2) mod n
// over the multiset union of the selected relations' exponents, then
// gcd(X-Y, n).
func extractFactor(n *big.Int, relations []relation, dep gf2.Vector) (*big.Int, bool) {
	x := big.NewInt(1)
	total := map[int64]int{}
	any := false
	for i, r := range relations {
		if !dep.Test(uint(i)) {
			continue
		}
		any = true
		x.Mul(x, r.J)
		x.Mod(x, n)
		for p, e := range r.Exponents {
			total[p] += e
		}
	}
	if !any {
		return nil, false
	}

	y := big.NewInt(1)
	for p, e := range total {
		if e%2 != 0 {
			panic("qsieve: dependency produced an odd total exponent, GF(2) nullspace invariant violated")
		}
		y.Mul(y, new(big.Int).Exp(big.NewInt(p), big.NewInt(int64(e/2)), n))
		y.Mod(y, n)
	}

	lhs := new(big.Int).Mul(x, x)
	lhs.Mod(lhs, n)
	rhs := new(big.Int).Mul(y, y)
	rhs.Mod(rhs, n)
	if lhs.Cmp(rhs) != 0 {
		panic("qsieve: X^2 != Y^2 mod n after square extraction, invariant violated")
	}

	diff := new(big.Int).Sub(x, y)
	g := new(big.Int).GCD(nil, nil, diff.Abs(diff), n)
	if g.Cmp(big.NewInt(1)) == 0 || g.Cmp(n) == 0 {
		return nil, false
	}
	return g, true
}
