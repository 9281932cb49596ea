package qsieve

import (
	"math"
	"math/big"

	"numtheory/internal/primeset"
)

// smoothThreshold is spec.md §4.4's single-log-2 rounding allowance.
const smoothThreshold = 0.6

// sieveWindow processes one window [lo, lo+t) and returns every
// relation found smooth (spec.md §4.4's per-window slot algorithm).
func sieveWindow(n *big.Int, base []factorBasePrime, lo *big.Int, t int64) []relation {
	table := primeset.NewTable(primesOf(base))

	type slot struct {
		logResidue float64
		negative   bool
		exps       map[int64]int
		parity     *primeset.Set
		j          *big.Int
	}

	slots := make([]slot, t)
	for i := range slots {
		j := new(big.Int).Add(lo, big.NewInt(int64(i)))
		fj := new(big.Int).Mul(j, j)
		fj.Sub(fj, n)
		if fj.Sign() == 0 {
			slots[i].logResidue = math.Inf(1) // never smooth; n perfect square at j, a degenerate case not worth special-casing
			slots[i].j = j
			continue
		}
		neg := fj.Sign() < 0
		abs := new(big.Int).Abs(fj)
		bf := new(big.Float).SetInt(abs)
		f64, _ := bf.Float64()
		slots[i] = slot{
			logResidue: math.Log(f64),
			negative:   neg,
			exps:       map[int64]int{},
			parity:     primeset.New(table),
			j:          j,
		}
	}

	logp := make([]float64, len(base))
	for i, fb := range base {
		logp[i] = math.Log(float64(fb.P))
	}

	for i, fb := range base {
		p := fb.P
		r1 := fb.R1
		r2 := new(big.Int).Sub(big.NewInt(p), r1)

		for _, r := range [2]*big.Int{r1, r2} {
			start := startIndex(lo, r, p)
			for idx := start; idx < t; idx += p {
				s := &slots[idx]
				if math.IsInf(s.logResidue, 1) {
					continue
				}
				s.logResidue -= logp[i]
				s.exps[p]++
				s.parity.Toggle(p)
			}
			if r1.Cmp(r2) == 0 {
				break // p | n cannot happen here, but guards a degenerate root anyway
			}
		}
	}

	var out []relation
	for i := range slots {
		s := &slots[i]
		if s.parity == nil || s.logResidue >= smoothThreshold {
			continue
		}
		s.parity.SetSign(s.negative)
		out = append(out, relation{J: s.j, Exponents: s.exps, Parity: s.parity})
	}
	return out
}

// startIndex returns the smallest index i >= 0 such that
// lo+i ≡ r (mod p); the result lies in [0, p) and may be t or more.
func startIndex(lo, r *big.Int, p int64) int64 {
	diff := new(big.Int).Sub(r, lo)
	m := new(big.Int).Mod(diff, big.NewInt(p))
	return m.Int64()
}
