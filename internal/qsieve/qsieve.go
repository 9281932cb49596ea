// Package qsieve implements the self-initialising quadratic sieve
// factoriser spec.md C6 describes: smooth-relation collection over
// widening windows around √n, singleton pruning, a GF(2) dependency
// via internal/gf2, and square extraction.
package qsieve

import (
	"errors"
	"math/big"

	"numtheory/internal/bigmath"
	"numtheory/internal/primeset"
	"numtheory/internal/xlog"
)

// ErrBudgetExhausted is the "algorithmic failure" surfaced when sieving
// exceeds the window budget without assembling enough relations
// (spec.md §7: recoverable, caller retries with different parameters).
var ErrBudgetExhausted = errors.New("qsieve: window budget exhausted before enough relations were found")

// ErrNoFactor is returned when every null-vector dependency found
// produced only a trivial gcd and Options.Retry is false.
var ErrNoFactor = errors.New("qsieve: no dependency yielded a nontrivial factor")

// Options tunes one Factor call.
type Options struct {
	B int64 // factor-base bound

	T int64 // sieve window length

	// MaxWindows bounds the number of windows processed before giving
	// up (spec.md §7's caller-provided budget).
	MaxWindows int

	// Seed drives the GF(2) solver's deterministic tie-breaking.
	Seed int64

	// Retry resolves spec.md §9's open question: when every dependency
	// from the current relation set fails to produce a nontrivial
	// factor, Retry=false gives up immediately (ErrNoFactor); Retry=true
	// widens the sieve and tries again, up to MaxWindows.
	Retry bool

	// Progress, if non-nil, is called after every window is processed.
	Progress func(ProgressEvent)
}

// DefaultOptions returns reasonable defaults for a factor-base bound b
// and window length t.
func DefaultOptions(b, t int64) Options {
	return Options{B: b, T: t, MaxWindows: 2000, Seed: 1, Retry: false}
}

// ProgressEvent reports sieve state after a window, for the caller
// observer spec.md §9 asks for in place of a global trace flag.
type ProgressEvent struct {
	Windows        int
	Relations      int
	DistinctPrimes int
}

// relation is a quadratic-sieve relation: j with j²−n's factorisation
// over the factor base, tracked two ways — Parity (the GF(2) column)
// and Exponents (actual nonnegative multiplicities, needed to
// reconstruct the square root at extraction time; spec.md §4.4's
// "multiset union" step needs real counts, not just parity).
type relation struct {
	J         *big.Int
	Exponents map[int64]int
	Parity    *primeset.Set
}

// Factor attempts to find a nontrivial factor of the odd composite n.
// n must have at least two distinct odd prime factors (spec.md §4.4's
// precondition) — callers violating this get undefined results, not a
// checked error, per spec.md §7's "precondition violation" category.
func Factor(n *big.Int, opts Options) (*big.Int, error) {
	log := xlog.Logger()

	base := buildFactorBase(n, opts.B)

	s := bigmath.ISqrt(n)
	var relations []relation
	windows := 0
	k := int64(0)
	forward := true // alternates 0,1,-1,2,-2,... as spec.md §4.4 specifies

	nextWindowLo := func() *big.Int {
		// window index sequence: 0, 1, -1, 2, -2, 3, -3, ...
		var kk int64
		if k == 0 {
			kk = 0
		} else if forward {
			kk = k
		} else {
			kk = -k
		}
		if !forward {
			k++
		}
		forward = !forward

		t := big.NewInt(opts.T)
		half := new(big.Int).Quo(t, big.NewInt(2))
		lo := new(big.Int).Sub(s, half)
		lo.Add(lo, new(big.Int).Mul(big.NewInt(kk), t))
		return lo
	}

	tryExtract := func() (*big.Int, bool) {
		active, activeRelations := pruneSingletons(relations)
		if len(activeRelations) <= int(active.Len())+1 {
			return nil, false
		}
		matrix := buildMatrix(active, activeRelations)
		deps := solveDependencies(matrix, opts.Seed)
		log.Debug().Int("relations", len(activeRelations)).Int("dependencies", len(deps)).Msg("qsieve: trying dependencies")
		for _, dep := range deps {
			if f, ok := extractFactor(n, activeRelations, dep); ok {
				return f, true
			}
		}
		return nil, false
	}

	for windows < opts.MaxWindows {
		lo := nextWindowLo()
		found := sieveWindow(n, base, lo, opts.T)
		relations = append(relations, found...)
		windows++

		if opts.Progress != nil {
			active, activeRelations := pruneSingletons(relations)
			opts.Progress(ProgressEvent{Windows: windows, Relations: len(activeRelations), DistinctPrimes: int(active.Len()) - 1})
		}

		if f, ok := tryExtract(); ok {
			return f, nil
		}
		if !opts.Retry && len(relations) > 0 {
			// a dependency set existed (tryExtract only runs its
			// extraction loop once relations exceed the threshold) and
			// every one failed: per Retry=false, give up now rather than
			// keep widening.
			active, activeRelations := pruneSingletons(relations)
			if len(activeRelations) > int(active.Len())+1 {
				return nil, ErrNoFactor
			}
		}
	}
	return nil, ErrBudgetExhausted
}

func primesOf(base []factorBasePrime) []int64 {
	out := make([]int64, len(base))
	for i, fb := range base {
		out[i] = fb.P
	}
	return out
}
