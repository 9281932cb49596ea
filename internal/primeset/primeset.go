// Package primeset implements the signed prime-index set (spec.md C3):
// a compact representation of a subset of a shared ordered small-prime
// table together with a sign bit, used by the quadratic sieve to track
// the parity of each relation's prime-factor exponents mod 2.
//
// The sign is modelled as "prime index 0" (spec.md §9 Design Notes),
// so XOR-ing two sets' sign bits together with their symmetric
// difference of primes is a single uniform operation over one bitset.
package primeset

import "github.com/bits-and-blooms/bitset"

// Table maps primes to stable indices (index 0 reserved for the sign)
// shared by every Set built against it. A quadratic-sieve run builds
// one Table from its factor base and uses it for the run's lifetime.
type Table struct {
	primes []int64
	index  map[int64]uint
}

// NewTable builds a Table over the given primes, in the order given.
// Index 0 is reserved for the sign; primes are assigned indices
// starting at 1.
func NewTable(primes []int64) *Table {
	t := &Table{
		primes: append([]int64(nil), primes...),
		index:  make(map[int64]uint, len(primes)),
	}
	for i, p := range primes {
		t.index[p] = uint(i + 1)
	}
	return t
}

// Len returns the number of bit positions a Set built on this table
// needs (primes plus the reserved sign slot).
func (t *Table) Len() uint { return uint(len(t.primes)) + 1 }

// IndexOf returns the bit position of prime p, or false if p is not in
// the table.
func (t *Table) IndexOf(p int64) (uint, bool) {
	i, ok := t.index[p]
	return i, ok
}

// Set is a signed prime-index set: a bitset.BitSet over a shared
// Table, bit 0 the sign, bit i (i>=1) whether the (i-1)th table prime
// has odd multiplicity.
type Set struct {
	table *Table
	bits  *bitset.BitSet
}

// New returns the empty (positive, no primes) set over table.
func New(table *Table) *Set {
	return &Set{table: table, bits: bitset.New(table.Len())}
}

// Sign reports the sign bit.
func (s *Set) Sign() bool { return s.bits.Test(0) }

// SetSign sets the sign bit to neg.
func (s *Set) SetSign(neg bool) {
	if neg {
		s.bits.Set(0)
	} else {
		s.bits.Clear(0)
	}
}

// Toggle flips the parity bit for prime p. It panics if p is not part
// of the table — factor-base membership must be decided up front.
func (s *Set) Toggle(p int64) {
	i, ok := s.table.IndexOf(p)
	if !ok {
		panic("primeset: toggle of prime not in factor-base table")
	}
	s.bits.Flip(i)
}

// Has reports whether prime p currently has odd multiplicity.
func (s *Set) Has(p int64) bool {
	i, ok := s.table.IndexOf(p)
	if !ok {
		return false
	}
	return s.bits.Test(i)
}

// XOR returns the symmetric difference of s and o's prime sets,
// together with the XOR of their sign bits — this is the group
// operation spec.md §3 describes: "equality of exponent-vectors modulo
// 2 is the XOR of sign bits together with symmetric difference of
// prime sets".
func (s *Set) XOR(o *Set) *Set {
	if s.table != o.table {
		panic("primeset: XOR across sets built on different tables")
	}
	return &Set{table: s.table, bits: s.bits.SymmetricDifference(o.bits)}
}

// Bits exposes the underlying bitset for consumers (the GF(2) linear
// solver) that need each relation's exponent-parity vector as a raw
// column.
func (s *Set) Bits() *bitset.BitSet { return s.bits }

// Table returns the shared table this set is indexed against.
func (s *Set) Table() *Table { return s.table }

// Primes returns the primes currently of odd multiplicity, ascending.
func (s *Set) Primes() []int64 {
	var out []int64
	for i, p := range s.table.primes {
		if s.bits.Test(uint(i + 1)) {
			out = append(out, p)
		}
	}
	return out
}

// IsZero reports whether the set is the identity: positive sign and no
// primes.
func (s *Set) IsZero() bool { return s.bits.None() }
