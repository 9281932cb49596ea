// Package atkin implements the segmental sieve of Atkin (spec.md C5):
// a wheel-60 prime generator that represents a segment [lo, lo+len) as
// sixteen bitsets, one per residue class coprime to 60, toggled by
// three quadratic-form congruences and then cleared of prime-square
// multiples.
//
// The bit-vector shape is grounded directly on the teacher's own
// Bitset/Grid pair in ectorus/ectorus.go ("allocate, toggle per rule,
// freeze before use") — here replaced with the real
// bits-and-blooms/bitset dependency instead of a hand-rolled []uint64.
package atkin

import (
	"math/big"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"numtheory/internal/crt"
)

// wheelResidues are the 16 residues in [1, 59] coprime to 60, ascending.
var wheelResidues = [16]uint64{1, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 49, 53, 59}

var residueIndex = func() map[uint64]int {
	m := make(map[uint64]int, 16)
	for i, r := range wheelResidues {
		m[r] = i
	}
	return m
}()

// Segment is a frozen sieve result over [Lo, Lo+Len): one bitset per
// wheel residue, bit k meaning "60*(Lo/60+k) + r is prime". It is
// built once by Sieve and never mutated afterwards (spec.md §5:
// "freezes them before return; no mutation is externally observable").
type Segment struct {
	Lo, Len   uint64
	numBlocks uint64
	bits      [16]*bitset.BitSet
}

// Sieve computes the Atkin segment for [lo, lo+length). lo must
// already be a multiple of 60 — a precondition violation (spec.md §7)
// if not, since the caller owns range alignment.
func Sieve(lo, length uint64, smallPrimes []int64) *Segment {
	if lo%60 != 0 {
		panic("atkin: lo must be a multiple of 60")
	}
	numBlocks := (length + 59) / 60
	if numBlocks == 0 {
		numBlocks = 0
	}
	seg := &Segment{Lo: lo, Len: length, numBlocks: numBlocks}
	for i := range seg.bits {
		seg.bits[i] = bitset.New(uint(numBlocks))
	}
	if numBlocks == 0 {
		return seg
	}

	high := lo + numBlocks*60 // exclusive upper bound on n = 60k+r considered
	startBlock := lo / 60

	toggleForm1(seg, lo, high, startBlock)
	toggleForm2(seg, lo, high, startBlock)
	toggleForm3(seg, lo, high, startBlock)
	crossOutSquares(seg, lo, high, startBlock, smallPrimes)

	return seg
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return new(big.Int).Sqrt(new(big.Int).SetUint64(n)).Uint64()
}

// flip toggles the bit for rational integer n, if n falls within
// [lo, high) and n mod 60 is one of the 16 wheel residues.
func flip(seg *Segment, lo, high, startBlock, n uint64) {
	if n < lo || n >= high {
		return
	}
	delta := n % 60
	idx, ok := residueIndex[delta]
	if !ok {
		return
	}
	block := n / 60
	seg.bits[idx].Flip(uint(block - startBlock))
}

// toggleForm1 handles δ with n mod 12 ∈ {1, 5} via n = 4f² + g².
func toggleForm1(seg *Segment, lo, high, startBlock uint64) {
	xmax := isqrt(high/4) + 1
	for x := uint64(1); x <= xmax; x++ {
		base := 4 * x * x
		if base >= high {
			break
		}
		ymax := isqrt(high)
		for y := uint64(1); y <= ymax; y++ {
			n := base + y*y
			if n >= high {
				break
			}
			if m := n % 12; m == 1 || m == 5 {
				flip(seg, lo, high, startBlock, n)
			}
		}
	}
}

// toggleForm2 handles δ with n mod 12 == 7 via n = 3f² + g².
func toggleForm2(seg *Segment, lo, high, startBlock uint64) {
	xmax := isqrt(high/3) + 1
	for x := uint64(1); x <= xmax; x++ {
		base := 3 * x * x
		if base >= high {
			break
		}
		ymax := isqrt(high)
		for y := uint64(1); y <= ymax; y++ {
			n := base + y*y
			if n >= high {
				break
			}
			if n%12 == 7 {
				flip(seg, lo, high, startBlock, n)
			}
		}
	}
}

// toggleForm3 handles δ with n mod 12 == 11 via n = 3f² − g², f > g.
func toggleForm3(seg *Segment, lo, high, startBlock uint64) {
	xmax := isqrt(high/2) + 2
	for x := uint64(2); x <= xmax; x++ {
		base := 3 * x * x
		for y := uint64(1); y < x; y++ {
			if base < y*y {
				continue
			}
			n := base - y*y
			if n >= high {
				continue
			}
			if n%12 == 11 {
				flip(seg, lo, high, startBlock, n)
			}
		}
	}
}

// crossOutSquares clears composite multiples of p² for every small
// prime 7 <= p <= floor(sqrt(high)), using the Chinese remainder
// combinator to find the first block index k with 60k+δ ≡ 0 (mod p²),
// exactly as spec.md §4.3 describes.
func crossOutSquares(seg *Segment, lo, high, startBlock uint64, smallPrimes []int64) {
	limit := isqrt(high)
	for _, p := range smallPrimes {
		if p < 7 {
			continue
		}
		if uint64(p) > limit {
			break
		}
		p2 := int64(p) * int64(p)

		for idx, delta := range wheelResidues {
			n0, L, err := crt.Combine(
				big.NewInt(int64(delta)), big.NewInt(60),
				big.NewInt(0), big.NewInt(p2),
			)
			if err != nil {
				// gcd(60, p^2) = 1 for any p not in {2,3,5}, so this
				// combination is always solvable; a failure here is a
				// bug, not a caller error.
				panic("atkin: crt.Combine failed for cross-out, want always-solvable congruence: " + err.Error())
			}
			_ = L
			k0 := n0.Uint64() / 60 // n0 ≡ delta (mod 60), so divisible exactly
			p2u := uint64(p2)

			// smallest k >= startBlock with k ≡ k0 (mod p2u)
			var k uint64
			if k0 >= startBlock {
				k = k0 - (k0-startBlock)/p2u*p2u
			} else {
				steps := (startBlock - k0 + p2u - 1) / p2u
				k = k0 + steps*p2u
			}
			endBlock := startBlock + seg.numBlocks
			for ; k < endBlock; k += p2u {
				if k >= startBlock {
					seg.bits[idx].Clear(uint(k - startBlock))
				}
			}
		}
	}
}

// Primes returns the primes represented by the segment, in ascending
// order — the wheel residues only; 2, 3 and 5 are not part of any
// wheel bitset and must be added by the caller (PrimeList does this).
func (s *Segment) Primes() []uint64 {
	var out []uint64
	for k := uint64(0); k < s.numBlocks; k++ {
		n := s.Lo + k*60
		if n >= s.Lo+s.Len {
			break
		}
		for idx, r := range wheelResidues {
			if s.bits[idx].Test(uint(k)) {
				v := n + r
				if v >= s.Lo && v < s.Lo+s.Len {
					out = append(out, v)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PrimeList returns every prime in [lo, lo+length), ascending: 2, 3, 5
// handled directly (they are outside the wheel), followed by the
// sieved segment's primes.
func PrimeList(lo, length uint64, smallPrimes []int64) []uint64 {
	var out []uint64
	for _, p := range [...]uint64{2, 3, 5} {
		if p >= lo && p < lo+length {
			out = append(out, p)
		}
	}
	seg := Sieve(lo, length, smallPrimes)
	out = append(out, seg.Primes()...)
	return out
}
