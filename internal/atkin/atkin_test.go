package atkin

import (
	"testing"

	"numtheory/internal/primesieve"
)

func TestPrimeListMatchesKnownPrimesUnder100(t *testing.T) {
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

	small := primesieve.Eratosthenes(20)
	got := PrimeList(0, 100, small)

	if len(got) != len(want) {
		t.Fatalf("PrimeList(0, 100) returned %d primes, want %d: got=%v", len(got), len(want), got)
	}
	for i, p := range want {
		if got[i] != p {
			t.Fatalf("PrimeList(0, 100)[%d] = %d, want %d (full: %v)", i, got[i], p, got)
		}
	}
}

func TestPrimeListAscending(t *testing.T) {
	small := primesieve.Eratosthenes(50)
	got := PrimeList(0, 600, small)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("PrimeList not strictly ascending at index %d: %d <= %d", i, got[i], got[i-1])
		}
	}
}

func TestPrimeListSecondSegmentMatchesFirst(t *testing.T) {
	small := primesieve.Eratosthenes(50)
	whole := PrimeList(0, 300, small)
	first := PrimeList(0, 120, small)
	second := PrimeList(120, 180, small)

	var reassembled []uint64
	reassembled = append(reassembled, first...)
	reassembled = append(reassembled, second...)

	if len(reassembled) != len(whole) {
		t.Fatalf("segmented reassembly has %d primes, whole range has %d", len(reassembled), len(whole))
	}
	for i := range whole {
		if reassembled[i] != whole[i] {
			t.Fatalf("segmented reassembly diverges at index %d: %d != %d", i, reassembled[i], whole[i])
		}
	}
}

func TestSieveRejectsUnalignedLo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Sieve(1, 60, nil) should panic: lo not a multiple of 60")
		}
	}()
	Sieve(1, 60, nil)
}
