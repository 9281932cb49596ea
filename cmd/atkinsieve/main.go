// Command atkinsieve prints the primes in [lo, lo+len) using the
// segmental sieve of Atkin, after rounding lo down to a multiple of 60
// (the range keeps its end point, so primes just below the given lo
// may be printed too).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"numtheory/internal/atkin"
	"numtheory/internal/primesieve"
)

type config struct {
	Lo  uint64
	Len uint64
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("atkinsieve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	lo := fs.Uint64("lo", 0, "range lower bound (rounded down to a multiple of 60)")
	length := fs.Uint64("len", 1000, "range length")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *length == 0 {
		return nil, errors.New("-len must be positive")
	}
	return &config{Lo: (*lo / 60) * 60, Len: *length + (*lo - (*lo/60)*60)}, nil
}

func run(cfg *config) error {
	seedLimit := isqrtCeil(cfg.Lo+cfg.Len) + 1
	small := primesieve.Eratosthenes(int64(seedLimit))

	primes := atkin.PrimeList(cfg.Lo, cfg.Len, small)

	w := bufio.NewWriterSize(os.Stdout, 1<<16)
	defer w.Flush()
	for _, p := range primes {
		fmt.Fprintln(w, p)
	}
	return nil
}

func isqrtCeil(n uint64) uint64 {
	r := new(big.Int).Sqrt(new(big.Int).SetUint64(n)).Uint64()
	if r*r < n {
		r++
	}
	return r
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
