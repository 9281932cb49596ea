// Command benchfactor times the quadratic sieve across a list of
// composites, one goroutine per n. Concurrency here is a measurement
// convenience — qsieve.Factor itself runs single-threaded per call, as
// do every other package in this module.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"numtheory/internal/cliflags"
	"numtheory/internal/qsieve"
)

type config struct {
	Ns         []*big.Int
	B, T       int64
	MaxWindows int
	Seed       int64
	Retry      bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("benchfactor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	nsStr := fs.String("ns", "", "comma-separated decimal composites to factor (required)")
	bStr := fs.String("b", "2000", "factor-base bound (accepts K/M/G suffixes)")
	tStr := fs.String("t", "4000", "sieve window length (accepts K/M/G suffixes)")
	maxWindowsStr := fs.String("max-windows", "500", "sieve window budget (accepts K/M/G suffixes)")
	seed := fs.Int64("seed", 1, "GF(2) solver seed")
	retry := fs.Bool("retry", false, "widen the sieve and keep trying if a dependency's gcd is trivial")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if strings.TrimSpace(*nsStr) == "" {
		return nil, errors.New("missing required -ns")
	}
	var ns []*big.Int
	for _, part := range strings.Split(*nsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, ok := new(big.Int).SetString(part, 10)
		if !ok {
			return nil, fmt.Errorf("invalid decimal integer in -ns: %q", part)
		}
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return nil, errors.New("-ns contained no composites")
	}
	b, err := cliflags.ParseCount(*bStr)
	if err != nil {
		return nil, fmt.Errorf("bad -b: %w", err)
	}
	t, err := cliflags.ParseCount(*tStr)
	if err != nil {
		return nil, fmt.Errorf("bad -t: %w", err)
	}
	maxWindows, err := cliflags.ParseCount(*maxWindowsStr)
	if err != nil {
		return nil, fmt.Errorf("bad -max-windows: %w", err)
	}
	return &config{Ns: ns, B: b, T: t, MaxWindows: int(maxWindows), Seed: *seed, Retry: *retry}, nil
}

type result struct {
	n        *big.Int
	factor   *big.Int
	duration time.Duration
	err      error
}

func run(cfg *config) bool {
	opts := qsieve.Options{
		B:          cfg.B,
		T:          cfg.T,
		MaxWindows: cfg.MaxWindows,
		Seed:       cfg.Seed,
		Retry:      cfg.Retry,
	}

	results := make([]result, len(cfg.Ns))
	var g errgroup.Group
	for i, n := range cfg.Ns {
		i, n := i, n
		g.Go(func() error {
			start := time.Now()
			f, err := qsieve.Factor(n, opts)
			results[i] = result{n: n, factor: f, duration: time.Since(start), err: err}
			return nil
		})
	}
	g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].n.Cmp(results[j].n) < 0 })

	ok := true
	fmt.Println("---- benchfactor summary ----")
	for _, r := range results {
		if r.err != nil {
			ok = false
			fmt.Printf("n=%-20s : ERROR: %v\n", r.n.String(), r.err)
			continue
		}
		fmt.Printf("n=%-20s : %10v  factor=%s\n", r.n.String(), r.duration.Truncate(time.Microsecond), r.factor.String())
	}
	return ok
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if !run(cfg) {
		os.Exit(1)
	}
}
