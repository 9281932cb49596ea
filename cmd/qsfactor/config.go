package main

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"numtheory/internal/cliflags"
)

type config struct {
	N          *big.Int
	B          int64
	T          int64
	MaxWindows int
	Seed       int64
	Retry      bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("qsfactor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	nStr := fs.String("n", "", "decimal composite to factor (required)")
	bStr := fs.String("b", "2000", "factor-base bound (accepts K/M/G suffixes)")
	tStr := fs.String("t", "4000", "sieve window length (accepts K/M/G suffixes)")
	maxWindowsStr := fs.String("max-windows", "500", "sieve window budget (accepts K/M/G suffixes)")
	seed := fs.Int64("seed", 1, "GF(2) solver seed")
	retry := fs.Bool("retry", false, "widen the sieve and keep trying if a dependency's gcd is trivial")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if strings.TrimSpace(*nStr) == "" {
		return nil, errors.New("missing required -n")
	}
	n, ok := new(big.Int).SetString(*nStr, 10)
	if !ok {
		return nil, errors.New("invalid decimal integer for -n: " + *nStr)
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

	return &config{N: n, B: b, T: t, MaxWindows: int(maxWindows), Seed: *seed, Retry: *retry}, nil
}
