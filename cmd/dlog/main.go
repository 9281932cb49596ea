// Command dlog computes the discrete logarithm of b to base a in
// (Z/mZ)*.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"numtheory/internal/modgroup"
)

type config struct {
	M, A, B        *big.Int
	MaxRhoRestarts int
	Seed           int64
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("dlog", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	mStr := fs.String("m", "", "modulus (required)")
	aStr := fs.String("a", "", "primitive root base (required)")
	bStr := fs.String("b", "", "target (required)")
	maxRestarts := fs.Int("max-rho-restarts", 64, "Pollard-rho restart cap for large-prime base case")
	seed := fs.Int64("seed", 1, "Pollard-rho random seed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	m, ok1 := new(big.Int).SetString(*mStr, 10)
	a, ok2 := new(big.Int).SetString(*aStr, 10)
	b, ok3 := new(big.Int).SetString(*bStr, 10)
	if !ok1 || !ok2 || !ok3 {
		return nil, errors.New("m, a and b must all be decimal integers")
	}
	return &config{M: m, A: a, B: b, MaxRhoRestarts: *maxRestarts, Seed: *seed}, nil
}

func run(cfg *config) bool {
	group, err := modgroup.ClassifyGroup(cfg.M)
	if err != nil {
		fmt.Println(err)
		return false
	}
	root, ok := modgroup.NewPrimitiveRoot(group, cfg.A)
	if !ok {
		fmt.Println("a is not a primitive root mod m")
		return false
	}
	e, err := modgroup.DiscreteLog(group, root, cfg.B, modgroup.DiscreteLogOptions{
		MaxRhoRestarts: cfg.MaxRhoRestarts,
		Seed:           cfg.Seed,
	})
	if err != nil {
		fmt.Println(err)
		return false
	}
	fmt.Println(e.String())
	return true
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
