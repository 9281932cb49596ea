// Command eisenfactor prints the primary prime factorisation of an
// Eisenstein integer a+bω.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"numtheory/internal/eisenstein"
)

type config struct {
	A, B int64
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("eisenfactor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	a := fs.Int64("a", 0, "real coefficient")
	b := fs.Int64("b", 0, "omega coefficient")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *a == 0 && *b == 0 {
		return nil, errors.New("a+bω is zero, which has no factorisation")
	}
	return &config{A: *a, B: *b}, nil
}

func run(cfg *config) bool {
	z := eisenstein.New(cfg.A, cfg.B)
	factors := eisenstein.Factorise(z)
	if len(factors) == 0 {
		fmt.Println("unit")
		return true
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = fmt.Sprintf("(%s+%sω)^%d", f.Prime.A.String(), f.Prime.B.String(), f.Exp)
	}
	fmt.Println(strings.Join(parts, " * "))
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
