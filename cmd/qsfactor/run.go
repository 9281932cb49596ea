package main

import (
	"fmt"

	"numtheory/internal/qsieve"
)

// run factors cfg.N and prints a nontrivial factor, returning false on
// failure to factor within budget (spec.md §6: "exit 0 on success, 1 on
// failure to factor within budget").
func run(cfg *config) bool {
	opts := qsieve.Options{
		B:          cfg.B,
		T:          cfg.T,
		MaxWindows: cfg.MaxWindows,
		Seed:       cfg.Seed,
		Retry:      cfg.Retry,
	}
	f, err := qsieve.Factor(cfg.N, opts)
	if err != nil {
		fmt.Println(err)
		return false
	}
	fmt.Println(f.String())
	return true
}
