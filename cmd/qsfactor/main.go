// Command qsfactor is the CLI driver for the quadratic sieve
// factoriser: given a decimal composite n, prints one nontrivial factor
// or fails within a caller-tunable window budget.
package main

import (
	"log"
	"os"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if !run(cfg) {
		os.Exit(1)
	}
}
