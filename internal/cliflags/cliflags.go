// Package cliflags holds small flag-value parsers shared by the CLI
// drivers under cmd/.
package cliflags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseCount parses a decimal integer with an optional K/M/G (or
// KB/MB/GB) suffix, e.g. "2000", "2K", "4M". Modelled on the teacher's
// own parseBytes size parser, generalised from byte counts to the
// plain sieve-budget counts the quadratic sieve's CLI flags take.
func ParseCount(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty count")
	}
	orig := s
	s = strings.TrimSpace(strings.ToUpper(s))
	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "KB"):
		mult, s = 1<<10, strings.TrimSuffix(s, "KB")
	case strings.HasSuffix(s, "MB"):
		mult, s = 1<<20, strings.TrimSuffix(s, "MB")
	case strings.HasSuffix(s, "GB"):
		mult, s = 1<<30, strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "K"):
		mult, s = 1<<10, strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		mult, s = 1<<20, strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		mult, s = 1<<30, strings.TrimSuffix(s, "G")
	}
	s = strings.TrimSpace(s)
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", orig, err)
	}
	return int64(val * float64(mult)), nil
}
