// Package primesieve implements the external collaborators spec.md §6
// treats as given: a classical Eratosthenes sieve, a trial-division /
// Pollard-rho rational-integer factoriser, and Tonelli-Shanks modular
// square roots. None of these are the algorithmic core of the module —
// they exist so the quadratic sieve, the Atkin sieve and Eisenstein
// factorisation have something to call.
package primesieve

// Eratosthenes returns the primes in [2, limit) in ascending order.
// Used to seed the Atkin sieve's cross-out phase and as the quadratic
// sieve's factor-base source.
func Eratosthenes(limit int64) []int64 {
	if limit <= 2 {
		return nil
	}
	n := int(limit)
	composite := make([]bool, n)
	var primes []int64
	for i := 2; i < n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, int64(i))
		for j := i * i; j < n; j += i {
			composite[j] = true
		}
	}
	return primes
}
