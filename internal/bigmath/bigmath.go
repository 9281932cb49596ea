// Package bigmath wraps the arbitrary-precision primitives the rest of
// the module treats as given: modular exponentiation, modular inverse,
// integer square root and the extended Euclidean algorithm.
package bigmath

import "math/big"

// ModExp returns a^e mod m. m must be positive.
func ModExp(a, e, m *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, m)
}

// ModInverse returns the inverse of a mod m, and false if a has no
// inverse (gcd(a, m) != 1).
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, false
	}
	return inv, true
}

// ISqrt returns the integer (floor) square root of a non-negative n.
func ISqrt(n *big.Int) *big.Int {
	return new(big.Int).Sqrt(n)
}

// GCDExt returns (d, u, v) with d = gcd(a, b) = u*a + v*b.
func GCDExt(a, b *big.Int) (d, u, v *big.Int) {
	d, u, v = new(big.Int), new(big.Int), new(big.Int)
	d.GCD(u, v, a, b)
	return d, u, v
}

// Mod returns a reduced to the canonical representative in [0, m).
func Mod(a, m *big.Int) *big.Int {
	z := new(big.Int).Mod(a, m)
	if z.Sign() < 0 {
		z.Add(z, m)
	}
	return z
}

// IsEven reports whether n is even.
func IsEven(n *big.Int) bool { return n.Bit(0) == 0 }
