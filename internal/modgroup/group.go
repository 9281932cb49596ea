// Package modgroup classifies the multiplicative group (Z/mZ)* into
// the four cyclic shapes spec.md §3/§4.5 recognises, tests primitive
// roots, and computes discrete logarithms by dispatching to base-case
// BSGS/Pollard-rho or Bach reduction.
package modgroup

import (
	"errors"
	"math/big"

	"numtheory/internal/bigmath"
	"numtheory/internal/primesieve"
)

// ErrNoCyclicGroup is returned by ClassifyGroup when m has no cyclic
// multiplicative group.
var ErrNoCyclicGroup = errors.New("modgroup: (Z/mZ)* is not cyclic for this m")

// ErrNotCoprime is returned by NewMultMod when gcd(v, m) != 1.
var ErrNotCoprime = errors.New("modgroup: value is not coprime to modulus")

// ErrNotInGroup is returned when a discrete-log target is not actually
// a member of the group — a precondition violation spec.md §7 calls
// out explicitly. DiscreteLog also returns it when the Pollard-rho base
// case exhausts its restarts; the two cases are not distinguished.
var ErrNotInGroup = errors.New("modgroup: target is not in the group")

// Kind is the shape of (Z/mZ)*.
type Kind int

const (
	KindTwo Kind = iota
	KindFour
	KindOddPrimePower
	KindTwoOddPrimePower
)

// CyclicGroup describes the shape of (Z/mZ)* for a modulus that does
// have a cyclic multiplicative group: m=2, m=4, m=p^k, or m=2p^k.
type CyclicGroup struct {
	M    *big.Int
	Kind Kind
	P    *big.Int // odd prime, valid for KindOddPrimePower/KindTwoOddPrimePower
	K    int      // exponent, valid for the same two kinds
}

// ClassifyGroup determines the shape of (Z/mZ)*, or ErrNoCyclicGroup.
func ClassifyGroup(m *big.Int) (*CyclicGroup, error) {
	two := big.NewInt(2)
	four := big.NewInt(4)
	switch {
	case m.Cmp(two) == 0:
		return &CyclicGroup{M: m, Kind: KindTwo}, nil
	case m.Cmp(four) == 0:
		return &CyclicGroup{M: m, Kind: KindFour}, nil
	}

	if p, k, ok := oddPrimePower(m); ok {
		return &CyclicGroup{M: m, Kind: KindOddPrimePower, P: p, K: k}, nil
	}

	if bigmath.IsEven(m) {
		half := new(big.Int).Rsh(m, 1)
		if !bigmath.IsEven(half) {
			if p, k, ok := oddPrimePower(half); ok {
				return &CyclicGroup{M: m, Kind: KindTwoOddPrimePower, P: p, K: k}, nil
			}
		}
	}

	return nil, ErrNoCyclicGroup
}

// oddPrimePower reports whether n = p^k for an odd prime p and k >= 1.
func oddPrimePower(n *big.Int) (*big.Int, int, bool) {
	if n.Sign() <= 0 || n.Bit(0) == 0 {
		return nil, 0, false
	}
	if n.Cmp(big.NewInt(1)) == 0 {
		return nil, 0, false
	}
	factors := primesieve.FactorRational(n)
	if len(factors) != 1 {
		return nil, 0, false
	}
	return factors[0].Prime, factors[0].Exp, true
}

// MultMod is an element of (Z/mZ)*: a residue together with the proof
// that it is coprime to the modulus.
type MultMod struct {
	M, V *big.Int
}

// NewMultMod builds a MultMod, checking gcd(v, m) == 1.
func NewMultMod(v, m *big.Int) (*MultMod, error) {
	vr := bigmath.Mod(v, m)
	g := new(big.Int).GCD(nil, nil, vr, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotCoprime
	}
	return &MultMod{M: m, V: vr}, nil
}

// PrimitiveRoot is a MultMod known to generate the cyclic group it
// belongs to.
type PrimitiveRoot struct {
	MultMod
	Group *CyclicGroup
}

// NewPrimitiveRoot wraps r as a PrimitiveRoot of g's multiplicative
// group, or returns false if it is not one.
func NewPrimitiveRoot(g *CyclicGroup, r *big.Int) (*PrimitiveRoot, bool) {
	mm, err := NewMultMod(r, g.M)
	if err != nil {
		return nil, false
	}
	if !IsPrimitiveRoot(g, mm.V) {
		return nil, false
	}
	return &PrimitiveRoot{MultMod: *mm, Group: g}, true
}

// IsPrimitiveRoot implements spec.md §4.5's primitive-root test: r not
// ≡ 0 mod p, gcd(r,p)=1, r^((p-1)/q) ≢ 1 (mod p) for every prime q |
// (p-1), and for k>=2 additionally r^(p-1) ≢ 1 (mod p²). For m=2p^k,
// r must additionally be odd.
func IsPrimitiveRoot(g *CyclicGroup, r *big.Int) bool {
	switch g.Kind {
	case KindTwo:
		return bigmath.Mod(r, g.M).Cmp(big.NewInt(1)) == 0
	case KindFour:
		return bigmath.Mod(r, g.M).Cmp(big.NewInt(3)) == 0
	case KindTwoOddPrimePower:
		if bigmath.IsEven(r) {
			return false
		}
		return isPrimitiveRootModPrimePower(r, g.P, g.K)
	case KindOddPrimePower:
		return isPrimitiveRootModPrimePower(r, g.P, g.K)
	default:
		return false
	}
}

func isPrimitiveRootModPrimePower(r, p *big.Int, k int) bool {
	rp := bigmath.Mod(r, p)
	if rp.Sign() == 0 {
		return false
	}
	if new(big.Int).GCD(nil, nil, rp, p).Cmp(big.NewInt(1)) != 0 {
		return false
	}
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	for _, q := range distinctPrimeFactors(pm1) {
		e := new(big.Int).Quo(pm1, q)
		if bigmath.ModExp(rp, e, p).Cmp(big.NewInt(1)) == 0 {
			return false
		}
	}
	if k >= 2 {
		p2 := new(big.Int).Mul(p, p)
		if bigmath.ModExp(bigmath.Mod(r, p2), pm1, p2).Cmp(big.NewInt(1)) == 0 {
			return false
		}
	}
	return true
}

func distinctPrimeFactors(n *big.Int) []*big.Int {
	factors := primesieve.FactorRational(n)
	out := make([]*big.Int, len(factors))
	for i, f := range factors {
		out[i] = f.Prime
	}
	return out
}
