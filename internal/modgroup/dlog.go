package modgroup

import (
	"math/big"
	"math/rand"

	"numtheory/internal/bigmath"
	"numtheory/internal/crt"
)

// bsgsThreshold is the prime size below which baby-step/giant-step is
// used directly; at or above it, Pollard's rho is used instead
// (spec.md §4.5: "p < 10^8 uses BSGS ... p >= 10^8 uses Pollard rho").
var bsgsThreshold = big.NewInt(100_000_000)

// DiscreteLogOptions tunes the randomized base-case search. spec.md §9
// leaves the rho restart cap an open question; this module resolves it
// to a fixed default of 64, generous for the group sizes a CLI-scale
// tool is expected to see, while still bounding worst-case runtime.
type DiscreteLogOptions struct {
	MaxRhoRestarts int
	Seed           int64
}

// DefaultDiscreteLogOptions returns the resolved defaults.
func DefaultDiscreteLogOptions() DiscreteLogOptions {
	return DiscreteLogOptions{MaxRhoRestarts: 64, Seed: 1}
}

// DiscreteLog finds e such that a^e ≡ b (mod g.M), dispatching on the
// group's shape per spec.md §4.5. Returns ErrNotInGroup if b is not
// coprime to g.M, and also when the Pollard-rho base case runs out of
// restarts.
func DiscreteLog(g *CyclicGroup, a *PrimitiveRoot, b *big.Int, opts DiscreteLogOptions) (*big.Int, error) {
	bm, err := NewMultMod(b, g.M)
	if err != nil {
		return nil, ErrNotInGroup
	}

	switch g.Kind {
	case KindTwo:
		return big.NewInt(0), nil

	case KindFour:
		if bm.V.Cmp(big.NewInt(1)) == 0 {
			return big.NewInt(0), nil
		}
		return big.NewInt(1), nil

	case KindOddPrimePower:
		if g.K == 1 {
			return dlogBaseCase(g.P, a.V, bm.V, opts)
		}
		return dlogPrimePower(g.P, g.K, a.V, bm.V, opts)

	case KindTwoOddPrimePower:
		pk := new(big.Int).Exp(g.P, big.NewInt(int64(g.K)), nil)
		ar := bigmath.Mod(a.V, pk)
		br := bigmath.Mod(bm.V, pk)
		if g.K == 1 {
			return dlogBaseCase(g.P, ar, br, opts)
		}
		return dlogPrimePower(g.P, g.K, ar, br, opts)

	default:
		return nil, ErrNoCyclicGroup
	}
}

// dlogBaseCase computes the discrete log in F_p*, where a is assumed
// to be a primitive root (order p-1).
func dlogBaseCase(p, a, b *big.Int, opts DiscreteLogOptions) (*big.Int, error) {
	if p.Cmp(bsgsThreshold) < 0 {
		return bsgs(p, a, b), nil
	}
	return pollardRhoDlog(p, a, b, opts)
}

// bsgs implements baby-step/giant-step over F_p*, assuming a has order
// p-1. Returns the unique exponent in [0, p-2].
func bsgs(p, a, b *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	m := new(big.Int).Sqrt(pm1)
	m.Add(m, big.NewInt(1))
	mInt := m.Int64()

	table := make(map[string]int64, mInt)
	cur := big.NewInt(1)
	for j := int64(0); j < mInt; j++ {
		key := cur.String()
		if _, ok := table[key]; !ok {
			table[key] = j
		}
		cur = bigmath.Mod(new(big.Int).Mul(cur, a), p)
	}

	aInvM := bigmath.ModExp(a, new(big.Int).Neg(m), p)
	y := new(big.Int).Set(b)
	for i := int64(0); i < mInt; i++ {
		if j, ok := table[y.String()]; ok {
			e := new(big.Int).Add(big.NewInt(i*mInt), big.NewInt(j))
			return bigmath.Mod(e, pm1)
		}
		y = bigmath.Mod(new(big.Int).Mul(y, aInvM), p)
	}
	panic("modgroup: bsgs: no discrete log found for a claimed primitive root")
}

// pollardRhoDlog implements the three-region Pollard rho walk spec.md
// §4.5 describes: partition F_p* into three subsets by residue mod 3,
// apply a distinct update rule per subset, track the exponent pair
// (α, β) with x = a^α b^β, and solve the resulting linear congruence
// on collision. Restarts with a fresh random start up to
// opts.MaxRhoRestarts times; when every restart fails it returns
// ErrNotInGroup, the same error as for a target outside the group.
func pollardRhoDlog(p, a, b *big.Int, opts DiscreteLogOptions) (*big.Int, error) {
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	rng := rand.New(rand.NewSource(opts.Seed))

	step := func(x, alpha, beta *big.Int) (*big.Int, *big.Int, *big.Int) {
		switch new(big.Int).Mod(x, big.NewInt(3)).Int64() {
		case 0:
			return bigmath.Mod(new(big.Int).Mul(x, x), p),
				bigmath.Mod(new(big.Int).Lsh(alpha, 1), pm1),
				bigmath.Mod(new(big.Int).Lsh(beta, 1), pm1)
		case 1:
			return bigmath.Mod(new(big.Int).Mul(x, a), p),
				bigmath.Mod(new(big.Int).Add(alpha, big.NewInt(1)), pm1),
				beta
		default:
			return bigmath.Mod(new(big.Int).Mul(x, b), p),
				alpha,
				bigmath.Mod(new(big.Int).Add(beta, big.NewInt(1)), pm1)
		}
	}

	for restart := 0; restart < opts.MaxRhoRestarts; restart++ {
		alpha0 := new(big.Int).Rand(rng, pm1)
		beta0 := new(big.Int).Rand(rng, pm1)
		x0 := bigmath.Mod(new(big.Int).Mul(bigmath.ModExp(a, alpha0, p), bigmath.ModExp(b, beta0, p)), p)

		xTort, aTort, bTort := new(big.Int).Set(x0), new(big.Int).Set(alpha0), new(big.Int).Set(beta0)
		xHare, aHare, bHare := new(big.Int).Set(x0), new(big.Int).Set(alpha0), new(big.Int).Set(beta0)

		for iter := 0; iter < 10_000_000; iter++ {
			xTort, aTort, bTort = step(xTort, aTort, bTort)
			xHare, aHare, bHare = step(xHare, aHare, bHare)
			xHare, aHare, bHare = step(xHare, aHare, bHare)

			if xTort.Cmp(xHare) != 0 {
				continue
			}

			betaDiff := bigmath.Mod(new(big.Int).Sub(bTort, bHare), pm1)
			alphaDiff := bigmath.Mod(new(big.Int).Sub(aHare, aTort), pm1)

			if betaDiff.Sign() == 0 {
				break // degenerate collision, restart
			}

			g := new(big.Int).GCD(nil, nil, betaDiff, pm1)
			if e, ok := solveLinearCongruence(alphaDiff, betaDiff, pm1, g, a, b, p); ok {
				return e, nil
			}
			break
		}
	}
	return nil, ErrNotInGroup
}

// solveLinearCongruence solves alphaDiff ≡ betaDiff * e (mod pm1) for
// e, trying each of the g = gcd(betaDiff, pm1) candidate residues and
// returning the one that actually satisfies a^e ≡ b (mod p).
func solveLinearCongruence(alphaDiff, betaDiff, pm1, g, a, b, p *big.Int) (*big.Int, bool) {
	const maxCandidates = 1 << 20
	if !g.IsInt64() || g.Int64() > maxCandidates {
		return nil, false // too many candidates to disambiguate; caller restarts
	}
	gi := g.Int64()

	modReduced := new(big.Int).Quo(pm1, g)
	betaReduced := new(big.Int).Quo(betaDiff, g)
	alphaReduced := new(big.Int).Quo(alphaDiff, g)

	inv, ok := bigmath.ModInverse(betaReduced, modReduced)
	if !ok {
		return nil, false
	}
	e0 := bigmath.Mod(new(big.Int).Mul(alphaReduced, inv), modReduced)

	for t := int64(0); t < gi; t++ {
		e := new(big.Int).Add(e0, new(big.Int).Mul(big.NewInt(t), modReduced))
		e = bigmath.Mod(e, pm1)
		if bigmath.ModExp(a, e, p).Cmp(b) == 0 {
			return e, true
		}
	}
	return nil, false
}

// dlogPrimePower computes the discrete log in (Z/p^kZ)* for k >= 2 via
// Bach reduction: the base-case log mod (p-1) combined, through the
// additive homomorphism θ, with a log mod p^(k-1), recombined by the
// Chinese remainder combinator (spec.md §4.5).
func dlogPrimePower(p *big.Int, k int, a, b *big.Int, opts DiscreteLogOptions) (*big.Int, error) {
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	pk1 := new(big.Int).Exp(p, big.NewInt(int64(k-1)), nil)

	e0, err := dlogBaseCase(p, bigmath.Mod(a, p), bigmath.Mod(b, p), opts)
	if err != nil {
		return nil, err
	}

	thetaA := theta(a, p, k)
	thetaB := theta(b, p, k)
	thetaAInv, ok := bigmath.ModInverse(thetaA, pk1)
	if !ok {
		panic("modgroup: theta(a) not invertible mod p^(k-1) for a claimed primitive root")
	}
	c := bigmath.Mod(new(big.Int).Mul(thetaAInv, thetaB), pk1)

	e, _, err := crt.Combine(e0, pm1, c, pk1)
	if err != nil {
		// gcd(p-1, p^(k-1)) = 1 always (p never divides p-1), so this
		// congruence pair is always solvable.
		panic("modgroup: crt.Combine failed combining Bach-reduction residues: " + err.Error())
	}
	return e, nil
}

// theta is the additive homomorphism (Z/p^kZ)* -> Z/p^(k-1)Z used by
// Bach reduction: θ(x) = (x^(p^k − p^(k−1)) − 1) / p^k mod p^(k−1),
// computed with the numerator reduced mod p^(2k−1) so the division is
// always exact.
func theta(x, p *big.Int, k int) *big.Int {
	pk := new(big.Int).Exp(p, big.NewInt(int64(k)), nil)
	pk1 := new(big.Int).Exp(p, big.NewInt(int64(k-1)), nil)
	exp := new(big.Int).Sub(pk, pk1)
	wideMod := new(big.Int).Exp(p, big.NewInt(int64(2*k-1)), nil)

	val := bigmath.ModExp(bigmath.Mod(x, wideMod), exp, wideMod)
	val.Sub(val, big.NewInt(1))
	val = bigmath.Mod(val, wideMod)

	q, r := new(big.Int).QuoRem(val, pk, new(big.Int))
	if r.Sign() != 0 {
		panic("modgroup: theta: non-exact division by p^k, invariant violated")
	}
	return bigmath.Mod(q, pk1)
}
