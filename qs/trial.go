package qs

import (
	"math"

	"github.com/bfix/qsfactor/bignum"
)

// TrialDivide strips every prime up to bound from n, returning the
// residual and the (possibly repeated) prime factors found. Grounded
// on the teacher's factorizer.Factorizer.smallPrimes, but bounded per
// spec.md §4.7's Trial state to ceil(ln N) rather than a fixed cutoff.
func TrialDivide(n *bignum.Int, bound int64) (residual *bignum.Int, factors []*bignum.Int) {
	residual = n
	for _, p := range eratosthenes(bound) {
		bp := bignum.NewInt(p)
		for residual.Mod(bp).Equals(bignum.ZERO) {
			residual = residual.Div(bp)
			factors = append(factors, bp)
		}
	}
	return residual, factors
}

// TrialDivisionBound returns ceil(ln N), the small-prime bound spec.md
// §4.7's Trial state sieves up to.
func TrialDivisionBound(n *bignum.Int) int64 {
	lnN := math.Log(nFloat(n))
	return int64(math.Ceil(lnN))
}

// nFloat downcasts n to float64 for the purpose of a rough bound
// computation only (not used for anything requiring precision across
// the full ~100-digit range, unlike the smoothness-bound chooser).
func nFloat(n *bignum.Int) float64 {
	f, _ := n.Float().Float64()
	return f
}
