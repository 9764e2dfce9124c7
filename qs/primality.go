package qs

import (
	"math/rand"

	"github.com/bfix/qsfactor/bignum"
)

// ProbablyPrime runs the Miller-Rabin probable-prime test with reps
// repetitions, drawing witness bases from rng. Grounded on
// original_source/src/probable_prime.cpp (factor n-1 = d*2^s with d
// odd, then witness-loop per repetition) rather than delegating to
// math/big.Int.ProbablyPrime, because spec.md §8 requires the random
// seed to be controllable for deterministic tests; *rand.Rand lets
// callers fix that seed while crypto/rand (which big.Int uses
// internally) cannot be seeded.
func ProbablyPrime(n *bignum.Int, reps int, rng *rand.Rand) bool {
	if n.Cmp(bignum.TWO) < 0 {
		return false
	}
	if n.Equals(bignum.TWO) || n.Equals(bignum.THREE) {
		return true
	}
	if n.Mod(bignum.TWO).Equals(bignum.ZERO) {
		return false
	}

	d := n.Sub(bignum.ONE)
	s := 0
	for d.Mod(bignum.TWO).Equals(bignum.ZERO) {
		d = d.Div(bignum.TWO)
		s++
	}

	nMinus1 := n.Sub(bignum.ONE)
	nMinus3 := n.Sub(bignum.THREE)
	for i := 0; i < reps; i++ {
		a := randomInRange(rng, nMinus3).Add(bignum.TWO) // a in [2, n-2]
		x := a.ModPow(d, n)
		if x.Equals(bignum.ONE) || x.Equals(nMinus1) {
			continue
		}
		witness := true
		for j := 0; j < s-1; j++ {
			x = x.Mul(x).Mod(n)
			if x.Equals(nMinus1) {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// randomInRange returns a uniformly random Int in [0, upper), drawn
// from rng. upper is assumed positive.
func randomInRange(rng *rand.Rand, upper *bignum.Int) *bignum.Int {
	bitLen := upper.BitLen()
	if bitLen == 0 {
		return bignum.ZERO
	}
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)
	for {
		rng.Read(buf) //nolint:errcheck // math/rand.Rand.Read never errors
		// mask off the high bits of the top byte beyond bitLen
		excess := byteLen*8 - bitLen
		buf[0] &= byte(0xFF >> uint(excess))
		cand := bignum.NewIntFromBytes(buf)
		if cand.Cmp(upper) < 0 {
			return cand
		}
	}
}
