package qs

import "github.com/bfix/qsfactor/bignum"

// FactorBase is the ordered sequence of small primes p <= B for which N
// is a quadratic residue, plus 2. It is built once per run and read-only
// thereafter.
type FactorBase struct {
	primes []*bignum.Int
}

// NumPrimes returns the number of primes in the factor base.
func (fb *FactorBase) NumPrimes() int {
	return len(fb.primes)
}

// Prime returns the i-th prime in the factor base.
func (fb *FactorBase) Prime(i int) *bignum.Int {
	return fb.primes[i]
}

// BuildFactorBase runs Eratosthenes up to bound, classifying each prime
// per spec.md §4.1:
//
//   - 2 is always included.
//   - odd prime p with Legendre(n|p) == 1 goes into the factor base.
//   - odd prime p with Legendre(n|p) == 0 and p|n is an immediate small
//     divisor of n (an EarlyDivisor), short-circuiting the pipeline.
//   - odd prime p with Legendre(n|p) == 0 and p does not divide n, or
//     Legendre(n|p) == -1, is skipped; it can never divide Q(x).
func BuildFactorBase(n *bignum.Int, bound int64) (fb *FactorBase, earlyDivisors []*bignum.Int) {
	sieve := eratosthenes(bound)
	fb = &FactorBase{primes: []*bignum.Int{bignum.TWO}}
	for _, p := range sieve {
		if p == 2 {
			continue
		}
		bp := bignum.NewInt(p)
		switch n.Legendre(bp) {
		case 1:
			fb.primes = append(fb.primes, bp)
		case 0:
			if n.Mod(bp).Equals(bignum.ZERO) {
				earlyDivisors = append(earlyDivisors, bp)
			}
			// else: p shares no factor with n; it can't divide any
			// Q(x), so it is simply skipped.
		}
		// Legendre == -1: p is a quadratic non-residue, skipped.
	}
	return fb, earlyDivisors
}

// eratosthenes returns all primes p with 2 <= p <= bound.
func eratosthenes(bound int64) []int64 {
	if bound < 2 {
		return nil
	}
	isComposite := make([]bool, bound+1)
	var primes []int64
	for p := int64(2); p <= bound; p++ {
		if isComposite[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= bound; m += p {
			isComposite[m] = true
		}
	}
	return primes
}
