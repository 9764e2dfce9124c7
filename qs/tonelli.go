package qs

import (
	"fmt"

	"github.com/bfix/qsfactor/bignum"
)

// SqrtModP computes one square root r of n modulo the odd prime p, with
// r^2 = n (mod p); the other root is p-r. Uses the Shanks-Tonelli
// algorithm (see http://en.wikipedia.org/wiki/Shanks%E2%80%93Tonelli_algorithm).
//
// For p == 2 the root is simply n mod 2, matching spec.md §4.3.
func SqrtModP(n, p *bignum.Int) (*bignum.Int, error) {
	if p.Equals(bignum.TWO) {
		return n.Mod(bignum.TWO), nil
	}
	if n.Legendre(p) != 1 {
		return nil, fmt.Errorf("%v is not a quadratic residue mod %v", n, p)
	}

	// 1. Factor out powers of 2 from p-1: p-1 = Q*2^S with Q odd.
	S := 0
	Q := p.Sub(bignum.ONE)
	for Q.Bit(0) == 0 {
		S++
		Q = Q.Rsh(1)
	}

	// 2. Find a quadratic non-residue z by linear search.
	z := bignum.TWO
	for z.Legendre(p) != -1 {
		z = z.Add(bignum.ONE)
	}

	// 3. c = z^Q, R = n^((Q+1)/2), t = n^Q, M = S.
	c := z.ModPow(Q, p)
	R := n.ModPow(Q.Add(bignum.ONE).Div(bignum.TWO), p)
	t := n.ModPow(Q, p)
	M := S

	// 4. Loop until t == 1.
	for !t.Mod(p).Equals(bignum.ONE) {
		// find the smallest i, 0 < i < M, with t^(2^i) = 1
		for i := 1; i < M; i++ {
			if t.ModPow(bignum.TWO.Pow(i), p).Equals(bignum.ONE) {
				b := c.ModPow(bignum.TWO.Pow(M-i-1), p)
				R = R.Mul(b).Mod(p)
				t = t.Mul(b.Pow(2)).Mod(p)
				c = b.ModPow(bignum.TWO, p)
				M = i
				break
			}
		}
	}
	return R, nil
}
