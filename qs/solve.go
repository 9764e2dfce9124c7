package qs

import "github.com/bfix/qsfactor/bignum"

// SolveDependency turns one Dependency into a factor candidate f of n,
// per spec.md §4.6: B = (prod x_i) mod n over the selected relations,
// A = isqrt(prod Q_i) (exact, since the product is a perfect square by
// construction), then try gcd(B-A, n) and fall back to gcd(B+A, n) if
// the first try is trivial. Returns (nil, false) if both tries are
// trivial; the caller should move on to the next dependency.
func SolveDependency(rels []*Relation, d Dependency, n *bignum.Int) (*bignum.Int, bool) {
	B := bignum.ONE
	qProduct := bignum.ONE
	for i, used := range d {
		if !used {
			continue
		}
		B = B.Mul(rels[i].X).Mod(n)
		qProduct = qProduct.Mul(rels[i].Q.Abs())
	}
	A, exact := qProduct.IsPerfectSquare()
	if !exact {
		// Should not happen given a valid dependency (spec.md §8:
		// "the product over selected relations of r.Q is a perfect
		// square"); fall back to the floor root rather than panicking.
		A = qProduct.ISqrt()
	}

	if f := B.Sub(A).GCD(n); !f.Equals(bignum.ONE) && !f.Equals(n) {
		return f, true
	}
	if f := B.Add(A).GCD(n); !f.Equals(bignum.ONE) && !f.Equals(n) {
		return f, true
	}
	return nil, false
}
