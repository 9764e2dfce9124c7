package qs

import (
	"testing"

	"github.com/bfix/qsfactor/bignum"
)

func TestSqrtModP(t *testing.T) {
	primes := []int64{3, 5, 7, 11, 13, 17, 19, 23, 97, 1009, 7919}
	for _, pv := range primes {
		p := bignum.NewInt(pv)
		for a := int64(1); a < pv; a++ {
			n := bignum.NewInt(a)
			if n.Legendre(p) != 1 {
				continue
			}
			r, err := SqrtModP(n, p)
			if err != nil {
				t.Fatalf("SqrtModP(%d,%d): %v", a, pv, err)
			}
			got := r.ModPow(bignum.TWO, p)
			if !got.Equals(n) {
				t.Fatalf("SqrtModP(%d,%d) = %v, but %v^2 mod %d = %v", a, pv, r, r, pv, got)
			}
		}
	}
}

func TestSqrtModPTwo(t *testing.T) {
	r, err := SqrtModP(bignum.NewInt(5), bignum.TWO)
	if err != nil {
		t.Fatal(err)
	}
	if r.Int64() != 1 {
		t.Fatalf("SqrtModP(5,2) = %v, want 1", r)
	}
}
