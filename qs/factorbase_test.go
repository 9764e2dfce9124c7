package qs

import (
	"testing"

	"github.com/bfix/qsfactor/bignum"
)

func TestBuildFactorBaseLegendre(t *testing.T) {
	n := bignum.NewInt(8051) // 83 * 97
	fb, early := BuildFactorBase(n, 200)
	if len(early) != 0 {
		t.Fatalf("unexpected early divisors for 8051: %v", early)
	}
	if fb.Prime(0).Int64() != 2 {
		t.Fatalf("factor base must start with 2, got %v", fb.Prime(0))
	}
	for i := 1; i < fb.NumPrimes(); i++ {
		p := fb.Prime(i)
		if n.Legendre(p) != 1 {
			t.Fatalf("prime %v in factor base has Legendre(N|p) != 1", p)
		}
	}
}

func TestBuildFactorBaseEarlyDivisor(t *testing.T) {
	// 15 = 3*5; with bound 200, both 3 and 5 are found as early
	// divisors (Legendre(15|3)=0 and 3|15; likewise for 5).
	n := bignum.NewInt(15)
	_, early := BuildFactorBase(n, 200)
	found := map[int64]bool{}
	for _, e := range early {
		found[e.Int64()] = true
	}
	if !found[3] || !found[5] {
		t.Fatalf("expected early divisors {3,5}, got %v", early)
	}
}
