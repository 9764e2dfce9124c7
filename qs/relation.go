package qs

import (
	"sync"

	"github.com/bfix/qsfactor/bignum"
)

// Relation records one sieve hit: x, Q = x^2 - N (which may be
// negative), and Q's parity exponent vector over the factor base. It is
// produced once by the sieve and never mutated afterwards.
type Relation struct {
	X         *bignum.Int
	Q         *bignum.Int
	Exponents []byte // len == fb.NumPrimes()+1; [0] is the sign bit
}

// factorOverBase fully trial-divides |q| by the factor base, returning
// the parity exponent vector (sign bit first) and the unfactored
// residue. A residue of 1 means q is B-smooth over fb.
func factorOverBase(fb *FactorBase, q *bignum.Int) (exponents []byte, residue *bignum.Int) {
	exponents = make([]byte, fb.NumPrimes()+1)
	residue = q.Abs()
	if q.Sign() < 0 {
		exponents[0] = 1
	}
	for j := 0; j < fb.NumPrimes(); j++ {
		p := fb.Prime(j)
		count := 0
		for residue.Sign() != 0 && residue.Mod(p).Equals(bignum.ZERO) {
			residue = residue.Div(p)
			count++
		}
		exponents[1+j] = byte(count & 1)
	}
	return exponents, residue
}

// NewRelation builds a Relation for x against N, re-verifying
// smoothness by full trial division against fb (spec.md §4.4 step 5).
// It reports ok=false when Q is not B-smooth, and also when Q == 0
// (spec.md §4.4 edge case: a trivial "relation" that carries no
// information is skipped).
func NewRelation(x, n *bignum.Int, fb *FactorBase) (rel *Relation, ok bool) {
	q := x.Mul(x).Sub(n)
	if q.Sign() == 0 {
		return nil, false
	}
	exponents, residue := factorOverBase(fb, q)
	if !residue.Equals(bignum.ONE) {
		return nil, false
	}
	return &Relation{X: x, Q: q, Exponents: exponents}, true
}

// Store is the append-only sequence of Relations accumulated across
// sieve windows. Appends are safe for concurrent use by multiple sieve
// worker goroutines (spec.md §5: "Relations buffer (append with a
// write lock or per-thread staging and merge)").
type Store struct {
	mu   sync.Mutex
	rows []*Relation
}

// NewStore returns an empty relation store.
func NewStore() *Store {
	return &Store{}
}

// Add appends relations found in one sieve window.
func (s *Store) Add(rels ...*Relation) {
	if len(rels) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rels...)
}

// Len returns the number of relations currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// Snapshot returns a copy of the relations collected so far. Relation
// order is append order (window by window, ascending x within a window)
// and carries no semantic meaning; the linear-algebra layer relies on
// nothing about it beyond a stable row index within one snapshot.
func (s *Store) Snapshot() []*Relation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Relation, len(s.rows))
	copy(out, s.rows)
	return out
}
