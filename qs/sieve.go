//********************************************************************/
//*    PGMID.        GENERIC SIEVER.                                 */
//*    REMARKS.      Logarithmic residual sieve over Q(x)=x^2-N,      */
//*                  re-verified by full trial division (spec.md §4.4)*/
//********************************************************************/

package qs

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bfix/qsfactor/bignum"
)

// candidateEpsilon accommodates float drift in the log-scale residual,
// per spec.md §4.4 step 4.
const candidateEpsilon = 0.1

// modRoot holds one arithmetic progression to sieve with: all x with
// x = r (mod p) satisfy p | Q(x).
type modRoot struct {
	p    *bignum.Int
	pInt int64
	r    int64 // 0 <= r < pInt
}

// Siever sieves contiguous windows of Q(x) = x^2 - N for B-smooth
// values, per spec.md §4.4.
type Siever struct {
	n       *bignum.Int
	fb      *FactorBase
	roots   []modRoot // both roots of every odd prime in fb
	workers int
}

// NewSiever precomputes the Tonelli-Shanks roots for every odd prime in
// fb (spec.md §4: "Modular-roots subroutine"); the roots are read-only
// and reused across every sieve window.
func NewSiever(n *bignum.Int, fb *FactorBase, workers int) (*Siever, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	si := &Siever{n: n, fb: fb, workers: workers}
	for j := 1; j < fb.NumPrimes(); j++ {
		p := fb.Prime(j)
		r, err := SqrtModP(n, p)
		if err != nil {
			return nil, err
		}
		pInt := p.Int64()
		r1 := r.Int64() % pInt
		r2 := (pInt - r1) % pInt
		si.roots = append(si.roots, modRoot{p: p, pInt: pInt, r: r1})
		if r2 != r1 {
			si.roots = append(si.roots, modRoot{p: p, pInt: pInt, r: r2})
		}
	}
	return si, nil
}

// SieveWindow sieves [x0, x0+length) and returns the Relations it finds.
func (si *Siever) SieveWindow(x0 *bignum.Int, length int64) []*Relation {
	logs := make([]float64, length)
	residual := make([]*bignum.Int, length)

	chunks := partitionRange(length, si.workers)

	// Step 1-2: compute Q_i and the initial log residual, in parallel
	// over disjoint index ranges (spec.md §5 point 1).
	var g errgroup.Group
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			for i := c.lo; i < c.hi; i++ {
				x := x0.Add(bignum.NewInt(i))
				q := x.Mul(x).Sub(si.n)
				abs := q.Abs()
				residual[i] = abs
				logs[i] = logAbs(abs)
			}
			return nil
		})
	}
	_ = g.Wait()

	// Step 3: sieve with each factor-base prime. Parallelized by
	// partitioning the index range rather than the prime list, so two
	// primes never race to update the same logs[i] (spec.md §5 point
	// 2, §9: "the design may partition indices among threads instead
	// of primes").
	ln2 := math.Log(2)
	r2 := si.n.Mod(bignum.TWO).Int64() // single root of x = N (mod 2)

	g = errgroup.Group{}
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			stripInRange(residual, logs, c, x0, 2, r2, ln2)
			for _, root := range si.roots {
				lnp := math.Log(float64(root.pInt))
				stripInRange(residual, logs, c, x0, root.pInt, root.r, lnp)
			}
			return nil
		})
	}
	_ = g.Wait()

	// Step 4-5: collect candidates and re-verify by full trial
	// division against the factor base.
	var out []*Relation
	for i := int64(0); i < length; i++ {
		if logs[i] >= candidateEpsilon {
			continue
		}
		x := x0.Add(bignum.NewInt(i))
		if rel, ok := NewRelation(x, si.n, si.fb); ok {
			out = append(out, rel)
		}
	}
	return out
}

// stripInRange strips every power of the prime pInt from residual[i]
// for i in the arithmetic progression i = r - x0 (mod pInt), restricted
// to the chunk's index range, subtracting lnP from logs[i] per power
// stripped.
func stripInRange(residual []*bignum.Int, logs []float64, c rangeChunk, x0 *bignum.Int, pInt, r int64, lnP float64) {
	x0modp := x0.Mod(bignum.NewInt(pInt)).Int64()
	offset := ((r-x0modp)%pInt + pInt) % pInt
	first := c.lo + (((offset-c.lo)%pInt)+pInt)%pInt
	p := bignum.NewInt(pInt)
	for pos := first; pos < c.hi; pos += pInt {
		if pos < c.lo {
			continue
		}
		for residual[pos].Sign() != 0 && residual[pos].Mod(p).Equals(bignum.ZERO) {
			residual[pos] = residual[pos].Div(p)
			logs[pos] -= lnP
		}
	}
}

func logAbs(v *bignum.Int) float64 {
	if v.Sign() == 0 {
		return math.Inf(-1)
	}
	// v.Float() gives a big.Float view of v with enough mantissa bits to
	// stay accurate regardless of v's bit length (spec.md §4.4's Q(x)
	// routinely exceeds int64 once N approaches the ~100-digit range),
	// so downcasting that to float64 before taking the log keeps ln(v)
	// accurate to full double precision instead of the coarse
	// bits*ln2 estimate a bit-length shortcut would give.
	f, _ := v.Float().Float64()
	return math.Log(math.Abs(f))
}

type rangeChunk struct{ lo, hi int64 }

func partitionRange(length int64, workers int) []rangeChunk {
	if workers < 1 {
		workers = 1
	}
	if int64(workers) > length {
		workers = int(length)
	}
	if workers < 1 {
		workers = 1
	}
	chunks := make([]rangeChunk, 0, workers)
	step := length / int64(workers)
	if step == 0 {
		step = 1
	}
	lo := int64(0)
	for w := 0; w < workers && lo < length; w++ {
		hi := lo + step
		if w == workers-1 || hi > length {
			hi = length
		}
		chunks = append(chunks, rangeChunk{lo: lo, hi: hi})
		lo = hi
	}
	return chunks
}
