package qs

import (
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// bitRow packs a GF(2) row as 64-bit words.
type bitRow []uint64

func newBitRow(n int) bitRow {
	return make(bitRow, (n+63)/64)
}

func bitRowFrom(bits8 []byte) bitRow {
	row := newBitRow(len(bits8))
	for i, b := range bits8 {
		if b&1 != 0 {
			row.set(i)
		}
	}
	return row
}

func (r bitRow) get(col int) bool {
	return r[col/64]&(uint64(1)<<uint(col%64)) != 0
}

func (r bitRow) set(col int) {
	r[col/64] |= uint64(1) << uint(col%64)
}

func (r bitRow) xorFrom(colStart int, other bitRow) {
	w := colStart / 64
	for ; w < len(r); w++ {
		r[w] ^= other[w]
	}
}

func (r bitRow) isZero() bool {
	for _, w := range r {
		if w != 0 {
			return false
		}
	}
	return true
}

func (r bitRow) popcount() int {
	c := 0
	for _, w := range r {
		c += bits.OnesCount64(w)
	}
	return c
}

// Dependency is a 0/1 selector over the original relation rows: relation
// i participates iff Dependency[i] is set.
type Dependency []bool

// EliminateGF2 runs Gaussian elimination on the m x n parity matrix M
// (spec.md §4.5), carrying an m x m transform matrix T that starts as
// the identity and accumulates the XOR trace of every row operation
// applied to the i-th original row. It returns every Dependency found:
// for every row i (processed or not) whose M[i] is entirely zero after
// reduction, T[i] is emitted as a Dependency mask over the original
// relations.
//
// The inner loop over rows for one pivot column is independent per row
// and is run as a parallel-for (spec.md §5 point 3, grounded on
// original_source/src/linear.cpp's `#pragma omp parallel for`).
func EliminateGF2(matrix [][]byte, workers int) []Dependency {
	m := len(matrix)
	if m == 0 {
		return nil
	}
	n := len(matrix[0])

	M := make([]bitRow, m)
	T := make([]bitRow, m)
	for i := range matrix {
		M[i] = bitRowFrom(matrix[i])
		T[i] = newBitRow(m)
		T[i].set(i)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	processedRow := make([]bool, m)

	for col := 0; col < n; col++ {
		pivot := -1
		for row := 0; row < m; row++ {
			if !processedRow[row] && M[row].get(col) {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			continue
		}
		processedRow[pivot] = true

		pivotRow := M[pivot]
		pivotT := T[pivot]
		wordCol := col / 64

		var g errgroup.Group
		chunks := partitionRange(int64(m), workers)
		for _, c := range chunks {
			c := c
			g.Go(func() error {
				for row := c.lo; row < c.hi; row++ {
					if int(row) == pivot || !M[row].get(col) {
						continue
					}
					M[row].xorFrom(wordCol, pivotRow)
					T[row].xorFrom(0, pivotT)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	var deps []Dependency
	for i := 0; i < m; i++ {
		if !M[i].isZero() {
			continue
		}
		if T[i].popcount() == 0 {
			continue // trivial (empty) dependency, not useful
		}
		d := make(Dependency, m)
		for j := 0; j < m; j++ {
			d[j] = T[i].get(j)
		}
		deps = append(deps, d)
	}
	return deps
}
