package qs

import "testing"

// textbookExponents is the classic worked example (spec.md §8): seven
// relations' exponent vectors over the factor base
// {2,3,5,7,11,13,17,19}, before reduction mod 2.
var textbookExponents = [][]int{
	{0, 0, 5, 0, 0, 0, 0, 1},
	{2, 0, 1, 0, 1, 1, 0, 1},
	{0, 2, 0, 0, 0, 3, 0, 0},
	{6, 2, 0, 0, 1, 0, 0, 0},
	{1, 0, 0, 0, 0, 0, 0, 1},
	{5, 0, 1, 0, 0, 2, 0, 0},
	{0, 0, 2, 2, 0, 1, 0, 0},
}

func mod2Matrix(rows [][]int) [][]byte {
	m := make([][]byte, len(rows))
	for i, row := range rows {
		m[i] = make([]byte, len(row))
		for j, v := range row {
			m[i][j] = byte(v & 1)
		}
	}
	return m
}

func xorRows(rows [][]byte, dep Dependency) []byte {
	n := len(rows[0])
	out := make([]byte, n)
	for i, used := range dep {
		if !used {
			continue
		}
		for j := 0; j < n; j++ {
			out[j] ^= rows[i][j]
		}
	}
	return out
}

func TestEliminateGF2Textbook(t *testing.T) {
	matrix := mod2Matrix(textbookExponents)
	deps := EliminateGF2(matrix, 2)
	if len(deps) == 0 {
		t.Fatal("expected at least one dependency")
	}
	for _, dep := range deps {
		used := 0
		for _, b := range dep {
			if b {
				used++
			}
		}
		if used == 0 {
			t.Fatal("dependency selector must be non-empty")
		}
		sum := xorRows(matrix, dep)
		for j, b := range sum {
			if b != 0 {
				t.Fatalf("dependency %v does not XOR to zero at column %d", dep, j)
			}
		}
	}
}

func TestEliminateGF2RoundTrip(t *testing.T) {
	// A random-ish matrix with a planted dependency: row 2 = row 0 XOR row 1.
	matrix := [][]byte{
		{1, 0, 1, 1, 0},
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
	}
	deps := EliminateGF2(matrix, 1)
	if len(deps) == 0 {
		t.Fatal("expected at least one dependency in a 4x5 matrix")
	}
	for _, dep := range deps {
		sum := xorRows(matrix, dep)
		for j, b := range sum {
			if b != 0 {
				t.Fatalf("dependency %v does not XOR to zero at column %d", dep, j)
			}
		}
	}
}

func TestEliminateGF2NoDependency(t *testing.T) {
	// Identity-like matrix: every row has a unique pivot, no zero rows.
	matrix := [][]byte{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	deps := EliminateGF2(matrix, 2)
	if len(deps) != 0 {
		t.Fatalf("expected no dependencies, got %v", deps)
	}
}
