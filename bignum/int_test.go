package bignum

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-2020 Bernd Fix
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"testing"
)

func TestIntFromString(t *testing.T) {
	a, err := NewIntFromString("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "123456789012345678901234567890" {
		t.Fatalf("round-trip failed: %v", a)
	}
	if _, err := NewIntFromString("12x34"); err == nil {
		t.Fatal("expected error for non-digit input")
	}
}

func TestISqrt(t *testing.T) {
	for k := int64(0); k < 2000; k++ {
		sq := NewInt(k * k)
		if r := sq.ISqrt(); r.Int64() != k {
			t.Fatalf("ISqrt(%d^2) = %v, want %d", k, r, k)
		}
		if k == 0 {
			continue
		}
		below := sq.Sub(ONE)
		if r := below.ISqrt(); r.Int64() != k-1 {
			t.Fatalf("ISqrt(%d^2-1) = %v, want %d", k, r, k-1)
		}
	}
}

func TestIsPerfectSquare(t *testing.T) {
	for k := int64(2); k < 500; k++ {
		sq := NewInt(k * k)
		r, ok := sq.IsPerfectSquare()
		if !ok || r.Int64() != k {
			t.Fatalf("IsPerfectSquare(%d^2) = (%v,%v), want (%d,true)", k, r, ok, k)
		}
		if _, ok := sq.Add(ONE).IsPerfectSquare(); ok {
			t.Fatalf("%d^2+1 reported as a perfect square", k)
		}
	}
}

func TestLegendre(t *testing.T) {
	p := NewInt(97)
	residues := 0
	for a := int64(1); a < 97; a++ {
		if NewInt(a).Legendre(p) == 1 {
			residues++
		}
	}
	if residues != 48 {
		t.Fatalf("expected 48 quadratic residues mod 97, got %d", residues)
	}
}

func TestGCD(t *testing.T) {
	a := NewInt(-270)
	b := NewInt(192)
	if g := a.GCD(b); g.Int64() != 6 {
		t.Fatalf("GCD(-270,192) = %v, want 6", g)
	}
}
