//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
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

// Package bignum wraps math/big.Int with the arithmetic the quadratic
// sieve needs: signed add/sub/mul/div/mod, gcd, integer square root,
// modular exponentiation and the Legendre symbol.
package bignum

import (
	"errors"
	"math/big"
)

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
	// THREE as number "3"
	THREE = NewInt(3)
	// FOUR as number "4"
	FOUR = NewInt(4)
)

// Int is an integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a decimal string representation into an Int.
// It reports an error instead of panicking so callers validating
// untrusted input (the CLI front-end) can surface ErrInputInvalid.
func NewIntFromString(s string) (*Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.New("not a decimal integer")
	}
	return &Int{v: v}, nil
}

// NewIntFromBytes converts a binary array into an unsigned integer.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// Bytes returns a byte array representation of the integer.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// String converts an Int to a string representation.
func (i *Int) String() string {
	return i.v.String()
}

// Float returns a big.Float view of i, used where transcendental
// functions (logarithms) are required.
func (i *Int) Float() *big.Float {
	return new(big.Float).SetInt(i.v)
}

// Add adds two Ints.
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub subtracts two Ints.
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul multiplies two Ints.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div divides two Ints (truncated, no fraction).
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// DivMod returns the quotient and modulus of two Ints.
func (i *Int) DivMod(j *Int) (*Int, *Int) {
	q, m := new(big.Int), new(big.Int)
	q.DivMod(i.v, j.v, m)
	return &Int{v: q}, &Int{v: m}
}

// Mod returns the (always non-negative) modulus of two Ints.
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// BitLen returns the number of bits in an Int.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Sign returns the sign of an Int: -1, 0 or +1.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// Cmp compares two Ints: -1, 0 or +1.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals checks if two Ints are equal.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// GCD returns the greatest common divisor of two Ints (always >= 0).
func (i *Int) GCD(j *Int) *Int {
	a, b := i.Abs(), j.Abs()
	return &Int{v: new(big.Int).GCD(nil, nil, a.v, b.v)}
}

// Pow raises an Int to the power n (n >= 0).
func (i *Int) Pow(n int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(int64(n)), nil)}
}

// ModPow returns the modular exponentiation of an Int as (i^n mod m).
func (i *Int) ModPow(n, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, n.v, m.v)}
}

// Bit returns the bit value of an Int at a given position.
func (i *Int) Bit(n int) uint {
	return i.v.Bit(n)
}

// Rsh returns the right-shifted value of an Int.
func (i *Int) Rsh(n uint) *Int {
	return &Int{v: new(big.Int).Rsh(i.v, n)}
}

// Abs returns the unsigned value of an Int.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// Neg flips the sign of an Int.
func (i *Int) Neg() *Int {
	return &Int{v: new(big.Int).Neg(i.v)}
}

// Int64 returns the int64 value of an Int. Callers must ensure the
// value actually fits; the sieve engine only calls this for factor-base
// primes, which are bounded well under the machine word width.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// Uint64 returns the uint64 value of an Int.
func (i *Int) Uint64() uint64 {
	return i.v.Uint64()
}

// ISqrt returns the integer square root (floor) of a non-negative Int.
// Uses big.Int's Newton's-method Sqrt, which is exact.
func (i *Int) ISqrt() *Int {
	return &Int{v: new(big.Int).Sqrt(i.v)}
}

// IsPerfectSquare reports whether i is the square of an integer and, if
// so, returns that integer.
func (i *Int) IsPerfectSquare() (*Int, bool) {
	if i.Sign() < 0 {
		return nil, false
	}
	r := i.ISqrt()
	if r.Mul(r).Equals(i) {
		return r, true
	}
	return nil, false
}

// Legendre computes the Legendre symbol (i|p) for an odd prime p: +1 if
// i is a non-zero quadratic residue mod p, -1 if it is a non-residue,
// and 0 if p divides i.
func (i *Int) Legendre(p *Int) int {
	r := i.Mod(p)
	if r.Equals(ZERO) {
		return 0
	}
	k := p.Sub(ONE).Div(TWO)
	x := r.ModPow(k, p)
	if x.Equals(ONE) {
		return 1
	}
	return -1
}
