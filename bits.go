// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitvec

// Bits is an unsigned integer whose width is chosen at run time. Once set, the
// width of a Bits value never changes.
//
// The zero value of Bits has no width. It takes the width of the operands of
// the first operation for which it is the receiver:
//
//     z := new(Bits).Add(x, y) // z has the width of x and y
//
// Operations on operands of different widths panic with an
// IncompatibleWidthError. Unlike Vector, Bits values share their digits when
// copied by assignment; use Set to make an independent copy.
type Bits struct {
	v vec
}

// NewBits returns a new Bits of the given width set to the low width bits of x.
// It panics with ErrWidth if width is not in [1, MaxWidth].
func NewBits(width uint, x int64) *Bits {
	checkWidth(width)
	z := &Bits{v: make(vec, width)}
	z.v.setUint64(uint64(x))
	return z
}

// Len returns the width of x in bits, 0 for a zero Bits value.
func (x *Bits) Len() uint {
	return uint(len(x.v))
}

// init gives z the width n if it has none yet. It panics if z already has a
// different width.
func (z *Bits) init(n uint) {
	checkWidth(n)
	switch z.Len() {
	case n:
	case 0:
		z.v = z.v.make(n)
		clear(z.v)
	default:
		panic(IncompatibleWidthError{z.Len(), n})
	}
}

// prepare checks that x and y have the same width and gives it to z.
func (z *Bits) prepare(x, y *Bits) {
	n := x.Len()
	if y.Len() != n {
		panic(IncompatibleWidthError{n, y.Len()})
	}
	z.init(n)
}

func (z *Bits) mustHaveWidth() {
	if z.Len() == 0 {
		panic(ErrWidth{"use of Bits without width"})
	}
}

// SetInt64 sets z to the low z.Len() bits of the two's complement
// representation of x and returns z. z must have a width.
func (z *Bits) SetInt64(x int64) *Bits {
	z.mustHaveWidth()
	z.v.setUint64(uint64(x))
	return z
}

// SetUint64 sets z to the low z.Len() bits of x and returns z. z must have a
// width.
func (z *Bits) SetUint64(x uint64) *Bits {
	z.mustHaveWidth()
	z.v.setUint64(x)
	return z
}

// Set sets z to x and returns z. If z has no width, it takes the width of x.
func (z *Bits) Set(x *Bits) *Bits {
	if z != x {
		z.init(x.Len())
		z.v.set(x.v)
	}
	return z
}

// Uint64 returns the value of x. The result is always in [0, 2**x.Len()-1].
func (x *Bits) Uint64() uint64 {
	return x.v.uint64()
}

// Int64 returns the value of x as an int64, with the same caveat as
// Vector.Int64 for 64 bits wide values.
func (x *Bits) Int64() int64 {
	return int64(x.v.uint64())
}

// Bit returns the value of the i'th bit of x, counting from the least
// significant bit. Bit panics if i < 0.
func (x *Bits) Bit(i int) uint {
	if i < 0 {
		panic("negative bit index")
	}
	return x.v.bit(uint(i))
}

// BitLen returns the length of the value of x in bits, ignoring leading zero
// digits.
func (x *Bits) BitLen() int {
	return x.v.bitLen()
}

// IsZero reports whether x is 0.
func (x *Bits) IsZero() bool {
	return !x.v.nonZero()
}

// Add sets z to the sum x+y modulo 2**x.Len() and returns z.
func (z *Bits) Add(x, y *Bits) *Bits {
	z, _ = z.AddCarry(x, y)
	return z
}

// AddCarry sets z to the sum x+y modulo 2**x.Len() and returns z and the carry
// out of the most significant digit.
func (z *Bits) AddCarry(x, y *Bits) (*Bits, bool) {
	z.prepare(x, y)
	c := addVV(z.v, x.v, y.v)
	return z, c
}

// Sub sets z to the difference x-y modulo 2**x.Len() and returns z.
func (z *Bits) Sub(x, y *Bits) *Bits {
	z, _ = z.SubBorrow(x, y)
	return z
}

// SubBorrow sets z to the difference x-y modulo 2**x.Len() and returns z and
// the borrow out of the most significant digit.
func (z *Bits) SubBorrow(x, y *Bits) (*Bits, bool) {
	z.prepare(x, y)
	b := subVV(z.v, x.v, y.v)
	return z, b
}

// Mul sets z to the product x×y modulo 2**x.Len() and returns z.
func (z *Bits) Mul(x, y *Bits) *Bits {
	z.prepare(x, y)
	mulVV(z.v, x.v, y.v)
	return z
}

// QuoExact sets z to the quotient x/y and returns z. See Vector.QuoExact.
func (z *Bits) QuoExact(x, y *Bits) (*Bits, error) {
	z.prepare(x, y)
	err := divVV(z.v, x.v, y.v)
	return z, err
}

// Lsh sets z to x shifted left by n bits and returns z.
func (z *Bits) Lsh(x *Bits, n uint) *Bits {
	z.init(x.Len())
	shlVU(z.v, x.v, n)
	return z
}

// Rsh sets z to x shifted right by n bits and returns z.
func (z *Bits) Rsh(x *Bits, n uint) *Bits {
	z.init(x.Len())
	shrVU(z.v, x.v, n)
	return z
}

// Cmp compares x and y and returns -1, 0 or +1 depending on whether x is less
// than, equal to or greater than y. It panics with an IncompatibleWidthError if
// x and y have different widths.
func (x *Bits) Cmp(y *Bits) int {
	if x.Len() != y.Len() {
		panic(IncompatibleWidthError{x.Len(), y.Len()})
	}
	return x.v.cmp(y.v)
}

// Equal reports whether x and y have the same width and the same digits.
func (x *Bits) Equal(y *Bits) bool {
	return x.Len() == y.Len() && x.v.cmp(y.v) == 0
}
