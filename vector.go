// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitvec

// A Vector is an unsigned integer of W.Len() bits stored as an array of
// digits, most significant digit first. The zero value of a Vector is 0.
//
// Vectors are plain values: they can be copied by assignment and compared with
// ==. Using a Vector whose width type reports a width outside [1, MaxWidth]
// panics with ErrWidth.
type Vector[W Width] struct {
	// only the first W.Len() digits are used, the others are always false.
	d [MaxWidth]bool
}

// New returns a new Vector set to the low W.Len() bits of x.
func New[W Width](x int64) *Vector[W] {
	return new(Vector[W]).SetInt64(x)
}

func (x *Vector[W]) vec() vec {
	return x.d[:widthOf[W]()]
}

// Len returns the width of x in bits.
func (x *Vector[W]) Len() uint {
	return widthOf[W]()
}

// SetInt64 sets z to the low W.Len() bits of the two's complement
// representation of x and returns z.
func (z *Vector[W]) SetInt64(x int64) *Vector[W] {
	z.vec().setUint64(uint64(x))
	return z
}

// SetUint64 sets z to the low W.Len() bits of x and returns z.
func (z *Vector[W]) SetUint64(x uint64) *Vector[W] {
	z.vec().setUint64(x)
	return z
}

// Set sets z to x and returns z.
func (z *Vector[W]) Set(x *Vector[W]) *Vector[W] {
	if z != x {
		*z = *x
	}
	return z
}

// Uint64 returns the value of x. The result is always in [0, 2**W.Len()-1].
func (x *Vector[W]) Uint64() uint64 {
	return x.vec().uint64()
}

// Int64 returns the value of x as an int64. The most significant digit is not
// treated as a sign bit, so the result is non-negative unless W.Len() is 64
// and that digit is set, in which case the bit pattern is reinterpreted.
func (x *Vector[W]) Int64() int64 {
	return int64(x.vec().uint64())
}

// Bit returns the value of the i'th bit of x, counting from the least
// significant bit. Bits beyond the width of x are 0. Bit panics if i < 0.
func (x *Vector[W]) Bit(i int) uint {
	if i < 0 {
		panic("negative bit index")
	}
	return x.vec().bit(uint(i))
}

// BitLen returns the length of the value of x in bits, ignoring leading zero
// digits. The bit length of 0 is 0.
func (x *Vector[W]) BitLen() int {
	return x.vec().bitLen()
}

// IsZero reports whether x is 0.
func (x *Vector[W]) IsZero() bool {
	return !x.vec().nonZero()
}

// Add sets z to the sum x+y modulo 2**W.Len() and returns z.
func (z *Vector[W]) Add(x, y *Vector[W]) *Vector[W] {
	addVV(z.vec(), x.vec(), y.vec())
	return z
}

// AddCarry sets z to the sum x+y modulo 2**W.Len() and returns z and the carry
// out of the most significant digit. The carry is set iff the true sum
// does not fit in W.Len() bits.
func (z *Vector[W]) AddCarry(x, y *Vector[W]) (*Vector[W], bool) {
	c := addVV(z.vec(), x.vec(), y.vec())
	return z, c
}

// Sub sets z to the difference x-y modulo 2**W.Len() and returns z.
func (z *Vector[W]) Sub(x, y *Vector[W]) *Vector[W] {
	subVV(z.vec(), x.vec(), y.vec())
	return z
}

// SubBorrow sets z to the difference x-y modulo 2**W.Len() and returns z and
// the borrow out of the most significant digit. The borrow is set iff y > x.
func (z *Vector[W]) SubBorrow(x, y *Vector[W]) (*Vector[W], bool) {
	b := subVV(z.vec(), x.vec(), y.vec())
	return z, b
}

// Mul sets z to the product x×y modulo 2**W.Len() and returns z.
func (z *Vector[W]) Mul(x, y *Vector[W]) *Vector[W] {
	mulVV(z.vec(), x.vec(), y.vec())
	return z
}

// QuoExact sets z to the quotient x/y and returns z.
//
// The quotient is computed by repeatedly subtracting y from x, so it is only
// defined when y evenly divides x. QuoExact returns ErrDivisionByZero if y is 0
// and ErrInexactDivision if x is not a multiple of y. In both cases z is left
// unchanged. The cost is proportional to the quotient.
func (z *Vector[W]) QuoExact(x, y *Vector[W]) (*Vector[W], error) {
	err := divVV(z.vec(), x.vec(), y.vec())
	return z, err
}

// Lsh sets z to x shifted left by n bits and returns z. The n low bits are
// cleared and the n high bits of x are lost.
func (z *Vector[W]) Lsh(x *Vector[W], n uint) *Vector[W] {
	shlVU(z.vec(), x.vec(), n)
	return z
}

// Rsh sets z to x shifted right by n bits and returns z. The n high bits are
// cleared.
func (z *Vector[W]) Rsh(x *Vector[W], n uint) *Vector[W] {
	shrVU(z.vec(), x.vec(), n)
	return z
}

// Cmp compares x and y and returns:
//
//   -1 if x <  y
//    0 if x == y
//   +1 if x >  y
//
func (x *Vector[W]) Cmp(y *Vector[W]) int {
	return x.vec().cmp(y.vec())
}

// Equal reports whether all digits of x and y match.
func (x *Vector[W]) Equal(y *Vector[W]) bool {
	return x.vec().cmp(y.vec()) == 0
}
