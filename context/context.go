// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides fixed-width contexts for bitvec.Bits values.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *bitvec.Bits
//
// create a new bitvec.Bits with c's width set to the value of x.
//
// Operators that set a receiver z to function of other arguments like:
//
//    func (c *Context) UnaryOp(z, x *bitvec.Bits) *bitvec.Bits
//    func (c *Context) BinaryOp(z, x, y *bitvec.Bits) *bitvec.Bits
//
// set z to the result of z.Op(args) and return z.
//
// A Context catches errors: if an operation is applied to values whose width
// differs from the context's, or if QuoExact fails, the operation silently
// succeeds with an undefined result. Further operations with the context will
// be no-ops (they simply return the receiver z) until (*Context).Err is called
// to check for errors.
//
// Arithmetic overflow is not an error. The carry or borrow out of the last
// addition or subtraction is available from (*Context).Carry.
package context

import (
	"errors"

	"github.com/db47h/bitvec"
)

const handleErrors = true

// A Context is a wrapper around Bits that facilitates management of widths and
// error handling.
type Context struct {
	width uint
	carry bool
	err   error
}

// New creates a new context for values of the given width. It panics with
// bitvec.ErrWidth if width is not a valid width.
func New(width uint) *Context {
	if err := bitvec.ValidWidth(width); err != nil {
		panic(err)
	}
	return &Context{width: width}
}

// Width returns the width of the values handled by c.
func (c *Context) Width() uint {
	return c.width
}

// New returns a new bitvec.Bits with value 0 and width set to c's width.
func (c *Context) New() *bitvec.Bits {
	return bitvec.NewBits(c.width, 0)
}

// NewInt64 returns a new *bitvec.Bits set to the low bits of x.
func (c *Context) NewInt64(x int64) *bitvec.Bits {
	return bitvec.NewBits(c.width, x)
}

// NewUint64 returns a new *bitvec.Bits set to the low bits of x.
func (c *Context) NewUint64(x uint64) *bitvec.Bits {
	return c.New().SetUint64(x)
}

// NewString returns a new Bits with the value of the decimal integer s and a
// boolean indicating success. See (*bitvec.Bits).SetString.
func (c *Context) NewString(s string) (b *bitvec.Bits, success bool) {
	return c.New().SetString(s)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Carry returns the carry or borrow out of the most recent Add or Sub.
func (c *Context) Carry() bool {
	return c.carry
}

// check records an IncompatibleWidthError if one of xs does not have c's
// width. A zero width receiver is accepted since it takes the operands' width.
func (c *Context) check(z *bitvec.Bits, xs ...*bitvec.Bits) bool {
	if z != nil {
		if n := z.Len(); n != 0 && n != c.width {
			c.err = bitvec.IncompatibleWidthError{X: c.width, Y: n}
			return false
		}
	}
	for _, x := range xs {
		if x.Len() != c.width {
			c.err = bitvec.IncompatibleWidthError{X: c.width, Y: x.Len()}
			return false
		}
	}
	return true
}

// catch turns bitvec panics into c's error state. It must be deferred.
func (c *Context) catch(z *bitvec.Bits, r **bitvec.Bits) {
	if p := recover(); p != nil {
		err, ok := p.(error)
		var we bitvec.IncompatibleWidthError
		var ew bitvec.ErrWidth
		if !ok || !errors.As(err, &we) && !errors.As(err, &ew) {
			panic(p)
		}
		c.err = err
		*r = z
	}
}

// Set sets z to x and returns z.
func (c *Context) Set(z, x *bitvec.Bits) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x) {
			return z
		}
		defer c.catch(z, &r)
	}
	return z.Set(x)
}

// Add sets z to the sum x+y and returns z. The carry is available from
// c.Carry.
func (c *Context) Add(z, x, y *bitvec.Bits) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x, y) {
			return z
		}
		defer c.catch(z, &r)
	}
	z, c.carry = z.AddCarry(x, y)
	return z
}

// Sub sets z to the difference x-y and returns z. The borrow is available from
// c.Carry.
func (c *Context) Sub(z, x, y *bitvec.Bits) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x, y) {
			return z
		}
		defer c.catch(z, &r)
	}
	z, c.carry = z.SubBorrow(x, y)
	return z
}

// Mul sets z to the product x×y and returns z.
func (c *Context) Mul(z, x, y *bitvec.Bits) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x, y) {
			return z
		}
		defer c.catch(z, &r)
	}
	return z.Mul(x, y)
}

// QuoExact sets z to the quotient x/y and returns z. If y does not evenly
// divide x, the error is recorded and z is left unchanged.
func (c *Context) QuoExact(z, x, y *bitvec.Bits) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x, y) {
			return z
		}
		defer c.catch(z, &r)
	}
	z, err := z.QuoExact(x, y)
	if err != nil {
		c.err = err
	}
	return z
}

// Lsh sets z to x shifted left by n bits and returns z.
func (c *Context) Lsh(z, x *bitvec.Bits, n uint) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x) {
			return z
		}
		defer c.catch(z, &r)
	}
	return z.Lsh(x, n)
}

// Rsh sets z to x shifted right by n bits and returns z.
func (c *Context) Rsh(z, x *bitvec.Bits, n uint) (r *bitvec.Bits) {
	if handleErrors {
		if c.err != nil || !c.check(z, x) {
			return z
		}
		defer c.catch(z, &r)
	}
	return z.Rsh(x, n)
}

// Cmp compares x and y like x.Cmp(y). If c is in an error state or x and y do
// not have c's width, the result is 0.
func (c *Context) Cmp(x, y *bitvec.Bits) int {
	if c.err != nil || !c.check(nil, x, y) {
		return 0
	}
	return x.Cmp(y)
}
