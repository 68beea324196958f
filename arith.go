// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the digit level arithmetic on vecs. The functions follow
// the usual z = x op y convention where z may alias x or y, and all operands
// must have the same length.

package bitvec

// addVV sets z to x+y mod 2**len(z) with a ripple-carry adder and returns the
// carry out of the most significant digit.
func addVV(z, x, y vec) (c bool) {
	for i := len(z) - 1; i >= 0; i-- {
		xi, yi := x[i], y[i]
		z[i] = (xi != yi) != c
		c = xi && yi || c && (xi != yi)
	}
	return c
}

// subVV sets z to x-y mod 2**len(z) with a ripple-borrow subtractor and returns
// the borrow out of the most significant digit. The borrow is set iff y > x.
func subVV(z, x, y vec) (b bool) {
	for i := len(z) - 1; i >= 0; i-- {
		xi, yi := x[i], y[i]
		z[i] = (b != xi) != yi
		b = !xi && yi || !xi && b || yi && b
	}
	return b
}

// shlVU sets z to x shifted left by s digits. The s least significant digits
// of z are cleared.
func shlVU(z, x vec, s uint) {
	n := uint(len(z))
	if s >= n {
		clear(z)
		return
	}
	copy(z, x[s:])
	clear(z[n-s:])
}

// shrVU sets z to x shifted right by s digits. The s most significant digits
// of z are cleared.
func shrVU(z, x vec, s uint) {
	n := uint(len(z))
	if s >= n {
		clear(z)
		return
	}
	copy(z[s:], x[:n-s])
	clear(z[:s])
}

// mulVV sets z to x*y mod 2**len(z) using shift-and-add: while the multiplicand
// (a copy of x) is not zero, it is added to the product whenever the least
// significant digit of the multiplier (a copy of y) is set, then the multiplier
// is shifted right and the multiplicand left.
//
// Each round shifts a zero into the multiplicand, so the loop ends after at
// most len(z) rounds. mulVV returns the number of rounds.
func mulVV(z, x, y vec) (rounds int) {
	n := len(z)
	t := make(vec, 3*n)
	p, mc, mp := t[:n], t[n:2*n], t[2*n:]
	mc.set(x)
	mp.set(y)
	for mc.nonZero() {
		if mp[n-1] {
			addVV(p, p, mc)
		}
		shrVU(mp, mp, 1)
		shlVU(mc, mc, 1)
		rounds++
	}
	z.set(p)
	return rounds
}

// divVV sets z to x/y by repeated subtraction: y is subtracted from a copy of x
// and the quotient incremented by one until the dividend reaches zero.
//
// This only works if y evenly divides x. A subtraction that borrows means that
// the dividend cannot reach zero exactly and divVV fails with
// ErrInexactDivision instead of wrapping around. z is not modified on error.
func divVV(z, x, y vec) error {
	if !y.nonZero() {
		return ErrDivisionByZero
	}
	n := len(z)
	t := make(vec, 3*n)
	q, r, one := t[:n], t[n:2*n], t[2*n:]
	r.set(x)
	one[n-1] = true
	for r.nonZero() {
		if subVV(r, r, y) {
			return ErrInexactDivision
		}
		addVV(q, q, one)
	}
	z.set(q)
	return nil
}
