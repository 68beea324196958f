// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitvec

// vec is an unsigned integer x of the form
//
//   x = x[0]*2^(n-1) + x[1]*2^(n-2) + ... + x[n-2]*2 + x[n-1]
//
// with each digit x[i] in {0, 1} stored as a bool in a slice of length n, most
// significant digit first.
//
// Unlike nat, a vec is never normalized: its length is its width and leading
// zero digits are significant. All functions operating on vecs expect their
// operands to have the same length.
type vec []bool

func (z vec) make(n uint) vec {
	if n <= uint(cap(z)) {
		return z[:n] // reuse z
	}
	return make(vec, n)
}

func (z vec) set(x vec) vec {
	copy(z, x)
	return z
}

// setUint64 sets z to the low len(z) bits of x.
func (z vec) setUint64(x uint64) vec {
	for i := len(z) - 1; i >= 0; i-- {
		z[i] = x&1 != 0
		x >>= 1
	}
	return z
}

// uint64 returns the value of x as r = r<<1 | x[i], starting from the most
// significant digit. len(x) must not exceed 64.
func (x vec) uint64() (r uint64) {
	for _, d := range x {
		r <<= 1
		if d {
			r |= 1
		}
	}
	return r
}

// nonZero reports whether x has at least one digit set.
func (x vec) nonZero() bool {
	for _, d := range x {
		if d {
			return true
		}
	}
	return false
}

// cmp compares x and y digit by digit, starting with the most significant one,
// and returns:
//
//   -1 if x <  y
//    0 if x == y
//   +1 if x >  y
//
func (x vec) cmp(y vec) int {
	for i := range x {
		if x[i] != y[i] {
			if x[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// bitLen returns the length of x in bits, ignoring leading zeros.
func (x vec) bitLen() int {
	for i, d := range x {
		if d {
			return len(x) - i
		}
	}
	return 0
}

// bit returns the value of the i'th bit of x, counting from the least
// significant digit.
func (x vec) bit(i uint) uint {
	if i >= uint(len(x)) {
		return 0
	}
	if x[uint(len(x))-1-i] {
		return 1
	}
	return 0
}
