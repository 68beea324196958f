// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bitvec implements fixed-width unsigned binary integers stored as
explicit arrays of bits.

All arithmetic is carried out digit by digit with full-adder and
full-subtractor logic: addition and subtraction ripple a single carry or borrow
from the least significant digit to the most significant one, multiplication is
a shift-and-add loop over those adders and division is repeated subtraction.
Native integer arithmetic is never used on the value itself; native integers
only appear at the conversion boundary.

Two representations are provided:

    Vector[W]   width fixed by the type parameter W (compile-time checked)
    Bits        width fixed when the value is created (run-time checked)

The width of a Vector is part of its type, so mixing a Vector[W8] with a
Vector[W16] does not compile. The predeclared widths are W1, W2, W4, W8, W16,
W32 and W64. Any other width between 1 and MaxWidth can be declared by client
code:

    type W12 struct{}

    func (W12) Len() uint { return 12 }

The zero value of a Vector denotes 0:

    var x bitvec.Vector[bitvec.W16] // x is 0

New values are also created with New:

    x := bitvec.New[bitvec.W16](8)  // x is 8

Operations are methods of the form

    func (z *Vector[W]) Binary(x, y *Vector[W]) *Vector[W]  // z = x binary y
    func (x *Vector[W]) Pred() P                            // p = pred(x)

The result is the receiver, which may be one of the operands:

    sum.Add(sum, x)

accumulates x into sum.

Arithmetic wraps modulo 2**W. Overflow is not an error; AddCarry and SubBorrow
report the carry or borrow out of the most significant digit for callers who
care.

Division is only provided as QuoExact, which succeeds when the divisor evenly
divides the dividend and fails with ErrInexactDivision otherwise. There is no
general quotient/remainder operation.

Bits values have the same operations. Since their width is only known at run
time, an operation on operands of different widths panics with an
IncompatibleWidthError. Package context wraps Bits operations and turns those
panics into errors.
*/
package bitvec
