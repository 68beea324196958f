// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitvec

import (
	"errors"
	"fmt"
)

// MaxWidth is the largest supported width in bits. Every width up to MaxWidth
// converts losslessly to and from uint64.
const MaxWidth = 64

// A Width reports the number of bits of a Vector. It is used as the type
// parameter of Vector and is normally implemented by an empty struct.
type Width interface {
	Len() uint
}

// Predeclared widths.
type (
	W1  struct{}
	W2  struct{}
	W4  struct{}
	W8  struct{}
	W16 struct{}
	W32 struct{}
	W64 struct{}
)

func (W1) Len() uint  { return 1 }
func (W2) Len() uint  { return 2 }
func (W4) Len() uint  { return 4 }
func (W8) Len() uint  { return 8 }
func (W16) Len() uint { return 16 }
func (W32) Len() uint { return 32 }
func (W64) Len() uint { return 64 }

// An ErrWidth panic is raised when a value is created with a width outside of
// [1, MaxWidth]. An ErrWidth implements the error interface.
type ErrWidth struct {
	Msg string
}

func (err ErrWidth) Error() string {
	return "bitvec: " + err.Msg
}

// An IncompatibleWidthError panic is raised by Bits operations on operands of
// different widths. It is also returned when decoding a value of the wrong
// width.
type IncompatibleWidthError struct {
	X, Y uint
}

func (err IncompatibleWidthError) Error() string {
	return fmt.Sprintf("bitvec: incompatible widths %d and %d", err.X, err.Y)
}

// Errors returned by QuoExact.
var (
	ErrDivisionByZero  = errors.New("bitvec: division by zero")
	ErrInexactDivision = errors.New("bitvec: divisor does not evenly divide dividend")
)

// ValidWidth returns an ErrWidth if n is not a supported width.
func ValidWidth(n uint) error {
	if n == 0 || n > MaxWidth {
		return ErrWidth{fmt.Sprintf("invalid width %d, must be in [1, %d]", n, MaxWidth)}
	}
	return nil
}

func checkWidth(n uint) {
	if err := ValidWidth(n); err != nil {
		panic(err)
	}
}

// widthOf returns the width of W. It panics with ErrWidth if W reports an
// unsupported width.
func widthOf[W Width]() uint {
	var w W
	n := w.Len()
	checkWidth(n)
	return n
}
