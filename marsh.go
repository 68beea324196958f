// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Vectors and Bits.

package bitvec

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// appendBytes appends the binary encoding of x to buf: one byte holding the
// width, followed by the value as (len(x)+7)/8 big-endian bytes.
func (x vec) appendBytes(buf []byte) []byte {
	n := (len(x) + 7) / 8
	buf = append(buf, byte(len(x)))
	start := len(buf)
	buf = append(buf, make([]byte, n)...)
	b := buf[start:]
	for i, d := range x {
		if d {
			pos := len(x) - 1 - i
			b[n-1-pos/8] |= 1 << uint(pos%8)
		}
	}
	return buf
}

// decodeWidth returns the width byte of a binary encoding.
func decodeWidth(buf []byte) (uint, error) {
	if len(buf) == 0 {
		return 0, errors.New("bitvec: empty encoding")
	}
	w := uint(buf[0])
	if err := ValidWidth(w); err != nil {
		return 0, err
	}
	return w, nil
}

// setBytes sets z to the value encoded in buf by appendBytes. The encoded width
// must match len(z).
func (z vec) setBytes(buf []byte) error {
	w, err := decodeWidth(buf)
	if err != nil {
		return err
	}
	if w != uint(len(z)) {
		return IncompatibleWidthError{uint(len(z)), w}
	}
	n := (len(z) + 7) / 8
	b := buf[1:]
	if len(b) != n {
		return fmt.Errorf("bitvec: invalid encoding length %d for width %d", len(buf), w)
	}
	if extra := uint(n*8) - w; extra > 0 && b[0]>>(8-extra) != 0 {
		return errors.New("bitvec: encoding has bits set beyond its width")
	}
	for i := range z {
		pos := len(z) - 1 - i
		z[i] = b[n-1-pos/8]>>uint(pos%8)&1 != 0
	}
	return nil
}

func (x vec) hash() uint64 {
	var buf [1 + MaxWidth/8]byte
	return xxhash.Sum64(x.appendBytes(buf[:0]))
}

// MarshalText implements the encoding.TextMarshaler interface. x is encoded as
// its W.Len() binary digits.
func (x *Vector[W]) MarshalText() (text []byte, err error) {
	return x.vec().appendText(nil, 2), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. text must
// contain exactly W.Len() binary digits.
func (z *Vector[W]) UnmarshalText(text []byte) error {
	var t Vector[W]
	if err := t.vec().scanBits(text); err != nil {
		return err
	}
	*z = t
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. It also
// makes Vectors usable with encoding/gob.
func (x *Vector[W]) MarshalBinary() ([]byte, error) {
	return x.vec().appendBytes(nil), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. It
// returns an IncompatibleWidthError if buf holds a value of a different width.
func (z *Vector[W]) UnmarshalBinary(buf []byte) error {
	var t Vector[W]
	if err := t.vec().setBytes(buf); err != nil {
		return err
	}
	*z = t
	return nil
}

// Hash returns a hash of the width and value of x. Equal values of the same
// width have the same hash.
func (x *Vector[W]) Hash() uint64 {
	return x.vec().hash()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Bits) MarshalText() (text []byte, err error) {
	return x.v.appendText(nil, 2), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. If z has no
// width, it takes the number of digits in text as its width.
func (z *Bits) UnmarshalText(text []byte) error {
	n := z.Len()
	if n == 0 {
		n = uint(len(text))
		if err := ValidWidth(n); err != nil {
			return err
		}
	}
	t := make(vec, n)
	if err := t.scanBits(text); err != nil {
		return err
	}
	z.v = t
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (x *Bits) MarshalBinary() ([]byte, error) {
	x.mustHaveWidth()
	return x.v.appendBytes(nil), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. If z
// has no width, it takes the encoded width.
func (z *Bits) UnmarshalBinary(buf []byte) error {
	n := z.Len()
	if n == 0 {
		w, err := decodeWidth(buf)
		if err != nil {
			return err
		}
		n = w
	}
	t := make(vec, n)
	if err := t.setBytes(buf); err != nil {
		return err
	}
	z.v = t
	return nil
}

// Hash returns a hash of the width and value of x.
func (x *Bits) Hash() uint64 {
	return x.v.hash()
}
