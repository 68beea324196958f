// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion of vecs, Vectors and Bits.

package bitvec

import (
	"fmt"
	"strconv"
	"strings"
)

// appendText appends the representation of x in the given base to buf. In
// base 2, all len(x) digits are written, most significant first. In base 10,
// the value is written without leading zeros.
func (x vec) appendText(buf []byte, base int) []byte {
	switch base {
	case 2:
		for _, d := range x {
			if d {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
	case 10:
		buf = strconv.AppendUint(buf, x.uint64(), 10)
	default:
		panic(fmt.Sprintf("invalid base %d", base))
	}
	return buf
}

// appendString appends "[<bits>] <decimal>" to buf.
func (x vec) appendString(buf []byte) []byte {
	buf = append(buf, '[')
	buf = x.appendText(buf, 2)
	buf = append(buf, ']', ' ')
	return x.appendText(buf, 10)
}

// scanBits sets z to the digits of s, which must be exactly len(z) characters
// long and only contain '0' and '1'.
func (z vec) scanBits(s []byte) error {
	if len(s) != len(z) {
		return fmt.Errorf("bitvec: got %d digits, want %d", len(s), len(z))
	}
	for i, ch := range s {
		switch ch {
		case '0':
			z[i] = false
		case '1':
			z[i] = true
		default:
			return fmt.Errorf("bitvec: invalid binary digit %q", ch)
		}
	}
	return nil
}

// parseInt parses a decimal integer with an optional sign and returns its two's
// complement bit pattern. Values outside of the int64 and uint64 ranges are
// rejected.
func parseInt(s string) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 10, 64)
		return uint64(v), err
	}
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
}

// format implements fmt.Formatter for x. Supported verbs are 'b' (binary
// digits), 'd' (decimal value), 's' and 'v' (both as returned by String). The
// '#' flag adds a 0b prefix to 'b'. Width and the '-' flag pad the result with
// spaces.
func (x vec) format(s fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 'b':
		if s.Flag('#') {
			buf = append(buf, "0b"...)
		}
		buf = x.appendText(buf, 2)
	case 'd':
		buf = x.appendText(buf, 10)
	case 's', 'v':
		buf = x.appendString(buf)
	default:
		fmt.Fprintf(s, "%%!%c(bitvec=%s)", verb, x.appendString(nil))
		return
	}
	var pad []byte
	if w, ok := s.Width(); ok && w > len(buf) {
		pad = []byte(strings.Repeat(" ", w-len(buf)))
	}
	if s.Flag('-') {
		_, _ = s.Write(buf)
		_, _ = s.Write(pad)
		return
	}
	_, _ = s.Write(pad)
	_, _ = s.Write(buf)
}

// String returns x as "[<bits>] <decimal>", for instance "[00001000] 8" for an
// 8 bits wide Vector of value 8.
func (x *Vector[W]) String() string {
	return string(x.vec().appendString(nil))
}

// Text returns the string representation of x in the given base, which must be
// 2 or 10. In base 2, the result always has W.Len() digits.
func (x *Vector[W]) Text(base int) string {
	return string(x.vec().appendText(nil, base))
}

// Format implements fmt.Formatter. It accepts the verbs 'b', 'd', 's' and 'v'.
func (x *Vector[W]) Format(s fmt.State, verb rune) {
	x.vec().format(s, verb)
}

// SetString sets z to the low W.Len() bits of the decimal integer s, as SetInt64
// would, and returns z and a boolean indicating success. s may have a sign. If
// the operation failed, the value of z is undefined but the returned value is
// nil.
func (z *Vector[W]) SetString(s string) (*Vector[W], bool) {
	v, err := parseInt(s)
	if err != nil {
		return nil, false
	}
	return z.SetUint64(v), true
}

// String returns x as "[<bits>] <decimal>".
func (x *Bits) String() string {
	return string(x.v.appendString(nil))
}

// Text returns the string representation of x in base 2 or 10.
func (x *Bits) Text(base int) string {
	return string(x.v.appendText(nil, base))
}

// Format implements fmt.Formatter.
func (x *Bits) Format(s fmt.State, verb rune) {
	x.v.format(s, verb)
}

// SetString is like Vector.SetString. z must have a width.
func (z *Bits) SetString(s string) (*Bits, bool) {
	z.mustHaveWidth()
	v, err := parseInt(s)
	if err != nil {
		return nil, false
	}
	return z.SetUint64(v), true
}
