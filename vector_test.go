// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type w12 struct{}

func (w12) Len() uint { return 12 }

type w0 struct{}

func (w0) Len() uint { return 0 }

type w65 struct{}

func (w65) Len() uint { return 65 }

func TestVector_Scenario(t *testing.T) {
	type V = Vector[W16]

	z := new(V).Lsh(New[W16](8), 2)
	assert.True(t, z.Equal(New[W16](32)), "8 << 2 = %v", z)

	z.Add(New[W16](200), New[W16](100))
	assert.True(t, z.Equal(New[W16](300)), "200 + 100 = %v", z)

	z.Mul(New[W16](5), New[W16](6))
	assert.True(t, z.Equal(New[W16](30)), "5 * 6 = %v", z)

	z, borrow := z.SubBorrow(New[W16](5), New[W16](10))
	assert.True(t, z.Equal(New[W16](65531)), "5 - 10 = %v", z)
	assert.True(t, z.Equal(New[W16](5-10)))
	assert.True(t, borrow)
}

func TestVector_RoundTrip(t *testing.T) {
	for x := int64(0); x < 1<<12; x++ {
		if got := New[w12](x).Int64(); got != x {
			t.Fatalf("round trip of %d: got %d", x, got)
		}
	}
	for i := 0; i < 1000; i++ {
		x := rnd.Uint64()
		if got := new(Vector[W64]).SetUint64(x).Uint64(); got != x {
			t.Fatalf("round trip of %d: got %d", x, got)
		}
		if got := new(Vector[W32]).SetUint64(x).Uint64(); got != x&mask(32) {
			t.Fatalf("round trip of %d: got %d", x, got)
		}
	}
}

func TestVector_NegativeInput(t *testing.T) {
	// the low bits of the two's complement pattern are kept, no sign is
	// interpreted on the way back.
	assert.Equal(t, uint64(0xff), New[W8](-1).Uint64())
	assert.Equal(t, int64(0xff), New[W8](-1).Int64())
	assert.Equal(t, int64(-1), New[W64](-1).Int64())
	assert.Equal(t, uint64(0x80), New[W8](-128).Uint64())
}

func TestVector_ZeroValue(t *testing.T) {
	var z Vector[W16]
	assert.True(t, z.IsZero())
	assert.Equal(t, uint64(0), z.Uint64())
	assert.Equal(t, uint(16), z.Len())
	assert.Equal(t, 0, z.BitLen())
	assert.Equal(t, z, *New[W16](0))
}

func TestVector_InvalidWidth(t *testing.T) {
	require.PanicsWithError(t, "bitvec: invalid width 0, must be in [1, 64]", func() { New[w0](1) })
	require.PanicsWithError(t, "bitvec: invalid width 65, must be in [1, 64]", func() { New[w65](1) })
	var z Vector[w0]
	require.Panics(t, func() { z.IsZero() })
}

func TestVector_Carry(t *testing.T) {
	forPairs(8, func(a, b uint64) {
		x, y := new(Vector[W8]).SetUint64(a), new(Vector[W8]).SetUint64(b)
		z, c := new(Vector[W8]).AddCarry(x, y)
		if z.Uint64() != (a+b)&0xff || c != (a+b >= 256) {
			t.Fatalf("%d + %d = %v, carry %v", a, b, z, c)
		}
		z, c = new(Vector[W8]).SubBorrow(x, y)
		if z.Uint64() != (a-b)&0xff || c != (b > a) {
			t.Fatalf("%d - %d = %v, borrow %v", a, b, z, c)
		}
		if z := new(Vector[W8]).Mul(x, y); z.Uint64() != (a*b)&0xff {
			t.Fatalf("%d * %d = %v", a, b, z)
		}
	})
}

func TestVector_Accumulate(t *testing.T) {
	sum := new(Vector[W16])
	one := New[W16](1)
	for i := 0; i < 70000; i++ {
		sum.Add(sum, one)
	}
	assert.Equal(t, uint64(70000%65536), sum.Uint64())
	sum.Sub(sum, sum)
	assert.True(t, sum.IsZero())

	p := New[W16](3)
	p.Mul(p, p)
	p.Mul(p, p)
	assert.Equal(t, uint64(81), p.Uint64())
}

func TestVector_QuoExact(t *testing.T) {
	z, err := new(Vector[W8]).QuoExact(New[W8](12), New[W8](3))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), z.Uint64())

	z, err = New[W8](42).QuoExact(New[W8](7), New[W8](2))
	require.ErrorIs(t, err, ErrInexactDivision)
	assert.Equal(t, uint64(42), z.Uint64(), "receiver modified on error")

	_, err = New[W8](42).QuoExact(New[W8](7), new(Vector[W8]))
	require.ErrorIs(t, err, ErrDivisionByZero)

	z, err = new(Vector[W8]).QuoExact(new(Vector[W8]), New[W8](5))
	require.NoError(t, err)
	assert.True(t, z.IsZero())

	x := New[W16](65535)
	_, err = x.QuoExact(x, New[W16](5))
	require.NoError(t, err)
	assert.Equal(t, uint64(13107), x.Uint64())
}

func TestVector_Equality(t *testing.T) {
	vals := []*Vector[W4]{New[W4](0), New[W4](5), New[W4](5), New[W4](21), New[W4](15)}
	for _, a := range vals {
		assert.True(t, a.Equal(a), "reflexive")
		for _, b := range vals {
			assert.Equal(t, a.Equal(b), b.Equal(a), "symmetric")
			assert.Equal(t, a.Equal(b), a.Uint64() == b.Uint64())
			assert.Equal(t, a.Equal(b), *a == *b, "Equal must agree with ==")
			for _, c := range vals {
				if a.Equal(b) && b.Equal(c) {
					assert.True(t, a.Equal(c), "transitive")
				}
			}
		}
	}
}

func TestVector_Ordering(t *testing.T) {
	forPairs(8, func(a, b uint64) {
		x, y := new(Vector[W8]).SetUint64(a), new(Vector[W8]).SetUint64(b)
		c := x.Cmp(y)
		if (c < 0) != (a < b) || (c == 0) != (a == b) || (c > 0) != (a > b) {
			t.Fatalf("Cmp(%d, %d) = %d", a, b, c)
		}
		if c != -y.Cmp(x) {
			t.Fatalf("Cmp(%d, %d) is not antisymmetric", a, b)
		}
	})
	// the most significant digit takes part in the comparison
	assert.Equal(t, 1, New[W8](0x80).Cmp(New[W8](0x7f)))
	assert.Equal(t, -1, New[W8](0x01).Cmp(New[W8](0x81)))
}

func TestVector_Shifts(t *testing.T) {
	x := New[W8](0xb5)
	assert.Equal(t, uint64(0xd4), new(Vector[W8]).Lsh(x, 2).Uint64())
	assert.Equal(t, uint64(0x2d), new(Vector[W8]).Rsh(x, 2).Uint64())
	assert.True(t, new(Vector[W8]).Lsh(x, 8).IsZero())
	assert.True(t, new(Vector[W8]).Rsh(x, 100).IsZero())
	assert.Equal(t, uint64(0xb5), new(Vector[W8]).Lsh(x, 0).Uint64())
	x.Lsh(x, 4)
	assert.Equal(t, uint64(0x50), x.Uint64())
}

func TestVector_Bits(t *testing.T) {
	x := New[w12](0x805)
	want := []uint{1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}
	for i, b := range want {
		assert.Equal(t, b, x.Bit(i), "bit %d", i)
	}
	assert.Equal(t, 12, x.BitLen())
	assert.Panics(t, func() { x.Bit(-1) })
}

func TestVector_Set(t *testing.T) {
	x := New[W32](123456)
	z := new(Vector[W32]).Set(x)
	x.SetInt64(0)
	assert.Equal(t, uint64(123456), z.Uint64())
	assert.Same(t, z, z.Set(z))
}

func BenchmarkVector_Mul(b *testing.B) {
	x, y := New[W32](int64(rnd.Uint32())), New[W32](int64(rnd.Uint32()))
	z := new(Vector[W32])
	for i := 0; i < b.N; i++ {
		z.Mul(x, y)
	}
}
