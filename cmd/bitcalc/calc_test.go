package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/db47h/bitvec"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	td := []struct {
		in, out string
		err     string
	}{
		{"", "", ""},
		{"32", "[0000000000100000] 32", ""},
		{"8 << 2", "[0000000000100000] 32", ""},
		{"32 >> 5", "[0000000000000001] 1", ""},
		{"200 + 100", "[0000000100101100] 300", ""},
		{"65535 + 2", "[0000000000000001] 1 carry", ""},
		{"5 * 6", "[0000000000011110] 30", ""},
		{"5 - 10", "[1111111111111011] 65531 borrow", ""},
		{"10 - 5", "[0000000000000101] 5", ""},
		{"12 / 3", "[0000000000000100] 4", ""},
		{"7 / 2", "", "bitvec: divisor does not evenly divide dividend"},
		{"7 / 0", "", "bitvec: division by zero"},
		{"300 == 300", "true", ""},
		{"65836 == 300", "true", ""},
		{"3 != 4", "true", ""},
		{"3 < 4", "true", ""},
		{"4 <= 4", "true", ""},
		{"3 > 4", "false", ""},
		{"-1 >= 65535", "true", ""},
		{"3 % 4", "", `unknown operator "%"`},
		{"3 +", "", errSyntax.Error()},
		{"x + 1", "", `invalid operand "x"`},
		{"1 << x", "", `invalid shift count "x"`},
	}
	c := newCalc(16, false)
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			out, err := c.eval(d.in)
			if d.err != "" {
				require.EqualError(t, err, d.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, d.out, out)
		})
	}
}

func TestEval_Width(t *testing.T) {
	c := newCalc(16, false)
	out, err := c.eval(":width 4")
	require.NoError(t, err)
	require.Equal(t, "width set to 4 bits", out)
	require.Equal(t, uint(4), c.width())

	out, err = c.eval("15 + 1")
	require.NoError(t, err)
	require.Equal(t, "[0000] 0 carry", out)

	_, err = c.eval(":width 65")
	var ew bitvec.ErrWidth
	require.True(t, errors.As(err, &ew), "got %v", err)
	require.Equal(t, uint(4), c.width())

	_, err = c.eval(":width")
	require.ErrorIs(t, err, errSyntax)
	_, err = c.eval(":width four")
	require.Error(t, err)
}

func TestBatch(t *testing.T) {
	in := strings.NewReader("1 + 1\n\n:width 8\n255 + 1\n3 * 3\n")
	var out bytes.Buffer
	require.NoError(t, batch(newCalc(16, false), in, &out))
	want := []string{
		"[0000000000000010] 2",
		"width set to 8 bits",
		"[00000000] 0 carry",
		"[00001001] 9",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSpace(out.String()), "\n")); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	err := batch(newCalc(8, false), strings.NewReader("1 + 1\n9 / 2\n1 + 1\n"), &out)
	require.EqualError(t, err, "line 2: bitvec: divisor does not evenly divide dividend")
}
