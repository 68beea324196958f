// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/db47h/bitvec"
	"github.com/db47h/bitvec/context"
	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
)

var errSyntax = errors.New("syntax: N | N op N | :width N, with op one of + - * / << >> == != < <= > >=")

// calc evaluates one line of input at a time in a given width.
type calc struct {
	ctx *context.Context

	digits *color.Color
	value  *color.Color
	flag   *color.Color
}

func newCalc(width uint, useColor bool) *calc {
	c := &calc{
		ctx:    context.New(width),
		digits: color.New(color.FgCyan),
		value:  color.New(color.Bold),
		flag:   color.New(color.FgYellow),
	}
	if !useColor {
		c.digits.DisableColor()
		c.value.DisableColor()
		c.flag.DisableColor()
	}
	return c
}

func (c *calc) width() uint {
	return c.ctx.Width()
}

func (c *calc) show(x *bitvec.Bits) string {
	return "[" + c.digits.Sprint(x.Text(2)) + "] " + c.value.Sprint(x.Text(10))
}

func (c *calc) operand(s string) (*bitvec.Bits, error) {
	x, ok := c.ctx.NewString(s)
	if !ok {
		return nil, fmt.Errorf("invalid operand %q", s)
	}
	return x, nil
}

// eval evaluates line and returns the text to print. An empty line yields an
// empty result.
func (c *calc) eval(line string) (string, error) {
	f := strings.Fields(line)
	switch {
	case len(f) == 0:
		return "", nil
	case f[0] == ":width":
		return c.setWidth(f[1:])
	case len(f) == 1:
		x, err := c.operand(f[0])
		if err != nil {
			return "", err
		}
		return c.show(x), nil
	case len(f) != 3:
		return "", errSyntax
	}

	x, err := c.operand(f[0])
	if err != nil {
		return "", err
	}
	op := f[1]
	if op == "<<" || op == ">>" {
		n, err := strconv.ParseUint(f[2], 10, 0)
		if err != nil {
			return "", fmt.Errorf("invalid shift count %q", f[2])
		}
		if op == "<<" {
			return c.result(c.ctx.Lsh(x, x, uint(n)), "")
		}
		return c.result(c.ctx.Rsh(x, x, uint(n)), "")
	}
	y, err := c.operand(f[2])
	if err != nil {
		return "", err
	}

	z := c.ctx.New()
	switch op {
	case "+":
		c.ctx.Add(z, x, y)
		return c.result(z, "carry")
	case "-":
		c.ctx.Sub(z, x, y)
		return c.result(z, "borrow")
	case "*":
		return c.result(c.ctx.Mul(z, x, y), "")
	case "/":
		return c.result(c.ctx.QuoExact(z, x, y), "")
	}

	r := c.ctx.Cmp(x, y)
	var b bool
	switch op {
	case "==":
		b = r == 0
	case "!=":
		b = r != 0
	case "<":
		b = r < 0
	case "<=":
		b = r <= 0
	case ">":
		b = r > 0
	case ">=":
		b = r >= 0
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
	if err := c.ctx.Err(); err != nil {
		return "", err
	}
	return strconv.FormatBool(b), nil
}

// result formats z, followed by flag if the last addition or subtraction
// carried.
func (c *calc) result(z *bitvec.Bits, flag string) (string, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}
	s := c.show(z)
	if flag != "" && c.ctx.Carry() {
		s += " " + c.flag.Sprint(flag)
	}
	return s, nil
}

func (c *calc) setWidth(args []string) (string, error) {
	if len(args) != 1 {
		return "", errSyntax
	}
	n, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return "", fmt.Errorf("invalid width %q", args[0])
	}
	if err := bitvec.ValidWidth(uint(n)); err != nil {
		return "", err
	}
	log.Debug("Changing width", "old", c.width(), "new", n)
	c.ctx = context.New(uint(n))
	return fmt.Sprintf("width set to %d bits", n), nil
}
