// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bitcalc evaluates fixed-width bit vector arithmetic.
//
// Each input line is either a decimal number, which is printed as a bit
// vector, a binary operation like "200 + 100" or "8 << 2", or ":width N" to
// change the width. Results are printed as "[<bits>] <decimal>", followed by
// "carry" or "borrow" when an addition or subtraction wrapped around. Division
// only succeeds when the divisor evenly divides the dividend.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/db47h/bitvec"
	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/urfave/cli.v1"
)

var (
	widthFlag = cli.UintFlag{
		Name:  "width",
		Usage: fmt.Sprintf("width of the values in bits (1-%d)", bitvec.MaxWidth),
		Value: 16,
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 2,
	}
	nocolorFlag = cli.BoolFlag{
		Name:  "nocolor",
		Usage: "disable colored output",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "bitcalc"
	app.Usage = "fixed-width bit vector calculator"
	app.Flags = []cli.Flag{widthFlag, verbosityFlag, nocolorFlag}
	app.Before = setupLogging
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func setupLogging(ctx *cli.Context) error {
	useColor := !ctx.GlobalBool(nocolorFlag.Name) && isTerminal(os.Stderr)
	glogger := log.NewGlogHandler(log.NewTerminalHandler(os.Stderr, useColor))
	glogger.Verbosity(log.FromLegacyLevel(ctx.GlobalInt(verbosityFlag.Name)))
	log.SetDefault(log.NewLogger(glogger))
	return nil
}

func run(ctx *cli.Context) error {
	width := ctx.GlobalUint(widthFlag.Name)
	if err := bitvec.ValidWidth(width); err != nil {
		return err
	}
	useColor := !ctx.GlobalBool(nocolorFlag.Name) && isTerminal(os.Stdout)
	c := newCalc(width, useColor)
	log.Debug("Starting calculator", "width", width, "color", useColor)

	if isTerminal(os.Stdin) {
		return interactive(c, color.Output)
	}
	return batch(c, os.Stdin, os.Stdout)
}

// batch evaluates all lines from r. It stops at the first error.
func batch(c *calc, r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		out, err := c.eval(s.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return s.Err()
}

func prompt(c *calc) string {
	return fmt.Sprintf("bitcalc[%d]> ", c.width())
}

// interactive runs a read-eval-print loop on the terminal. Errors are reported
// and the session goes on.
func interactive(c *calc, w io.Writer) error {
	cfg := &readline.Config{
		Prompt:          prompt(c),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".bitcalc_history")
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}
		out, err := c.eval(line)
		if err != nil {
			log.Debug("Evaluation failed", "input", line, "err", err)
			fmt.Fprintln(w, color.RedString("error: %v", err))
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
		rl.SetPrompt(prompt(c))
	}
}
