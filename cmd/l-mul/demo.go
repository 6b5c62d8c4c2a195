// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/maruel/l-mul-go/fp8"
	"github.com/maruel/l-mul-go/lmul"
)

// randomMatrix returns a matrix of values uniformly distributed in [lo, hi).
func randomMatrix(r *rand.Rand, rows, cols int, lo, hi float32) [][]float32 {
	m := make([][]float32, rows)
	for i := range m {
		m[i] = make([]float32, cols)
		for j := range m[i] {
			m[i][j] = lo + (hi-lo)*r.Float32()
		}
	}
	return m
}

func printMatrix(w io.Writer, name string, m [][]float32) {
	fmt.Fprintf(w, "Matrix %s:\n", name)
	for _, row := range m {
		for _, v := range row {
			fmt.Fprintf(w, "%.4f\t", v)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func printF8Matrix(w io.Writer, name string, m [][]fp8.F8, f fp8.Format, codes bool) {
	fmt.Fprintf(w, "FP8 Matrix %s (%s):\n", name, f)
	for _, row := range m {
		for _, v := range row {
			if codes {
				fmt.Fprintf(w, "%.4f(0x%02X)\t", f.Float32(v), uint8(v))
			} else {
				fmt.Fprintf(w, "%.4f\t", f.Float32(v))
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func cmdDemo(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	rows := fs.Int("m", 3, "rows of X")
	inner := fs.Int("k", 2, "columns of X and rows of Y")
	cols := fs.Int("n", 3, "columns of Y")
	exponentBits := fs.Int("exp", 4, "exponent bits of the FP8 format, between 1 and 6")
	seed := fs.Uint64("seed", 0, "random seed; 0 picks one")
	lo := fs.Float64("min", -1, "lowest random value")
	hi := fs.Float64("max", 1, "highest random value")
	workers := fs.Int("j", 0, "rows of the product computed concurrently")
	verbose := fs.Bool("v", false, "verbose logging and print the FP8 codes")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("demo: unexpected argument %q", fs.Arg(0))
	}
	initLog(*verbose)
	if *rows < 1 || *inner < 1 || *cols < 1 {
		return errors.New("demo: -m, -k and -n must be at least 1")
	}
	if !(*lo < *hi) {
		return errors.New("demo: -min must be lower than -max")
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}
	slog.Debug("demo", "seed", *seed, "exp", *exponentBits, "m", *rows, "k", *inner, "n", *cols)

	r := rand.New(rand.NewPCG(*seed, *seed))
	x := randomMatrix(r, *rows, *inner, float32(*lo), float32(*hi))
	y := randomMatrix(r, *inner, *cols, float32(*lo), float32(*hi))
	printMatrix(w, "X (FP32)", x)
	printMatrix(w, "Y (FP32)", y)

	opts := lmul.Options{
		Rand:    r,
		Workers: *workers,
		Observer: func(name string, m [][]fp8.F8, f fp8.Format) {
			printF8Matrix(w, name, m, f, *verbose)
		},
	}
	got, err := lmul.MatMul(x, y, *exponentBits, &opts)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	printMatrix(w, "Result (L-Mul MatMul)", got)
	want, err := lmul.MatMulExact(x, y)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	printMatrix(w, "Result (Exact FP32 MatMul)", want)
	s, err := lmul.ErrorStats(got, want)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintf(w, "Error: %s\n", s)
	return nil
}
