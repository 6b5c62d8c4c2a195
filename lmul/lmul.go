// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lmul implements L-Mul, a linear complexity approximation of the
// floating point multiplication, over fp8 encoded values.
//
// The product of the significands (1+fx)*(1+fy) is replaced with
// 1+fx+fy+2^-l(m), where l(m) only depends on the number of mantissa bits m.
// A multiplication then costs an addition of the exponents and of the
// fractions.
//
// See https://arxiv.org/abs/2410.00907
package lmul

import (
	"fmt"
	"math"

	"github.com/maruel/l-mul-go/fp8"
)

// Errors returned by this package. They are the same values as in package
// fp8 so errors.Is() works with either.
var (
	ErrInvalidFormat     = fp8.ErrInvalidFormat
	ErrEmptyInput        = fp8.ErrEmptyInput
	ErrDimensionMismatch = fp8.ErrDimensionMismatch
)

// Correction returns l(m), the exponent of the constant 2^-l(m) added to the
// sum of the fractions.
//
// The values are the empirical calibration of the L-Mul algorithm.
func Correction(mantissaBits int) int {
	switch {
	case mantissaBits <= 3:
		return mantissaBits
	case mantissaBits == 4:
		return 3
	default:
		return 4
	}
}

// kernel is L-Mul specialized for a Format.
type kernel struct {
	offset float32
}

func newKernel(f fp8.Format) kernel {
	return kernel{offset: float32(math.Ldexp(1, -Correction(f.MantissaBits())))}
}

// multiply returns ±(1+fx+fy+2^-l(m))*2^(Ex+Ey).
//
// Only the sign, E and F of the operands are used. Operands in the
// zero/subnormal region go through the same formula with E=0.
func (k kernel) multiply(x, y *fp8.Decoded) float32 {
	sign := float32(1)
	if x.Sign != y.Sign {
		sign = -1
	}
	s := 1 + x.F + y.F + k.offset
	return sign * float32(math.Ldexp(float64(s), int(x.E+y.E)))
}

// Multiply returns the L-Mul approximation of x*y.
//
// Zero is not special cased: 0*y evaluates to ±(1+fy+2^-l(m))*2^Ey.
func Multiply(x, y fp8.F8, f fp8.Format) float32 {
	dx := f.Decode(x)
	dy := f.Decode(y)
	return newKernel(f).multiply(&dx, &dy)
}

// MultiplyBits is Multiply on raw bytes encoded with exponentBits bits of
// exponent.
func MultiplyBits(x, y byte, exponentBits int) (float32, error) {
	f, err := fp8.NewFormat(exponentBits)
	if err != nil {
		return 0, err
	}
	return Multiply(fp8.F8(x), fp8.F8(y), f), nil
}

// shapes validates that x*y is possible and returns m, k and n for a m×k by
// k×n multiplication.
func shapes[T any](x, y [][]T) (int, int, int, error) {
	m, k, err := fp8.Shape(x)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("x: %w", err)
	}
	k2, n, err := fp8.Shape(y)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("y: %w", err)
	}
	if k != k2 {
		return 0, 0, 0, fmt.Errorf("%w: can't multiply %dx%d by %dx%d", ErrDimensionMismatch, m, k, k2, n)
	}
	return m, k, n, nil
}

// Stats is the error between two matrices.
type Stats struct {
	// MaxAbs is the largest absolute difference.
	MaxAbs float64 `json:"max_abs"`
	// MeanAbs is the average absolute difference.
	MeanAbs float64 `json:"mean_abs"`
	// MaxRel is the largest difference relative to the reference, ignoring
	// reference values of 0.
	MaxRel float64 `json:"max_rel"`
}

func (s Stats) String() string {
	return fmt.Sprintf("max=%.4g mean=%.4g rel=%.2f%%", s.MaxAbs, s.MeanAbs, 100*s.MaxRel)
}

// ErrorStats compares got with the reference want.
func ErrorStats(got, want [][]float32) (Stats, error) {
	rows, cols, err := fp8.Shape(want)
	if err != nil {
		return Stats{}, err
	}
	if r, c, err := fp8.Shape(got); err != nil {
		return Stats{}, err
	} else if r != rows || c != cols {
		return Stats{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, r, c, rows, cols)
	}
	var s Stats
	for i := range want {
		for j, w := range want[i] {
			d := math.Abs(float64(got[i][j]) - float64(w))
			s.MaxAbs = max(s.MaxAbs, d)
			s.MeanAbs += d
			if w != 0 {
				s.MaxRel = max(s.MaxRel, d/math.Abs(float64(w)))
			}
		}
	}
	s.MeanAbs /= float64(rows * cols)
	return s, nil
}
