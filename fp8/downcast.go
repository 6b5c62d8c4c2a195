// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fp8

import (
	"fmt"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Rand is the source of randomness used for stochastic rounding.
//
// *rand.Rand from math/rand/v2 implements it. It is called exactly once per
// converted value.
type Rand interface {
	Float32() float32
}

// globalRand is the process wide generator. It is seeded at startup and safe
// for concurrent use.
type globalRand struct{}

func (globalRand) Float32() float32 {
	return rand.Float32()
}

// Downcast converts v with stochastic rounding.
//
// The truncated mantissa is rounded up with a probability equal to the value
// of the dropped bits, so the expected value of the result is v. Values too
// small for the format land in the exponent field 0, values too large
// (including infinities and NaN) saturate to the largest finite value.
//
// If r is nil, the process wide generator is used and the result is not
// reproducible.
func (f Format) Downcast(v float32, r Rand) F8 {
	if r == nil {
		r = globalRand{}
	}
	bits := math.Float32bits(v)
	sign := uint8(bits >> f32SignOffset)
	exponent32 := int((bits >> f32ExponentOffset) & f32ExponentMask)
	mantissa := bits & f32MantissaMask

	maxExponent := f.MaxExponent()
	maxMantissa := uint32(f.MaxMantissa())
	exponent := exponent32 - f32ExponentBias + f.Bias()
	subnormal := false
	if exponent < 1 {
		// Shift the implicit leading one back in. Shifts of 32 or more clear
		// the mantissa.
		subnormal = true
		exponent = 0
		mantissa = (1<<f32ExponentOffset | mantissa) >> uint(1-(exponent32-f32ExponentBias))
	} else if exponent > maxExponent {
		exponent = maxExponent
		mantissa = f32MantissaMask
	}
	if !subnormal {
		exponent = min(max(exponent, 1), maxExponent)
	}

	shift := f32ExponentOffset - f.MantissaBits()
	truncated := mantissa >> shift
	remainder := mantissa & (1<<shift - 1)
	probability := float32(remainder) / float32(uint32(1)<<shift)
	if r.Float32() < probability && truncated < maxMantissa {
		truncated++
	}
	if truncated > maxMantissa {
		truncated = 0
		if exponent++; exponent > maxExponent {
			exponent = maxExponent
			truncated = maxMantissa
		}
	}
	return F8(sign<<signOffset | uint8(exponent)<<f.mantissaBits | uint8(truncated))
}

// Downcast converts v to the format with exponentBits bits of exponent.
func Downcast(v float32, exponentBits int, r Rand) (F8, error) {
	f, err := NewFormat(exponentBits)
	if err != nil {
		return 0, err
	}
	return f.Downcast(v, r), nil
}

// DowncastMatrix converts every element of m, row by row.
//
// float64 values are first narrowed to float32.
func DowncastMatrix[T constraints.Float](f Format, m [][]T, r Rand) ([][]F8, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: uninitialized Format", ErrInvalidFormat)
	}
	rows, cols, err := Shape(m)
	if err != nil {
		return nil, err
	}
	out := make([][]F8, rows)
	backing := make([]F8, rows*cols)
	for i, row := range m {
		out[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
		for j, v := range row {
			out[i][j] = f.Downcast(float32(v), r)
		}
	}
	return out, nil
}

// Shape returns the number of rows and columns of m.
//
// It returns ErrEmptyInput if m has no element and ErrDimensionMismatch if the
// rows are not all the same length.
func Shape[T any](m [][]T) (int, int, error) {
	if len(m) == 0 {
		return 0, 0, fmt.Errorf("%w: no row", ErrEmptyInput)
	}
	cols := len(m[0])
	if cols == 0 {
		return 0, 0, fmt.Errorf("%w: no column", ErrEmptyInput)
	}
	for i := 1; i < len(m); i++ {
		if l := len(m[i]); l != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrDimensionMismatch, i, l, cols)
		}
	}
	return len(m), cols, nil
}
