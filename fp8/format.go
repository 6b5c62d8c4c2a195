// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:generate go run gen.go

// Package fp8 converts float32 values to 8 bits minifloats with a
// configurable split between exponent and mantissa bits.
//
// The layout is always [sign:1][exponent:E][mantissa:7-E], MSB first. There
// is no infinity nor NaN: an exponent field of 0 is the zero/subnormal region
// and overflows saturate to the largest finite value.
//
// See https://en.wikipedia.org/wiki/Minifloat
package fp8

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidFormat is returned when the number of exponent bits doesn't
	// describe a valid 8 bits layout.
	ErrInvalidFormat = errors.New("fp8: invalid format")
	// ErrEmptyInput is returned when a matrix has no element.
	ErrEmptyInput = errors.New("fp8: empty input matrix")
	// ErrDimensionMismatch is returned when matrix shapes are not compatible.
	ErrDimensionMismatch = errors.New("fp8: dimension mismatch")
)

const (
	// https://en.wikipedia.org/wiki/Single-precision_floating-point_format
	f32SignOffset     = 31
	f32ExponentOffset = 23
	f32ExponentBias   = 127
	f32ExponentMask   = (1 << (f32SignOffset - f32ExponentOffset)) - 1
	f32MantissaMask   = (1 << f32ExponentOffset) - 1

	signOffset = 7
	totalBits  = 8

	// MinExponentBits and MaxExponentBits are the supported exponent widths.
	MinExponentBits = 1
	MaxExponentBits = 6
)

// masks are the exponent and mantissa masks indexed by exponent bits - 1.
var masks = [MaxExponentBits][2]uint8{
	{0x40, 0x3F}, // E1M6
	{0x60, 0x1F}, // E2M5
	{0x70, 0x0F}, // E3M4
	{0x78, 0x07}, // E4M3
	{0x7C, 0x03}, // E5M2
	{0x7E, 0x01}, // E6M1
}

// Format describes an 8 bits float layout.
//
// The zero value is not valid, use NewFormat.
type Format struct {
	exponentBits uint8
	mantissaBits uint8
	bias         int8
	exponentMask uint8
	mantissaMask uint8
}

// NewFormat returns the layout with exponentBits bits of exponent and the
// rest of the byte, minus the sign, as mantissa.
func NewFormat(exponentBits int) (Format, error) {
	if exponentBits < MinExponentBits || exponentBits > MaxExponentBits {
		return Format{}, fmt.Errorf("%w: %d exponent bits; must be between %d and %d", ErrInvalidFormat, exponentBits, MinExponentBits, MaxExponentBits)
	}
	mantissaBits := totalBits - 1 - exponentBits
	m := masks[exponentBits-1]
	return Format{
		exponentBits: uint8(exponentBits),
		mantissaBits: uint8(mantissaBits),
		bias:         int8(1<<(exponentBits-1)) - 1,
		exponentMask: m[0],
		mantissaMask: m[1],
	}, nil
}

// MustFormat is like NewFormat but panics on invalid widths.
func MustFormat(exponentBits int) Format {
	f, err := NewFormat(exponentBits)
	if err != nil {
		panic(err)
	}
	return f
}

// Formats returns all the supported layouts, from E1M6 to E6M1.
func Formats() []Format {
	out := make([]Format, 0, MaxExponentBits)
	for e := MinExponentBits; e <= MaxExponentBits; e++ {
		out = append(out, MustFormat(e))
	}
	return out
}

// ExponentBits is the width of the exponent field.
func (f Format) ExponentBits() int { return int(f.exponentBits) }

// MantissaBits is the width of the mantissa field.
func (f Format) MantissaBits() int { return int(f.mantissaBits) }

// Bias is the exponent bias, 2^(E-1)-1.
func (f Format) Bias() int { return int(f.bias) }

// MaxExponent is the largest exponent field value, 2^E-1.
func (f Format) MaxExponent() int { return (1 << f.exponentBits) - 1 }

// MaxMantissa is the largest mantissa field value, 2^M-1.
func (f Format) MaxMantissa() int { return (1 << f.mantissaBits) - 1 }

// IsValid returns true if the Format was created with NewFormat.
func (f Format) IsValid() bool { return f.exponentBits != 0 }

func (f Format) String() string {
	return fmt.Sprintf("E%dM%d", f.exponentBits, f.mantissaBits)
}

// MaxValue is the largest finite magnitude, which is also what overflows
// saturate to.
func (f Format) MaxValue() float32 {
	return f.Float32(F8(f.MaxExponent()<<f.mantissaBits | f.MaxMantissa()))
}

// MinNormal is the smallest magnitude with a non-zero exponent field.
func (f Format) MinNormal() float32 {
	return float32(math.Ldexp(1, 1-f.Bias()))
}

// Step returns the distance between two consecutive encodable values around
// v, for v in the normal range.
//
// Below MinNormal() the step of the smallest normal binade is returned; above
// MaxValue() the step of the largest binade is returned.
func (f Format) Step(v float32) float32 {
	a := math.Abs(float64(v))
	e := 1 - f.Bias()
	if a >= float64(f.MinNormal()) {
		_, exp := math.Frexp(a)
		// Frexp returns a fraction in [0.5, 1).
		e = exp - 1
		if top := f.MaxExponent() - f.Bias(); e > top {
			e = top
		}
	}
	return float32(math.Ldexp(1, e-f.MantissaBits()))
}
