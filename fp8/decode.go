// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fp8

import "math"

// F8 is an encoded 8 bits float. Its value depends on the Format that was
// used to encode it.
type F8 uint8

// Decoded is an F8 split into its numerical components.
type Decoded struct {
	// Sign is 1 for negative values.
	Sign uint8
	// E is the unbiased exponent. It is 0 in the zero/subnormal region.
	E float32
	// F is the fraction encoded by the mantissa, in [0, 1).
	F float32
	// M is the significand 1+F. It is 0 in the zero/subnormal region.
	M float32
}

// Float32 returns ±2^E*M.
func (d Decoded) Float32() float32 {
	v := float32(math.Ldexp(float64(d.M), int(d.E)))
	if d.Sign != 0 {
		v = -v
	}
	return v
}

// Components returns the sign, exponent and mantissa bits separated.
func (f Format) Components(v F8) (uint8, uint8, uint8) {
	sign := uint8(v) >> signOffset
	exponent := (uint8(v) & f.exponentMask) >> f.mantissaBits
	mantissa := uint8(v) & f.mantissaMask
	return sign, exponent, mantissa
}

// Decode splits v into sign, exponent, fraction and significand.
//
// Values with an exponent field of 0 decode with E=0 and M=0: subnormals are
// collapsed to zero and F keeps the raw mantissa fraction.
func (f Format) Decode(v F8) Decoded {
	sign, exponent, mantissa := f.Components(v)
	d := Decoded{Sign: sign, F: float32(mantissa) / float32(uint(1)<<f.mantissaBits)}
	if exponent != 0 {
		d.E = float32(int(exponent) - f.Bias())
		d.M = 1 + d.F
	}
	return d
}

// Decode decodes v encoded with exponentBits bits of exponent.
func Decode(v F8, exponentBits int) (Decoded, error) {
	f, err := NewFormat(exponentBits)
	if err != nil {
		return Decoded{}, err
	}
	return f.Decode(v), nil
}

// Float32 returns the float32 equivalent of v.
func (f Format) Float32(v F8) float32 {
	return f.Decode(v).Float32()
}

// Float32Matrix reconstructs every element of m.
func (f Format) Float32Matrix(m [][]F8) [][]float32 {
	out := make([][]float32, len(m))
	for i, row := range m {
		out[i] = make([]float32, len(row))
		for j, v := range row {
			out[i][j] = f.Float32(v)
		}
	}
	return out
}
