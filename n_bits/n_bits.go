// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package n_bits analyzes how well the sign, exponent and mantissa bits of
// quantized tensors are used.
package n_bits

import (
	"math"

	"github.com/maruel/l-mul-go/fp8"
	"github.com/maruel/l-mul-go/lmul"
)

// AnalyzedModel is the analyzed data.
type AnalyzedModel struct {
	Tensors []AnalyzedTensor `json:"tensors"`
}

// AnalyzedTensor contains the stats coming from an analyzed tensor.
type AnalyzedTensor struct {
	Name   string  `json:"name"`
	Format string  `json:"format"`
	NumEl  int64   `json:"numel"` // Number of weights.
	Avg    float32 `json:"avg"`
	Min    float32 `json:"min"`
	Max    float32 `json:"max"`
	// Zeros is the number of values in the zero/subnormal region.
	Zeros int64 `json:"zeros"`
	// Saturated is the number of values at the largest magnitude.
	Saturated int64   `json:"saturated"`
	Sign      BitKind `json:"s"`
	Exponent  BitKind `json:"exp"`
	Mantissa  BitKind `json:"man"`
	// Codes is the set of encoded bytes seen.
	Codes BitSet `json:"codes"`
	// LMul is the approximation error of an L-Mul product computed from this
	// tensor, when the caller measured one.
	LMul *lmul.Stats `json:"lmul,omitempty"`
}

// Bytes returns the number of bytes this tensor occupies.
func (a *AnalyzedTensor) Bytes() int64 {
	return a.NumEl
}

// ExponentSpan returns the lowest and highest non-zero exponent fields seen,
// or 0, 0 if all the values are in the zero/subnormal region.
func (a *AnalyzedTensor) ExponentSpan() (int, int) {
	lo, hi := 0, 0
	for i := 1; i < len(a.Exponent.ValuesSeen); i++ {
		if a.Exponent.ValuesSeen[i] != 0 {
			if lo == 0 {
				lo = i
			}
			hi = i
		}
	}
	return lo, hi
}

// CodesUsed returns the log2 of the number of different bytes seen.
func (a *AnalyzedTensor) CodesUsed() float32 {
	n := a.Codes.Effective()
	if n == 0 {
		return 0
	}
	return float32(math.Log2(float64(n)))
}

type BitKind struct {
	// Allocation is the number of bits allocated for this kind of value (sign, exponent, mantissa).
	Allocation int `json:"alloc"`
	// ValuesSeen is the number of times each value was seen in the tensor. Its length is 1<<Allocation.
	ValuesSeen []int `json:"seen"`

	initialized  bool
	effective    int
	actuallyUsed float32
	wasted       int
}

func (b *BitKind) cache() {
	if !b.initialized {
		b.effective = effective(b.ValuesSeen)
		a := 0.
		if b.effective != 0 {
			a = math.Log2(float64(b.effective))
		}
		b.actuallyUsed = float32(a)
		b.wasted = b.Allocation - int(math.Ceil(a))
		b.initialized = true
	}
}

func (b *BitKind) NumberDifferentValuesSeen() int {
	b.cache()
	return b.effective
}

func (b *BitKind) BitsActuallyUsed() float32 {
	b.cache()
	return b.actuallyUsed
}

func (b *BitKind) BitsWasted() int {
	b.cache()
	return b.wasted
}

// effective returns the number of non-zero items in a slice.
func effective(l []int) int {
	o := 0
	for _, v := range l {
		if v != 0 {
			o++
		}
	}
	return o
}

// calcF8HistogramAndStats calculates the actual use of sign, exponent and
// mantissa bits plus floating point stats.
func calcF8HistogramAndStats(m [][]fp8.F8, f fp8.Format) ([]int, []int, []int, [1 << 8]int, float32, float32, float32) {
	signs := make([]int, 1<<1)
	exponents := make([]int, 1<<f.ExponentBits())
	mantissas := make([]int, 1<<f.MantissaBits())
	codes := [1 << 8]int{}
	min := float32(math.MaxFloat32)
	max := float32(-math.MaxFloat32)
	total := float64(0.)

	// Decoding through a table is much faster than f.Float32().
	var lookup [1 << 8]float32
	for i := range lookup {
		lookup[i] = f.Float32(fp8.F8(i))
	}
	numEl := 0
	for _, row := range m {
		numEl += len(row)
		for _, v := range row {
			sign, exponent, mantissa := f.Components(v)
			signs[sign]++
			exponents[exponent]++
			mantissas[mantissa]++
			codes[v]++
			x := lookup[v]
			total += float64(x)
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
	}
	if numEl == 0 {
		return signs, exponents, mantissas, codes, 0, 0, 0
	}
	return signs, exponents, mantissas, codes, float32(total / float64(numEl)), min, max
}

// AnalyzeF8 analyzes how well the bits in a quantized tensor are used.
func AnalyzeF8(name string, m [][]fp8.F8, f fp8.Format) AnalyzedTensor {
	signs, exponents, mantissas, codes, avg, min, max := calcF8HistogramAndStats(m, f)
	analyzed := AnalyzedTensor{
		Name:     name,
		Format:   f.String(),
		Avg:      avg,
		Min:      min,
		Max:      max,
		Sign:     BitKind{Allocation: 1, ValuesSeen: signs},
		Exponent: BitKind{Allocation: f.ExponentBits(), ValuesSeen: exponents},
		Mantissa: BitKind{Allocation: f.MantissaBits(), ValuesSeen: mantissas},
	}
	analyzed.Codes.Resize(len(codes))
	top := f.MaxExponent()<<f.MantissaBits() | f.MaxMantissa()
	for i, c := range codes {
		if c == 0 {
			continue
		}
		analyzed.Codes.Set(i)
		analyzed.NumEl += int64(c)
		if _, exponent, _ := f.Components(fp8.F8(i)); exponent == 0 {
			analyzed.Zeros += int64(c)
		}
		if i&0x7F == top {
			analyzed.Saturated += int64(c)
		}
	}
	return analyzed
}
