// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lmul

import (
	"fmt"

	"github.com/maruel/l-mul-go/fp8"
	"golang.org/x/sync/errgroup"
)

// Observer is called with the quantized inputs of MatMul, named "X" and "Y".
//
// It must not modify m.
type Observer func(name string, m [][]fp8.F8, f fp8.Format)

// Options are the optional arguments of MatMul. The zero value is valid.
type Options struct {
	// Rand is used for stochastic rounding while quantizing the inputs. It is
	// only used from the calling goroutine, x first then y, row by row. If nil,
	// the process wide generator is used.
	Rand fp8.Rand
	// Workers is the maximum number of output rows computed concurrently. 0 or
	// 1 means sequential. It doesn't affect the result.
	Workers int
	// Observer, if set, is called after quantization.
	Observer Observer
}

// MatMul quantizes x and y to the format with exponentBits bits of exponent
// and returns their product, where each scalar multiplication is done with
// L-Mul.
//
// Accumulation is exact float32 addition in increasing k order. Since
// floating point addition is not associative, the result is only
// reproducible for this order.
func MatMul(x, y [][]float32, exponentBits int, opts *Options) ([][]float32, error) {
	f, err := fp8.NewFormat(exponentBits)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &Options{}
	}
	if _, _, _, err = shapes(x, y); err != nil {
		return nil, err
	}
	qx, err := fp8.DowncastMatrix(f, x, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	qy, err := fp8.DowncastMatrix(f, y, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	if opts.Observer != nil {
		opts.Observer("X", qx, f)
		opts.Observer("Y", qy, f)
	}
	return MatMulF8(qx, qy, f, opts.Workers)
}

// MatMulF8 returns the product of already quantized matrices, where each
// scalar multiplication is done with L-Mul.
func MatMulF8(x, y [][]fp8.F8, f fp8.Format, workers int) ([][]float32, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: uninitialized Format", ErrInvalidFormat)
	}
	m, k, n, err := shapes(x, y)
	if err != nil {
		return nil, err
	}
	// Decode each operand once instead of once per multiplication.
	dx := decodeAll(x, f, m*k)
	dy := decodeAll(y, f, k*n)
	ker := newKernel(f)
	out := make([][]float32, m)
	backing := make([]float32, m*n)
	row := func(i int) {
		out[i] = backing[i*n : (i+1)*n : (i+1)*n]
		a := dx[i*k : (i+1)*k]
		for j := range n {
			sum := float32(0)
			for p := range a {
				sum += ker.multiply(&a[p], &dy[p*n+j])
			}
			out[i][j] = sum
		}
	}
	if workers <= 1 || m == 1 {
		for i := range m {
			row(i)
		}
		return out, nil
	}
	eg := errgroup.Group{}
	eg.SetLimit(workers)
	for i := range m {
		eg.Go(func() error {
			row(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeAll decodes m in row major order.
func decodeAll(m [][]fp8.F8, f fp8.Format, size int) []fp8.Decoded {
	out := make([]fp8.Decoded, 0, size)
	for _, r := range m {
		for _, v := range r {
			out = append(out, f.Decode(v))
		}
	}
	return out
}

// MatMulExact is the float32 reference for MatMul, without quantization.
func MatMulExact(x, y [][]float32) ([][]float32, error) {
	m, _, n, err := shapes(x, y)
	if err != nil {
		return nil, err
	}
	out := make([][]float32, m)
	for i := range m {
		out[i] = make([]float32, n)
		for j := range n {
			sum := float32(0)
			for p, v := range x[i] {
				// The conversion prevents fusing into a FMA.
				sum += float32(v * y[p][j])
			}
			out[i][j] = sum
		}
	}
	return out, nil
}
