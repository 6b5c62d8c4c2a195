// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tensor loads floating point tensors from safetensors files as
// float32 matrices.
package tensor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/maruel/floatx"
	"github.com/nlpodyssey/safetensors"
	"github.com/x448/float16"
)

// Named is a tensor reshaped as a matrix.
//
// The last dimension is the number of columns, all the other dimensions are
// flattened into rows. Scalars and vectors are a single row.
type Named struct {
	Name  string
	DType string
	Shape []uint64
	Rows  [][]float32
}

// NumEl returns the number of values.
func (n *Named) NumEl() int64 {
	if len(n.Rows) == 0 {
		return 0
	}
	return int64(len(n.Rows) * len(n.Rows[0]))
}

// File is the content of a safetensors file.
type File struct {
	// Tensors is sorted by name.
	Tensors []Named
	// Skipped lists the tensors that are not stored as floating point or that
	// have no element.
	Skipped []string
}

// Load reads a safetensors file. If match is not nil, only the tensors for
// which it returns true are decoded.
func Load(path string, match func(name string) bool) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(b, match)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a safetensors buffer. If match is not nil, only the tensors
// for which it returns true are decoded.
func Decode(b []byte, match func(name string) bool) (*File, error) {
	s, err := safetensors.Deserialize(b)
	if err != nil {
		return nil, err
	}
	f := &File{}
	for _, t := range s.Tensors() {
		if match != nil && !match(t.Name) {
			continue
		}
		wordSize := 0
		switch dt := t.TensorView.DType(); dt {
		case safetensors.BF16, safetensors.F16:
			wordSize = 2
		case safetensors.F32:
			wordSize = 4
		case safetensors.F64:
			wordSize = 8
		default:
			f.Skipped = append(f.Skipped, t.Name)
			continue
		}
		n, err := toNamed(t.Name, t.TensorView, wordSize)
		if errors.Is(err, errEmpty) {
			f.Skipped = append(f.Skipped, t.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
		f.Tensors = append(f.Tensors, n)
	}
	slices.SortFunc(f.Tensors, func(a, b Named) int { return strings.Compare(a.Name, b.Name) })
	slices.Sort(f.Skipped)
	return f, nil
}

var errEmpty = errors.New("empty tensor")

func toNamed(name string, t safetensors.TensorView, wordSize int) (Named, error) {
	shape := t.Shape()
	numEl := uint64(1)
	for _, d := range shape {
		numEl *= d
	}
	data := t.Data()
	if uint64(len(data)) != numEl*uint64(wordSize) {
		return Named{}, fmt.Errorf("%s: %d bytes for shape %v", name, len(data), shape)
	}
	cols := uint64(1)
	if len(shape) != 0 {
		cols = shape[len(shape)-1]
	}
	if numEl == 0 || cols == 0 {
		return Named{}, errEmpty
	}
	values := decodeValues(t.DType(), data, int(numEl))
	rows := make([][]float32, numEl/cols)
	for i := range rows {
		rows[i] = values[uint64(i)*cols : uint64(i+1)*cols : uint64(i+1)*cols]
	}
	return Named{Name: name, DType: fmt.Sprint(t.DType()), Shape: shape, Rows: rows}, nil
}

// decodeValues converts little endian values to float32.
func decodeValues(dt safetensors.DType, data []byte, numEl int) []float32 {
	out := make([]float32, numEl)
	switch dt {
	case safetensors.BF16:
		for i := range out {
			out[i] = floatx.BF16(binary.LittleEndian.Uint16(data[2*i:])).Float32()
		}
	case safetensors.F16:
		for i := range out {
			out[i] = float16.Frombits(binary.LittleEndian.Uint16(data[2*i:])).Float32()
		}
	case safetensors.F32:
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		}
	case safetensors.F64:
		for i := range out {
			out[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:])))
		}
	}
	return out
}
