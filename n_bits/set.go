// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package n_bits

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math/bits"
)

// BitSet is a bit set.
//
// It is designed to be densely stored in JSON.
type BitSet struct {
	Len  int
	Bits []uint64
}

// Resize changes the number of bits, keeping the bits already set that still
// fit.
func (b *BitSet) Resize(l int) {
	d := make([]uint64, (l+63)/64)
	copy(d, b.Bits)
	if r := l % 64; r != 0 && len(d) != 0 {
		d[len(d)-1] &= (1 << r) - 1
	}
	b.Len = l
	b.Bits = d
}

func (b *BitSet) Set(i int) {
	b.Bits[i/64] |= 1 << (i % 64)
}

func (b *BitSet) Get(i int) bool {
	return b.Bits[i/64]&(1<<(i%64)) != 0
}

func (b *BitSet) Expand() []bool {
	out := make([]bool, b.Len)
	for i := range b.Len {
		out[i] = b.Get(i)
	}
	return out
}

// Effective returns the number of bits set.
func (b *BitSet) Effective() int {
	o := 0
	for _, v := range b.Bits {
		o += bits.OnesCount64(v)
	}
	return o
}

// MarshalJSON implements json.Marshaler
//
// The first byte is the number of valid bits in the last uint64. If 0, it
// means 64.
func (b BitSet) MarshalJSON() ([]byte, error) {
	var dst []byte
	if b.Len != 0 {
		d := make([]byte, 1, len(b.Bits)*8+1)
		d[0] = byte(b.Len % 64)
		var buf [8]byte
		for _, v := range b.Bits {
			binary.LittleEndian.PutUint64(buf[:], v)
			d = append(d, buf[:]...)
		}
		dst = make([]byte, base64.RawStdEncoding.EncodedLen(len(d)))
		base64.RawStdEncoding.Encode(dst, d)
	}
	return json.Marshal(string(dst))
}

// UnmarshalJSON implements json.Unmarshaler
func (b *BitSet) UnmarshalJSON(data []byte) error {
	s := ""
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) == 0 {
		b.Len = 0
		b.Bits = nil
		return nil
	}
	d, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	if len(d) == 0 || (len(d)-1)%8 != 0 {
		return errors.New("invalid BitSet base64 encoding")
	}
	last := d[0]
	if last > 63 {
		return errors.New("invalid BitSet encoding")
	}
	if last == 0 {
		last = 64
	}
	l := (len(d) - 1) / 8
	b.Bits = make([]uint64, l)
	for i := range b.Bits {
		b.Bits[i] = binary.LittleEndian.Uint64(d[1+i*8 : 9+i*8])
	}
	b.Len = (l-1)*64 + int(last)
	return nil
}
