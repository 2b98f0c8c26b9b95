// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bitvec provides fixed-length vectors over GF(2).
//
// Plaintexts, ciphertexts and dyadic signatures of the quasi-dyadic McEliece
// cryptosystem are all represented as a [Vector].
package bitvec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a vector over GF(2) with a fixed length. Create vectors with
// [New], [Parse] or [FromBytes].
//
// Operations that combine two vectors panic when the lengths or offsets are
// out of range, like slice indexing.
type Vector struct {
	n    int
	bits *bitset.BitSet
}

// New returns an all-zero vector of length n.
func New(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative length %d", n))
	}
	return &Vector{n: n, bits: bitset.New(uint(n))}
}

// Parse returns the vector described by a string of '0' and '1' characters,
// bit 0 first.
func Parse(s string) (*Vector, error) {
	v := New(len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			v.bits.Set(uint(i))
		default:
			return nil, fmt.Errorf("bitvec: invalid character %q at %d", c, i)
		}
	}
	return v, nil
}

// FromBytes unpacks the first n bits of b, least significant bit of b[0]
// first.
func FromBytes(b []byte, n int) (*Vector, error) {
	if n < 0 || len(b) != (n+7)/8 {
		return nil, fmt.Errorf("bitvec: got %d bytes, want %d for %d bits", len(b), (n+7)/8, n)
	}
	v := New(n)
	for i := 0; i < n; i++ {
		if b[i/8]>>(i%8)&1 == 1 {
			v.bits.Set(uint(i))
		}
	}
	return v, nil
}

// Bytes packs v into ceil(Len()/8) bytes, least significant bit first.
// Padding bits of the last byte are zero.
func (v *Vector) Bytes() []byte {
	out := make([]byte, (v.n+7)/8)
	for _, i := range v.Ones() {
		out[i/8] |= 1 << (i % 8)
	}
	return out
}

// Len returns the number of bits in v.
func (v *Vector) Len() int { return v.n }

func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, v.n))
	}
}

// Get returns bit i.
func (v *Vector) Get(i int) bool {
	v.checkIndex(i)
	return v.bits.Test(uint(i))
}

// Set sets bit i to bit.
func (v *Vector) Set(i int, bit bool) {
	v.checkIndex(i)
	v.bits.SetTo(uint(i), bit)
}

// Flip inverts bit i.
func (v *Vector) Flip(i int) {
	v.checkIndex(i)
	v.bits.Flip(uint(i))
}

// HammingWeight returns the number of set bits.
func (v *Vector) HammingWeight() int {
	return int(v.bits.Count())
}

// IsZero reports whether no bit of v is set.
func (v *Vector) IsZero() bool { return v.HammingWeight() == 0 }

// Add sets v to v XOR w. Both vectors must have the same length.
func (v *Vector) Add(w *Vector) {
	if v.n != w.n {
		panic(fmt.Sprintf("bitvec: length mismatch %d != %d", v.n, w.n))
	}
	v.bits.InPlaceSymmetricDifference(w.bits)
}

// AddOffset XORs w into v starting at bit offset.
func (v *Vector) AddOffset(w *Vector, offset int) {
	if offset < 0 || offset+w.n > v.n {
		panic(fmt.Sprintf("bitvec: block [%d, %d) out of range [0, %d)", offset, offset+w.n, v.n))
	}
	for _, i := range w.Ones() {
		v.bits.Flip(uint(offset + i))
	}
}

// Block returns a copy of the size bits starting at offset.
func (v *Vector) Block(offset, size int) *Vector {
	if offset < 0 || size < 0 || offset+size > v.n {
		panic(fmt.Sprintf("bitvec: block [%d, %d) out of range [0, %d)", offset, offset+size, v.n))
	}
	out := New(size)
	for i := 0; i < size; i++ {
		if v.bits.Test(uint(offset + i)) {
			out.bits.Set(uint(i))
		}
	}
	return out
}

// SetBlock overwrites the bits of v starting at offset with w.
func (v *Vector) SetBlock(w *Vector, offset int) {
	if offset < 0 || offset+w.n > v.n {
		panic(fmt.Sprintf("bitvec: block [%d, %d) out of range [0, %d)", offset, offset+w.n, v.n))
	}
	for i := 0; i < w.n; i++ {
		v.bits.SetTo(uint(offset+i), w.bits.Test(uint(i)))
	}
}

// Concat returns a new vector holding v followed by w.
func (v *Vector) Concat(w *Vector) *Vector {
	out := New(v.n + w.n)
	out.SetBlock(v, 0)
	out.SetBlock(w, v.n)
	return out
}

// Truncate returns a copy of the first n bits of v.
func (v *Vector) Truncate(n int) *Vector {
	return v.Block(0, n)
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{n: v.n, bits: v.bits.Clone()}
}

// Equal reports whether v and w have the same length and bits.
func (v *Vector) Equal(w *Vector) bool {
	if v.n != w.n {
		return false
	}
	if v.n == 0 {
		return true
	}
	return v.bits.Equal(w.bits)
}

// Ones returns the indices of the set bits in increasing order.
func (v *Vector) Ones() []int {
	var out []int
	for i, ok := v.bits.NextSet(0); ok && int(i) < v.n; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// String renders v as '0'/'1' characters, bit 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
