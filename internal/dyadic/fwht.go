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

// Package dyadic implements binary dyadic matrices, represented by their
// signatures, and the block matrices built from them.
//
// A t x t dyadic matrix with signature h has entry h[i^j] at row i, column j.
// Dyadic matrices of a fixed size form a commutative algebra in which the
// product of signatures is their XOR convolution.
package dyadic

import (
	"fmt"
	"math/bits"

	"github.com/qdmce/qdmce-go/bitvec"
)

// checkSize panics unless n is a power of two.
func checkSize(n int) {
	if n <= 0 || bits.OnesCount(uint(n)) != 1 {
		panic(fmt.Sprintf("dyadic: block size %d is not a power of two", n))
	}
}

// fwht applies the unnormalized Walsh-Hadamard transform to a in place.
func fwht(a []int) {
	for h := 1; h < len(a); h <<= 1 {
		for i := 0; i < len(a); i += h << 1 {
			for j := i; j < i+h; j++ {
				x, y := a[j], a[j+h]
				a[j], a[j+h] = x+y, x-y
			}
		}
	}
}

func toInts(v *bitvec.Vector) []int {
	out := make([]int, v.Len())
	for _, i := range v.Ones() {
		out[i] = 1
	}
	return out
}

// Multiply returns the signature of the product of the dyadic matrices with
// signatures a and b, that is c[i] = XOR over k of a[k]&b[i^k].
//
// The convolution is computed over the integers with two Walsh-Hadamard
// transforms and reduced modulo 2. a and b must have the same power of two
// length.
func Multiply(a, b *bitvec.Vector) *bitvec.Vector {
	n := a.Len()
	if b.Len() != n {
		panic(fmt.Sprintf("dyadic: length mismatch %d != %d", n, b.Len()))
	}
	checkSize(n)
	x, y := toInts(a), toInts(b)
	fwht(x)
	fwht(y)
	for i := range x {
		x[i] *= y[i]
	}
	fwht(x)
	out := bitvec.New(n)
	for i, c := range x {
		// The transform applied twice scales by n.
		if (c/n)&1 == 1 {
			out.Set(i, true)
		}
	}
	return out
}

// Add returns the signature of the sum of the dyadic matrices with
// signatures a and b.
func Add(a, b *bitvec.Vector) *bitvec.Vector {
	out := a.Clone()
	out.Add(b)
	return out
}

// Identity returns the signature of the n x n identity matrix.
func Identity(n int) *bitvec.Vector {
	checkSize(n)
	out := bitvec.New(n)
	out.Set(0, true)
	return out
}

// IsRegular reports whether the dyadic matrix with signature a is
// invertible. The square of a binary dyadic matrix is the identity times the
// parity of its signature weight, so a matrix is either its own inverse or
// singular.
func IsRegular(a *bitvec.Vector) bool {
	return a.HammingWeight()%2 == 1
}

// Invert returns the signature of the inverse of a, which for a regular
// matrix is a itself. ok is false if a is singular.
func Invert(a *bitvec.Vector) (inv *bitvec.Vector, ok bool) {
	if !IsRegular(a) {
		return nil, false
	}
	return a.Clone(), true
}
