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

// Package gf2m implements arithmetic in the binary extension fields GF(2^m),
// polynomials over them and the Goppa decoding routines built on top.
package gf2m

import "fmt"

const (
	// MinDegree is the smallest supported extension degree.
	MinDegree = 2
	// MaxDegree is the largest supported extension degree.
	MaxDegree = 16
)

// Field is GF(2^m) in polynomial basis, defined by the smallest primitive
// polynomial of degree m. Elements are the integers [0, 2^m) whose bits are
// the coefficients of the basis representation.
//
// A Field is immutable after construction and safe for concurrent use.
type Field struct {
	m    int
	n    uint32
	poly uint32
	// log[0] is unused.
	log []uint32
	// exp holds two periods so that exp[log[a]+log[b]] needs no reduction.
	exp []uint32
}

// New returns GF(2^m).
func New(m int) (*Field, error) {
	if m < MinDegree || m > MaxDegree {
		return nil, fmt.Errorf("gf2m: degree %d out of range [%d, %d]", m, MinDegree, MaxDegree)
	}
	n := uint32(1) << m
	for poly := n | 1; poly < n<<1; poly += 2 {
		if f, ok := tryPrimitive(m, poly); ok {
			return f, nil
		}
	}
	// A primitive polynomial exists for every degree.
	return nil, fmt.Errorf("gf2m: no primitive polynomial of degree %d", m)
}

// tryPrimitive builds the log tables for poly and reports whether x
// generates the whole multiplicative group modulo poly.
func tryPrimitive(m int, poly uint32) (*Field, bool) {
	n := uint32(1) << m
	order := n - 1
	f := &Field{
		m:    m,
		n:    n,
		poly: poly,
		log:  make([]uint32, n),
		exp:  make([]uint32, 2*order),
	}
	x := uint32(1)
	for i := uint32(0); i < order; i++ {
		if x == 1 && i != 0 {
			return nil, false
		}
		f.exp[i] = x
		f.exp[i+order] = x
		f.log[x] = i
		x <<= 1
		if x&n != 0 {
			x ^= poly
		}
	}
	return f, x == 1
}

// M returns the extension degree.
func (f *Field) M() int { return f.m }

// N returns the number of field elements, 2^m.
func (f *Field) N() uint32 { return f.n }

// Poly returns the defining polynomial, bit i holding the coefficient of x^i.
func (f *Field) Poly() uint32 { return f.poly }

// Add returns a+b, which in characteristic 2 is also a-b.
func (f *Field) Add(a, b uint32) uint32 { return a ^ b }

// Mul returns a*b.
func (f *Field) Mul(a, b uint32) uint32 {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[f.log[a]+f.log[b]]
}

// Inv returns the multiplicative inverse of a. Inv(0) is defined as 0.
func (f *Field) Inv(a uint32) uint32 {
	if a == 0 {
		return 0
	}
	order := f.n - 1
	return f.exp[(order-f.log[a])%order]
}

// Div returns a/b. Division by zero returns 0.
func (f *Field) Div(a, b uint32) uint32 {
	if a == 0 || b == 0 {
		return 0
	}
	order := f.n - 1
	return f.exp[f.log[a]+order-f.log[b]]
}

// Sqr returns a^2.
func (f *Field) Sqr(a uint32) uint32 { return f.Mul(a, a) }

// Sqrt returns the unique b with b^2 = a.
func (f *Field) Sqrt(a uint32) uint32 {
	if a == 0 {
		return 0
	}
	l := f.log[a]
	if l%2 == 1 {
		// The group order 2^m-1 is odd, so l+order is even.
		l += f.n - 1
	}
	return f.exp[l/2]
}

// Exp returns a^k for k >= 0.
func (f *Field) Exp(a uint32, k int) uint32 {
	if k == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	order := uint64(f.n - 1)
	return f.exp[uint64(f.log[a])*uint64(k)%order]
}
