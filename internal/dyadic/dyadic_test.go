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

package dyadic_test

import (
	mrand "math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/internal/dyadic"
)

func randomVector(rng *mrand.Rand, n int) *bitvec.Vector {
	v := bitvec.New(n)
	for i := 0; i < n; i++ {
		v.Set(i, rng.IntN(2) == 1)
	}
	return v
}

// multiplyNaive computes the XOR convolution directly.
func multiplyNaive(a, b *bitvec.Vector) *bitvec.Vector {
	n := a.Len()
	out := bitvec.New(n)
	for i := 0; i < n; i++ {
		var bit bool
		for k := 0; k < n; k++ {
			bit = bit != (a.Get(k) && b.Get(i^k))
		}
		out.Set(i, bit)
	}
	return out
}

func TestMultiplyMatchesConvolution(t *testing.T) {
	rng := mrand.New(mrand.NewPCG(1, 1))
	for _, n := range []int{1, 2, 4, 8, 32, 128} {
		for i := 0; i < 20; i++ {
			a, b := randomVector(rng, n), randomVector(rng, n)
			got := dyadic.Multiply(a, b)
			if diff := cmp.Diff(multiplyNaive(a, b), got); diff != "" {
				t.Fatalf("n=%d: Multiply(%v, %v) mismatch (-want +got):\n%s", n, a, b, diff)
			}
			if diff := cmp.Diff(got, dyadic.Multiply(b, a)); diff != "" {
				t.Fatalf("n=%d: Multiply is not commutative (-ab +ba):\n%s", n, diff)
			}
		}
	}
}

func TestMultiplyKnownValues(t *testing.T) {
	for _, tc := range []struct {
		a, b, want string
	}{
		{"1000", "0110", "0110"},
		{"0100", "0110", "1001"},
		{"1100", "1100", "0000"},
		{"1110", "1110", "1000"},
		{"10110010", "10000000", "10110010"},
	} {
		a, _ := bitvec.Parse(tc.a)
		b, _ := bitvec.Parse(tc.b)
		if got := dyadic.Multiply(a, b).String(); got != tc.want {
			t.Errorf("Multiply(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMultiplyPanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *bitvec.Vector
	}{
		{"length mismatch", bitvec.New(4), bitvec.New(8)},
		{"not a power of two", bitvec.New(6), bitvec.New(6)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Multiply() did not panic")
				}
			}()
			dyadic.Multiply(tc.a, tc.b)
		})
	}
}

func TestSquareIsParityTimesIdentity(t *testing.T) {
	rng := mrand.New(mrand.NewPCG(2, 2))
	for i := 0; i < 100; i++ {
		a := randomVector(rng, 16)
		sq := dyadic.Multiply(a, a)
		if dyadic.IsRegular(a) {
			if diff := cmp.Diff(dyadic.Identity(16), sq); diff != "" {
				t.Fatalf("a*a for regular a = %v mismatch (-want +got):\n%s", a, diff)
			}
			inv, ok := dyadic.Invert(a)
			if !ok || !inv.Equal(a) {
				t.Fatalf("Invert(%v) = %v, %v, want a, true", a, inv, ok)
			}
		} else {
			if !sq.IsZero() {
				t.Fatalf("a*a for singular a = %v is %v, want zero", a, sq)
			}
			if _, ok := dyadic.Invert(a); ok {
				t.Fatalf("Invert(%v) ok = true, want false", a)
			}
		}
	}
}

func TestAddDoesNotModifyOperands(t *testing.T) {
	a, _ := bitvec.Parse("1100")
	b, _ := bitvec.Parse("1010")
	if got, want := dyadic.Add(a, b).String(), "0110"; got != want {
		t.Errorf("Add() = %s, want %s", got, want)
	}
	if a.String() != "1100" || b.String() != "1010" {
		t.Errorf("Add() modified its operands: %v %v", a, b)
	}
}

type fixedSource struct{ rng *mrand.Rand }

func (s fixedSource) IntN(n int) int { return s.rng.IntN(n) }

func TestRandomPermutation(t *testing.T) {
	src := fixedSource{mrand.New(mrand.NewPCG(3, 3))}
	for _, n := range []int{0, 1, 2, 17, 64} {
		p := dyadic.RandomPermutation(n, src)
		if err := p.Validate(n); err != nil {
			t.Fatalf("RandomPermutation(%d).Validate() err = %v, want nil", n, err)
		}
		inv := p.Inverse()
		for i := range p {
			if inv[p[i]] != i {
				t.Fatalf("Inverse()[p[%d]] = %d, want %d", i, inv[p[i]], i)
			}
		}
	}
}

func TestValidateRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		p    dyadic.Permutation
		n    int
	}{
		{"wrong length", dyadic.Permutation{0, 1}, 3},
		{"repeat", dyadic.Permutation{0, 0, 2}, 3},
		{"out of range", dyadic.Permutation{0, 3, 1}, 3},
		{"negative", dyadic.Permutation{-1, 0, 1}, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.p.Validate(tc.n); err == nil {
				t.Errorf("Validate(%d) err = nil, want error", tc.n)
			}
		})
	}
}

func TestPermute(t *testing.T) {
	p := dyadic.Permutation{2, 0, 3, 1}
	got := dyadic.Permute(p, []string{"a", "b", "c", "d"})
	if diff := cmp.Diff([]string{"b", "d", "a", "c"}, got); diff != "" {
		t.Errorf("Permute() mismatch (-want +got):\n%s", diff)
	}
	back := dyadic.Permute(p.Inverse(), got)
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, back); diff != "" {
		t.Errorf("Permute(Inverse()) mismatch (-want +got):\n%s", diff)
	}
}

func TestPermuteDyadic(t *testing.T) {
	in := []uint32{10, 11, 12, 13, 14, 15, 16, 17}
	for _, tc := range []struct {
		sub  int
		want []uint32
	}{
		{0, []uint32{10, 11, 12, 13, 14, 15, 16, 17}},
		{1, []uint32{11, 10, 13, 12, 15, 14, 17, 16}},
		{5, []uint32{15, 14, 17, 16, 11, 10, 13, 12}},
	} {
		if diff := cmp.Diff(tc.want, dyadic.PermuteDyadic(tc.sub, in)); diff != "" {
			t.Errorf("PermuteDyadic(%d) mismatch (-want +got):\n%s", tc.sub, diff)
		}
	}
}

// TestPermuteDyadicKeepsMatrixDyadic checks that permuting a signature
// conjugates the dyadic matrix by the same permutation of rows and columns.
func TestPermuteDyadicKeepsMatrixDyadic(t *testing.T) {
	h := []int{3, 1, 4, 1, 5, 9, 2, 6}
	const sub = 6
	ph := dyadic.PermuteDyadic(sub, h)
	for i := range h {
		for j := range h {
			if got, want := ph[i^j], h[(i^sub)^(j^sub)^sub]; got != want {
				t.Fatalf("permuted[%d][%d] = %d, want %d", i, j, got, want)
			}
		}
	}
}

func randomBlockMatrix(rng *mrand.Rand, rows, cols, size int) *dyadic.BlockMatrix {
	m := dyadic.NewBlockMatrix(rows, cols, size)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.SetBlock(r, c, randomVector(rng, size))
		}
	}
	return m
}

// mulBinary returns the expanded binary matrix of m times the bit vector v.
func mulBinary(m *dyadic.BlockMatrix, v []bool) []bool {
	out := make([]bool, m.Rows()*m.BlockSize())
	for i := range out {
		for j, bit := range v {
			if bit && m.Bit(i, j) {
				out[i] = !out[i]
			}
		}
	}
	return out
}

func TestEliminate(t *testing.T) {
	for _, tc := range []struct {
		name             string
		rows, cols, size int
	}{
		{"3x6 blocks of 4", 3, 6, 4},
		{"5x8 blocks of 2", 5, 8, 2},
		{"4x12 blocks of 8", 4, 12, 8},
		{"2x2 blocks of 1", 2, 2, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rng := mrand.New(mrand.NewPCG(uint64(tc.rows), uint64(tc.cols)))
			offset := tc.cols - tc.rows
			var orig, red *dyadic.BlockMatrix
			for {
				orig = randomBlockMatrix(rng, tc.rows, tc.cols, tc.size)
				red = orig.Clone()
				if red.Eliminate(offset) {
					break
				}
			}
			for r := 0; r < tc.rows; r++ {
				for c := 0; c < tc.rows; c++ {
					want := bitvec.New(tc.size)
					if r == c {
						want = dyadic.Identity(tc.size)
					}
					if diff := cmp.Diff(want, red.Block(r, offset+c)); diff != "" {
						t.Fatalf("block (%d, %d) mismatch (-want +got):\n%s", r, offset+c, diff)
					}
				}
			}
			// red = [P | I] so (u, P*u) lies in the kernel of the original.
			k := offset * tc.size
			for trial := 0; trial < 10; trial++ {
				word := make([]bool, tc.cols*tc.size)
				for i := 0; i < k; i++ {
					word[i] = rng.IntN(2) == 1
				}
				pu := mulBinary(red, append(word[:k:k], make([]bool, tc.rows*tc.size)...))
				copy(word[k:], pu)
				for i, bit := range mulBinary(orig, word) {
					if bit {
						t.Fatalf("original matrix times codeword has bit %d set", i)
					}
				}
			}
		})
	}
}

func TestEliminateSingular(t *testing.T) {
	rng := mrand.New(mrand.NewPCG(9, 9))
	m := randomBlockMatrix(rng, 3, 5, 4)
	// Two equal rows make the right hand square singular.
	for c := 0; c < 5; c++ {
		m.SetBlock(2, c, m.Block(0, c))
	}
	if m.Eliminate(2) {
		t.Errorf("Eliminate() = true for a matrix with equal rows, want false")
	}

	even := dyadic.NewBlockMatrix(2, 3, 4)
	sig, _ := bitvec.Parse("1100")
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			even.SetBlock(r, c, sig)
		}
	}
	if even.Eliminate(1) {
		t.Errorf("Eliminate() = true for even weight blocks, want false")
	}
}

func TestEliminatePanicsOnBadOffset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Eliminate(3) on a 2x4 matrix did not panic")
		}
	}()
	dyadic.NewBlockMatrix(2, 4, 2).Eliminate(3)
}
