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

package dyadic

import (
	"fmt"

	"github.com/qdmce/qdmce-go/subtle/random"
)

// Permutation maps index i to p[i].
type Permutation []int

// RandomPermutation returns a uniformly random permutation of n elements.
func RandomPermutation(n int, rng random.Source) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Validate returns an error unless p is a permutation of n elements.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("dyadic: permutation has %d elements, want %d", len(p), n)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("dyadic: invalid permutation entry %d at %d", v, i)
		}
		seen[v] = true
	}
	return nil
}

// Inverse returns the permutation q with q[p[i]] = i.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

// Permute moves in[i] to position p[i] of the result.
func Permute[T any](p Permutation, in []T) []T {
	if len(in) != len(p) {
		panic(fmt.Sprintf("dyadic: permuting %d elements with a permutation of %d", len(in), len(p)))
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[p[i]] = v
	}
	return out
}

// PermuteDyadic applies the dyadic permutation with index sub to a block:
// out[k] = in[k^sub]. Applied to a dyadic signature it permutes the rows and
// columns of the matrix consistently, so the result is again dyadic.
func PermuteDyadic[T any](sub int, in []T) []T {
	checkSize(len(in))
	if sub < 0 || sub >= len(in) {
		panic(fmt.Sprintf("dyadic: permutation index %d out of range [0, %d)", sub, len(in)))
	}
	out := make([]T, len(in))
	for k := range out {
		out[k] = in[k^sub]
	}
	return out
}
