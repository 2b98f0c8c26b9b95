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

package gf2m

import (
	"fmt"

	"github.com/qdmce/qdmce-go/bitvec"
)

// Cotrace spreads the s elements of p over m bit planes: bit j*s+i of the
// result is bit j of p[i]. Plane j is therefore the binary signature of the
// j-th bit of every element.
func (f *Field) Cotrace(p Poly) *bitvec.Vector {
	s := len(p)
	v := bitvec.New(f.m * s)
	for i, e := range p {
		for j := 0; j < f.m; j++ {
			if e>>j&1 == 1 {
				v.Set(j*s+i, true)
			}
		}
	}
	return v
}

// FromCotrace inverts Cotrace. The length of v must be a multiple of m.
func (f *Field) FromCotrace(v *bitvec.Vector) (Poly, error) {
	if v.Len()%f.m != 0 {
		return nil, fmt.Errorf("gf2m: cotrace length %d is not a multiple of %d", v.Len(), f.m)
	}
	s := v.Len() / f.m
	p := make(Poly, s)
	for _, k := range v.Ones() {
		j, i := k/s, k%s
		p[i] |= 1 << j
	}
	return p, nil
}
