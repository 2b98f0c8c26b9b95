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

package mceqd

import (
	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/internal/dyadic"
	"github.com/qdmce/qdmce-go/internal/gf2m"
)

// The dyadic signature h of length 2^(m-1) satisfies
//
//	1/h[i^j] = 1/h[i] + 1/h[j] + 1/h[0]
//
// so it is fixed by h[0] and the entries at powers of two. The essence stores
// e = 1/h[0] at index m-1 and 1/h[2^s] + e at index s.

// fillClosure derives h[i+j] for 0 < j < i from h[i] and h[j], where i is a
// power of two and e = 1/h[0].
func fillClosure(f *gf2m.Field, h []uint32, i int, e uint32) {
	hi := f.Inv(h[i])
	for j := 1; j < i; j++ {
		h[i+j] = f.Inv(hi ^ f.Inv(h[j]) ^ e)
	}
}

// signatureFromEssence rebuilds the full dyadic signature.
func signatureFromEssence(f *gf2m.Field, essence []uint32) []uint32 {
	m := f.M()
	e := essence[m-1]
	h := make([]uint32, 1<<(m-1))
	h[0] = f.Inv(e)
	for s := 0; s < m-1; s++ {
		i := 1 << s
		h[i] = f.Inv(essence[s] ^ e)
		fillClosure(f, h, i, e)
	}
	return h
}

// supportFromSignature returns support[i] = 1/h[i] + e.
func supportFromSignature(f *gf2m.Field, h []uint32, e uint32) []uint32 {
	support := make([]uint32, len(h))
	for i, x := range h {
		support[i] = f.Inv(x) ^ e
	}
	return support
}

// goppaPolynomial returns g = prod (x - 1/h[i]) over the first t entries,
// along with its roots.
func goppaPolynomial(f *gf2m.Field, h []uint32, t int) (gf2m.Poly, []uint32) {
	roots := make([]uint32, t)
	for i := range roots {
		roots[i] = f.Inv(h[i])
	}
	return gf2m.FromRoots(f, roots), roots
}

// checkSupport returns the reason the support cannot define the code, or ""
// if it is consistent.
func checkSupport(f *gf2m.Field, support []uint32, g gf2m.Poly) string {
	seen := make(map[uint32]bool, len(support))
	for _, x := range support {
		if seen[x] {
			return reasonDuplicateSupport
		}
		seen[x] = true
		if g.Eval(f, x) == 0 {
			return reasonGoppaRoot
		}
	}
	return ""
}

// signatureBlocks splits h into blocks of size t.
func signatureBlocks(h []uint32, t int) [][]uint32 {
	blocks := make([][]uint32, len(h)/t)
	for i := range blocks {
		blocks[i] = h[i*t : (i+1)*t]
	}
	return blocks
}

// parityCheckMatrix cotraces each block of field elements into m bit planes,
// giving the binary parity check matrix as m x len(blocks) dyadic blocks.
func parityCheckMatrix(f *gf2m.Field, blocks [][]uint32) *dyadic.BlockMatrix {
	m := f.M()
	t := len(blocks[0])
	hc := dyadic.NewBlockMatrix(m, len(blocks), t)
	for c, b := range blocks {
		planes := f.Cotrace(b)
		for r := 0; r < m; r++ {
			hc.SetBlock(r, c, planes.Block(r*t, t))
		}
	}
	return hc
}

// systematicSignatures brings a copy of hc to the form [X | I] and returns
// the columns of X, each concatenated over the block rows. ok is false if the
// last Rows() block columns are singular.
func systematicSignatures(hc *dyadic.BlockMatrix) (sigs []*bitvec.Vector, ok bool) {
	m, cols, t := hc.Rows(), hc.Cols(), hc.BlockSize()
	work := hc.Clone()
	if !work.Eliminate(cols - m) {
		return nil, false
	}
	sigs = make([]*bitvec.Vector, cols-m)
	for c := range sigs {
		sigs[c] = bitvec.New(m * t)
		for r := 0; r < m; r++ {
			sigs[c].SetBlock(work.Block(r, c), r*t)
		}
	}
	return sigs, true
}
