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

import "fmt"

// Poly is a polynomial over GF(2^m); p[i] is the coefficient of x^i.
//
// Trailing zero coefficients are allowed. The zero polynomial is any Poly
// with only zero coefficients, including the empty one.
type Poly []uint32

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return p.Degree() < 0 }

// Clone returns a copy of p.
func (p Poly) Clone() Poly { return append(Poly(nil), p...) }

// trim drops trailing zero coefficients.
func (p Poly) trim() Poly { return p[:p.Degree()+1] }

// Equal reports whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	d := p.Degree()
	if d != q.Degree() {
		return false
	}
	for i := 0; i <= d; i++ {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Eval returns p(x).
func (p Poly) Eval(f *Field, x uint32) uint32 {
	var r uint32
	for i := len(p) - 1; i >= 0; i-- {
		r = f.Mul(r, x) ^ p[i]
	}
	return r
}

// Add returns p+q.
func (p Poly) Add(q Poly) Poly {
	if len(p) < len(q) {
		p, q = q, p
	}
	r := p.Clone()
	for i, c := range q {
		r[i] ^= c
	}
	return r.trim()
}

// Scale returns c*p.
func (p Poly) Scale(f *Field, c uint32) Poly {
	r := make(Poly, len(p))
	for i, a := range p {
		r[i] = f.Mul(a, c)
	}
	return r.trim()
}

// Mul returns p*q.
func (p Poly) Mul(f *Field, q Poly) Poly {
	dp, dq := p.Degree(), q.Degree()
	if dp < 0 || dq < 0 {
		return nil
	}
	r := make(Poly, dp+dq+1)
	for i := 0; i <= dp; i++ {
		if p[i] == 0 {
			continue
		}
		for j := 0; j <= dq; j++ {
			r[i+j] ^= f.Mul(p[i], q[j])
		}
	}
	return r
}

// MulLinear returns p*(x-c).
func (p Poly) MulLinear(f *Field, c uint32) Poly {
	d := p.Degree()
	if d < 0 {
		return nil
	}
	r := make(Poly, d+2)
	for i := 0; i <= d; i++ {
		r[i+1] ^= p[i]
		r[i] ^= f.Mul(p[i], c)
	}
	return r
}

// DivLinear divides p by (x-c) and returns the quotient and the remainder
// p(c).
func (p Poly) DivLinear(f *Field, c uint32) (Poly, uint32) {
	d := p.Degree()
	if d < 1 {
		if d < 0 {
			return nil, 0
		}
		return nil, p[0]
	}
	q := make(Poly, d)
	acc := p[d]
	for i := d - 1; i >= 0; i-- {
		q[i] = acc
		acc = f.Mul(acc, c) ^ p[i]
	}
	return q, acc
}

// Mod returns p mod g. It panics if g is zero.
func (p Poly) Mod(f *Field, g Poly) Poly {
	dg := g.Degree()
	if dg < 0 {
		panic("gf2m: polynomial division by zero")
	}
	r := p.Clone()
	lead := f.Inv(g[dg])
	for d := r.Degree(); d >= dg; d = r.Degree() {
		c := f.Mul(r[d], lead)
		for i := 0; i <= dg; i++ {
			r[d-dg+i] ^= f.Mul(c, g[i])
		}
	}
	return r.trim()
}

// FromRoots returns the monic polynomial whose roots are exactly roots.
func FromRoots(f *Field, roots []uint32) Poly {
	p := Poly{1}
	for _, z := range roots {
		p = p.MulLinear(f, z)
	}
	return p
}

// SquareRootMatrix returns the matrix that takes square roots modulo g.
//
// Squaring modulo g maps a = sum a_i x^i to Q*(a_i^2) where column i of Q is
// x^(2i) mod g. The result holds the columns of Q^-1, so that
// SqrtMod(a) = sqrt(Q^-1 a) coefficient-wise. Q is invertible exactly when
// g is square-free.
func (g Poly) SquareRootMatrix(f *Field) ([]Poly, error) {
	t := g.Degree()
	if t < 1 {
		return nil, fmt.Errorf("gf2m: square root matrix of a degree %d polynomial", t)
	}
	// a is Q augmented with the identity.
	a := make([][]uint32, t)
	for row := range a {
		a[row] = make([]uint32, 2*t)
		a[row][t+row] = 1
	}
	for col := 0; col < t; col++ {
		sq := make(Poly, 2*col+1)
		sq[2*col] = 1
		sq = sq.Mod(f, g)
		for row := 0; row < len(sq); row++ {
			a[row][col] = sq[row]
		}
	}
	if !gaussJordan(f, a, t) {
		return nil, fmt.Errorf("gf2m: polynomial is not square-free")
	}
	cols := make([]Poly, t)
	for col := range cols {
		cols[col] = make(Poly, t)
		for row := 0; row < t; row++ {
			cols[col][row] = a[row][t+col]
		}
	}
	return cols, nil
}

// SqrtMod returns the square root of p modulo the polynomial whose
// SquareRootMatrix is sqInv.
func (p Poly) SqrtMod(f *Field, sqInv []Poly) Poly {
	t := len(sqInv)
	v := make(Poly, t)
	for i, c := range p {
		if c == 0 {
			continue
		}
		for j, e := range sqInv[i] {
			v[j] ^= f.Mul(c, e)
		}
	}
	for j := range v {
		v[j] = f.Sqrt(v[j])
	}
	return v.trim()
}

// gaussJordan reduces the first n columns of a to the identity by row
// operations and reports whether they were invertible.
func gaussJordan(f *Field, a [][]uint32, n int) bool {
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < len(a); row++ {
			if a[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return false
		}
		a[col], a[pivot] = a[pivot], a[col]
		normalizeRow(f, a[col], col)
		eliminateColumn(f, a, col, col)
	}
	return true
}

// normalizeRow scales row so that row[col] is 1.
func normalizeRow(f *Field, row []uint32, col int) {
	inv := f.Inv(row[col])
	for i := range row {
		row[i] = f.Mul(row[i], inv)
	}
}

// eliminateColumn clears column col in every row except pivotRow, whose
// entry in col must be 1.
func eliminateColumn(f *Field, a [][]uint32, pivotRow, col int) {
	for row := range a {
		if row == pivotRow || a[row][col] == 0 {
			continue
		}
		c := a[row][col]
		for i := range a[row] {
			a[row][i] ^= f.Mul(c, a[pivotRow][i])
		}
	}
}
