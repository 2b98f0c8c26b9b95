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

// SyndromeFromEvaluations recovers the syndrome polynomial S mod g from its
// values at the roots of g.
//
// A parity check matrix in Cauchy form, H[i][j] = 1/(z_i - L_j), yields
// S(z_i) instead of the coefficients of S. g must be the product of
// (x - z_i) over the distinct roots, so deg S < deg g and Lagrange
// interpolation is exact.
func SyndromeFromEvaluations(f *Field, values, roots []uint32, g Poly) (Poly, error) {
	t := len(roots)
	if len(values) != t || g.Degree() != t {
		return nil, fmt.Errorf("gf2m: %d values for %d roots of a degree %d polynomial", len(values), t, g.Degree())
	}
	s := make(Poly, t)
	for i, z := range roots {
		if values[i] == 0 {
			continue
		}
		// basis = g/(x - z_i); basis(z_i) = g'(z_i) is nonzero for
		// distinct roots.
		basis, rem := g.DivLinear(f, z)
		if rem != 0 {
			return nil, fmt.Errorf("gf2m: %d is not a root of g", z)
		}
		denom := basis.Eval(f, z)
		if denom == 0 {
			return nil, fmt.Errorf("gf2m: repeated root %d", z)
		}
		c := f.Div(values[i], denom)
		for k, b := range basis {
			s[k] ^= f.Mul(c, b)
		}
	}
	return s.trim(), nil
}

// ErrorLocator solves the Goppa key equation for a square-free g of degree
// t and returns the error locator sigma, whose roots are the support
// elements of the error positions.
//
// With sigma = a^2 + x*b^2 the key equation sigma*S = sigma' (mod g)
// becomes a^2*S + b^2*(x*S+1) = 0. Taking square roots modulo g (a ring
// automorphism when g is square-free) turns it into the linear system
//
//	a*sqrt(S) + b*sqrt(x*S+1) = 0 (mod g), deg a <= t/2, deg b <= (t-1)/2
//
// in t+1 unknowns. Ordering the unknowns a_0, b_0, a_1, b_1, ... by the
// degree they contribute to sigma, the first free column of the reduced
// system gives the solution of minimal degree, which is sigma up to a
// constant. This is Patterson's algorithm without the requirement that S be
// invertible modulo g.
func ErrorLocator(f *Field, synd, g Poly, sqInv []Poly) Poly {
	t := g.Degree()
	if synd.IsZero() {
		return Poly{1}
	}
	tau := [2]Poly{
		synd.SqrtMod(f, sqInv),
		synd.MulLinear(f, 0).Add(Poly{1}).Mod(f, g).SqrtMod(f, sqInv),
	}
	// a[row][w]: coefficient of x^row in x^(w/2) * tau[w%2] mod g.
	a := make([][]uint32, t)
	for row := range a {
		a[row] = make([]uint32, t+1)
	}
	for w := 0; w <= t; w++ {
		col := make(Poly, w/2+1)
		col[w/2] = 1
		col = col.Mul(f, tau[w%2]).Mod(f, g)
		for row := 0; row < len(col); row++ {
			a[row][w] = col[row]
		}
	}

	pivotRowOf := make([]int, t+1)
	for i := range pivotRowOf {
		pivotRowOf[i] = -1
	}
	row := 0
	free := -1
	for col := 0; col <= t; col++ {
		pivot := -1
		for r := row; r < t; r++ {
			if a[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			free = col
			break
		}
		a[row], a[pivot] = a[pivot], a[row]
		normalizeRow(f, a[row], col)
		eliminateColumn(f, a, row, col)
		pivotRowOf[col] = row
		row++
	}
	// t rows and t+1 columns leave at least one free column.

	sigma := make(Poly, free+1)
	sigma[free] = 1
	for col := 0; col < free; col++ {
		// x_col = -a[r][free]; a[r][free] is final because every row was
		// reduced against all pivots before free.
		x := a[pivotRowOf[col]][free]
		sigma[col] = f.Sqr(x)
	}
	return sigma
}

// EvaluateErrorLocator returns the roots of loc in increasing order. ok is
// false unless loc is nonzero and has exactly deg(loc) distinct roots, the
// only shape an error locator of a decodable word can have.
func EvaluateErrorLocator(f *Field, loc Poly) (roots []uint32, ok bool) {
	d := loc.Degree()
	if d < 0 {
		return nil, false
	}
	for x := uint32(0); x < f.n; x++ {
		if loc.Eval(f, x) == 0 {
			roots = append(roots, x)
		}
	}
	return roots, len(roots) == d
}
