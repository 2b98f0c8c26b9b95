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

package gf2m_test

import (
	mrand "math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qdmce/qdmce-go/internal/gf2m"
)

// goppaCode is a Goppa code in Cauchy form: g has the distinct roots z and
// the support is every other field element.
type goppaCode struct {
	f       *gf2m.Field
	z       []uint32
	g       gf2m.Poly
	sqInv   []gf2m.Poly
	support []uint32
}

func newGoppaCode(t *testing.T, rng *mrand.Rand, m, deg int) *goppaCode {
	t.Helper()
	f := mustField(t, m)
	perm := rng.Perm(int(f.N()))
	c := &goppaCode{f: f}
	for i, x := range perm {
		if i < deg {
			c.z = append(c.z, uint32(x))
		} else {
			c.support = append(c.support, uint32(x))
		}
	}
	c.g = gf2m.FromRoots(f, c.z)
	var err error
	if c.sqInv, err = c.g.SquareRootMatrix(f); err != nil {
		t.Fatalf("SquareRootMatrix() err = %v, want nil", err)
	}
	return c
}

// syndromeValues returns S(z_i) = sum over the errors of 1/(z_i - L).
func (c *goppaCode) syndromeValues(errs []uint32) []uint32 {
	values := make([]uint32, len(c.z))
	for i, z := range c.z {
		for _, l := range errs {
			values[i] ^= c.f.Inv(z ^ l)
		}
	}
	return values
}

func TestSyndromeFromEvaluations(t *testing.T) {
	rng := mrand.New(mrand.NewPCG(11, 12))
	c := newGoppaCode(t, rng, 7, 8)
	for i := 0; i < 20; i++ {
		values := make([]uint32, len(c.z))
		for j := range values {
			values[j] = uint32(rng.IntN(int(c.f.N())))
		}
		s, err := gf2m.SyndromeFromEvaluations(c.f, values, c.z, c.g)
		if err != nil {
			t.Fatalf("SyndromeFromEvaluations() err = %v, want nil", err)
		}
		if s.Degree() >= c.g.Degree() {
			t.Fatalf("deg S = %d, want < %d", s.Degree(), c.g.Degree())
		}
		for j, z := range c.z {
			if got := s.Eval(c.f, z); got != values[j] {
				t.Fatalf("S(%d) = %d, want %d", z, got, values[j])
			}
		}
	}
}

func TestSyndromeFromEvaluationsRejectsBadInput(t *testing.T) {
	f := mustField(t, 4)
	g := gf2m.FromRoots(f, []uint32{1, 2})
	for _, tc := range []struct {
		name   string
		values []uint32
		roots  []uint32
	}{
		{"length mismatch", []uint32{1}, []uint32{1, 2}},
		{"not a root", []uint32{1, 1}, []uint32{1, 3}},
		{"wrong degree", []uint32{1, 1, 1}, []uint32{1, 2, 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gf2m.SyndromeFromEvaluations(f, tc.values, tc.roots, g); err == nil {
				t.Errorf("SyndromeFromEvaluations() err = nil, want error")
			}
		})
	}
}

func TestErrorLocatorFindsErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    int
		t    int
	}{
		{"m=4 t=2", 4, 2},
		{"m=5 t=2", 5, 2},
		{"m=6 t=4", 6, 4},
		{"m=8 t=8", 8, 8},
		{"m=9 t=16", 9, 16},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rng := mrand.New(mrand.NewPCG(uint64(tc.m), uint64(tc.t)))
			c := newGoppaCode(t, rng, tc.m, tc.t)
			for weight := 0; weight <= tc.t; weight++ {
				for trial := 0; trial < 5; trial++ {
					var errs []uint32
					for _, k := range rng.Perm(len(c.support))[:weight] {
						errs = append(errs, c.support[k])
					}
					slices.Sort(errs)

					s, err := gf2m.SyndromeFromEvaluations(c.f, c.syndromeValues(errs), c.z, c.g)
					if err != nil {
						t.Fatalf("SyndromeFromEvaluations() err = %v, want nil", err)
					}
					loc := gf2m.ErrorLocator(c.f, s, c.g, c.sqInv)
					if got := loc.Degree(); got != weight {
						t.Fatalf("deg(locator) = %d, want %d", got, weight)
					}
					roots, ok := gf2m.EvaluateErrorLocator(c.f, loc)
					if !ok {
						t.Fatalf("EvaluateErrorLocator() ok = false, want true")
					}
					if diff := cmp.Diff(errs, roots); diff != "" {
						t.Fatalf("error positions mismatch (-want +got):\n%s", diff)
					}
				}
			}
		})
	}
}

func TestEvaluateErrorLocatorRejectsIncompleteSplit(t *testing.T) {
	f := mustField(t, 4)
	for _, tc := range []struct {
		name string
		loc  gf2m.Poly
	}{
		{"zero", gf2m.Poly{}},
		{"double root", gf2m.Poly{0, 0, 1}},
		{"repeated factor", gf2m.FromRoots(f, []uint32{3, 3, 5})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := gf2m.EvaluateErrorLocator(f, tc.loc); ok {
				t.Errorf("EvaluateErrorLocator(%v) ok = true, want false", tc.loc)
			}
		})
	}
}
