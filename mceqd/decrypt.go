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
	"fmt"

	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/internal/dyadic"
	"github.com/qdmce/qdmce-go/internal/gf2m"
)

// syndrome multiplies ciphertext by the parity check matrix. The result holds
// the syndrome polynomial evaluated at the roots of g, in cotrace layout.
func (k *PrivateKey) syndrome(ciphertext *bitvec.Vector) *bitvec.Vector {
	m, t := k.params.M(), k.params.BlockSize()
	synd := bitvec.New(m * t)
	for i := 0; i < k.hc.Cols(); i++ {
		c := ciphertext.Block(i*t, t)
		if c.IsZero() {
			continue
		}
		for j := 0; j < m; j++ {
			synd.AddOffset(dyadic.Multiply(k.hc.Block(j, i), c), j*t)
		}
	}
	return synd
}

// Decrypt corrects up to BlockSize() errors in ciphertext and returns the
// plaintext.
func (k *PrivateKey) Decrypt(ciphertext *bitvec.Vector) (*bitvec.Vector, error) {
	if !k.prepared {
		k.cfg.metrics.decryptFailed(failureNotPrepared)
		return nil, ErrNotPrepared
	}
	if ciphertext.Len() != k.CipherSize() {
		k.cfg.metrics.decryptFailed(failureLengthMismatch)
		return nil, fmt.Errorf("%w: ciphertext has %d bits, want %d", ErrLengthMismatch, ciphertext.Len(), k.CipherSize())
	}
	out, err := k.correct(ciphertext)
	if err != nil {
		k.cfg.metrics.decryptFailed(failureDecode)
		return nil, err
	}
	return out, nil
}

func (k *PrivateKey) correct(ciphertext *bitvec.Vector) (*bitvec.Vector, error) {
	f := k.field
	values, err := f.FromCotrace(k.syndrome(ciphertext))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	synd, err := gf2m.SyndromeFromEvaluations(f, values, k.roots, k.g)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	loc := gf2m.ErrorLocator(f, synd, k.g, k.sqInv)
	errs, ok := gf2m.EvaluateErrorLocator(f, loc)
	if !ok {
		return nil, fmt.Errorf("%w: error locator does not split", ErrDecodeFailure)
	}

	out := ciphertext.Truncate(k.PlainSize())
	for _, x := range errs {
		pos, ok := k.supportPosition(x)
		if !ok {
			return nil, fmt.Errorf("%w: error located outside the code support", ErrDecodeFailure)
		}
		if pos < out.Len() {
			out.Flip(pos)
		}
	}
	return out, nil
}
