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
	"github.com/qdmce/qdmce-go/subtle/random"
)

func (k *PublicKey) validate() error {
	t := k.BlockSize()
	if t == 0 {
		return fmt.Errorf("%w: block size exponent %d out of range [0, %d)", ErrMalformedKey, k.logT, gf2m.MaxDegree)
	}
	if len(k.qdSigs) == 0 {
		return fmt.Errorf("%w: no signatures", ErrMalformedKey)
	}
	n := k.qdSigs[0].Len()
	if n == 0 || n%t != 0 {
		return fmt.Errorf("%w: signature length %d is not a positive multiple of %d", ErrMalformedKey, n, t)
	}
	for i, s := range k.qdSigs {
		if s.Len() != n {
			return fmt.Errorf("%w: signature %d has %d bits, want %d", ErrMalformedKey, i, s.Len(), n)
		}
	}
	return nil
}

// Encode returns the codeword of plaintext: the plaintext followed by its
// checksum.
func (k *PublicKey) Encode(plaintext *bitvec.Vector) (*bitvec.Vector, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	if plaintext.Len() != k.PlainSize() {
		return nil, fmt.Errorf("%w: plaintext has %d bits, want %d", ErrLengthMismatch, plaintext.Len(), k.PlainSize())
	}
	t := k.BlockSize()
	cksum := bitvec.New(k.qdSigs[0].Len())
	blocks := cksum.Len() / t
	for i, sig := range k.qdSigs {
		p := plaintext.Block(i*t, t)
		if p.IsZero() {
			continue
		}
		for j := 0; j < blocks; j++ {
			cksum.AddOffset(dyadic.Multiply(p, sig.Block(j*t, t)), j*t)
		}
	}
	return plaintext.Concat(cksum), nil
}

// Encrypt encodes plaintext and flips exactly BlockSize() distinct bits
// chosen uniformly at random.
func (k *PublicKey) Encrypt(plaintext *bitvec.Vector, rng random.Source) (*bitvec.Vector, error) {
	out, err := k.Encode(plaintext)
	if err != nil {
		return nil, err
	}
	e := bitvec.New(out.Len())
	for n := k.BlockSize(); n > 0; {
		p := rng.IntN(e.Len())
		if !e.Get(p) {
			e.Set(p, true)
			n--
		}
	}
	out.Add(e)
	return out, nil
}
