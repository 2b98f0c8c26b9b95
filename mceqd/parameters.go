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

// Package mceqd implements the quasi-dyadic McEliece public key encryption
// scheme over binary Goppa codes.
//
// A key pair is generated for a Parameters value with GenerateKey. The
// private key must be prepared once with Prepare before it can decrypt.
// Plaintexts and ciphertexts are bit vectors of PlainSize() and CipherSize()
// bits; encryption adds exactly BlockSize() errors, which decryption
// corrects.
package mceqd

import (
	"fmt"

	"github.com/qdmce/qdmce-go/internal/gf2m"
)

// Parameters selects a quasi-dyadic Goppa code family.
//
// The code lives over GF(2^m). Its dyadic blocks have size t = 2^T, which is
// also the degree of the Goppa polynomial and the number of errors added by
// encryption. Of the 2^(m-1)/t blocks of the dyadic signature, blockDiscard
// are dropped to shorten the code.
type Parameters struct {
	m            int
	logT         int
	blockDiscard int
}

// NewParameters validates and returns a parameter set.
func NewParameters(m, logT, blockDiscard int) (*Parameters, error) {
	if m < gf2m.MinDegree || m > gf2m.MaxDegree {
		return nil, fmt.Errorf("mceqd: field degree %d out of range [%d, %d]", m, gf2m.MinDegree, gf2m.MaxDegree)
	}
	if logT < 0 || logT >= m {
		return nil, fmt.Errorf("mceqd: block size exponent %d out of range [0, %d)", logT, m)
	}
	if blockDiscard < 0 {
		return nil, fmt.Errorf("mceqd: negative block discard %d", blockDiscard)
	}
	p := &Parameters{m: m, logT: logT, blockDiscard: blockDiscard}
	if p.BlockCount() <= m {
		return nil, fmt.Errorf("mceqd: %d retained blocks leave no information part for m = %d", p.BlockCount(), m)
	}
	return p, nil
}

// M returns the extension degree of the field.
func (p *Parameters) M() int { return p.m }

// LogBlockSize returns T, the base 2 logarithm of the block size.
func (p *Parameters) LogBlockSize() int { return p.logT }

// BlockSize returns t = 2^T.
func (p *Parameters) BlockSize() int { return 1 << p.logT }

// BlockDiscard returns the number of discarded signature blocks.
func (p *Parameters) BlockDiscard() int { return p.blockDiscard }

// HBlockCount returns the number of blocks in the full dyadic signature.
func (p *Parameters) HBlockCount() int { return (1 << (p.m - 1)) / p.BlockSize() }

// BlockCount returns the number of blocks kept in the code.
func (p *Parameters) BlockCount() int { return p.HBlockCount() - p.blockDiscard }

// PlainSize returns the number of message bits.
func (p *Parameters) PlainSize() int { return (p.BlockCount() - p.m) * p.BlockSize() }

// CipherSize returns the code length in bits.
func (p *Parameters) CipherSize() int { return p.BlockCount() * p.BlockSize() }

// Equal reports whether p and other are the same parameter set.
func (p *Parameters) Equal(other *Parameters) bool {
	return other != nil && p.m == other.m && p.logT == other.logT && p.blockDiscard == other.blockDiscard
}

func (p *Parameters) String() string {
	return fmt.Sprintf("QD-McEliece(m=%d, T=%d, discard=%d)", p.m, p.logT, p.blockDiscard)
}
