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

// Package qdmce provides hybrid encryption with a quasi-dyadic McEliece key
// encapsulation mechanism.
//
// The sender encrypts a random message of PlainSize() bits under the
// McEliece public key, derives a one-time key from it with HKDF-SHA256 and
// seals the plaintext with an AEAD under that key. The ciphertext is
//
//	prefix || packed McEliece ciphertext || AEAD ciphertext
//
// where prefix is empty for VariantNoPrefix and 0x01 || key ID for
// VariantTink.
package qdmce

import (
	"fmt"

	"github.com/qdmce/qdmce-go/key"
	"github.com/qdmce/qdmce-go/mceqd"
)

// minMessageBits is the smallest encapsulated message accepted. Smaller
// codes carry too little entropy for a 256-bit DEM key.
const minMessageBits = 128

// Variant is the prefix variant of a key.
type Variant int

const (
	// VariantUnknown is the default value of Variant.
	VariantUnknown Variant = iota
	// VariantTink prefixes '0x01<big endian key id>' to the ciphertext.
	VariantTink
	// VariantNoPrefix does not prefix the ciphertext with the key id.
	VariantNoPrefix
)

func (variant Variant) String() string {
	switch variant {
	case VariantTink:
		return "TINK"
	case VariantNoPrefix:
		return "NO_PREFIX"
	default:
		return "UNKNOWN"
	}
}

// DEMID identifies the data encapsulation mechanism.
type DEMID int

const (
	// UnknownDEMID is the default value of DEMID.
	UnknownDEMID DEMID = iota
	// ChaCha20Poly1305 seals with ChaCha20-Poly1305.
	ChaCha20Poly1305
	// AES256GCM seals with AES-256-GCM.
	AES256GCM
)

func (demID DEMID) String() string {
	switch demID {
	case ChaCha20Poly1305:
		return "ChaCha20-Poly1305"
	case AES256GCM:
		return "AES-256-GCM"
	default:
		return "UNKNOWN"
	}
}

// ParametersOpts is the options for creating parameters.
type ParametersOpts struct {
	// M is the extension degree of the code's field.
	M int
	// LogBlockSize is T; codes correct 2^T errors.
	LogBlockSize int
	// BlockDiscard is the number of dyadic blocks dropped from the code.
	BlockDiscard int
	DEMID        DEMID
	Variant      Variant
}

func (opts ParametersOpts) String() string {
	return fmt.Sprintf("M: %d, T: %d, BlockDiscard: %d, DEMID: %s, Variant: %s", opts.M, opts.LogBlockSize, opts.BlockDiscard, opts.DEMID, opts.Variant)
}

// Parameters represents the parameters of a hybrid QD McEliece key.
type Parameters struct {
	code    *mceqd.Parameters
	demID   DEMID
	variant Variant
}

var _ key.Parameters = (*Parameters)(nil)

// NewParameters creates a new [Parameters] value.
func NewParameters(opts ParametersOpts) (*Parameters, error) {
	if opts.DEMID == UnknownDEMID || opts.Variant == VariantUnknown {
		return nil, fmt.Errorf("qdmce.NewParameters: invalid parameters: %v", opts)
	}
	code, err := mceqd.NewParameters(opts.M, opts.LogBlockSize, opts.BlockDiscard)
	if err != nil {
		return nil, fmt.Errorf("qdmce.NewParameters: %v", err)
	}
	if code.PlainSize() < minMessageBits {
		return nil, fmt.Errorf("qdmce.NewParameters: %v encapsulates %d bits, want at least %d", code, code.PlainSize(), minMessageBits)
	}
	return &Parameters{
		code:    code,
		demID:   opts.DEMID,
		variant: opts.Variant,
	}, nil
}

// CodeParameters returns the McEliece code parameters.
func (p *Parameters) CodeParameters() *mceqd.Parameters { return p.code }

// DEMID returns the data encapsulation mechanism.
func (p *Parameters) DEMID() DEMID { return p.demID }

// Variant returns the output prefix variant of the key.
func (p *Parameters) Variant() Variant { return p.variant }

// HasIDRequirement tells whether the key has an ID requirement.
func (p *Parameters) HasIDRequirement() bool { return p.variant != VariantNoPrefix }

// Equal tells whether this parameters value is equal to other.
func (p *Parameters) Equal(other key.Parameters) bool {
	actualParams, ok := other.(*Parameters)
	return ok && p.code.Equal(actualParams.code) &&
		p.demID == actualParams.demID &&
		p.variant == actualParams.variant
}
