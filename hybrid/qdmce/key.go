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

package qdmce

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/internal/outputprefix"
	"github.com/qdmce/qdmce-go/key"
	"github.com/qdmce/qdmce-go/mceqd"
	"github.com/qdmce/qdmce-go/subtle/random"
)

// PublicKey represents a hybrid QD McEliece public key.
type PublicKey struct {
	codeKey       *mceqd.PublicKey
	idRequirement uint32
	outputPrefix  []byte
	parameters    *Parameters
}

var _ key.Key = (*PublicKey)(nil)

func calculateOutputPrefix(variant Variant, idRequirement uint32) ([]byte, error) {
	switch variant {
	case VariantTink:
		return outputprefix.WithKeyID(idRequirement), nil
	case VariantNoPrefix:
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid output prefix variant: %v", variant)
	}
}

// NewPublicKey creates a new PublicKey from a McEliece public key.
func NewPublicKey(codeKey *mceqd.PublicKey, idRequirement uint32, parameters *Parameters) (*PublicKey, error) {
	if parameters == nil || codeKey == nil {
		return nil, fmt.Errorf("qdmce.NewPublicKey: nil argument")
	}
	if parameters.Variant() == VariantNoPrefix && idRequirement != 0 {
		return nil, fmt.Errorf("qdmce.NewPublicKey: key ID must be zero for VariantNoPrefix")
	}
	outputPrefix, err := calculateOutputPrefix(parameters.Variant(), idRequirement)
	if err != nil {
		return nil, fmt.Errorf("qdmce.NewPublicKey: %v", err)
	}
	code := parameters.CodeParameters()
	if codeKey.LogBlockSize() != code.LogBlockSize() || codeKey.PlainSize() != code.PlainSize() || codeKey.CipherSize() != code.CipherSize() {
		return nil, fmt.Errorf("qdmce.NewPublicKey: key sizes (%d, %d) do not match %v", codeKey.PlainSize(), codeKey.CipherSize(), code)
	}
	return &PublicKey{
		codeKey:       codeKey,
		idRequirement: idRequirement,
		outputPrefix:  outputPrefix,
		parameters:    parameters,
	}, nil
}

// CodeKey returns the McEliece public key.
func (k *PublicKey) CodeKey() *mceqd.PublicKey { return k.codeKey }

// Parameters returns the parameters of this key.
func (k *PublicKey) Parameters() key.Parameters { return k.parameters }

// IDRequirement returns the key ID and whether it is required.
func (k *PublicKey) IDRequirement() (uint32, bool) {
	return k.idRequirement, k.Parameters().HasIDRequirement()
}

// OutputPrefix returns the output prefix of this key.
func (k *PublicKey) OutputPrefix() []byte { return bytes.Clone(k.outputPrefix) }

// Equal tells whether this key value is equal to other.
func (k *PublicKey) Equal(other key.Key) bool {
	otherKey, ok := other.(*PublicKey)
	return ok && k.Parameters().Equal(otherKey.Parameters()) &&
		k.idRequirement == otherKey.idRequirement &&
		k.codeKey.Equal(otherKey.codeKey)
}

// PrivateKey represents a hybrid QD McEliece private key.
type PrivateKey struct {
	codeKey   *mceqd.PrivateKey
	publicKey *PublicKey
}

var _ key.Key = (*PrivateKey)(nil)

// NewPrivateKey creates a new PrivateKey from a McEliece private key,
// preparing it if needed. The public key is recomputed from codeKey.
func NewPrivateKey(codeKey *mceqd.PrivateKey, idRequirement uint32, parameters *Parameters) (*PrivateKey, error) {
	if parameters == nil || codeKey == nil {
		return nil, fmt.Errorf("qdmce.NewPrivateKey: nil argument")
	}
	if !codeKey.Parameters().Equal(parameters.CodeParameters()) {
		return nil, fmt.Errorf("qdmce.NewPrivateKey: key parameters %v, want %v", codeKey.Parameters(), parameters.CodeParameters())
	}
	if !codeKey.Prepared() {
		if err := codeKey.Prepare(); err != nil {
			return nil, fmt.Errorf("qdmce.NewPrivateKey: %v", err)
		}
	}
	codePublicKey, err := codeKey.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("qdmce.NewPrivateKey: %v", err)
	}
	publicKey, err := NewPublicKey(codePublicKey, idRequirement, parameters)
	if err != nil {
		return nil, fmt.Errorf("qdmce.NewPrivateKey: %v", err)
	}
	return &PrivateKey{codeKey: codeKey, publicKey: publicKey}, nil
}

// GeneratePrivateKey generates a fresh key with crypto/rand.
func GeneratePrivateKey(parameters *Parameters, idRequirement uint32, opts ...mceqd.Option) (*PrivateKey, error) {
	if parameters == nil {
		return nil, fmt.Errorf("qdmce.GeneratePrivateKey: nil parameters")
	}
	_, codeKey, err := mceqd.GenerateKey(random.NewCryptoSource(), parameters.CodeParameters(), opts...)
	if err != nil {
		return nil, fmt.Errorf("qdmce.GeneratePrivateKey: %v", err)
	}
	return NewPrivateKey(codeKey, idRequirement, parameters)
}

// CodeKey returns the prepared McEliece private key.
func (k *PrivateKey) CodeKey(_ insecuresecretdataaccess.Token) *mceqd.PrivateKey { return k.codeKey }

// PublicKey returns the corresponding public key.
func (k *PrivateKey) PublicKey() *PublicKey { return k.publicKey }

// Parameters returns the parameters of this key.
func (k *PrivateKey) Parameters() key.Parameters { return k.publicKey.Parameters() }

// IDRequirement returns the key ID and whether it is required.
func (k *PrivateKey) IDRequirement() (uint32, bool) { return k.publicKey.IDRequirement() }

// OutputPrefix returns the output prefix of this key.
func (k *PrivateKey) OutputPrefix() []byte { return k.publicKey.OutputPrefix() }

// Equal tells whether this key value is equal to other.
func (k *PrivateKey) Equal(other key.Key) bool {
	otherKey, ok := other.(*PrivateKey)
	if !ok || !k.publicKey.Equal(otherKey.publicKey) {
		return false
	}
	a := k.codeKey.Opts(insecuresecretdataaccess.Token{})
	b := otherKey.codeKey.Opts(insecuresecretdataaccess.Token{})
	return slices.Equal(a.Essence, b.Essence) &&
		slices.Equal(a.BlockPerm, b.BlockPerm) &&
		slices.Equal(a.BlockPerms, b.BlockPerms) &&
		slices.Equal(a.HPerm, b.HPerm)
}
