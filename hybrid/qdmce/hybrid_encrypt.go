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
	"fmt"
	"slices"

	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/mceqd"
	"github.com/qdmce/qdmce-go/secretdata"
	"github.com/qdmce/qdmce-go/subtle/random"
)

// HybridEncrypt encrypts to a hybrid QD McEliece public key. It is safe for
// concurrent use.
type HybridEncrypt struct {
	codeKey *mceqd.PublicKey
	demID   DEMID
	prefix  []byte
	rng     random.Source
}

// NewHybridEncrypt creates a HybridEncrypt from a public key.
func NewHybridEncrypt(publicKey *PublicKey) (*HybridEncrypt, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("qdmce.NewHybridEncrypt: nil public key")
	}
	params := publicKey.Parameters().(*Parameters)
	return &HybridEncrypt{
		codeKey: publicKey.CodeKey(),
		demID:   params.DEMID(),
		prefix:  publicKey.OutputPrefix(),
		rng:     random.NewCryptoSource(),
	}, nil
}

// Encrypt encrypts plaintext, binding contextInfo to the ciphertext.
func (e *HybridEncrypt) Encrypt(plaintext, contextInfo []byte) ([]byte, error) {
	bits := e.codeKey.PlainSize()
	seed, err := secretdata.NewBytesFromRand(uint32((bits + 7) / 8))
	if err != nil {
		return nil, fmt.Errorf("qdmce: %v", err)
	}
	message, err := bitvec.FromBytes(seed.Data(insecuresecretdataaccess.Token{}), bits)
	if err != nil {
		return nil, fmt.Errorf("qdmce: %v", err)
	}
	encapsulated, err := e.codeKey.Encrypt(message, e.rng)
	if err != nil {
		return nil, fmt.Errorf("qdmce: %v", err)
	}
	kemCiphertext := encapsulated.Bytes()
	demKey, err := deriveKey(secretdata.NewBytesFromData(message.Bytes(), insecuresecretdataaccess.Token{}), kemCiphertext, contextInfo)
	if err != nil {
		return nil, fmt.Errorf("qdmce: %v", err)
	}
	sealed, err := seal(e.demID, demKey, plaintext)
	if err != nil {
		return nil, fmt.Errorf("qdmce: %v", err)
	}
	return slices.Concat(e.prefix, kemCiphertext, sealed), nil
}
