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
	"errors"
	"fmt"

	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/mceqd"
	"github.com/qdmce/qdmce-go/secretdata"
)

var errDecryption = errors.New("qdmce: decryption failed")

// HybridDecrypt decrypts with a hybrid QD McEliece private key. It is safe
// for concurrent use.
type HybridDecrypt struct {
	codeKey *mceqd.PrivateKey
	demID   DEMID
	prefix  []byte
}

// NewHybridDecrypt creates a HybridDecrypt from a private key.
func NewHybridDecrypt(privateKey *PrivateKey) (*HybridDecrypt, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("qdmce.NewHybridDecrypt: nil private key")
	}
	params := privateKey.Parameters().(*Parameters)
	return &HybridDecrypt{
		codeKey: privateKey.CodeKey(insecuresecretdataaccess.Token{}),
		demID:   params.DEMID(),
		prefix:  privateKey.OutputPrefix(),
	}, nil
}

// Decrypt decrypts ciphertext and verifies contextInfo. Every failure returns
// the same error.
func (d *HybridDecrypt) Decrypt(ciphertext, contextInfo []byte) ([]byte, error) {
	if len(ciphertext) < len(d.prefix) || !bytes.Equal(d.prefix, ciphertext[:len(d.prefix)]) {
		return nil, errDecryption
	}
	rest := ciphertext[len(d.prefix):]
	bits := d.codeKey.CipherSize()
	kemSize := (bits + 7) / 8
	if len(rest) < kemSize+demOverhead(d.demID) {
		return nil, errDecryption
	}
	kemCiphertext := rest[:kemSize]
	encapsulated, err := bitvec.FromBytes(kemCiphertext, bits)
	if err != nil {
		return nil, errDecryption
	}
	// Padding bits must be zero, so that each encapsulation has one encoding.
	if !bytes.Equal(encapsulated.Bytes(), kemCiphertext) {
		return nil, errDecryption
	}
	message, err := d.codeKey.Decrypt(encapsulated)
	if err != nil {
		return nil, errDecryption
	}
	demKey, err := deriveKey(secretdata.NewBytesFromData(message.Bytes(), insecuresecretdataaccess.Token{}), kemCiphertext, contextInfo)
	if err != nil {
		return nil, errDecryption
	}
	plaintext, err := open(d.demID, demKey, rest[kemSize:])
	if err != nil {
		return nil, errDecryption
	}
	return plaintext, nil
}
