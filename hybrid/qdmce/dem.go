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

	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/internal/aead"
	"github.com/qdmce/qdmce-go/secretdata"
	"github.com/qdmce/qdmce-go/subtle"
)

const demKeySize = 32

// deriveKey computes HKDF-SHA256(ikm = message, salt = kemCiphertext,
// info = contextInfo).
func deriveKey(message secretdata.Bytes, kemCiphertext, contextInfo []byte) (secretdata.Bytes, error) {
	k, err := subtle.ComputeHKDF("SHA256", message.Data(insecuresecretdataaccess.Token{}), kemCiphertext, contextInfo, demKeySize)
	if err != nil {
		return secretdata.Bytes{}, err
	}
	return secretdata.NewBytesFromData(k, insecuresecretdataaccess.Token{}), nil
}

// dem is an AEAD keyed with a single-use key, so the nonce is all zeros.
type dem interface {
	Encrypt(dst, nonce, plaintext, associatedData []byte) ([]byte, error)
	Decrypt(nonce, ciphertext, associatedData []byte) ([]byte, error)
}

// demOverhead returns the number of bytes the DEM adds to a plaintext.
func demOverhead(id DEMID) int {
	switch id {
	case AES256GCM:
		return aead.AESGCMTagSize
	default:
		return aead.ChaCha20Poly1305InsecureTagSize
	}
}

// newDEM returns the DEM for id keyed with k, and its nonce size.
func newDEM(id DEMID, k secretdata.Bytes) (dem, int, error) {
	raw := k.Data(insecuresecretdataaccess.Token{})
	switch id {
	case ChaCha20Poly1305:
		c, err := aead.NewChaCha20Poly1305InsecureNonce(raw)
		return c, aead.ChaCha20Poly1305InsecureNonceSize, err
	case AES256GCM:
		c, err := aead.NewAES256GCM(raw)
		return c, aead.AESGCMIVSize, err
	default:
		return nil, 0, fmt.Errorf("unsupported DEM: %v", id)
	}
}

// seal encrypts plaintext under a single-use key with an all-zero nonce.
func seal(id DEMID, k secretdata.Bytes, plaintext []byte) ([]byte, error) {
	d, nonceSize, err := newDEM(id, k)
	if err != nil {
		return nil, err
	}
	return d.Encrypt(nil, make([]byte, nonceSize), plaintext, nil)
}

func open(id DEMID, k secretdata.Bytes, ciphertext []byte) ([]byte, error) {
	d, nonceSize, err := newDEM(id, k)
	if err != nil {
		return nil, err
	}
	return d.Decrypt(make([]byte, nonceSize), ciphertext, nil)
}
