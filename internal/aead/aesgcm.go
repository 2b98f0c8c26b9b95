// Copyright 2022 Google LLC
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

package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesGCMMaxPlaintextSize is the limit of RFC 5116, capped so that the
// ciphertext length fits in an int.
const aesGCMMaxPlaintextSize = min((1<<36)-31, maxInt-AESGCMIVSize-AESGCMTagSize)

// AES256GCM is AES-GCM with a 256-bit key and a caller chosen IV. Callers
// must never reuse a (key, IV) pair; the hybrid primitives derive a fresh key
// for every message.
type AES256GCM struct {
	gcm cipher.AEAD
}

// NewAES256GCM returns an AES256GCM for a 32-byte key.
func NewAES256GCM(key []byte) (*AES256GCM, error) {
	if len(key) != AES256GCMKeySize {
		return nil, fmt.Errorf("aes256gcm: bad key length %d, want %d", len(key), AES256GCMKeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes256gcm: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aes256gcm: %v", err)
	}
	return &AES256GCM{gcm: gcm}, nil
}

func checkIV(iv []byte) error {
	if len(iv) != AESGCMIVSize {
		return fmt.Errorf("aes256gcm: invalid IV length: got %d, want %d", len(iv), AESGCMIVSize)
	}
	return nil
}

// Encrypt encrypts plaintext with iv and associatedData and appends the
// result to dst.
func (a *AES256GCM) Encrypt(dst, iv, plaintext, associatedData []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if uint64(len(plaintext)) > aesGCMMaxPlaintextSize {
		return nil, fmt.Errorf("aes256gcm: plaintext too long: got %d", len(plaintext))
	}
	return a.gcm.Seal(dst, iv, plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext with iv and associatedData.
func (a *AES256GCM) Decrypt(iv, ciphertext, associatedData []byte) ([]byte, error) {
	if err := checkIV(iv); err != nil {
		return nil, err
	}
	if len(ciphertext) < AESGCMTagSize {
		return nil, fmt.Errorf("aes256gcm: ciphertext too short")
	}
	return a.gcm.Open(nil, iv, ciphertext, associatedData)
}
