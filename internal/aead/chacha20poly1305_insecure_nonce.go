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
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// ChaCha20Poly1305InsecureNonceSize is the size of the nonce.
	ChaCha20Poly1305InsecureNonceSize = chacha20poly1305.NonceSize
	// ChaCha20Poly1305InsecureTagSize is the size of the tag.
	ChaCha20Poly1305InsecureTagSize = chacha20poly1305.Overhead

	maxPlaintextSize = maxInt - ChaCha20Poly1305InsecureNonceSize - ChaCha20Poly1305InsecureTagSize
)

// ChaCha20Poly1305InsecureNonce is ChaCha20-Poly1305 with a caller chosen
// nonce. Callers must never reuse a (key, nonce) pair; the hybrid primitives
// use a fresh key for every message.
type ChaCha20Poly1305InsecureNonce struct {
	key []byte
}

// NewChaCha20Poly1305InsecureNonce returns a ChaCha20Poly1305InsecureNonce
// for a 32-byte key.
func NewChaCha20Poly1305InsecureNonce(key []byte) (*ChaCha20Poly1305InsecureNonce, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("chacha20poly1305: bad key length %d, want %d", len(key), chacha20poly1305.KeySize)
	}
	return &ChaCha20Poly1305InsecureNonce{key: key}, nil
}

func checkNonce(nonce []byte) error {
	if len(nonce) != ChaCha20Poly1305InsecureNonceSize {
		return fmt.Errorf("chacha20poly1305: invalid nonce length: got %d, want %d", len(nonce), ChaCha20Poly1305InsecureNonceSize)
	}
	return nil
}

// Encrypt encrypts plaintext with nonce and associatedData and appends the
// result to dst.
func (ca *ChaCha20Poly1305InsecureNonce) Encrypt(dst, nonce, plaintext, associatedData []byte) ([]byte, error) {
	if err := checkNonce(nonce); err != nil {
		return nil, err
	}
	if len(plaintext) > maxPlaintextSize {
		return nil, fmt.Errorf("chacha20poly1305: plaintext too long")
	}
	c, err := chacha20poly1305.New(ca.key)
	if err != nil {
		return nil, err
	}
	return c.Seal(dst, nonce, plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext with nonce and associatedData.
func (ca *ChaCha20Poly1305InsecureNonce) Decrypt(nonce, ciphertext, associatedData []byte) ([]byte, error) {
	if err := checkNonce(nonce); err != nil {
		return nil, err
	}
	if len(ciphertext) < ChaCha20Poly1305InsecureTagSize {
		return nil, fmt.Errorf("chacha20poly1305: ciphertext too short")
	}
	c, err := chacha20poly1305.New(ca.key)
	if err != nil {
		return nil, err
	}
	return c.Open(nil, nonce, ciphertext, associatedData)
}
