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

package aead_test

import (
	"bytes"
	"testing"

	"github.com/qdmce/qdmce-go/internal/aead"
	"github.com/qdmce/qdmce-go/subtle/random"
)

func TestChaCha20Poly1305InsecureNonceEncryptDecrypt(t *testing.T) {
	ca, err := aead.NewChaCha20Poly1305InsecureNonce(random.GetRandomBytes(32))
	if err != nil {
		t.Fatalf("NewChaCha20Poly1305InsecureNonce() err = %v, want nil", err)
	}
	nonce := make([]byte, aead.ChaCha20Poly1305InsecureNonceSize)
	for _, size := range []uint32{0, 1, 16, 1000} {
		pt := random.GetRandomBytes(size)
		ad := random.GetRandomBytes(7)
		ct, err := ca.Encrypt(nil, nonce, pt, ad)
		if err != nil {
			t.Fatalf("Encrypt() err = %v, want nil", err)
		}
		if got, want := len(ct), len(pt)+aead.ChaCha20Poly1305InsecureTagSize; got != want {
			t.Errorf("len(ciphertext) = %d, want %d", got, want)
		}
		got, err := ca.Decrypt(nonce, ct, ad)
		if err != nil {
			t.Fatalf("Decrypt() err = %v, want nil", err)
		}
		if !bytes.Equal(got, pt) {
			t.Errorf("Decrypt() = %x, want %x", got, pt)
		}
	}
}

func TestChaCha20Poly1305InsecureNonceRejectsTampering(t *testing.T) {
	ca, err := aead.NewChaCha20Poly1305InsecureNonce(random.GetRandomBytes(32))
	if err != nil {
		t.Fatalf("NewChaCha20Poly1305InsecureNonce() err = %v, want nil", err)
	}
	nonce := make([]byte, aead.ChaCha20Poly1305InsecureNonceSize)
	ct, err := ca.Encrypt(nil, nonce, []byte("message"), []byte("ad"))
	if err != nil {
		t.Fatalf("Encrypt() err = %v, want nil", err)
	}
	flipped := bytes.Clone(ct)
	flipped[0] ^= 1
	otherNonce := bytes.Clone(nonce)
	otherNonce[0] = 1
	for _, tc := range []struct {
		name  string
		nonce []byte
		ct    []byte
		ad    []byte
	}{
		{"flipped bit", nonce, flipped, []byte("ad")},
		{"wrong associated data", nonce, ct, []byte("da")},
		{"wrong nonce", otherNonce, ct, []byte("ad")},
		{"short nonce", nonce[:8], ct, []byte("ad")},
		{"truncated", nonce, ct[:aead.ChaCha20Poly1305InsecureTagSize-1], []byte("ad")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ca.Decrypt(tc.nonce, tc.ct, tc.ad); err == nil {
				t.Errorf("Decrypt() err = nil, want error")
			}
		})
	}
}

func TestNewChaCha20Poly1305InsecureNonceInvalidKey(t *testing.T) {
	for _, size := range []uint32{0, 16, 31, 33} {
		if _, err := aead.NewChaCha20Poly1305InsecureNonce(random.GetRandomBytes(size)); err == nil {
			t.Errorf("NewChaCha20Poly1305InsecureNonce(%d bytes) err = nil, want error", size)
		}
	}
}
