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

package aead_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/qdmce/qdmce-go/internal/aead"
	"github.com/qdmce/qdmce-go/subtle/random"
)

func hexDecode(t *testing.T, hexStr string) []byte {
	t.Helper()
	x, err := hex.DecodeString(hexStr)
	if err != nil {
		t.Fatalf("hex.DecodeString(%v) err = %v, want nil", hexStr, err)
	}
	return x
}

func TestAES256GCMDecryptsKnownVector(t *testing.T) {
	// Wycheproof aes_gcm_test.json, 256-bit key, IV prepended to the
	// ciphertext.
	key := hexDecode(t, "51e4bf2bad92b7aff1a4bc05550ba81df4b96fabf41c12c7b00e60e48db7e152")
	ciphertext := hexDecode(t, "4f07afedfdc3b6c2361823d3cf332a12fdee800b602e8d7c4799d62c140c9bb834876b09")
	want := hexDecode(t, "be3308f72a2c6aed")

	a, err := aead.NewAES256GCM(key)
	if err != nil {
		t.Fatalf("NewAES256GCM() err = %v, want nil", err)
	}
	got, err := a.Decrypt(ciphertext[:aead.AESGCMIVSize], ciphertext[aead.AESGCMIVSize:], nil)
	if err != nil {
		t.Fatalf("Decrypt() err = %v, want nil", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Decrypt() = %x, want %x", got, want)
	}
}

func TestAES256GCMZeroIVRoundTrip(t *testing.T) {
	a, err := aead.NewAES256GCM(random.GetRandomBytes(aead.AES256GCMKeySize))
	if err != nil {
		t.Fatalf("NewAES256GCM() err = %v, want nil", err)
	}
	iv := make([]byte, aead.AESGCMIVSize)
	for _, size := range []uint32{0, 1, 100, 1000} {
		pt := random.GetRandomBytes(size)
		ct, err := a.Encrypt(nil, iv, pt, nil)
		if err != nil {
			t.Fatalf("Encrypt() err = %v, want nil", err)
		}
		if got, want := len(ct), len(pt)+aead.AESGCMTagSize; got != want {
			t.Errorf("len(ciphertext) = %d, want %d", got, want)
		}
		got, err := a.Decrypt(iv, ct, nil)
		if err != nil {
			t.Fatalf("Decrypt() err = %v, want nil", err)
		}
		if !bytes.Equal(got, pt) {
			t.Errorf("Decrypt() = %x, want %x", got, pt)
		}
	}
}

func TestAES256GCMRejectsTampering(t *testing.T) {
	a, err := aead.NewAES256GCM(random.GetRandomBytes(aead.AES256GCMKeySize))
	if err != nil {
		t.Fatalf("NewAES256GCM() err = %v, want nil", err)
	}
	iv := make([]byte, aead.AESGCMIVSize)
	ct, err := a.Encrypt(nil, iv, []byte("message"), []byte("ad"))
	if err != nil {
		t.Fatalf("Encrypt() err = %v, want nil", err)
	}
	flipped := bytes.Clone(ct)
	flipped[len(flipped)-1] ^= 1
	otherIV := bytes.Clone(iv)
	otherIV[0] = 1
	for _, tc := range []struct {
		name string
		iv   []byte
		ct   []byte
		ad   []byte
	}{
		{"flipped tag bit", iv, flipped, []byte("ad")},
		{"wrong associated data", iv, ct, []byte("da")},
		{"wrong IV", otherIV, ct, []byte("ad")},
		{"short IV", iv[:8], ct, []byte("ad")},
		{"truncated", iv, ct[:aead.AESGCMTagSize-1], []byte("ad")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := a.Decrypt(tc.iv, tc.ct, tc.ad); err == nil {
				t.Errorf("Decrypt() err = nil, want error")
			}
		})
	}
	if _, err := a.Encrypt(nil, iv[:8], []byte("message"), nil); err == nil {
		t.Errorf("Encrypt() with a short IV err = nil, want error")
	}
}

func TestNewAES256GCMInvalidKey(t *testing.T) {
	for _, size := range []uint32{0, 16, 24, 31, 33} {
		if _, err := aead.NewAES256GCM(random.GetRandomBytes(size)); err == nil {
			t.Errorf("NewAES256GCM(%d bytes) err = nil, want error", size)
		}
	}
}
