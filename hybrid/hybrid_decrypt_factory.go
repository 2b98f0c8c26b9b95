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

package hybrid

import (
	"errors"
	"fmt"

	"github.com/qdmce/qdmce-go/hybrid/qdmce"
	"github.com/qdmce/qdmce-go/internal/prefixmap"
	"github.com/rs/zerolog"
)

var errDecryption = errors.New("hybrid_factory: decryption failed")

// NewHybridDecrypt returns a Decrypter that tries every key whose prefix
// matches the ciphertext.
func NewHybridDecrypt(keys []*qdmce.PrivateKey, opts ...Option) (Decrypter, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("hybrid_factory: no keys")
	}
	decrypters := prefixmap.New[decrypterAndID]()
	for i, k := range keys {
		if k == nil {
			return nil, fmt.Errorf("hybrid_factory: key %d is nil", i)
		}
		p, err := qdmce.NewHybridDecrypt(k)
		if err != nil {
			return nil, fmt.Errorf("hybrid_factory: cannot create primitive for key %d: %v", i, err)
		}
		keyID, _ := k.IDRequirement()
		if err := decrypters.Insert(string(k.OutputPrefix()), decrypterAndID{decrypter: p, keyID: keyID}); err != nil {
			return nil, fmt.Errorf("hybrid_factory: %v", err)
		}
	}
	return &wrappedHybridDecrypt{
		decrypters: decrypters,
		logger:     newConfig(opts).logger,
	}, nil
}

type decrypterAndID struct {
	decrypter *qdmce.HybridDecrypt
	keyID     uint32
}

type wrappedHybridDecrypt struct {
	decrypters *prefixmap.PrefixMap[decrypterAndID]
	logger     zerolog.Logger
}

var _ Decrypter = (*wrappedHybridDecrypt)(nil)

// Decrypt returns the plaintext from the first key that authenticates the
// ciphertext.
func (a *wrappedHybridDecrypt) Decrypt(ciphertext, contextInfo []byte) ([]byte, error) {
	it := a.decrypters.PrimitivesMatchingPrefix(ciphertext)
	tried := 0
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		tried++
		pt, err := d.decrypter.Decrypt(ciphertext, contextInfo)
		if err != nil {
			continue
		}
		a.logger.Debug().Uint32("key_id", d.keyID).Int("ciphertext_size", len(ciphertext)).Msg("hybrid decrypt")
		return pt, nil
	}
	a.logger.Debug().Int("keys_tried", tried).Msg("hybrid decryption failed")
	return nil, errDecryption
}
