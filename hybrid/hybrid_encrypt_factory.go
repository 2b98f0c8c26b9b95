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
	"fmt"

	"github.com/qdmce/qdmce-go/hybrid/qdmce"
	"github.com/rs/zerolog"
)

// NewHybridEncrypt returns an Encrypter for the primary public key.
func NewHybridEncrypt(primary *qdmce.PublicKey, opts ...Option) (Encrypter, error) {
	if primary == nil {
		return nil, fmt.Errorf("hybrid_factory: nil primary key")
	}
	p, err := qdmce.NewHybridEncrypt(primary)
	if err != nil {
		return nil, fmt.Errorf("hybrid_factory: cannot create primitive: %v", err)
	}
	keyID, _ := primary.IDRequirement()
	return &wrappedHybridEncrypt{
		primitive: p,
		keyID:     keyID,
		logger:    newConfig(opts).logger,
	}, nil
}

type wrappedHybridEncrypt struct {
	primitive *qdmce.HybridEncrypt
	keyID     uint32
	logger    zerolog.Logger
}

var _ Encrypter = (*wrappedHybridEncrypt)(nil)

func (e *wrappedHybridEncrypt) Encrypt(plaintext, contextInfo []byte) ([]byte, error) {
	ct, err := e.primitive.Encrypt(plaintext, contextInfo)
	if err != nil {
		e.logger.Warn().Err(err).Uint32("key_id", e.keyID).Msg("hybrid encryption failed")
		return nil, err
	}
	e.logger.Debug().Uint32("key_id", e.keyID).Int("plaintext_size", len(plaintext)).Msg("hybrid encrypt")
	return ct, nil
}
