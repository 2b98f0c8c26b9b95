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

// Package hybrid provides hybrid encryption over a set of keys.
//
// NewHybridEncrypt encrypts to a single primary key. NewHybridDecrypt accepts
// several private keys, so that ciphertexts created before a key rotation
// still decrypt: keys with an ID requirement are selected by the ciphertext
// prefix, keys without one are tried afterwards.
package hybrid

import (
	"github.com/rs/zerolog"
)

// Encrypter encrypts data for a recipient.
type Encrypter interface {
	// Encrypt encrypts plaintext. contextInfo is bound to the ciphertext but
	// not encrypted; the same value must be passed to Decrypt.
	Encrypt(plaintext, contextInfo []byte) ([]byte, error)
}

// Decrypter decrypts data produced by an Encrypter.
type Decrypter interface {
	Decrypt(ciphertext, contextInfo []byte) ([]byte, error)
}

type config struct {
	logger zerolog.Logger
}

// Option configures the primitives built by this package.
type Option func(*config)

// WithLogger sets the logger that records which key handled each call. The
// default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
