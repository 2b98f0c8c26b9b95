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

package mceqd

import (
	"github.com/rs/zerolog"
)

// DefaultMaxAttempts bounds the number of key generation attempts unless
// WithMaxAttempts says otherwise.
const DefaultMaxAttempts = 4096

type config struct {
	maxAttempts int
	logger      zerolog.Logger
	metrics     *Metrics
}

func newConfig(opts []Option) *config {
	c := &config{
		maxAttempts: DefaultMaxAttempts,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures key generation and private key preparation.
type Option func(*config)

// WithMaxAttempts bounds the number of key generation attempts. Zero means
// retry until a key is found.
func WithMaxAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}

// WithLogger sets the logger receiving progress events. Events carry attempt
// counters and rejection reasons, never key material.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics sets the collectors updated by key generation and decryption.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}
