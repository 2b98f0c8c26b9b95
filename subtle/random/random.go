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

// Package random provides the random sources used by key generation and
// encryption.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// Source produces uniformly distributed integers.
//
// *math/rand/v2.Rand satisfies Source, which is convenient in tests.
type Source interface {
	// IntN returns a uniformly random integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// GetRandomBytes randomly generates n bytes with crypto/rand. It panics if
// the system source fails.
func GetRandomBytes(n uint32) []byte {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic(err) // out of randomness, should never happen
	}
	return buf
}

type readerSource struct {
	r io.Reader
}

// IntN maps 64-bit words read from r onto [0, n) by rejection, so that
// every value has the same probability.
func (s *readerSource) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0)%bound+1)%bound
	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			panic(err) // out of randomness, should never happen
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v <= limit {
			return int(v % bound)
		}
	}
}

// NewCryptoSource returns a Source backed by crypto/rand. It is safe for
// concurrent use.
func NewCryptoSource() Source {
	return &readerSource{r: rand.Reader}
}

// NewSeededSource returns a deterministic Source that expands seed with
// SHAKE256. Two sources built from the same seed produce the same sequence.
//
// The returned Source is not safe for concurrent use.
func NewSeededSource(seed []byte) Source {
	h := sha3.NewShake256()
	h.Write(seed)
	return &readerSource{r: h}
}
