// Copyright 2024 Google LLC
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

// Package secretdata wraps sensitive byte strings, such as the encapsulated
// messages and derived keys of the hybrid primitives, so that reading them
// requires an [insecuresecretdataaccess.Token].
package secretdata

import (
	"bytes"
	"crypto/subtle"

	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/subtle/random"
)

// Bytes is an immutable wrapper around []byte.
type Bytes struct {
	data []byte
}

// NewBytesFromRand returns size bytes of cryptographically strong random
// data drawn with random.GetRandomBytes.
func NewBytesFromRand(size uint32) (Bytes, error) {
	return Bytes{data: random.GetRandomBytes(size)}, nil
}

// NewBytesFromData wraps a copy of data.
func NewBytesFromData(data []byte, _ insecuresecretdataaccess.Token) Bytes {
	return Bytes{data: bytes.Clone(data)}
}

// Data returns a copy of the wrapped bytes.
func (b Bytes) Data(_ insecuresecretdataaccess.Token) []byte { return bytes.Clone(b.data) }

// Len returns the size of the wrapped bytes.
func (b Bytes) Len() int { return len(b.data) }

// Equal reports whether b and other wrap the same bytes. The comparison takes
// constant time for inputs of equal length.
func (b Bytes) Equal(other Bytes) bool {
	return subtle.ConstantTimeCompare(b.data, other.data) == 1
}
