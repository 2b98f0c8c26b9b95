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

// Package outputprefix computes the key ID prefix of hybrid ciphertexts.
package outputprefix

import (
	"encoding/binary"
)

const (
	// Size is the length of a non-empty prefix.
	Size = 5
	// startByte is the first byte of every prefix.
	startByte = byte(1)
)

// WithKeyID returns the 5-byte prefix 0x01 || big endian keyID.
func WithKeyID(keyID uint32) []byte {
	prefix := make([]byte, Size)
	prefix[0] = startByte
	binary.BigEndian.PutUint32(prefix[1:], keyID)
	return prefix
}
