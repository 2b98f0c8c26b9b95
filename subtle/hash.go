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

// Package subtle provides key derivation helpers shared by the hybrid
// primitives.
package subtle

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// GetHashDigestSize returns the digest size of the specified hash algorithm.
func GetHashDigestSize(hashAlg string) (uint32, error) {
	switch hashAlg {
	case "SHA256":
		return sha256.Size, nil
	case "SHA384":
		return sha512.Size384, nil
	case "SHA512":
		return sha512.Size, nil
	default:
		return 0, fmt.Errorf("invalid hash algorithm %q", hashAlg)
	}
}

// GetHashFunc returns the constructor of the specified hash algorithm, or nil
// if it is not supported.
func GetHashFunc(hashAlg string) func() hash.Hash {
	switch hashAlg {
	case "SHA256":
		return sha256.New
	case "SHA384":
		return sha512.New384
	case "SHA512":
		return sha512.New
	default:
		return nil
	}
}
