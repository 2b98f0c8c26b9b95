// Copyright 2020 Google LLC
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

package subtle

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Minimum output size in bytes. This provides minimum 80-bit security strength.
const minOutputSizeInBytes = uint32(10)

// ComputeHKDF derives outputSize bytes from key with HKDF (RFC 5869). An empty
// salt is replaced by a block of zeros of the digest size.
func ComputeHKDF(hashAlg string, key, salt, info []byte, outputSize uint32) ([]byte, error) {
	digestSize, err := GetHashDigestSize(hashAlg)
	if err != nil {
		return nil, fmt.Errorf("hkdf: %v", err)
	}
	if outputSize > 255*digestSize {
		return nil, fmt.Errorf("hkdf: output size %d too big", outputSize)
	}
	if outputSize < minOutputSizeInBytes {
		return nil, fmt.Errorf("hkdf: output size %d too small", outputSize)
	}
	if len(salt) == 0 {
		salt = make([]byte, digestSize)
	}
	out := make([]byte, outputSize)
	if _, err := io.ReadFull(hkdf.New(GetHashFunc(hashAlg), key, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %v", err)
	}
	return out, nil
}
