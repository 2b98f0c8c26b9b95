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

// Package aead provides the authenticated ciphers used as data encapsulation
// mechanisms by the hybrid primitives.
package aead

const (
	// AES256GCMKeySize is the key size of AES256GCM.
	AES256GCMKeySize = 32
	// AESGCMIVSize is the only IV size that this package supports.
	AESGCMIVSize = 12
	// AESGCMTagSize is the only tag size that this package supports.
	AESGCMTagSize = 16

	intSize = 32 << (^uint(0) >> 63) // 32 or 64
	maxInt  = 1<<(intSize-1) - 1
)
