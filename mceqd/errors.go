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

import "errors"

var (
	// ErrMalformedKey is returned by Encrypt for a public key without a
	// consistent signature.
	ErrMalformedKey = errors.New("mceqd: malformed public key")
	// ErrLengthMismatch is returned for inputs of the wrong bit length.
	ErrLengthMismatch = errors.New("mceqd: length mismatch")
	// ErrDecodeFailure is returned by Decrypt when the error pattern cannot
	// be corrected, including errors located outside the code support.
	ErrDecodeFailure = errors.New("mceqd: decode failure")
	// ErrInconsistentSupport is returned by Prepare when the private key
	// does not describe a valid Goppa code.
	ErrInconsistentSupport = errors.New("mceqd: inconsistent support")
	// ErrNotPrepared is returned by Decrypt before Prepare succeeded.
	ErrNotPrepared = errors.New("mceqd: private key not prepared")
	// ErrAttemptsExhausted is returned by GenerateKey when every allowed
	// attempt was rejected.
	ErrAttemptsExhausted = errors.New("mceqd: key generation attempts exhausted")
)
