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

// Package key defines interfaces for Key and Parameters types.
package key

// Parameters represents key parameters.
type Parameters interface {
	// HasIDRequirement tells whether the key has an ID requirement, that is, if a
	// key generated with these parameters must have a given ID.
	//
	// Keys with an ID requirement prefix their ciphertexts with the key ID, so
	// that a receiver holding several keys can pick the right one.
	HasIDRequirement() bool
	// Equal compares this parameters object with other.
	Equal(other Parameters) bool
}

// Key represents a key of a hybrid primitive.
//
// A key contains all the information needed to build the primitive: its
// parameters, its optional ID, and the key material itself.
type Key interface {
	// Parameters returns the parameters of this key.
	Parameters() Parameters
	// IDRequirement returns the key ID and whether the key requires it.
	IDRequirement() (id uint32, required bool)
	// Equal compares this key object with other.
	Equal(other Key) bool
}
