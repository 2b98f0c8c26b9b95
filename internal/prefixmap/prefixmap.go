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

// Package prefixmap indexes decrypters by the output prefix of their key.
package prefixmap

import (
	"fmt"

	"github.com/qdmce/qdmce-go/internal/outputprefix"
)

// EmptyPrefix is the prefix of keys without an ID requirement.
const EmptyPrefix = ""

// PrefixMap maps output prefixes to primitives.
type PrefixMap[P any] struct {
	items map[string][]P
}

// New creates an empty PrefixMap.
func New[P any]() *PrefixMap[P] {
	return &PrefixMap[P]{items: make(map[string][]P)}
}

// Iterator walks the primitives whose prefix matches a ciphertext: first
// those with a key ID prefix, in insertion order, then those without one.
type Iterator[P any] struct {
	prefixed []P
	raw      []P
	index    int
}

// Next returns the next primitive, or false when there is none left.
func (i *Iterator[P]) Next() (P, bool) {
	switch {
	case i.index < len(i.prefixed):
		p := i.prefixed[i.index]
		i.index++
		return p, true
	case i.index < len(i.prefixed)+len(i.raw):
		p := i.raw[i.index-len(i.prefixed)]
		i.index++
		return p, true
	default:
		var zero P
		return zero, false
	}
}

// PrimitivesMatchingPrefix returns an iterator over the primitives that may
// decrypt ciphertext.
func (m *PrefixMap[P]) PrimitivesMatchingPrefix(ciphertext []byte) *Iterator[P] {
	var prefixed []P
	if len(ciphertext) >= outputprefix.Size {
		prefixed = m.items[string(ciphertext[:outputprefix.Size])]
	}
	return &Iterator[P]{prefixed: prefixed, raw: m.items[EmptyPrefix]}
}

// Insert adds primitive under prefix, which is empty or outputprefix.Size
// bytes long.
func (m *PrefixMap[P]) Insert(prefix string, primitive P) error {
	if len(prefix) > 0 && len(prefix) != outputprefix.Size {
		return fmt.Errorf("prefixmap: prefix has size %d, want %d", len(prefix), outputprefix.Size)
	}
	m.items[prefix] = append(m.items[prefix], primitive)
	return nil
}
