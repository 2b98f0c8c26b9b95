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
	"fmt"

	"github.com/qdmce/qdmce-go/internal/dyadic"
)

// Prepare rebuilds the code from the essence and derives the structures used
// by Decrypt: the permuted parity check blocks, the support position lookup
// and the square root matrix of the Goppa polynomial.
//
// Prepare is deterministic and may be called again; it must not run
// concurrently with Decrypt.
func (k *PrivateKey) Prepare() error {
	f := k.field
	p := k.params
	t := p.BlockSize()
	blockCount := p.BlockCount()
	e := k.essence[p.M()-1]

	hsig := signatureFromEssence(f, k.essence)
	support := supportFromSignature(f, hsig, e)
	g, roots := goppaPolynomial(f, hsig, t)
	if reason := checkSupport(f, support, g); reason != "" {
		k.cfg.logger.Debug().Str("reason", reason).Msg("private key preparation failed")
		return fmt.Errorf("%w: %s", ErrInconsistentSupport, reason)
	}
	sqInv, err := g.SquareRootMatrix(f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentSupport, err)
	}

	sigBlocks := signatureBlocks(hsig, t)
	supBlocks := signatureBlocks(support, t)
	cols := make([][]uint32, blockCount)
	supportPos := make(map[uint32]int, blockCount*t)
	for i := range sigBlocks {
		pos := k.blockPerm[i]
		if pos >= blockCount {
			continue
		}
		sub := k.blockPerms[pos]
		dest := k.hperm[pos]
		cols[dest] = dyadic.PermuteDyadic(sub, sigBlocks[i])
		for j, x := range dyadic.PermuteDyadic(sub, supBlocks[i]) {
			supportPos[x] = dest*t + j
		}
	}

	k.hsig = hsig
	k.support = support
	k.g = g
	k.roots = roots
	k.sqInv = sqInv
	k.hc = parityCheckMatrix(f, cols)
	k.supportPos = supportPos
	k.prepared = true
	k.cfg.logger.Debug().Int("block_count", blockCount).Int("support_size", len(supportPos)).Msg("prepared private key")
	return nil
}
