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

	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/internal/dyadic"
	"github.com/qdmce/qdmce-go/internal/gf2m"
	"github.com/qdmce/qdmce-go/subtle/random"
)

// keyMaterial is the outcome of one successful generation attempt.
type keyMaterial struct {
	essence    []uint32
	hsig       []uint32
	support    []uint32
	g          gf2m.Poly
	blockPerm  dyadic.Permutation
	blockPerms []int
	hperm      dyadic.Permutation
	qdSigs     []*bitvec.Vector
}

// GenerateKey generates a key pair for params.
//
// Each attempt samples a fresh dyadic signature, checks that it defines a
// Goppa code, shuffles and shortens its blocks and tries to bring the binary
// parity check matrix to systematic form. Rejected attempts are retried with
// fresh randomness up to the bound set by WithMaxAttempts.
//
// The private key is returned unprepared; call Prepare before Decrypt.
func GenerateKey(rng random.Source, params *Parameters, opts ...Option) (*PublicKey, *PrivateKey, error) {
	if params == nil {
		return nil, nil, fmt.Errorf("mceqd: nil parameters")
	}
	cfg := newConfig(opts)
	if cfg.maxAttempts < 0 {
		return nil, nil, fmt.Errorf("mceqd: negative attempt bound %d", cfg.maxAttempts)
	}
	f, err := gf2m.New(params.M())
	if err != nil {
		return nil, nil, fmt.Errorf("mceqd: %v", err)
	}
	log := cfg.logger.With().Stringer("params", params).Logger()
	for attempt := 1; cfg.maxAttempts == 0 || attempt <= cfg.maxAttempts; attempt++ {
		cfg.metrics.attempt()
		km, reason := tryGenerate(f, rng, params)
		if reason != "" {
			cfg.metrics.reject(reason)
			log.Debug().Int("attempt", attempt).Str("reason", reason).Msg("key generation attempt rejected")
			continue
		}
		cfg.metrics.keyGenerated()
		log.Info().Int("attempts", attempt).Msg("generated key pair")
		pub := NewPublicKey(params.LogBlockSize(), km.qdSigs)
		priv := &PrivateKey{
			params:     params,
			field:      f,
			cfg:        cfg,
			essence:    km.essence,
			hsig:       km.hsig,
			support:    km.support,
			g:          km.g,
			blockPerm:  km.blockPerm,
			blockPerms: km.blockPerms,
			hperm:      km.hperm,
		}
		return pub, priv, nil
	}
	return nil, nil, fmt.Errorf("%w after %d attempts for %v", ErrAttemptsExhausted, cfg.maxAttempts, params)
}

// chooseRandom draws a value from [1, limit) that is not in used and adds
// it to used. ok is false if used may already cover the range.
func chooseRandom(rng random.Source, limit uint32, used map[uint32]bool) (uint32, bool) {
	if len(used) >= int(limit)-1 {
		return 0, false
	}
	for {
		a := 1 + uint32(rng.IntN(int(limit)-1))
		if used[a] {
			continue
		}
		used[a] = true
		return a, true
	}
}

// sampleSignature samples the essence and derives the dyadic signature.
//
// used collects the sampled entries, the derived entries and the inverses
// of the support values built so far, so that no new sample repeats a
// signature entry or puts 1/h[0] in the span of the support.
func sampleSignature(f *gf2m.Field, rng random.Source) (essence, h []uint32, ok bool) {
	m := f.M()
	used := make(map[uint32]bool)
	essence = make([]uint32, m)
	h = make([]uint32, 1<<(m-1))

	if h[0], ok = chooseRandom(rng, f.N(), used); !ok {
		return nil, nil, false
	}
	e := f.Inv(h[0])
	essence[m-1] = e
	for s := 0; s < m-1; s++ {
		i := 1 << s
		if h[i], ok = chooseRandom(rng, f.N(), used); !ok {
			return nil, nil, false
		}
		essence[s] = e ^ f.Inv(h[i])
		used[f.Inv(essence[s])] = true
		fillClosure(f, h, i, e)
		for j := 1; j < i; j++ {
			used[h[i+j]] = true
			used[f.Inv(f.Inv(h[i+j])^e)] = true
		}
	}
	return essence, h, true
}

// tryGenerate runs one attempt. It returns the rejection reason on failure.
func tryGenerate(f *gf2m.Field, rng random.Source, params *Parameters) (*keyMaterial, string) {
	t := params.BlockSize()
	m := params.M()
	blockCount := params.BlockCount()

	essence, h, ok := sampleSignature(f, rng)
	if !ok {
		return nil, reasonSampleExhausted
	}
	g, _ := goppaPolynomial(f, h, t)
	support := supportFromSignature(f, h, essence[m-1])
	if reason := checkSupport(f, support, g); reason != "" {
		return nil, reason
	}

	blockPerm := dyadic.RandomPermutation(params.HBlockCount(), rng)
	kept := dyadic.Permute(blockPerm, signatureBlocks(h, t))[:blockCount]
	blockPerms := make([]int, blockCount)
	for i := range kept {
		blockPerms[i] = rng.IntN(t)
		kept[i] = dyadic.PermuteDyadic(blockPerms[i], kept[i])
	}

	for i := 0; i < blockCount; i++ {
		hperm := dyadic.RandomPermutation(blockCount, rng)
		hc := parityCheckMatrix(f, dyadic.Permute(hperm, kept))
		qdSigs, ok := systematicSignatures(hc)
		if !ok {
			continue
		}
		return &keyMaterial{
			essence:    essence,
			hsig:       h,
			support:    support,
			g:          g,
			blockPerm:  blockPerm,
			blockPerms: blockPerms,
			hperm:      hperm,
			qdSigs:     qdSigs,
		}, ""
	}
	return nil, reasonElimination
}
