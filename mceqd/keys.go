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
	"slices"

	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/insecuresecretdataaccess"
	"github.com/qdmce/qdmce-go/internal/dyadic"
	"github.com/qdmce/qdmce-go/internal/gf2m"
)

// PublicKey is a QD McEliece public key: the dyadic signatures of the
// redundancy part of the systematic generator matrix. It is immutable and
// safe for concurrent use.
type PublicKey struct {
	logT   int
	qdSigs []*bitvec.Vector
}

// NewPublicKey creates a public key from its block size exponent and
// signatures, which are copied. The signatures are validated by Encrypt.
func NewPublicKey(logT int, qdSigs []*bitvec.Vector) *PublicKey {
	sigs := make([]*bitvec.Vector, len(qdSigs))
	for i, s := range qdSigs {
		sigs[i] = s.Clone()
	}
	return &PublicKey{logT: logT, qdSigs: sigs}
}

// LogBlockSize returns T.
func (k *PublicKey) LogBlockSize() int { return k.logT }

// BlockSize returns t = 2^T, the number of errors added by Encrypt. It is 0
// if T is outside [0, gf2m.MaxDegree).
func (k *PublicKey) BlockSize() int {
	if k.logT < 0 || k.logT >= gf2m.MaxDegree {
		return 0
	}
	return 1 << k.logT
}

// Signatures returns a copy of the redundancy signatures.
func (k *PublicKey) Signatures() []*bitvec.Vector {
	return NewPublicKey(k.logT, k.qdSigs).qdSigs
}

// PlainSize returns the number of message bits.
func (k *PublicKey) PlainSize() int { return len(k.qdSigs) * k.BlockSize() }

// CipherSize returns the number of ciphertext bits.
func (k *PublicKey) CipherSize() int {
	if len(k.qdSigs) == 0 || k.BlockSize() == 0 {
		return 0
	}
	return k.PlainSize() + k.qdSigs[0].Len()
}

// Equal reports whether k and other hold the same key.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && k.logT == other.logT &&
		slices.EqualFunc(k.qdSigs, other.qdSigs, (*bitvec.Vector).Equal)
}

// PrivateKeyOpts holds the minimal representation of a private key.
type PrivateKeyOpts struct {
	Parameters *Parameters
	// Essence holds M() field elements that determine the dyadic
	// signature of the code.
	Essence []uint32
	// BlockPerm permutes the HBlockCount() signature blocks. Blocks mapped
	// to positions at or beyond BlockCount() are discarded.
	BlockPerm []int
	// BlockPerms holds the dyadic permutation index, in [0, BlockSize()),
	// of each retained block.
	BlockPerms []int
	// HPerm maps each retained block to its column of the code.
	HPerm []int
}

// PrivateKey is a QD McEliece private key.
//
// Decrypt requires the derived decoding structures built by Prepare. A
// prepared key is safe for concurrent use.
type PrivateKey struct {
	params     *Parameters
	field      *gf2m.Field
	cfg        *config
	essence    []uint32
	blockPerm  dyadic.Permutation
	blockPerms []int
	hperm      dyadic.Permutation

	// Rebuilt from the essence.
	hsig    []uint32
	support []uint32
	g       gf2m.Poly

	// Derived by Prepare.
	prepared bool
	hc       *dyadic.BlockMatrix
	// supportPos maps a support element to its code position.
	supportPos map[uint32]int
	roots      []uint32
	sqInv      []gf2m.Poly
}

// NewPrivateKey creates an unprepared private key from its minimal
// representation. Structural problems are reported here; whether the essence
// defines a valid code is checked by Prepare.
func NewPrivateKey(opts PrivateKeyOpts, _ insecuresecretdataaccess.Token, options ...Option) (*PrivateKey, error) {
	p := opts.Parameters
	if p == nil {
		return nil, fmt.Errorf("mceqd: nil parameters")
	}
	f, err := gf2m.New(p.M())
	if err != nil {
		return nil, fmt.Errorf("mceqd: %v", err)
	}
	if len(opts.Essence) != p.M() {
		return nil, fmt.Errorf("mceqd: essence has %d elements, want %d", len(opts.Essence), p.M())
	}
	for _, x := range opts.Essence {
		if x >= f.N() {
			return nil, fmt.Errorf("mceqd: essence element %d outside GF(2^%d)", x, p.M())
		}
	}
	if err := dyadic.Permutation(opts.BlockPerm).Validate(p.HBlockCount()); err != nil {
		return nil, fmt.Errorf("mceqd: block permutation: %v", err)
	}
	if len(opts.BlockPerms) != p.BlockCount() {
		return nil, fmt.Errorf("mceqd: %d dyadic block permutations, want %d", len(opts.BlockPerms), p.BlockCount())
	}
	for _, s := range opts.BlockPerms {
		if s < 0 || s >= p.BlockSize() {
			return nil, fmt.Errorf("mceqd: dyadic permutation index %d out of range [0, %d)", s, p.BlockSize())
		}
	}
	if err := dyadic.Permutation(opts.HPerm).Validate(p.BlockCount()); err != nil {
		return nil, fmt.Errorf("mceqd: column permutation: %v", err)
	}
	return &PrivateKey{
		params:     p,
		field:      f,
		cfg:        newConfig(options),
		essence:    slices.Clone(opts.Essence),
		blockPerm:  slices.Clone(dyadic.Permutation(opts.BlockPerm)),
		blockPerms: slices.Clone(opts.BlockPerms),
		hperm:      slices.Clone(dyadic.Permutation(opts.HPerm)),
	}, nil
}

// Parameters returns the parameters of the key.
func (k *PrivateKey) Parameters() *Parameters { return k.params }

// PlainSize returns the number of message bits.
func (k *PrivateKey) PlainSize() int { return k.params.PlainSize() }

// CipherSize returns the number of ciphertext bits.
func (k *PrivateKey) CipherSize() int { return k.params.CipherSize() }

// Opts returns a copy of the minimal representation of the key.
func (k *PrivateKey) Opts(_ insecuresecretdataaccess.Token) PrivateKeyOpts {
	return PrivateKeyOpts{
		Parameters: k.params,
		Essence:    slices.Clone(k.essence),
		BlockPerm:  slices.Clone([]int(k.blockPerm)),
		BlockPerms: slices.Clone(k.blockPerms),
		HPerm:      slices.Clone([]int(k.hperm)),
	}
}

// Signature returns a copy of the full dyadic signature. It is nil for a key
// built by NewPrivateKey until Prepare succeeds.
func (k *PrivateKey) Signature(_ insecuresecretdataaccess.Token) []uint32 {
	return slices.Clone(k.hsig)
}

// Support returns a copy of the support, indexed like the signature. It is
// nil for a key built by NewPrivateKey until Prepare succeeds.
func (k *PrivateKey) Support(_ insecuresecretdataaccess.Token) []uint32 {
	return slices.Clone(k.support)
}

// GoppaPolynomial returns a copy of the Goppa polynomial, lowest degree
// coefficient first.
func (k *PrivateKey) GoppaPolynomial(_ insecuresecretdataaccess.Token) []uint32 {
	return slices.Clone([]uint32(k.g))
}

// Prepared reports whether Prepare has succeeded on k.
func (k *PrivateKey) Prepared() bool { return k.prepared }

// supportPosition returns the code position of the support element x.
func (k *PrivateKey) supportPosition(x uint32) (int, bool) {
	pos, ok := k.supportPos[x]
	return pos, ok
}

// PublicKey recomputes the public key of a prepared private key.
func (k *PrivateKey) PublicKey() (*PublicKey, error) {
	if !k.prepared {
		return nil, ErrNotPrepared
	}
	sigs, ok := systematicSignatures(k.hc)
	if !ok {
		return nil, fmt.Errorf("mceqd: parity check matrix has no systematic form: %w", ErrInconsistentSupport)
	}
	return &PublicKey{logT: k.params.LogBlockSize(), qdSigs: sigs}, nil
}
