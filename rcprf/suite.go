// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import (
	"fmt"

	"lukechampine.com/blake3"

	"github.com/bytemare/cryptotk"
)

// Suite identifies the concrete primitives an RC-PRF binds at construction: the key derivation used for child
// keys and the PRF used at the leaves. The choice is a construction-time capability, not a runtime switch.
type Suite byte

const (
	// ChaCha20Blake2b derives child keys from the ChaCha20-based key derivation PRG and evaluates leaves with the
	// keyed BLAKE2b PRF of the cryptotk package.
	ChaCha20Blake2b Suite = 1 + iota

	// Blake3 derives child keys and evaluates leaves with keyed BLAKE3.
	Blake3
)

// String implements fmt.Stringer.
func (s Suite) String() string {
	switch s {
	case ChaCha20Blake2b:
		return "ChaCha20-BLAKE2b"
	case Blake3:
		return "BLAKE3"
	default:
		return fmt.Sprintf("Suite(%d)", byte(s))
	}
}

// primitives is the capability interface the tree algorithm consumes. Implementations must be deterministic and
// one-way: child keys and leaf outputs leak nothing about the parent key or the sibling's derivation context.
type primitives interface {
	// deriveChild derives the key of the given child from the parent key, through domain-separated contexts for
	// the left and the right child. The parent key is only read.
	deriveChild(parent *cryptotk.Key256, c child) *cryptotk.Key256

	// fillLeaf fills out with the leaf PRF evaluation under key.
	fillLeaf(key *cryptotk.Key256, out []byte)
}

// loadPrimitives binds a suite to its implementation.
func loadPrimitives(s Suite) primitives {
	switch s {
	case ChaCha20Blake2b:
		return chacha20Blake2b{}
	case Blake3:
		return blake3Primitives{}
	default:
		panic(fmt.Sprintf("invalid RC-PRF dependency - Suite: %v", s))
	}
}

// keyHandle couples a node key with the suite primitives deriving from it, so frontier elements carry their
// capability binding with the key.
type keyHandle struct {
	key  *cryptotk.Key256
	prim primitives
}

func newKeyHandle(key *cryptotk.Key256, prim primitives) *keyHandle {
	return &keyHandle{key: key, prim: prim}
}

func (h *keyHandle) deriveChild(c child) *keyHandle {
	return &keyHandle{key: h.prim.deriveChild(h.key, c), prim: h.prim}
}

func (h *keyHandle) fillLeaf(out []byte) {
	h.prim.fillLeaf(h.key, out)
}

func (h *keyHandle) duplicate() *keyHandle {
	return &keyHandle{key: h.key.Duplicate(), prim: h.prim}
}

func (h *keyHandle) wipe() {
	h.key.Wipe()
}

// chacha20Blake2b builds the tree on the toolkit's own primitives. Sibling domain separation comes from the key
// derivation PRG: child i reads the disjoint keystream context [i*KeySize, (i+1)*KeySize).
type chacha20Blake2b struct{}

func (chacha20Blake2b) deriveChild(parent *cryptotk.Key256, c child) *cryptotk.Key256 {
	prg := cryptotk.KeyDerivationPRGFromKey(parent.Duplicate())
	defer prg.Wipe()

	return prg.DeriveKey(uint32(c))
}

func (chacha20Blake2b) fillLeaf(key *cryptotk.Key256, out []byte) {
	prf := cryptotk.PRFFromKey(key.Duplicate())
	defer prf.Wipe()

	prf.FillBytes([]byte{0}, out)
}

// Domain separation tags for the BLAKE3 suite: derivation contexts are bound by a single explicit tag byte
// hashed under the parent key.
const (
	blake3TagLeftChild  = 0x00
	blake3TagRightChild = 0x01
	blake3TagLeaf       = 0x02
)

type blake3Primitives struct{}

func (blake3Primitives) deriveChild(parent *cryptotk.Key256, c child) *cryptotk.Key256 {
	tag := byte(blake3TagLeftChild)
	if c == rightChild {
		tag = blake3TagRightChild
	}

	var derived *cryptotk.Key256

	parent.Expose(func(content []byte) {
		h := blake3.New(cryptotk.KeySize, content)
		h.Write([]byte{tag})
		derived, _ = cryptotk.Key256FromBytes(h.Sum(nil))
	})

	return derived
}

func (blake3Primitives) fillLeaf(key *cryptotk.Key256, out []byte) {
	key.Expose(func(content []byte) {
		h := blake3.New(len(out), content)
		h.Write([]byte{blake3TagLeaf})
		copy(out, h.Sum(nil))
	})
}
