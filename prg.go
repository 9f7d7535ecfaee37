// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk

import (
	"golang.org/x/crypto/chacha20"

	"github.com/bytemare/cryptotk/internal"
)

// chacha20BlockSize is the keystream block size of ChaCha20, in bytes.
const chacha20BlockSize = 64

// maxExpansion is the length of the ChaCha20 keystream under one nonce: 2^32 blocks of 64 bytes. The PRG
// expansion ends there; the 32-bit block counter would otherwise silently wrap.
const maxExpansion = uint64(1) << 38

// prgNonce is the fixed all-zero nonce of the PRG. The PRG is a deterministic expansion of its seed, so a single-use
// keystream per key is exactly what is wanted.
var prgNonce = make([]byte, chacha20.NonceSize)

// PRG is a pseudo-random generator expanding a secret seed into a pseudo-random byte sequence of up to 2^38
// bytes, implemented as the ChaCha20 keystream under the seed with a fixed nonce. Evaluation is deterministic and pure;
// only NewPRG can fail, on randomness source failure.
type PRG struct {
	key *Key256
}

// NewPRG returns a PRG seeded with a new random key.
func NewPRG() (*PRG, error) {
	key, err := GenerateKey256()
	if err != nil {
		return nil, err
	}

	return PRGFromKey(key), nil
}

// PRGFromKey returns a PRG seeded with key. The PRG takes ownership of the key, which is wiped together with
// the PRG.
func PRGFromKey(key *Key256) *PRG {
	return &PRG{key: key}
}

// FillBytes fills out with the pseudo-random expansion of the seed.
func (p *PRG) FillBytes(out []byte) {
	p.FillBytesAt(0, out)
}

// FillBytesAt fills out with the pseudo-random expansion of the seed, starting offset bytes into the expansion.
// It is equivalent to generating offset+len(out) bytes and discarding the first offset ones, without paying for
// the discarded prefix. The expansion is 2^38 bytes long; requesting bytes past its end panics.
func (p *PRG) FillBytesAt(offset uint64, out []byte) {
	if offset >= maxExpansion || uint64(len(out)) > maxExpansion-offset {
		panic("cryptotk: PRG expansion bounds exceeded")
	}

	p.key.Expose(func(content []byte) {
		cipher, err := chacha20.NewUnauthenticatedCipher(content, prgNonce)
		if err != nil {
			panic("cryptotk: invalid PRG cipher setup: " + err.Error())
		}

		cipher.SetCounter(uint32(offset / chacha20BlockSize))

		if skip := offset % chacha20BlockSize; skip != 0 {
			var scratch [chacha20BlockSize]byte
			cipher.XORKeyStream(scratch[:skip], scratch[:skip])
			internal.Wipe(scratch[:])
		}

		// XOR over a zeroed buffer yields the raw keystream.
		internal.Wipe(out)
		cipher.XORKeyStream(out, out)
	})
}

// Wipe zeroes the PRG's seed.
func (p *PRG) Wipe() {
	p.key.Wipe()
}

// KeyDerivationPRG derives pairwise independent keys from a single secret seed. Key i is read from the seed's
// pseudo-random expansion at byte offset i*KeySize, so distinct indexes are bound to disjoint, non-overlapping
// derivation contexts of the keystream.
type KeyDerivationPRG struct {
	prg *PRG
}

// NewKeyDerivationPRG returns a key derivation PRG seeded with a new random key.
func NewKeyDerivationPRG() (*KeyDerivationPRG, error) {
	prg, err := NewPRG()
	if err != nil {
		return nil, err
	}

	return &KeyDerivationPRG{prg: prg}, nil
}

// KeyDerivationPRGFromKey returns a key derivation PRG seeded with key, taking ownership of the key.
func KeyDerivationPRGFromKey(key *Key256) *KeyDerivationPRG {
	return &KeyDerivationPRG{prg: PRGFromKey(key)}
}

// DeriveKey derives the key of the given index.
func (d *KeyDerivationPRG) DeriveKey(index uint32) *Key256 {
	var buf [KeySize]byte
	d.prg.FillBytesAt(uint64(index)*KeySize, buf[:])

	key, _ := Key256FromBytes(buf[:])

	return key
}

// DeriveKeyPair derives the keys of indexes index and index+1 in a single expansion.
func (d *KeyDerivationPRG) DeriveKeyPair(index uint32) (*Key256, *Key256) {
	var buf [2 * KeySize]byte
	d.prg.FillBytesAt(uint64(index)*KeySize, buf[:])

	left, _ := Key256FromBytes(buf[:KeySize])
	right, _ := Key256FromBytes(buf[KeySize:])

	return left, right
}

// DeriveKeys derives count consecutive keys starting at index start, ordered by increasing index.
func (d *KeyDerivationPRG) DeriveKeys(start uint32, count int) []*Key256 {
	buf := make([]byte, count*KeySize)
	d.prg.FillBytesAt(uint64(start)*KeySize, buf)

	keys := make([]*Key256, count)
	for i := range keys {
		keys[i], _ = Key256FromBytes(buf[i*KeySize : (i+1)*KeySize])
	}

	return keys
}

// Wipe zeroes the underlying seed.
func (d *KeyDerivationPRG) Wipe() {
	d.prg.Wipe()
}
