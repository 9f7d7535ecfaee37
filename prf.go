// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// PRF is a variable-output-length pseudo-random function keyed with a Key256, built on keyed BLAKE2b in counter
// mode. Each output block hashes the input together with the block counter and the total requested output length,
// both little-endian encoded, so that outputs of different lengths for the same input are unrelated: the PRF
// evaluated for 16 bytes is not a prefix of the PRF evaluated for 32.
type PRF struct {
	key *Key256
}

// NewPRF returns a PRF keyed with a new random key.
func NewPRF() (*PRF, error) {
	key, err := GenerateKey256()
	if err != nil {
		return nil, err
	}

	return PRFFromKey(key), nil
}

// PRFFromKey returns a PRF keyed with key, taking ownership of the key.
func PRFFromKey(key *Key256) *PRF {
	return &PRF{key: key}
}

// FillBytes fills out with the PRF evaluation on input.
func (f *PRF) FillBytes(input, out []byte) {
	f.key.Expose(func(content []byte) {
		var counter, total [8]byte

		binary.LittleEndian.PutUint64(total[:], uint64(len(out)))

		written := 0
		for block := uint64(0); written < len(out); block++ {
			length := min(len(out)-written, blake2b.Size)

			h, err := blake2b.New(length, content)
			if err != nil {
				panic("cryptotk: invalid PRF hash setup: " + err.Error())
			}

			binary.LittleEndian.PutUint64(counter[:], block)

			h.Write(input)
			h.Write(counter[:])
			h.Write(total[:])

			copy(out[written:written+length], h.Sum(nil))
			written += length
		}
	})
}

// DeriveKey evaluates the PRF on input and returns the output as a new key.
func (f *PRF) DeriveKey(input []byte) *Key256 {
	var buf [KeySize]byte
	f.FillBytes(input, buf[:])

	key, _ := Key256FromBytes(buf[:])

	return key
}

// Wipe zeroes the PRF's key.
func (f *PRF) Wipe() {
	f.key.Wipe()
}
