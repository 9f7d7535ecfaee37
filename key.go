// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk

import (
	"fmt"

	"github.com/bytemare/cryptotk/internal"
)

// KeySize is the size of secret key material, in bytes.
const KeySize = 32

// Key256 is a 256-bit secret key. Its content is only readable through the scoped Expose method, and is overwritten
// with zeroes by Wipe. A Key256 is never copied implicitly: the only copy operation is the explicit Duplicate.
type Key256 struct {
	wiped   bool
	content [KeySize]byte
}

// GenerateKey256 returns a new key drawn from the operating system's cryptographically secure randomness source,
// and fails with ErrRandomSource only if that source fails.
func GenerateKey256() (*Key256, error) {
	k := &Key256{}
	if err := internal.RandomBytes(k.content[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return k, nil
}

// Key256FromBytes builds a key from the KeySize bytes in material, which is zeroed before returning so that the
// key holds the only copy. Returns ErrKeySize if material is not exactly KeySize bytes long.
func Key256FromBytes(material []byte) (*Key256, error) {
	if len(material) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrKeySize, len(material))
	}

	k := &Key256{}
	copy(k.content[:], material)
	internal.Wipe(material)

	return k, nil
}

// Duplicate returns an independent copy of the key. Copying secret key material is never done implicitly; every
// copy in the toolkit goes through this method.
func (k *Key256) Duplicate() *Key256 {
	k.mustBeLive()

	d := &Key256{}
	d.content = k.content

	return d
}

// Expose calls read with the raw key bytes. The slice is only valid for the duration of the call and must not be
// retained or written to. This is the only read access to the key content.
func (k *Key256) Expose(read func(content []byte)) {
	k.mustBeLive()
	read(k.content[:])
}

// Wipe overwrites the key content with zeroes. The key must not be used afterwards.
func (k *Key256) Wipe() {
	internal.Wipe(k.content[:])
	k.wiped = true
}

// Wiped reports whether the key has been wiped.
func (k *Key256) Wiped() bool {
	return k.wiped
}

func (k *Key256) mustBeLive() {
	if k.wiped {
		panic("cryptotk: use of wiped key material")
	}
}
