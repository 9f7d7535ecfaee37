// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import (
	"github.com/bytemare/cryptotk"
)

// A KeyDerivationRCPRF is an RCPRF whose outputs are handed back as keys instead of raw bytes, for callers that
// delegate per-index key material, e.g. per-document encryption keys in searchable encryption.
type KeyDerivationRCPRF struct {
	inner *RCPRF
}

// NewKeyDerivation returns a key-deriving RCPRF over the domain [0, domainSize-1] under suite s, with a fresh
// random master key.
func (s Suite) NewKeyDerivation(domainSize uint64) (*KeyDerivationRCPRF, error) {
	inner, err := s.New(domainSize)
	if err != nil {
		return nil, err
	}

	return &KeyDerivationRCPRF{inner: inner}, nil
}

// KeyDerivationFromKey returns a key-deriving RCPRF over the domain [0, domainSize-1] under suite s, with the
// given master key, taking ownership of the key.
func (s Suite) KeyDerivationFromKey(key *cryptotk.Key256, domainSize uint64) (*KeyDerivationRCPRF, error) {
	inner, err := s.FromKey(key, domainSize)
	if err != nil {
		return nil, err
	}

	return &KeyDerivationRCPRF{inner: inner}, nil
}

// Coverage returns the inclusive bounds of the range keys can be derived on.
func (d *KeyDerivationRCPRF) Coverage() (lo, hi uint64) {
	return d.inner.Coverage()
}

// DeriveKey returns the key of index x, and ErrOutOfRange if x is outside the coverage.
func (d *KeyDerivationRCPRF) DeriveKey(x uint64) (*cryptotk.Key256, error) {
	out, err := d.inner.Eval(x)
	if err != nil {
		return nil, err
	}

	return cryptotk.Key256FromBytes(out)
}

// DeriveKeyRange returns the keys of every index in [lo, hi], in index order.
func (d *KeyDerivationRCPRF) DeriveKeyRange(lo, hi uint64) ([]*cryptotk.Key256, error) {
	outs, err := d.inner.EvalRange(lo, hi)
	if err != nil {
		return nil, err
	}

	keys := make([]*cryptotk.Key256, len(outs))
	for i, out := range outs {
		keys[i], _ = cryptotk.Key256FromBytes(out)
	}

	return keys, nil
}

// Constrain returns a new key-deriving RCPRF whose coverage is exactly [lo, hi]. The receiver is unchanged.
func (d *KeyDerivationRCPRF) Constrain(lo, hi uint64) (*KeyDerivationRCPRF, error) {
	inner, err := d.inner.Constrain(lo, hi)
	if err != nil {
		return nil, err
	}

	return &KeyDerivationRCPRF{inner: inner}, nil
}

// Wipe zeroes every key the object holds.
func (d *KeyDerivationRCPRF) Wipe() {
	d.inner.Wipe()
}
