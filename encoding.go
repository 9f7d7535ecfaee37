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

// ObjectTag identifies the type of a serialized object.
type ObjectTag byte

const (
	// TagKey256 identifies a serialized Key256.
	TagKey256 ObjectTag = 1 + iota

	// TagPRG identifies a serialized PRG.
	TagPRG

	// TagPRF identifies a serialized PRF.
	TagPRF

	// TagCipher identifies a serialized Cipher.
	TagCipher

	// TagAEADCipher identifies a serialized AEADCipher.
	TagAEADCipher
)

// encodingVersion is the current version of the serialization format.
const encodingVersion byte = 1

// SerializedSize is the length of a serialized object: a tag byte, a format version byte, and the key material.
const SerializedSize = 2 + KeySize

// A Serializable object encodes itself to a tagged, versioned byte representation.
//
// Serialization is in cleartext and contains secret key material: do not store or transmit it unprotected. Use a
// Wrapper to produce encrypted serializations.
type Serializable interface {
	Serialize() []byte
}

func serializeKey(tag ObjectTag, key *Key256) []byte {
	out := make([]byte, 0, SerializedSize)
	out = append(out, byte(tag), encodingVersion)

	key.Expose(func(content []byte) {
		out = append(out, content...)
	})

	return out
}

// deserializeKey validates the header and extracts the key material. The key bytes in encoded are zeroed, so the
// returned key holds the only remaining copy.
func deserializeKey(tag ObjectTag, encoded []byte) (*Key256, error) {
	if len(encoded) != SerializedSize {
		return nil, fmt.Errorf("%w: %d", ErrEncodingSize, len(encoded))
	}

	if ObjectTag(encoded[0]) != tag {
		return nil, fmt.Errorf("%w: %d", ErrEncodingTag, encoded[0])
	}

	if encoded[1] != encodingVersion {
		return nil, fmt.Errorf("%w: %d", ErrEncodingVersion, encoded[1])
	}

	return Key256FromBytes(encoded[2:])
}

// Serialize encodes the key. The output contains the raw secret, see Serializable.
func (k *Key256) Serialize() []byte {
	return serializeKey(TagKey256, k)
}

// Serialize encodes the PRG's seed. The output contains the raw secret, see Serializable.
func (p *PRG) Serialize() []byte {
	return serializeKey(TagPRG, p.key)
}

// Serialize encodes the PRF's key. The output contains the raw secret, see Serializable.
func (f *PRF) Serialize() []byte {
	return serializeKey(TagPRF, f.key)
}

// Serialize encodes the cipher's key. The output contains the raw secret, see Serializable.
func (c *Cipher) Serialize() []byte {
	return serializeKey(TagCipher, c.prf.key)
}

// Serialize encodes the cipher's key. The output contains the raw secret, see Serializable.
func (c *AEADCipher) Serialize() []byte {
	return serializeKey(TagAEADCipher, c.prf.key)
}

// DeserializeKey256 decodes a key serialized with Key256.Serialize. The key bytes in encoded are zeroed.
func DeserializeKey256(encoded []byte) (*Key256, error) {
	return deserializeKey(TagKey256, encoded)
}

// DeserializePRG decodes a PRG serialized with PRG.Serialize. The key bytes in encoded are zeroed.
func DeserializePRG(encoded []byte) (*PRG, error) {
	key, err := deserializeKey(TagPRG, encoded)
	if err != nil {
		return nil, err
	}

	return PRGFromKey(key), nil
}

// DeserializePRF decodes a PRF serialized with PRF.Serialize. The key bytes in encoded are zeroed.
func DeserializePRF(encoded []byte) (*PRF, error) {
	key, err := deserializeKey(TagPRF, encoded)
	if err != nil {
		return nil, err
	}

	return PRFFromKey(key), nil
}

// DeserializeCipher decodes a Cipher serialized with Cipher.Serialize. The key bytes in encoded are zeroed.
func DeserializeCipher(encoded []byte) (*Cipher, error) {
	key, err := deserializeKey(TagCipher, encoded)
	if err != nil {
		return nil, err
	}

	return CipherFromKey(key), nil
}

// DeserializeAEADCipher decodes an AEADCipher serialized with AEADCipher.Serialize. The key bytes in encoded are
// zeroed.
func DeserializeAEADCipher(encoded []byte) (*AEADCipher, error) {
	key, err := deserializeKey(TagAEADCipher, encoded)
	if err != nil {
		return nil, err
	}

	return AEADCipherFromKey(key), nil
}

// A Wrapper encrypts serialized cryptographic objects under a wrapping key, so they can be stored or transmitted
// without exposing their key material.
type Wrapper struct {
	cipher *AEADCipher
}

// NewWrapper returns a Wrapper encrypting under key, taking ownership of the key.
func NewWrapper(key *Key256) *Wrapper {
	return &Wrapper{cipher: AEADCipherFromKey(key)}
}

// Wrap serializes obj and encrypts the serialization. The cleartext serialization is wiped before returning.
func (w *Wrapper) Wrap(obj Serializable) ([]byte, error) {
	serialized := obj.Serialize()
	defer internal.Wipe(serialized)

	return w.cipher.Encrypt(serialized)
}

func (w *Wrapper) unwrap(wrapped []byte) ([]byte, error) {
	return w.cipher.Decrypt(wrapped)
}

// UnwrapKey256 decrypts and decodes a wrapped Key256.
func (w *Wrapper) UnwrapKey256(wrapped []byte) (*Key256, error) {
	serialized, err := w.unwrap(wrapped)
	if err != nil {
		return nil, err
	}

	return DeserializeKey256(serialized)
}

// UnwrapPRG decrypts and decodes a wrapped PRG.
func (w *Wrapper) UnwrapPRG(wrapped []byte) (*PRG, error) {
	serialized, err := w.unwrap(wrapped)
	if err != nil {
		return nil, err
	}

	return DeserializePRG(serialized)
}

// UnwrapPRF decrypts and decodes a wrapped PRF.
func (w *Wrapper) UnwrapPRF(wrapped []byte) (*PRF, error) {
	serialized, err := w.unwrap(wrapped)
	if err != nil {
		return nil, err
	}

	return DeserializePRF(serialized)
}

// UnwrapCipher decrypts and decodes a wrapped Cipher.
func (w *Wrapper) UnwrapCipher(wrapped []byte) (*Cipher, error) {
	serialized, err := w.unwrap(wrapped)
	if err != nil {
		return nil, err
	}

	return DeserializeCipher(serialized)
}

// UnwrapAEADCipher decrypts and decodes a wrapped AEADCipher.
func (w *Wrapper) UnwrapAEADCipher(wrapped []byte) (*AEADCipher, error) {
	serialized, err := w.unwrap(wrapped)
	if err != nil {
		return nil, err
	}

	return DeserializeAEADCipher(serialized)
}

// Wipe zeroes the wrapping key.
func (w *Wrapper) Wipe() {
	w.cipher.Wipe()
}
