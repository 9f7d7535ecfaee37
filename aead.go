// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/bytemare/cryptotk/internal"
)

// AEADCipher provides authenticated encryption with ChaCha20-Poly1305 under a per-message key. Each message gets
// a 128-bit random nonce from which the one-time encryption key is derived with the PRF, K_e = PRF(K, nonce), so
// a very large number of messages can safely be encrypted under the same main key. See Cipher for the derive-key
// construction reference.
type AEADCipher struct {
	prf *PRF
}

// AEADOverhead is the ciphertext expansion of AEADCipher, in bytes: the message nonce plus the Poly1305 tag.
const AEADOverhead = NonceSize + chacha20poly1305.Overhead

// NewAEADCipher returns an AEADCipher with a new random key.
func NewAEADCipher() (*AEADCipher, error) {
	prf, err := NewPRF()
	if err != nil {
		return nil, err
	}

	return &AEADCipher{prf: prf}, nil
}

// AEADCipherFromKey returns an AEADCipher keyed with key, taking ownership of the key.
func AEADCipherFromKey(key *Key256) *AEADCipher {
	return &AEADCipher{prf: PRFFromKey(key)}
}

// Encrypt returns the authenticated encryption of plaintext, which is AEADOverhead bytes longer than the input.
// It fails with ErrRandomSource only if drawing the message nonce fails.
func (c *AEADCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if err := internal.RandomBytes(nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	var ciphertext []byte

	c.withMessageAEAD(nonce, func(aead cipher.AEAD) {
		ciphertext = aead.Seal(nonce, nonce[:chacha20poly1305.NonceSize], plaintext, nil)
	})

	return ciphertext, nil
}

// Decrypt returns the decryption of ciphertext. It fails with ErrCiphertextSize if the ciphertext is shorter than
// AEADOverhead, and with ErrAuthentication if the ciphertext has been tampered with.
func (c *AEADCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < AEADOverhead {
		return nil, fmt.Errorf("%w: %d < %d", ErrCiphertextSize, len(ciphertext), AEADOverhead)
	}

	nonce := ciphertext[:NonceSize]

	var (
		plaintext []byte
		openErr   error
	)

	c.withMessageAEAD(nonce, func(aead cipher.AEAD) {
		plaintext, openErr = aead.Open(nil, nonce[:chacha20poly1305.NonceSize], ciphertext[NonceSize:], nil)
	})

	if openErr != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

// withMessageAEAD derives the one-time key for nonce, hands the resulting AEAD to op, and wipes the derived key
// on every path.
func (c *AEADCipher) withMessageAEAD(nonce []byte, op func(cipher.AEAD)) {
	messageKey := c.prf.DeriveKey(nonce)
	defer messageKey.Wipe()

	messageKey.Expose(func(content []byte) {
		aead, err := chacha20poly1305.New(content)
		if err != nil {
			panic("cryptotk: invalid AEAD setup: " + err.Error())
		}

		op(aead)
	})
}

// Wipe zeroes the cipher's key.
func (c *AEADCipher) Wipe() {
	c.prf.Wipe()
}
