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

	"golang.org/x/crypto/chacha20"

	"github.com/bytemare/cryptotk/internal"
)

// NonceSize is the size of the random per-message nonce of Cipher and AEADCipher, in bytes.
const NonceSize = 16

// Cipher provides unauthenticated encryption with ChaCha20. You most probably want AEADCipher instead; use
// unauthenticated encryption only if you know what you are doing.
//
// ChaCha20 nonces are only 96 bits, which is too short to pick at random for a large number of messages under one
// key. Instead, each message gets a 128-bit random nonce from which a one-time encryption key is derived with the
// PRF, K_e = PRF(K, nonce), following the derive-key construction of Bellare and Gueron (CCS'17,
// https://eprint.iacr.org/2017/702.pdf).
type Cipher struct {
	prf *PRF
}

// CipherOverhead is the ciphertext expansion of Cipher, in bytes.
const CipherOverhead = NonceSize

// NewCipher returns a Cipher with a new random key.
func NewCipher() (*Cipher, error) {
	prf, err := NewPRF()
	if err != nil {
		return nil, err
	}

	return &Cipher{prf: prf}, nil
}

// CipherFromKey returns a Cipher keyed with key, taking ownership of the key.
func CipherFromKey(key *Key256) *Cipher {
	return &Cipher{prf: PRFFromKey(key)}
}

// Encrypt returns the encryption of plaintext, which is CipherOverhead bytes longer than the input. It fails with
// ErrRandomSource only if drawing the message nonce fails.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	ciphertext := make([]byte, NonceSize+len(plaintext))

	nonce := ciphertext[:NonceSize]
	if err := internal.RandomBytes(nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	copy(ciphertext[NonceSize:], plaintext)
	c.xor(nonce, ciphertext[NonceSize:])

	return ciphertext, nil
}

// Decrypt returns the decryption of ciphertext, and ErrCiphertextSize if the ciphertext is shorter than
// CipherOverhead.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < CipherOverhead {
		return nil, fmt.Errorf("%w: %d < %d", ErrCiphertextSize, len(ciphertext), CipherOverhead)
	}

	plaintext := make([]byte, len(ciphertext)-CipherOverhead)
	copy(plaintext, ciphertext[NonceSize:])
	c.xor(ciphertext[:NonceSize], plaintext)

	return plaintext, nil
}

func (c *Cipher) xor(nonce, buf []byte) {
	messageKey := c.prf.DeriveKey(nonce)
	defer messageKey.Wipe()

	messageKey.Expose(func(content []byte) {
		cipher, err := chacha20.NewUnauthenticatedCipher(content, nonce[:chacha20.NonceSize])
		if err != nil {
			panic("cryptotk: invalid cipher setup: " + err.Error())
		}

		cipher.XORKeyStream(buf, buf)
	})
}

// Wipe zeroes the cipher's key.
func (c *Cipher) Wipe() {
	c.prf.Wipe()
}
