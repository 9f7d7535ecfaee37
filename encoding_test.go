// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/cryptotk"
)

func TestSerializeKey256(t *testing.T) {
	key := newTestKey(t)

	var content [cryptotk.KeySize]byte
	key.Expose(func(c []byte) { copy(content[:], c) })

	encoded := key.Serialize()
	require.Len(t, encoded, cryptotk.SerializedSize)

	decoded, err := cryptotk.DeserializeKey256(encoded)
	require.NoError(t, err)

	decoded.Expose(func(c []byte) {
		assert.Equal(t, content[:], c, "deserialized key differs from the original")
	})

	// deserialization must consume the key bytes of the encoding
	assert.Equal(t, make([]byte, cryptotk.KeySize), encoded[2:], "encoded key material was not zeroed")
}

func TestSerializePRG(t *testing.T) {
	original := cryptotk.PRGFromKey(newTestKey(t))

	decoded, err := cryptotk.DeserializePRG(original.Serialize())
	require.NoError(t, err)

	out1 := make([]byte, 128)
	out2 := make([]byte, 128)
	original.FillBytes(out1)
	decoded.FillBytes(out2)

	assert.Equal(t, out1, out2, "deserialized PRG expands differently")
}

func TestSerializePRF(t *testing.T) {
	original := cryptotk.PRFFromKey(newTestKey(t))

	decoded, err := cryptotk.DeserializePRF(original.Serialize())
	require.NoError(t, err)

	input := []byte("input")
	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	original.FillBytes(input, out1)
	decoded.FillBytes(input, out2)

	assert.Equal(t, out1, out2, "deserialized PRF evaluates differently")
}

func TestSerializeCiphers(t *testing.T) {
	plaintext := []byte("a message crossing a serialization boundary")

	t.Run("Cipher", func(t *testing.T) {
		original := cryptotk.CipherFromKey(newTestKey(t))

		ciphertext, err := original.Encrypt(plaintext)
		require.NoError(t, err)

		decoded, err := cryptotk.DeserializeCipher(original.Serialize())
		require.NoError(t, err)

		decrypted, err := decoded.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("AEADCipher", func(t *testing.T) {
		original := cryptotk.AEADCipherFromKey(newTestKey(t))

		ciphertext, err := original.Encrypt(plaintext)
		require.NoError(t, err)

		decoded, err := cryptotk.DeserializeAEADCipher(original.Serialize())
		require.NoError(t, err)

		decrypted, err := decoded.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})
}

func TestDeserializeErrors(t *testing.T) {
	key := newTestKey(t)

	t.Run("length", func(t *testing.T) {
		for _, size := range []int{0, 1, cryptotk.SerializedSize - 1, cryptotk.SerializedSize + 1} {
			_, err := cryptotk.DeserializeKey256(make([]byte, size))
			assert.ErrorIs(t, err, cryptotk.ErrEncodingSize, "size %d", size)
		}
	})

	t.Run("tag", func(t *testing.T) {
		encoded := key.Serialize()

		_, err := cryptotk.DeserializePRF(encoded)
		assert.ErrorIs(t, err, cryptotk.ErrEncodingTag)
	})

	t.Run("version", func(t *testing.T) {
		encoded := key.Serialize()
		encoded[1] = 0xff

		_, err := cryptotk.DeserializeKey256(encoded)
		assert.ErrorIs(t, err, cryptotk.ErrEncodingVersion)
	})
}

func TestWrapper(t *testing.T) {
	wrapper := cryptotk.NewWrapper(newTestKey(t))

	t.Run("Key256", func(t *testing.T) {
		key := newTestKey(t)

		var content [cryptotk.KeySize]byte
		key.Expose(func(c []byte) { copy(content[:], c) })

		wrapped, err := wrapper.Wrap(key)
		require.NoError(t, err)

		unwrapped, err := wrapper.UnwrapKey256(wrapped)
		require.NoError(t, err)

		unwrapped.Expose(func(c []byte) {
			assert.Equal(t, content[:], c, "unwrapped key differs from the original")
		})
	})

	t.Run("PRG", func(t *testing.T) {
		prg := cryptotk.PRGFromKey(newTestKey(t))

		wrapped, err := wrapper.Wrap(prg)
		require.NoError(t, err)

		unwrapped, err := wrapper.UnwrapPRG(wrapped)
		require.NoError(t, err)

		out1 := make([]byte, 64)
		out2 := make([]byte, 64)
		prg.FillBytes(out1)
		unwrapped.FillBytes(out2)
		assert.Equal(t, out1, out2)
	})

	t.Run("AEADCipher", func(t *testing.T) {
		cipher := cryptotk.AEADCipherFromKey(newTestKey(t))
		plaintext := []byte("wrapped cipher message")

		ciphertext, err := cipher.Encrypt(plaintext)
		require.NoError(t, err)

		wrapped, err := wrapper.Wrap(cipher)
		require.NoError(t, err)

		unwrapped, err := wrapper.UnwrapAEADCipher(wrapped)
		require.NoError(t, err)

		decrypted, err := unwrapped.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})
}

func TestWrapperWrongKey(t *testing.T) {
	wrapper := cryptotk.NewWrapper(newTestKey(t))
	other := cryptotk.NewWrapper(newTestKey(t))

	wrapped, err := wrapper.Wrap(newTestKey(t))
	require.NoError(t, err)

	_, err = other.UnwrapKey256(wrapped)
	assert.ErrorIs(t, err, cryptotk.ErrAuthentication)
}

func TestWrapperTamper(t *testing.T) {
	wrapper := cryptotk.NewWrapper(newTestKey(t))

	wrapped, err := wrapper.Wrap(newTestKey(t))
	require.NoError(t, err)

	tampered := bytes.Clone(wrapped)
	tampered[len(tampered)-1] ^= 0x01

	_, err = wrapper.UnwrapKey256(tampered)
	assert.ErrorIs(t, err, cryptotk.ErrAuthentication)
}
