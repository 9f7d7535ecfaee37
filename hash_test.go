// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk_test

import (
	"encoding/hex"
	"testing"

	"github.com/bytemare/cryptotk"
)

type hashVector struct {
	name  string
	input []byte
	hex   string
}

// BLAKE2b-512 vectors, inputs covering the empty message, one compression block, a multi-block message, and a
// non-block-aligned binary input.
var hashVectors = []hashVector{
	{
		name:  "empty",
		input: nil,
		hex: "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419" +
			"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce",
	},
	{
		name:  "one block of zeroes",
		input: make([]byte, 128),
		hex: "865939e120e6805438478841afb739ae4250cf372653078a065cdcfffca4caf7" +
			"98e6d462b65d658fc165782640eded70963449ae1500fb0f24981d7727e22c41",
	},
	{
		name:  "a thousand zeroes",
		input: make([]byte, 1000),
		hex: "1ee4e51ecab5210a518f26150e882627ec839967f19d763e1508b12cfefed148" +
			"58f6a1c9d1f969bc224dc9440f5a6955277e755b9c513f9ba4421c5e50c8d787",
	},
	{
		name:  "fox",
		input: []byte("The quick brown fox jumps over the lazy dog"),
		hex: "a8add4bdddfd93e4877d2746e62817b116364a1fa7bc148d95090bc7333b3673" +
			"f82401cf7aa2e4cb1ecd90296e3f14cb5413f8ed77be73045b13914cdcd6a918",
	},
	{
		name: "126 byte counter",
		input: mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
			"202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f" +
			"404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f" +
			"606162636465666768696a6b6c6d6e6f707172737475767778797a7b7c7d"),
		hex: "e0721e02517aedfa4e7e9ba503e025fd46e714566dc889a84cbfe56a55dfbe2f" +
			"c4938ac4120588335deac8ef3fa229adc9647f54ad2e3472234f9b34efc46543",
	},
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}

func TestHashVectors(t *testing.T) {
	for _, v := range hashVectors {
		t.Run(v.name, func(t *testing.T) {
			digest := cryptotk.Hash(v.input)

			if len(digest) != cryptotk.HashSize {
				t.Fatalf("expected %d bytes, got %d", cryptotk.HashSize, len(digest))
			}

			if !cryptotk.HashEqual(digest, mustHex(v.hex)) {
				t.Errorf("digest mismatch: got %s", hex.EncodeToString(digest))
			}
		})
	}
}

func TestHashEqual(t *testing.T) {
	a := cryptotk.Hash([]byte("same input"))
	b := cryptotk.Hash([]byte("same input"))
	c := cryptotk.Hash([]byte("other input"))

	if !cryptotk.HashEqual(a, b) {
		t.Error("digests of the same input compare unequal")
	}

	if cryptotk.HashEqual(a, c) {
		t.Error("digests of different inputs compare equal")
	}

	if cryptotk.HashEqual(a, a[:cryptotk.HashSize-1]) {
		t.Error("digests of different lengths compare equal")
	}
}

func BenchmarkHash(b *testing.B) {
	input := make([]byte, 1024)

	b.SetBytes(int64(len(input)))

	for i := 0; i < b.N; i++ {
		_ = cryptotk.Hash(input)
	}
}
