// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk

import (
	"golang.org/x/crypto/blake2b"

	"github.com/bytemare/cryptotk/internal"
)

// HashSize is the size of a hash value, in bytes.
const HashSize = blake2b.Size

// Hash returns the BLAKE2b-512 digest of data.
func Hash(data []byte) []byte {
	h := blake2b.Sum512(data)
	return h[:]
}

// HashEqual compares two hash values in constant time.
func HashEqual(a, b []byte) bool {
	return internal.CtEqual(a, b)
}
