// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides helpers shared by the toolkit's primitives.
package internal

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// RandomBytes fills dst with cryptographically secure random bytes, and returns an error on randomness source
// failure only.
func RandomBytes(dst []byte) error {
	if _, err := rand.Read(dst); err != nil {
		return fmt.Errorf("reading the OS randomness source: %w", err)
	}

	return nil
}

// Wipe overwrites b with zeroes.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// CtEqual returns whether a and b are equal, in constant time.
func CtEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
