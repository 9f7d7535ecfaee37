// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package cryptotk

import "errors"

var (
	// ErrRandomSource is returned when the operating system's randomness source fails during key generation.
	ErrRandomSource = errors.New("randomness source failure")

	// ErrKeySize is returned when key material of a length other than KeySize is provided.
	ErrKeySize = errors.New("invalid key material length")

	// ErrCiphertextSize is returned when a ciphertext is shorter than the cipher's overhead.
	ErrCiphertextSize = errors.New("ciphertext shorter than the ciphertext expansion")

	// ErrAuthentication is returned when authenticated decryption fails.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrEncodingSize is returned when a serialized object has an unexpected length.
	ErrEncodingSize = errors.New("invalid serialized object length")

	// ErrEncodingTag is returned when a serialized object carries a tag other than the expected one.
	ErrEncodingTag = errors.New("unexpected serialized object tag")

	// ErrEncodingVersion is returned when a serialized object was produced by an unsupported format version.
	ErrEncodingVersion = errors.New("unsupported serialization version")
)
