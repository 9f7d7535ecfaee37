// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package cryptotk provides composable symmetric cryptographic building blocks for higher-level protocols, in
// particular searchable encryption: secret key material with guaranteed zeroization, a ChaCha20-based pseudo-random
// generator for key derivation, a keyed BLAKE2b pseudo-random function, hashing, and (authenticated) encryption
// with per-message derived keys.
//
// Range-constrained pseudo-random functions built on these primitives live in the
// github.com/bytemare/cryptotk/rcprf package.
package cryptotk
