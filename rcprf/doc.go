// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package rcprf implements range-constrained pseudo-random functions (RC-PRF): PRFs over an integer domain whose
// evaluation can be delegated to a contiguous sub-range without revealing anything about the rest of the domain.
//
// The construction is a binary tree of keys in the style of Goldreich-Goldwasser-Micali: every node holds a key,
// child keys are derived from the parent key through a one-way, domain-separated key derivation, and leaves are
// mapped to outputs by a PRF. Constraining an RC-PRF to a range hands out the minimal frontier of subtree keys
// covering exactly that range; keys outside the range are never exposed and cannot be recovered from the frontier.
//
// The tree is never materialized: nodes are identified by their position, and keys are derived on demand from the
// frontier keys the object owns, so arbitrarily large domains cost nothing until evaluated.
package rcprf
