// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import "errors"

var (
	// ErrInvalidRange is returned when a range's minimum is larger than its maximum.
	ErrInvalidRange = errors.New("invalid range: min larger than max")

	// ErrRangeNotCovered is returned when a constrain or batch evaluation range escapes the object's coverage.
	ErrRangeNotCovered = errors.New("range not contained in the covered range")

	// ErrOutOfRange is returned when an evaluation point is outside the object's coverage.
	ErrOutOfRange = errors.New("evaluation point outside the covered range")

	// ErrDomainSize is returned when a domain size of zero is requested.
	ErrDomainSize = errors.New("domain size must be at least 1")

	// ErrWorkerCount is returned when a parallel evaluation is requested with no workers.
	ErrWorkerCount = errors.New("worker count must be at least 1")
)
