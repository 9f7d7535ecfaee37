// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import "fmt"

// A Range is a non-empty inclusive interval [min, max] of leaf indexes.
type Range struct {
	min, max uint64
}

// NewRange returns the range [min, max], and ErrInvalidRange if min > max.
func NewRange(min, max uint64) (Range, error) {
	if min > max {
		return Range{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}

	return Range{min: min, max: max}, nil
}

// newRange builds a range from bounds already known to be ordered.
func newRange(min, max uint64) Range {
	return Range{min: min, max: max}
}

// Min returns the smallest index in the range.
func (r Range) Min() uint64 {
	return r.min
}

// Max returns the largest index in the range.
func (r Range) Max() uint64 {
	return r.max
}

// Width returns the number of indexes in the range.
func (r Range) Width() uint64 {
	return r.max - r.min + 1
}

// Contains returns whether leaf is in the range.
func (r Range) Contains(leaf uint64) bool {
	return leaf >= r.min && leaf <= r.max
}

// ContainsRange returns whether other is entirely contained in the range.
func (r Range) ContainsRange(other Range) bool {
	return r.min <= other.min && r.max >= other.max
}

// Intersects returns whether the two ranges overlap.
func (r Range) Intersects(other Range) bool {
	return r.min <= other.max && other.min <= r.max
}

// Intersection returns the overlap of the two ranges, and whether they overlap at all.
func (r Range) Intersection(other Range) (Range, bool) {
	if !r.Intersects(other) {
		return Range{}, false
	}

	return newRange(max(r.min, other.min), min(r.max, other.max)), true
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.min, r.max)
}
