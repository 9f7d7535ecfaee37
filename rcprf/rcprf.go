// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import (
	"fmt"
	"math/bits"

	"github.com/bytemare/cryptotk"
)

// OutputSize is the length of an RC-PRF output, in bytes.
const OutputSize = 32

// An RCPRF is a pseudo-random function over a contiguous range of leaf indexes, its coverage. A fresh RCPRF
// covers the full domain [0, domainSize-1]; Constrain narrows the coverage, and nothing ever widens it back.
//
// An RCPRF owns the minimal set of subtree keys tiling its coverage, and nothing else: evaluation outside the
// coverage is not a policy refusal but a cryptographic impossibility for whoever only holds the constrained
// object.
type RCPRF struct {
	prim        primitives
	elements    []element
	coverage    Range
	domain      uint64
	height      uint8
	suite       Suite
	constrained bool
}

// treeHeight returns the height of the smallest binary tree with at least domainSize leaves.
func treeHeight(domainSize uint64) uint8 {
	if domainSize == 1 {
		return 1
	}

	return uint8(bits.Len64(domainSize-1)) + 1
}

// New returns a new RCPRF over the domain [0, domainSize-1] under suite s, with a fresh random master key. It
// fails with ErrDomainSize if domainSize is zero, and with cryptotk.ErrRandomSource on randomness source failure.
func (s Suite) New(domainSize uint64) (*RCPRF, error) {
	key, err := cryptotk.GenerateKey256()
	if err != nil {
		return nil, err
	}

	return s.FromKey(key, domainSize)
}

// FromKey returns a new RCPRF over the domain [0, domainSize-1] under suite s, with the given master key. The
// RCPRF takes ownership of the key. It fails with ErrDomainSize if domainSize is zero.
func (s Suite) FromKey(key *cryptotk.Key256, domainSize uint64) (*RCPRF, error) {
	if domainSize == 0 {
		return nil, ErrDomainSize
	}

	prim := loadPrimitives(s)
	height := treeHeight(domainSize)
	root := newKeyHandle(key, prim)

	var frontier []element

	if height == 1 {
		// the tree is a single leaf, keyed by the master key
		frontier = []element{&leafElement{key: root, index: 0, treeHeight: height}}
	} else {
		frontier = []element{&innerElement{
			key:           root,
			nodeSpan:      newRange(0, maxLeafIndex(height)),
			subtreeHeight: height,
			treeHeight:    height,
		}}
	}

	return &RCPRF{
		prim:     prim,
		elements: frontier,
		coverage: newRange(0, domainSize-1),
		domain:   domainSize,
		height:   height,
		suite:    s,
	}, nil
}

// Suite returns the suite the RCPRF was constructed with.
func (f *RCPRF) Suite() Suite {
	return f.suite
}

// Height returns the height of the underlying tree. Constraining does not change it.
func (f *RCPRF) Height() uint8 {
	return f.height
}

// DomainSize returns the size of the full domain the RCPRF was constructed over.
func (f *RCPRF) DomainSize() uint64 {
	return f.domain
}

// Coverage returns the inclusive bounds of the range the RCPRF can be evaluated on.
func (f *RCPRF) Coverage() (lo, hi uint64) {
	return f.coverage.Min(), f.coverage.Max()
}

// Constrained reports whether the RCPRF was obtained through Constrain rather than from a master key.
func (f *RCPRF) Constrained() bool {
	return f.constrained
}

// Eval returns the OutputSize-byte PRF output at index x, and ErrOutOfRange if x is outside the coverage.
func (f *RCPRF) Eval(x uint64) ([]byte, error) {
	if !f.coverage.Contains(x) {
		return nil, fmt.Errorf("%w: %d not in %v", ErrOutOfRange, x, f.coverage)
	}

	out := make([]byte, OutputSize)

	for _, e := range f.elements {
		if e.span().Contains(x) {
			e.evalUnchecked(x, out)
			return out, nil
		}
	}

	// the frontier tiles the coverage exactly, so a covered index always has an element
	panic(fmt.Sprintf("rcprf: no frontier element covers index %d within %v", x, f.coverage))
}

// EvalRange returns the PRF outputs for every index in [lo, hi], in index order, each identical to the
// corresponding Eval output. It fails with ErrInvalidRange if lo > hi, and with ErrRangeNotCovered if [lo, hi]
// escapes the coverage.
func (f *RCPRF) EvalRange(lo, hi uint64) ([][]byte, error) {
	r, err := f.checkRange(lo, hi)
	if err != nil {
		return nil, err
	}

	outs := make([][]byte, r.Width())

	for _, e := range f.elements {
		sub, ok := e.span().Intersection(r)
		if !ok {
			continue
		}

		for x := sub.Min(); x <= sub.Max(); x++ {
			out := make([]byte, OutputSize)
			e.evalUnchecked(x, out)
			outs[x-lo] = out
		}
	}

	return outs, nil
}

// Constrain returns a new RCPRF whose coverage is exactly [lo, hi], holding only the minimal frontier of keys
// for that range. It fails with ErrInvalidRange if lo > hi, and with ErrRangeNotCovered if [lo, hi] escapes the
// current coverage. The receiver is unchanged and stays valid; the new object is derived from the receiver's own
// frontier, never from the master key.
func (f *RCPRF) Constrain(lo, hi uint64) (*RCPRF, error) {
	r, err := f.checkRange(lo, hi)
	if err != nil {
		return nil, err
	}

	var frontier []element

	for _, e := range f.elements {
		if sub, ok := e.span().Intersection(r); ok {
			frontier = e.constrainUnchecked(sub, frontier)
		}
	}

	return &RCPRF{
		prim:        f.prim,
		elements:    frontier,
		coverage:    r,
		domain:      f.domain,
		height:      f.height,
		suite:       f.suite,
		constrained: true,
	}, nil
}

// Wipe zeroes every key the RCPRF holds. The object must not be used afterwards.
func (f *RCPRF) Wipe() {
	for _, e := range f.elements {
		e.wipe()
	}

	f.elements = nil
}

func (f *RCPRF) checkRange(lo, hi uint64) (Range, error) {
	r, err := NewRange(lo, hi)
	if err != nil {
		return Range{}, err
	}

	if !f.coverage.ContainsRange(r) {
		return Range{}, fmt.Errorf("%w: %v not in %v", ErrRangeNotCovered, r, f.coverage)
	}

	return r, nil
}

// frontier returns the spans of the frontier elements, in order. Exposed for tests.
func (f *RCPRF) frontier() []Range {
	spans := make([]Range, len(f.elements))
	for i, e := range f.elements {
		spans[i] = e.span()
	}

	return spans
}
