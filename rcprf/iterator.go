// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import (
	"iter"

	"github.com/bytemare/cryptotk"
)

// All returns an iterator over the (index, output) pairs of the coverage, in increasing index order. Outputs are
// identical to Eval's. Traversal is lazy: subtrees are split on demand and the iterator holds at most one derived
// key per tree level above the frontier, so iterating a large range never materializes it. To iterate a sub-range,
// Constrain first.
//
// The iterator works on its own copies of the frontier keys; the receiver stays valid, including when iteration
// stops early.
func (f *RCPRF) All() iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		// stack of pending subtrees, leftmost span on top
		stack := make([]element, len(f.elements))
		for i, e := range f.elements {
			stack[len(f.elements)-1-i] = e.duplicate()
		}

		defer func() {
			for _, e := range stack {
				e.wipe()
			}
		}()

		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for {
				inner, ok := e.(*innerElement)
				if !ok {
					break
				}

				right := inner.descend(rightChild)
				left := inner.descend(leftChild)
				inner.wipe()

				stack = append(stack, right)
				e = left
			}

			x := e.span().Min()
			out := make([]byte, OutputSize)
			e.evalUnchecked(x, out)
			e.wipe()

			if !yield(x, out) {
				return
			}
		}
	}
}

// Backward returns an iterator over the (index, output) pairs of the coverage, in decreasing index order. It is
// All read from the other end, with the same laziness and key handling.
func (f *RCPRF) Backward() iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		// stack of pending subtrees, rightmost span on top
		stack := make([]element, len(f.elements))
		for i, e := range f.elements {
			stack[i] = e.duplicate()
		}

		defer func() {
			for _, e := range stack {
				e.wipe()
			}
		}()

		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for {
				inner, ok := e.(*innerElement)
				if !ok {
					break
				}

				left := inner.descend(leftChild)
				right := inner.descend(rightChild)
				inner.wipe()

				stack = append(stack, left)
				e = right
			}

			x := e.span().Max()
			out := make([]byte, OutputSize)
			e.evalUnchecked(x, out)
			e.wipe()

			if !yield(x, out) {
				return
			}
		}
	}
}

// All returns an iterator over the (index, key) pairs of the coverage, in increasing index order. Keys are
// identical to DeriveKey's. See RCPRF.All for the traversal guarantees.
func (d *KeyDerivationRCPRF) All() iter.Seq2[uint64, *cryptotk.Key256] {
	return keyIterator(d.inner.All())
}

// Backward returns an iterator over the (index, key) pairs of the coverage, in decreasing index order.
func (d *KeyDerivationRCPRF) Backward() iter.Seq2[uint64, *cryptotk.Key256] {
	return keyIterator(d.inner.Backward())
}

func keyIterator(outputs iter.Seq2[uint64, []byte]) iter.Seq2[uint64, *cryptotk.Key256] {
	return func(yield func(uint64, *cryptotk.Key256) bool) {
		for x, out := range outputs {
			key, _ := cryptotk.Key256FromBytes(out)

			if !yield(x, key) {
				return
			}
		}
	}
}
