// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

import (
	"golang.org/x/sync/errgroup"
)

// EvalRangeParallel evaluates [lo, hi] like EvalRange, fanning the work out over at most workers goroutines.
// Results are identical to EvalRange and in index order regardless of scheduling: every task writes into slots
// precomputed from its subtree's position, never by completion order.
//
// Frontier elements wider than an even share of the range are split into their subtrees first, so a range
// covered by a single aligned subtree still spreads over all workers.
//
// No secret state is shared between workers: the range is first constrained into a private frontier, each task
// evaluates one subtree, and key derivation below a subtree only reads its key.
func (f *RCPRF) EvalRangeParallel(lo, hi uint64, workers int) ([][]byte, error) {
	if workers < 1 {
		return nil, ErrWorkerCount
	}

	constrained, err := f.Constrain(lo, hi)
	if err != nil {
		return nil, err
	}
	defer constrained.Wipe()

	width := hi - lo + 1

	chunk := width / uint64(workers)
	if width%uint64(workers) != 0 {
		chunk++
	}

	var tasks, derived []element
	for _, e := range constrained.elements {
		tasks, derived = splitElement(e, chunk, tasks, derived)
	}

	defer func() {
		for _, e := range derived {
			e.wipe()
		}
	}()

	outs := make([][]byte, width)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, e := range tasks {
		span := e.span()

		g.Go(func() error {
			for x := span.Min(); x <= span.Max(); x++ {
				out := make([]byte, OutputSize)
				e.evalUnchecked(x, out)
				outs[x-lo] = out
			}

			return nil
		})
	}

	// tasks are pure computations and never return errors, but Wait also synchronizes completion
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outs, nil
}

// splitElement appends to tasks the subtrees of e whose spans are at most chunk indexes wide, descending only as
// far as needed. Derived elements are appended to derived; the caller wipes them once the tasks are done.
func splitElement(e element, chunk uint64, tasks, derived []element) (out, owned []element) {
	inner, ok := e.(*innerElement)
	if !ok || e.span().Width() <= chunk {
		return append(tasks, e), derived
	}

	left := inner.descend(leftChild)
	right := inner.descend(rightChild)
	derived = append(derived, left, right)

	tasks, derived = splitElement(left, chunk, tasks, derived)

	return splitElement(right, chunk, tasks, derived)
}
