// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package rcprf

// child identifies one of the two children of an inner tree node.
type child uint8

const (
	leftChild child = iota
	rightChild
)

// MaxHeight is the maximum height of an RC-PRF tree. A tree of height MaxHeight covers the full uint64 index
// space.
const MaxHeight = 65

// maxLeafIndex returns the largest leaf index of a tree of the given height: 0 for height 0 or 1, and 2^64-1 for
// heights of MaxHeight and above.
func maxLeafIndex(height uint8) uint64 {
	if height <= 1 {
		return 0
	}

	if height >= MaxHeight {
		return ^uint64(0)
	}

	return (uint64(1) << (height - 1)) - 1
}

// childAt returns which child of the node at the given depth lies on the path to leaf, in a tree of the given
// height. Depth 0 is the root; the maximum depth of an inner node is height-2.
func childAt(height uint8, leaf uint64, depth uint8) child {
	mask := uint64(1) << (height - depth - 2)

	if leaf&mask == 0 {
		return leftChild
	}

	return rightChild
}

// An element is a frontier node: a subtree root key covering a contiguous leaf span. The frontier of an RC-PRF is
// an ordered, non-overlapping list of elements whose spans tile its coverage exactly.
type element interface {
	// span returns the leaf span covered by the element.
	span() Range

	// evalUnchecked fills out with the PRF output at x, which must be within span.
	evalUnchecked(x uint64, out []byte)

	// constrainUnchecked appends to out the minimal frontier covering r, which must be within span, in
	// depth-first left-to-right order. Appended elements own their keys.
	constrainUnchecked(r Range, out []element) []element

	// duplicate returns an independent copy of the element, with its own copy of the key.
	duplicate() element

	// wipe zeroes the element's key.
	wipe()
}

// innerElement is a frontier node strictly above the leaves. Its key is the subtree root key from which all keys
// below are derivable.
type innerElement struct {
	key           *keyHandle
	nodeSpan      Range
	subtreeHeight uint8
	treeHeight    uint8
}

// leafElement is a frontier node holding a single leaf key.
type leafElement struct {
	key        *keyHandle
	index      uint64
	treeHeight uint8
}

func (e *innerElement) span() Range {
	return e.nodeSpan
}

// depth returns the node's depth in the tree.
func (e *innerElement) depth() uint8 {
	return e.treeHeight - e.subtreeHeight
}

// descend derives the element's child on the side of c, handing back a child element owning the derived key.
func (e *innerElement) descend(c child) element {
	halfWidth := uint64(1) << (e.subtreeHeight - 2)
	subMin := e.nodeSpan.Min() + uint64(c)*halfWidth
	key := e.key.deriveChild(c)

	if e.subtreeHeight > 2 {
		return &innerElement{
			key:           key,
			nodeSpan:      newRange(subMin, subMin+halfWidth-1),
			subtreeHeight: e.subtreeHeight - 1,
			treeHeight:    e.treeHeight,
		}
	}

	return &leafElement{
		key:        key,
		index:      subMin,
		treeHeight: e.treeHeight,
	}
}

func (e *innerElement) evalUnchecked(x uint64, out []byte) {
	node := e.descend(childAt(e.treeHeight, x, e.depth()))
	defer node.wipe()

	node.evalUnchecked(x, out)
}

func (e *innerElement) constrainUnchecked(r Range, out []element) []element {
	if e.nodeSpan == r {
		return append(out, e.duplicate())
	}

	if e.subtreeHeight == 2 {
		// a strict sub-range of a height-2 node is a single leaf
		node := e.descend(childAt(e.treeHeight, r.Min(), e.depth()))
		return append(out, node)
	}

	halfWidth := uint64(1) << (e.subtreeHeight - 2)
	leftSpan := newRange(e.nodeSpan.Min(), e.nodeSpan.Min()+halfWidth-1)
	rightSpan := newRange(e.nodeSpan.Min()+halfWidth, e.nodeSpan.Max())

	if sub, ok := leftSpan.Intersection(r); ok {
		node := e.descend(leftChild)
		out = node.constrainUnchecked(sub, out)
		node.wipe()
	}

	if sub, ok := rightSpan.Intersection(r); ok {
		node := e.descend(rightChild)
		out = node.constrainUnchecked(sub, out)
		node.wipe()
	}

	return out
}

func (e *innerElement) duplicate() element {
	return &innerElement{
		key:           e.key.duplicate(),
		nodeSpan:      e.nodeSpan,
		subtreeHeight: e.subtreeHeight,
		treeHeight:    e.treeHeight,
	}
}

func (e *innerElement) wipe() {
	e.key.wipe()
}

func (e *leafElement) span() Range {
	return newRange(e.index, e.index)
}

func (e *leafElement) evalUnchecked(_ uint64, out []byte) {
	e.key.fillLeaf(out)
}

func (e *leafElement) constrainUnchecked(_ Range, out []element) []element {
	return append(out, e.duplicate())
}

func (e *leafElement) duplicate() element {
	return &leafElement{
		key:        e.key.duplicate(),
		index:      e.index,
		treeHeight: e.treeHeight,
	}
}

func (e *leafElement) wipe() {
	e.key.wipe()
}
