// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package clip maintains the nested clip regions of a frame.
package clip

import "github.com/gogpu/blit"

// Region is one clip stack entry: a device-space rectangle plus the
// cumulative offset added to local coordinates while it is active.
type Region struct {
	blit.Rect
	XOffset, YOffset int
}

// Local converts a local point to device space.
func (r Region) Local(x, y int) (int, int) {
	return x + r.XOffset, y + r.YOffset
}

// Stack manages nested clip regions with push/pop operations.
// Each region is the intersection of the pushed rectangle with its parent.
type Stack struct {
	entries []Region
}

// NewStack creates an empty clip stack.
func NewStack() *Stack {
	return &Stack{entries: make([]Region, 0, 8)}
}

// Push makes r the active region. r is given in the coordinate space of the
// current top; its origin becomes part of the cumulative offset. The first
// region on an empty stack is taken as-is.
//
// It returns the region actually pushed and whether it has a non-zero area.
func (s *Stack) Push(r blit.Rect) (Region, bool) {
	var reg Region
	if len(s.entries) == 0 {
		reg = Region{Rect: r, XOffset: r.X, YOffset: r.Y}
	} else {
		top := s.entries[len(s.entries)-1]
		reg = Region{
			Rect:    r.Translate(top.XOffset, top.YOffset).Intersect(top.Rect),
			XOffset: top.XOffset + r.X,
			YOffset: top.YOffset + r.Y,
		}
	}
	s.entries = append(s.entries, reg)
	return reg, !reg.Empty()
}

// Pop removes the most recent region. Popping an empty stack is a no-op and
// reports false.
func (s *Stack) Pop() bool {
	if len(s.entries) == 0 {
		return false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return true
}

// Top returns the active region.
func (s *Stack) Top() (Region, bool) {
	if len(s.entries) == 0 {
		return Region{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Depth returns the number of regions on the stack.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Reset drops every region.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}
