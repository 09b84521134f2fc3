// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"image"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"nested", NewRect(0, 0, 100, 100), NewRect(10, 10, 20, 20), NewRect(10, 10, 20, 20)},
		{"overlap", NewRect(0, 0, 50, 50), NewRect(30, 40, 50, 50), NewRect(30, 40, 20, 10)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), NewRect(20, 20, 0, 0)},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), NewRect(10, 0, 0, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)
	if !r.Contains(5, 5) || !r.Contains(14, 14) {
		t.Error("Contains() should include the top-left and the last pixel")
	}
	if r.Contains(15, 5) || r.Contains(4, 5) {
		t.Error("Contains() should exclude the right edge and points left of the rect")
	}
}

func TestRectEmptyAndImage(t *testing.T) {
	if !NewRect(1, 1, 0, 4).Empty() {
		t.Error("zero width rect should be empty")
	}
	if got, want := NewRect(1, 2, 3, 4).Image(), image.Rect(1, 2, 4, 6); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
	if got, want := NewRect(1, 2, 3, 4).Translate(10, 20), NewRect(11, 22, 3, 4); got != want {
		t.Errorf("Translate() = %v, want %v", got, want)
	}
}
