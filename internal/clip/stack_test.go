// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package clip

import (
	"math/rand"
	"testing"

	"github.com/gogpu/blit"
)

func TestNewStack(t *testing.T) {
	s := NewStack()
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
	if _, ok := s.Top(); ok {
		t.Error("Top() on empty stack should report false")
	}
}

func TestStack_PushBase(t *testing.T) {
	s := NewStack()
	reg, ok := s.Push(blit.NewRect(0, 0, 800, 600))
	if !ok {
		t.Fatal("base region should be non-empty")
	}
	want := Region{Rect: blit.NewRect(0, 0, 800, 600)}
	if reg != want {
		t.Errorf("Push() = %+v, want %+v", reg, want)
	}
}

func TestStack_PushIntersects(t *testing.T) {
	s := NewStack()
	s.Push(blit.NewRect(0, 0, 100, 100))

	tests := []struct {
		name      string
		rect      blit.Rect
		want      Region
		wantOK    bool
		wantDepth int
	}{
		{
			name:      "nested child",
			rect:      blit.NewRect(10, 10, 50, 50),
			want:      Region{Rect: blit.NewRect(10, 10, 50, 50), XOffset: 10, YOffset: 10},
			wantOK:    true,
			wantDepth: 2,
		},
		{
			name: "grandchild overflowing parent",
			rect: blit.NewRect(30, 30, 50, 50),
			// local (30,30) in parent space is device (40,40); parent ends at 60
			want:      Region{Rect: blit.NewRect(40, 40, 20, 20), XOffset: 40, YOffset: 40},
			wantOK:    true,
			wantDepth: 3,
		},
		{
			name:      "outside parent",
			rect:      blit.NewRect(100, 0, 10, 10),
			want:      Region{Rect: blit.NewRect(140, 40, 0, 10), XOffset: 140, YOffset: 40},
			wantOK:    false,
			wantDepth: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Push(tt.rect)
			if got != tt.want {
				t.Errorf("Push() = %+v, want %+v", got, tt.want)
			}
			if ok != tt.wantOK {
				t.Errorf("Push() ok = %v, want %v", ok, tt.wantOK)
			}
			if s.Depth() != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", s.Depth(), tt.wantDepth)
			}
		})
	}
}

func TestStack_Pop(t *testing.T) {
	s := NewStack()
	s.Push(blit.NewRect(0, 0, 100, 100))
	s.Push(blit.NewRect(10, 10, 50, 50))

	if !s.Pop() {
		t.Fatal("Pop() = false, want true")
	}
	top, _ := s.Top()
	if want := (Region{Rect: blit.NewRect(0, 0, 100, 100)}); top != want {
		t.Errorf("Top() after Pop = %+v, want %+v", top, want)
	}

	s.Pop()
	if s.Pop() {
		t.Error("Pop() on empty stack should report false")
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
}

func TestRegion_Local(t *testing.T) {
	r := Region{Rect: blit.NewRect(5, 5, 10, 10), XOffset: 5, YOffset: 7}
	x, y := r.Local(1, 2)
	if x != 6 || y != 9 {
		t.Errorf("Local(1, 2) = (%d, %d), want (6, 9)", x, y)
	}
}

// Random push/pop sequences must never pop more than was pushed and must
// return to the exact prior state once balanced.
func TestStack_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewStack()
	base, _ := s.Push(blit.NewRect(0, 0, 640, 480))

	for iter := 0; iter < 200; iter++ {
		var saved []Region
		pushes := rng.Intn(6)
		for i := 0; i < pushes; i++ {
			before, _ := s.Top()
			saved = append(saved, before)
			r := blit.NewRect(rng.Intn(100)-20, rng.Intn(100)-20, rng.Intn(200), rng.Intn(200))
			got, _ := s.Push(r)

			want := r.Translate(before.XOffset, before.YOffset).Intersect(before.Rect)
			if got.Rect != want {
				t.Fatalf("Push(%v) rect = %v, want %v", r, got.Rect, want)
			}
			if got.XOffset != before.XOffset+r.X || got.YOffset != before.YOffset+r.Y {
				t.Fatalf("Push(%v) offset = (%d,%d)", r, got.XOffset, got.YOffset)
			}
		}
		for i := pushes - 1; i >= 0; i-- {
			s.Pop()
			top, _ := s.Top()
			if top != saved[i] {
				t.Fatalf("after pop %d: top = %+v, want %+v", i, top, saved[i])
			}
		}
		if top, _ := s.Top(); top != base || s.Depth() != 1 {
			t.Fatalf("stack not restored: top = %+v depth = %d", top, s.Depth())
		}
	}
}
