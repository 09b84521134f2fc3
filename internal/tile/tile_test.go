// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tile

import "testing"

type rect struct{ x, y, w, h int }

func collect(w, h, iw, ih int) []rect {
	var out []rect
	Grid(w, h, iw, ih, func(px, py, tw, th int) {
		out = append(out, rect{px, py, tw, th})
	})
	return out
}

func TestGrid_RowMajorWithRemainder(t *testing.T) {
	got := collect(25, 12, 10, 8)
	want := []rect{
		{0, 0, 10, 8}, {10, 0, 10, 8}, {20, 0, 5, 8},
		{0, 8, 10, 4}, {10, 8, 10, 4}, {20, 8, 5, 4},
	}
	if len(got) != len(want) {
		t.Fatalf("Grid() emitted %d tiles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGrid_Degenerate(t *testing.T) {
	tests := []struct {
		name         string
		w, h, iw, ih int
	}{
		{"zero tile width", 100, 100, 0, 10},
		{"zero tile height", 100, 100, 10, 0},
		{"negative tile", 100, 100, -4, 10},
		{"empty area", 0, 100, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			Grid(tt.w, tt.h, tt.iw, tt.ih, func(int, int, int, int) { called = true })
			if called {
				t.Error("Grid() should not emit tiles")
			}
			if n := Count(tt.w, tt.h, tt.iw, tt.ih); n != 0 {
				t.Errorf("Count() = %d, want 0", n)
			}
		})
	}
}

// Tiles must cover the area exactly once.
func TestGrid_CoverageAndDisjoint(t *testing.T) {
	sizes := [][4]int{
		{1, 1, 1, 1}, {7, 5, 3, 2}, {64, 64, 16, 16}, {33, 17, 32, 16}, {5, 5, 10, 10},
	}
	for _, s := range sizes {
		w, h, iw, ih := s[0], s[1], s[2], s[3]
		cover := make([]int, w*h)
		n := 0
		Grid(w, h, iw, ih, func(px, py, tw, th int) {
			n++
			if tw > iw || th > ih {
				t.Errorf("%v: tile %dx%d larger than image", s, tw, th)
			}
			if tw != iw && px+tw != w {
				t.Errorf("%v: short tile not in last column", s)
			}
			if th != ih && py+th != h {
				t.Errorf("%v: short tile not in last row", s)
			}
			for y := py; y < py+th; y++ {
				for x := px; x < px+tw; x++ {
					cover[y*w+x]++
				}
			}
		})
		for i, c := range cover {
			if c != 1 {
				t.Fatalf("%v: pixel %d covered %d times", s, i, c)
			}
		}
		if n != Count(w, h, iw, ih) {
			t.Errorf("%v: Count() = %d, emitted %d", s, Count(w, h, iw, ih), n)
		}
	}
}

func TestGrid_RemainderSizes(t *testing.T) {
	var lastW, lastH int
	Grid(100, 70, 30, 20, func(px, py, tw, th int) {
		lastW, lastH = tw, th
	})
	if lastW != 100%30 || lastH != 70%20 {
		t.Errorf("last tile = %dx%d, want %dx%d", lastW, lastH, 100%30, 70%20)
	}
}

func TestScaled(t *testing.T) {
	sw, sh := Scaled(20, 10, 32, 32, 64, 16)
	if sw != 10 || sh != 20 {
		t.Errorf("Scaled() = (%d, %d), want (10, 20)", sw, sh)
	}
	if sw, sh := Scaled(20, 10, 32, 32, 0, 16); sw != 0 || sh != 0 {
		t.Errorf("Scaled() with zero scale = (%d, %d), want (0, 0)", sw, sh)
	}
}
