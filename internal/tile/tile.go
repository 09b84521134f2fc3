// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tile decomposes pattern fills into source-image sized tiles.
package tile

// Func receives one tile: its offset (px, py) inside the filled area and its
// size (tw, th). Tiles in the last column and row are clipped to the
// remainder of the area, never wrapped.
type Func func(px, py, tw, th int)

// Grid walks the w×h area in row-major order in steps of iw×ih and calls fn
// for every tile. Non-positive sizes produce no tiles.
func Grid(w, h, iw, ih int, fn Func) {
	if iw <= 0 || ih <= 0 || w <= 0 || h <= 0 {
		return
	}
	for py := 0; py < h; py += ih {
		th := ih
		if py+ih >= h {
			th = h - py
		}
		for px := 0; px < w; px += iw {
			tw := iw
			if px+iw >= w {
				tw = w - px
			}
			fn(px, py, tw, th)
		}
	}
}

// Count returns the number of tiles Grid would emit.
func Count(w, h, iw, ih int) int {
	if iw <= 0 || ih <= 0 || w <= 0 || h <= 0 {
		return 0
	}
	return ceilDiv(w, iw) * ceilDiv(h, ih)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Scaled maps a tile of a rescaled pattern back to the source image.
// The pattern repeats a scaledW×scaledH version of an srcW×srcH image; for a
// destination tile of tw×th it returns the extent of the source region that
// covers it.
func Scaled(tw, th, srcW, srcH, scaledW, scaledH int) (sw, sh int) {
	if scaledW <= 0 || scaledH <= 0 {
		return 0, 0
	}
	return tw * srcW / scaledW, th * srcH / scaledH
}
