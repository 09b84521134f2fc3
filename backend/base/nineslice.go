// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package base

import "github.com/gogpu/blit"

type sliceTarget struct {
	pattern func(img *blit.Image, x, y, w, h int)
	image   func(img *blit.Image, x, y int)
}

// nineSlice decomposes a nine-slice frame at (x, y, w, h) into pattern fills
// and unscaled corner blits, in draw order: center, edges, corners.
//
// The center and the corners need all four corners plus the center. The
// edges need all four edge images and are placed independently of the
// corners, each inset by the thickness of the perpendicular edges.
func nineSlice(x, y, w, h int, r blit.ImageRect, t sliceTarget) {
	g := &r.Grid
	tl, tr, bl, br := g[blit.TopLeft], g[blit.TopRight], g[blit.BottomLeft], g[blit.BottomRight]
	center := g[blit.Center]
	drawMain := center != nil && tl != nil && tr != nil && bl != nil && br != nil

	if drawMain {
		t.pattern(center, x+tl.Width(), y+tl.Height(),
			w-tl.Width()-tr.Width(), h-tl.Height()-bl.Height())
	}

	top, bottom, left, right := g[blit.Top], g[blit.Bottom], g[blit.Left], g[blit.Right]
	if top != nil && bottom != nil && left != nil && right != nil {
		lw, rw := left.Width(), right.Width()
		th, bh := top.Height(), bottom.Height()
		t.pattern(top, x+lw, y, w-lw-rw, th)
		t.pattern(bottom, x+lw, y+h-bh, w-lw-rw, bh)
		t.pattern(left, x, y+th, lw, h-th-bh)
		t.pattern(right, x+w-rw, y+th, rw, h-th-bh)
	}

	if drawMain {
		t.image(tl, x, y)
		t.image(tr, x+w-tr.Width(), y)
		t.image(bl, x, y+h-bl.Height())
		t.image(br, x+w-br.Width(), y+h-br.Height())
	}
}
