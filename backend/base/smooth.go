// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package base

import "image"

// SmoothAlpha is the blend factor of each smooth overlay pass.
const SmoothAlpha = 0.2

// SmoothPass shifts and resizes the destination of one overlay copy.
type SmoothPass struct {
	DX, DY int
	DW, DH int
}

// SmoothPasses are drawn in order on top of a rescaled image to soften
// its edges.
var SmoothPasses = [4]SmoothPass{
	{DX: -1, DY: -1, DW: 1, DH: 1},
	{DX: 1, DY: 1, DW: -1, DH: -1},
	{DX: 1, DY: 0, DW: -1, DH: 0},
	{DX: 0, DY: 1, DW: 0, DH: -1},
}

// UseSmooth reports whether the overlay applies to a w×h source drawn at
// dw×dh. It is dropped when the target is strictly smaller in both
// dimensions.
func UseSmooth(w, h, dw, dh int, smooth bool) bool {
	return smooth && !(w > dw && h > dh)
}

// FlipRows reverses the row order of img in place.
func FlipRows(img *image.RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	rowLen := b.Dx() * 4
	if rowLen == 0 {
		return
	}
	tmp := make([]byte, rowLen)
	for top, bot := 0, b.Dy()-1; top < bot; top, bot = top+1, bot-1 {
		t := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		u := img.Pix[bot*img.Stride : bot*img.Stride+rowLen]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}
