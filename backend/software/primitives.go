// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/blit"
)

// FillRectangle fills r with the current color.
func (b *Backend) FillRectangle(r blit.Rect) {
	if b.target == nil || r.Empty() {
		return
	}
	ox, oy := b.Offset()
	b.fill(r.Translate(ox, oy).Image())
}

// DrawRectangle outlines r with one pixel wide edges inside r.
func (b *Backend) DrawRectangle(r blit.Rect) {
	if b.target == nil || r.Empty() {
		return
	}
	ox, oy := b.Offset()
	d := r.Translate(ox, oy)
	x0, y0, x1, y1 := d.X, d.Y, d.Right(), d.Bottom()
	b.fill(image.Rect(x0, y0, x1, y0+1))
	if d.H > 1 {
		b.fill(image.Rect(x0, y1-1, x1, y1))
	}
	if d.H > 2 {
		b.fill(image.Rect(x0, y0+1, x0+1, y1-1))
		if d.W > 1 {
			b.fill(image.Rect(x1-1, y0+1, x1, y1-1))
		}
	}
}

func (b *Backend) fill(r image.Rectangle) {
	c := b.Color()
	op := draw.Over
	if c.A == 255 {
		op = draw.Src
	}
	draw.Draw(b.target, r, image.NewUniform(c), image.Point{}, op)
}

// DrawLine draws a line including both end points.
func (b *Backend) DrawLine(x1, y1, x2, y2 int) {
	if b.target == nil {
		return
	}
	ox, oy := b.Offset()
	x1, y1, x2, y2 = x1+ox, y1+oy, x2+ox, y2+oy

	dx, sx := abs(x2-x1), 1
	if x1 > x2 {
		sx = -1
	}
	dy, sy := -abs(y2-y1), 1
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		b.plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

// DrawPoint sets one pixel.
func (b *Backend) DrawPoint(x, y int) {
	if b.target == nil {
		return
	}
	ox, oy := b.Offset()
	b.plot(x+ox, y+oy)
}

// plot blends the current color into one device pixel inside the clip.
func (b *Backend) plot(x, y int) {
	if !image.Pt(x, y).In(b.target.Rect) {
		return
	}
	sr, sg, sb, sa := b.Color().RGBA()
	p := b.target.Pix[b.target.PixOffset(x, y):]
	inv := 0xffff - sa
	p[0] = uint8((sr + uint32(p[0])*0x101*inv/0xffff) >> 8)
	p[1] = uint8((sg + uint32(p[1])*0x101*inv/0xffff) >> 8)
	p[2] = uint8((sb + uint32(p[2])*0x101*inv/0xffff) >> 8)
	p[3] = uint8((sa + uint32(p[3])*0x101*inv/0xffff) >> 8)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
