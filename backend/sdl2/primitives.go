// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdl2

import (
	"image"

	"github.com/gogpu/blit"
)

// primitive sets the draw color and returns the active offset. ok is
// false when nothing can be drawn.
func (b *Backend) primitive() (ox, oy int, ok bool) {
	if b.r == nil || !b.Drawable() {
		return 0, 0, false
	}
	if c := b.Color(); !b.hasDrawColor || c != b.drawColor {
		if err := b.r.SetDrawColor(c); err != nil {
			blit.Logger().Debug("sdl2: draw color", "err", err)
		}
		b.drawColor = c
		b.hasDrawColor = true
	}
	ox, oy = b.Offset()
	return ox, oy, true
}

// FillRectangle fills r with the current color.
func (b *Backend) FillRectangle(r blit.Rect) {
	ox, oy, ok := b.primitive()
	if !ok || r.Empty() {
		return
	}
	b.check("fill rect", b.r.FillRect(r.Translate(ox, oy)))
}

// DrawRectangle outlines r as a closed polyline through its inner
// border pixels.
func (b *Backend) DrawRectangle(r blit.Rect) {
	ox, oy, ok := b.primitive()
	if !ok || r.Empty() {
		return
	}
	x1, y1 := r.X+ox, r.Y+oy
	x2, y2 := x1+r.W-1, y1+r.H-1
	b.check("draw lines", b.r.DrawLines([]image.Point{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}, {x1, y1}}))
}

// DrawLine draws a line including both end points.
func (b *Backend) DrawLine(x1, y1, x2, y2 int) {
	ox, oy, ok := b.primitive()
	if !ok {
		return
	}
	b.check("draw line", b.r.DrawLine(x1+ox, y1+oy, x2+ox, y2+oy))
}

// DrawPoint sets one pixel. Points outside the clip region are skipped.
func (b *Backend) DrawPoint(x, y int) {
	ox, oy, ok := b.primitive()
	if !ok {
		return
	}
	x += ox
	y += oy
	if top, _ := b.Clip(); !top.Contains(x, y) {
		return
	}
	b.check("draw point", b.r.DrawPoint(x, y))
}

func (b *Backend) check(op string, err error) {
	if err != nil {
		blit.Logger().Debug("sdl2: "+op, "err", err)
	}
}
