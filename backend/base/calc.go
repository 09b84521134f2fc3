// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package base

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/tile"
)

// Deferred lists store device coordinates: the clip offset active at calc
// time is baked into every destination rect, and source rects are absolute
// within the backing texture.

// CalcPattern appends the tiles of a w×h pattern fill at (x, y) to vert.
func (b *Base) CalcPattern(vert *blit.ImageVertexes, img *blit.Image, x, y, w, h int) {
	if vert == nil || img.Empty() || !b.Drawable() {
		return
	}
	ox, oy := b.Offset()
	x += ox
	y += oy
	srcX, srcY := img.Bounds.X, img.Bounds.Y
	tile.Grid(w, h, img.Width(), img.Height(), func(px, py, tw, th int) {
		vert.Append(blit.NewRect(srcX, srcY, tw, th), blit.NewRect(x+px, y+py, tw, th))
	})
}

// CalcPatternCollection appends a pattern fill to the list of col keyed
// by img.
func (b *Base) CalcPatternCollection(col *blit.ImageCollection, img *blit.Image, x, y, w, h int) {
	if col == nil || img.Empty() {
		return
	}
	b.CalcPattern(col.Vertexes(img), img, x, y, w, h)
}

// CalcTile appends one unscaled copy of img at (x, y).
func (b *Base) CalcTile(vert *blit.ImageVertexes, img *blit.Image, x, y int) {
	if vert == nil || img.Empty() || !b.Drawable() {
		return
	}
	ox, oy := b.Offset()
	vert.Append(img.Bounds, blit.NewRect(x+ox, y+oy, img.Width(), img.Height()))
}

// CalcTileCollection appends one copy of img to the list of col keyed by
// img.
func (b *Base) CalcTileCollection(col *blit.ImageCollection, img *blit.Image, x, y int) {
	if col == nil || img.Empty() {
		return
	}
	b.CalcTile(col.Vertexes(img), img, x, y)
}

// CalcWindow appends a nine-slice frame to the list of col keyed by the
// center image.
func (b *Base) CalcWindow(col *blit.ImageCollection, x, y, w, h int, r blit.ImageRect) {
	if col == nil {
		return
	}
	b.CalcImageRect(col.Vertexes(r.Grid[blit.Center]), x, y, w, h, r)
}

// CalcImageRect appends a nine-slice frame to vert.
func (b *Base) CalcImageRect(vert *blit.ImageVertexes, x, y, w, h int, r blit.ImageRect) {
	if vert == nil {
		return
	}
	nineSlice(x, y, w, h, r, sliceTarget{
		pattern: func(img *blit.Image, x, y, w, h int) { b.CalcPattern(vert, img, x, y, w, h) },
		image:   func(img *blit.Image, x, y int) { b.CalcTile(vert, img, x, y) },
	})
}

// DrawImageRect composites a nine-slice frame immediately.
func (b *Base) DrawImageRect(x, y, w, h int, r blit.ImageRect) {
	nineSlice(x, y, w, h, r, sliceTarget{
		pattern: b.impl.DrawPattern,
		image:   func(img *blit.Image, x, y int) { b.DrawImage(img, x, y) },
	})
}
