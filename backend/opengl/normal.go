// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend/base"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/internal/tile"
)

// NormalName is the name reported by the normal backend.
const NormalName = "normal OpenGL"

// Normal submits textured quads through client side vertex arrays in
// batches and adds clip offsets to every vertex.
type Normal struct {
	core

	batch  int
	verts  []int32
	coords []float32

	// cached is set while DrawPatternCached quads wait in the arrays.
	cached      bool
	cachedTex   uint32
	cachedAlpha float32
}

var (
	_ blit.Graphics     = (*Normal)(nil)
	_ blit.Capabilities = (*Normal)(nil)
	_ blit.Batcher      = (*Normal)(nil)
)

// NewNormal returns an unconfigured normal backend drawing through dev.
func NewNormal(dev Device, opts ...Option) *Normal {
	o := collect(opts)
	n := &Normal{batch: o.batchSize}
	n.verts = make([]int32, 0, n.batch*8)
	n.coords = make([]float32, 0, n.batch*8)
	n.flush = n.CompleteCache
	n.init(NormalName, blit.ModeNormalOpenGL, dev, n, o)
	return n
}

// BatchSize returns the number of quads submitted per draw call.
func (n *Normal) BatchSize() int { return n.batch }

// BeginFrame sets up the shared frame state and enables the client
// arrays.
func (n *Normal) BeginFrame() {
	n.core.BeginFrame()
	n.gl.EnableClientState(glVertexArray)
	n.gl.EnableClientState(glTexCoordArray)
}

// EndFrame submits pending quads and disables the client arrays.
func (n *Normal) EndFrame() {
	n.CompleteCache()
	n.gl.DisableClientState(glTexCoordArray)
	n.gl.DisableClientState(glVertexArray)
}

// ClipPushed scissors to r after flushing quads queued under the
// previous region.
func (n *Normal) ClipPushed(_, r clip.Region) {
	n.CompleteCache()
	n.scissor(r.Rect)
}

// ClipPopped restores the scissor box of the enclosing region.
func (n *Normal) ClipPopped(_, top clip.Region, ok bool) {
	n.CompleteCache()
	if ok {
		n.scissor(top.Rect)
	}
}

// add queues q, submitting a full batch first.
func (n *Normal) add(q quad) {
	if len(n.verts) >= n.batch*8 {
		n.submit()
	}
	n.verts, n.coords = q.appendTo(n.verts, n.coords)
}

// submit draws the queued quads.
func (n *Normal) submit() {
	if len(n.verts) == 0 {
		return
	}
	n.gl.VertexPointer(n.verts)
	n.gl.TexCoordPointer(n.coords)
	n.gl.DrawArrays(glQuads, 0, int32(len(n.verts)/2))
	n.verts = n.verts[:0]
	n.coords = n.coords[:0]
}

// CompleteCache draws the quads queued by DrawPatternCached.
func (n *Normal) CompleteCache() {
	if !n.cached {
		return
	}
	n.cached = false
	n.submit()
}

// DrawImageRegion draws a w×h region of img.
func (n *Normal) DrawImageRegion(img *blit.Image, srcX, srcY, dstX, dstY, w, h int, useColor bool) bool {
	return n.DrawRescaledImageSmooth(img, srcX, srcY, dstX, dstY, w, h, w, h, useColor, false)
}

// DrawRescaledImageSmooth draws a region of img stretched to
// desiredW×desiredH, followed by the smooth overlay passes.
func (n *Normal) DrawRescaledImageSmooth(img *blit.Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor, smooth bool) bool {
	if img.Empty() || n.gl == nil {
		return false
	}
	n.CompleteCache()
	tw, th, ok := n.bindImage(img, useColor)
	if !ok {
		return false
	}
	ox, oy := n.Offset()
	srcX += img.Bounds.X
	srcY += img.Bounds.Y
	dstX += ox
	dstY += oy

	n.add(makeQuad(tw, th, srcX, srcY, w, h, dstX, dstY, desiredW, desiredH))
	n.submit()
	if (w != desiredW || h != desiredH) && base.UseSmooth(w, h, desiredW, desiredH, smooth) {
		n.st.setColorAlpha(base.SmoothAlpha)
		for _, p := range base.SmoothPasses {
			n.add(makeQuad(tw, th, srcX, srcY, w, h, dstX+p.DX, dstY+p.DY, desiredW+p.DW, desiredH+p.DH))
		}
		n.submit()
	}
	return true
}

// pattern queues the tiles of img over the w×h area at device (x, y).
func (n *Normal) pattern(img *blit.Image, tw, th, x, y, w, h int) {
	sx, sy := img.Bounds.X, img.Bounds.Y
	tile.Grid(w, h, img.Width(), img.Height(), func(px, py, pw, ph int) {
		n.add(makeQuad(tw, th, sx, sy, pw, ph, x+px, y+py, pw, ph))
	})
}

// DrawPattern tiles img over the w×h area at (x, y).
func (n *Normal) DrawPattern(img *blit.Image, x, y, w, h int) {
	if img.Empty() || n.gl == nil || !n.Drawable() {
		return
	}
	n.CompleteCache()
	tw, th, ok := n.bindImage(img, false)
	if !ok {
		return
	}
	ox, oy := n.Offset()
	n.pattern(img, tw, th, x+ox, y+oy, w, h)
	n.submit()
}

// DrawPatternCached queues the tiles of img without submitting them.
// Consecutive calls with the same texture and alpha share draw calls
// until CompleteCache or any other draw.
func (n *Normal) DrawPatternCached(img *blit.Image, x, y, w, h int) {
	if img.Empty() || n.gl == nil || !n.Drawable() {
		return
	}
	if n.cached {
		if tex, ok := n.lookupTexture(img); !ok || tex != n.cachedTex || img.Alpha != n.cachedAlpha {
			n.CompleteCache()
		}
	}
	tw, th, ok := n.bindImage(img, false)
	if !ok {
		return
	}
	tex, _ := n.lookupTexture(img)
	n.cached = true
	n.cachedTex = tex
	n.cachedAlpha = img.Alpha

	ox, oy := n.Offset()
	n.pattern(img, tw, th, x+ox, y+oy, w, h)
}

// DrawRescaledPattern tiles img as if it was scaledW×scaledH, mapping
// each tile back to the source texture.
func (n *Normal) DrawRescaledPattern(img *blit.Image, x, y, w, h, scaledW, scaledH int) {
	if img.Empty() || scaledW <= 0 || scaledH <= 0 || n.gl == nil || !n.Drawable() {
		return
	}
	n.CompleteCache()
	tw, th, ok := n.bindImage(img, false)
	if !ok {
		return
	}
	ox, oy := n.Offset()
	sx, sy := img.Bounds.X, img.Bounds.Y
	iw, ih := img.Width(), img.Height()
	tile.Grid(w, h, scaledW, scaledH, func(px, py, pw, ph int) {
		sw, sh := tile.Scaled(pw, ph, iw, ih, scaledW, scaledH)
		n.add(makeQuad(tw, th, sx, sy, sw, sh, x+ox+px, y+oy+py, pw, ph))
	})
	n.submit()
}

// DrawTile replays vert, whose rectangles are already in device
// coordinates.
func (n *Normal) DrawTile(vert *blit.ImageVertexes) {
	if vert == nil || vert.Image.Empty() || n.gl == nil {
		return
	}
	n.CompleteCache()
	tw, th, ok := n.bindImage(vert.Image, false)
	if !ok {
		return
	}
	for _, r := range vert.Rects {
		n.add(makeQuad(tw, th, r.Src.X, r.Src.Y, r.Src.W, r.Src.H, r.Dst.X, r.Dst.Y, r.Dst.W, r.Dst.H))
	}
	n.submit()
}
