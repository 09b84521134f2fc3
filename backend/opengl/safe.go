// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend/base"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/internal/tile"
)

// SafeName is the name reported by the safe backend.
const SafeName = "safe OpenGL"

// Safe renders with immediate mode only and applies clip offsets with the
// modelview matrix. It works on drivers with broken vertex arrays.
type Safe struct {
	core
}

var (
	_ blit.Graphics     = (*Safe)(nil)
	_ blit.Capabilities = (*Safe)(nil)
)

// NewSafe returns an unconfigured safe backend drawing through dev.
func NewSafe(dev Device, opts ...Option) *Safe {
	o := collect(opts)
	s := &Safe{}
	s.matrixClip = true
	s.init(SafeName, blit.ModeSafeOpenGL, dev, s, o)
	return s
}

// EndFrame has nothing to flush in immediate mode.
func (s *Safe) EndFrame() {}

// ClipPushed saves the modelview matrix, translates by the offset gained
// since prev and scissors to r.
func (s *Safe) ClipPushed(prev, r clip.Region) {
	s.gl.PushMatrix()
	if dx, dy := r.XOffset-prev.XOffset, r.YOffset-prev.YOffset; dx != 0 || dy != 0 {
		s.gl.Translatef(float32(dx), float32(dy), 0)
	}
	s.scissor(r.Rect)
}

// ClipPopped restores the matrix of the enclosing region.
func (s *Safe) ClipPopped(_, top clip.Region, ok bool) {
	s.gl.PopMatrix()
	if ok {
		s.scissor(top.Rect)
	}
}

// DrawImageRegion draws a w×h region of img.
func (s *Safe) DrawImageRegion(img *blit.Image, srcX, srcY, dstX, dstY, w, h int, useColor bool) bool {
	return s.DrawRescaledImageSmooth(img, srcX, srcY, dstX, dstY, w, h, w, h, useColor, false)
}

// DrawRescaledImageSmooth draws a region of img stretched to
// desiredW×desiredH, followed by the smooth overlay passes.
func (s *Safe) DrawRescaledImageSmooth(img *blit.Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor, smooth bool) bool {
	if img.Empty() || s.gl == nil {
		return false
	}
	tw, th, ok := s.bindImage(img, useColor)
	if !ok {
		return false
	}
	srcX += img.Bounds.X
	srcY += img.Bounds.Y

	s.gl.Begin(glQuads)
	makeQuad(tw, th, srcX, srcY, w, h, dstX, dstY, desiredW, desiredH).emit(s.gl)
	if (w != desiredW || h != desiredH) && base.UseSmooth(w, h, desiredW, desiredH, smooth) {
		s.st.setColorAlpha(base.SmoothAlpha)
		for _, p := range base.SmoothPasses {
			makeQuad(tw, th, srcX, srcY, w, h, dstX+p.DX, dstY+p.DY, desiredW+p.DW, desiredH+p.DH).emit(s.gl)
		}
	}
	s.gl.End()
	return true
}

// DrawPattern tiles img over the w×h area at (x, y).
func (s *Safe) DrawPattern(img *blit.Image, x, y, w, h int) {
	if img.Empty() || s.gl == nil || !s.Drawable() {
		return
	}
	tw, th, ok := s.bindImage(img, false)
	if !ok {
		return
	}
	sx, sy := img.Bounds.X, img.Bounds.Y
	s.gl.Begin(glQuads)
	tile.Grid(w, h, img.Width(), img.Height(), func(px, py, pw, ph int) {
		makeQuad(tw, th, sx, sy, pw, ph, x+px, y+py, pw, ph).emit(s.gl)
	})
	s.gl.End()
}

// DrawPatternCached draws immediately; there is nothing to batch.
func (s *Safe) DrawPatternCached(img *blit.Image, x, y, w, h int) {
	s.DrawPattern(img, x, y, w, h)
}

// CompleteCache is a no-op.
func (s *Safe) CompleteCache() {}

// DrawRescaledPattern tiles img as if it was scaledW×scaledH, mapping
// each tile back to the source texture.
func (s *Safe) DrawRescaledPattern(img *blit.Image, x, y, w, h, scaledW, scaledH int) {
	if img.Empty() || scaledW <= 0 || scaledH <= 0 || s.gl == nil || !s.Drawable() {
		return
	}
	tw, th, ok := s.bindImage(img, false)
	if !ok {
		return
	}
	sx, sy := img.Bounds.X, img.Bounds.Y
	iw, ih := img.Width(), img.Height()
	s.gl.Begin(glQuads)
	tile.Grid(w, h, scaledW, scaledH, func(px, py, pw, ph int) {
		sw, sh := tile.Scaled(pw, ph, iw, ih, scaledW, scaledH)
		makeQuad(tw, th, sx, sy, sw, sh, x+px, y+py, pw, ph).emit(s.gl)
	})
	s.gl.End()
}

// DrawTile replays vert. Its rectangles are in device coordinates, so the
// translation of the active region is taken back out.
func (s *Safe) DrawTile(vert *blit.ImageVertexes) {
	if vert == nil || vert.Image.Empty() || s.gl == nil {
		return
	}
	tw, th, ok := s.bindImage(vert.Image, false)
	if !ok {
		return
	}
	ox, oy := s.Offset()
	s.gl.Begin(glQuads)
	for _, r := range vert.Rects {
		makeQuad(tw, th, r.Src.X, r.Src.Y, r.Src.W, r.Src.H, r.Dst.X-ox, r.Dst.Y-oy, r.Dst.W, r.Dst.H).emit(s.gl)
	}
	s.gl.End()
}
