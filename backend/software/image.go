// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend/base"
	"github.com/gogpu/blit/internal/tile"
)

var (
	// ErrNoPixels is returned by Scale for images without CPU pixel data.
	ErrNoPixels = errors.New("software: image has no pixel data")

	// ErrInvalidScale is returned by Scale for empty images or sizes.
	ErrInvalidScale = errors.New("software: invalid scale size")
)

// source returns the RGBA pixels backing img, converting BGRA data once
// and caching the result.
func (b *Backend) source(img *blit.Image) *image.RGBA {
	px := img.Pixels
	if px == nil {
		px, _ = img.Handle.(*image.RGBA)
	}
	if px == nil {
		return nil
	}
	if img.Format != gputypes.TextureFormatBGRA8Unorm {
		return px
	}
	out, _ := b.converted.GetOrCreate(px, func() (*image.RGBA, error) {
		return swizzle(px), nil
	})
	return out
}

// swizzle converts BGRA byte order to RGBA.
func swizzle(px *image.RGBA) *image.RGBA {
	out := image.NewRGBA(px.Rect)
	copy(out.Pix, px.Pix)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		out.Pix[i], out.Pix[i+2] = out.Pix[i+2], out.Pix[i]
	}
	return out
}

func alphaMask(alpha float32) image.Image {
	if alpha >= 1 {
		return nil
	}
	if alpha < 0 {
		alpha = 0
	}
	return image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
}

// blend composites the region of src at sp onto dst (device coordinates),
// clipped to the active region.
func (b *Backend) blend(src *image.RGBA, sp image.Point, dst image.Rectangle, alpha float32) {
	if b.target == nil {
		return
	}
	draw.DrawMask(b.target, dst, src, sp, alphaMask(alpha), image.Point{}, draw.Over)
}

// tinted returns the sr region of src multiplied by the current color
// when useColor is set. The copy keeps src coordinates.
func (b *Backend) tinted(src *image.RGBA, sr image.Rectangle, useColor bool) *image.RGBA {
	c := b.Color()
	if !useColor || (c.R == 255 && c.G == 255 && c.B == 255) {
		return src
	}
	sr = sr.Intersect(src.Rect)
	out := image.NewRGBA(sr)
	draw.Copy(out, sr.Min, src, sr, draw.Src, nil)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = mul255(out.Pix[i], c.R)
		out.Pix[i+1] = mul255(out.Pix[i+1], c.G)
		out.Pix[i+2] = mul255(out.Pix[i+2], c.B)
	}
	return out
}

func mul255(v, f uint8) uint8 {
	return uint8((int(v)*int(f) + 127) / 255)
}

func (b *Backend) alpha(img *blit.Image, useColor bool) float32 {
	if useColor {
		return float32(b.Color().A) / 255
	}
	return img.Alpha
}

// DrawImageRegion draws a w×h region of img.
func (b *Backend) DrawImageRegion(img *blit.Image, srcX, srcY, dstX, dstY, w, h int, useColor bool) bool {
	if img.Empty() {
		return false
	}
	src := b.source(img)
	if src == nil {
		return false
	}
	ox, oy := b.Offset()
	sp := image.Pt(img.Bounds.X+srcX, img.Bounds.Y+srcY)
	src = b.tinted(src, image.Rectangle{Min: sp, Max: sp.Add(image.Pt(w, h))}, useColor)
	dst := image.Rect(dstX+ox, dstY+oy, dstX+ox+w, dstY+oy+h)
	b.blend(src, sp, dst, b.alpha(img, useColor))
	return true
}

// DrawRescaledImageSmooth draws a region of img stretched to
// desiredW×desiredH with bilinear filtering.
func (b *Backend) DrawRescaledImageSmooth(img *blit.Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor, smooth bool) bool {
	if img.Empty() {
		return false
	}
	if w == desiredW && h == desiredH {
		return b.DrawImageRegion(img, srcX, srcY, dstX, dstY, w, h, useColor)
	}
	src := b.source(img)
	if src == nil {
		return false
	}
	if b.target == nil {
		return true
	}
	ox, oy := b.Offset()
	sr := image.Rect(img.Bounds.X+srcX, img.Bounds.Y+srcY, img.Bounds.X+srcX+w, img.Bounds.Y+srcY+h)
	src = b.tinted(src, sr, useColor)
	scale := func(dx, dy, dw, dh int, alpha float32) {
		x, y := dstX+ox+dx, dstY+oy+dy
		dr := image.Rect(x, y, x+desiredW+dw, y+desiredH+dh)
		draw.ApproxBiLinear.Scale(b.target, dr, src, sr, draw.Over, &draw.Options{DstMask: alphaMask(alpha)})
	}

	scale(0, 0, 0, 0, b.alpha(img, useColor))
	if base.UseSmooth(w, h, desiredW, desiredH, smooth) {
		for _, p := range base.SmoothPasses {
			scale(p.DX, p.DY, p.DW, p.DH, base.SmoothAlpha)
		}
	}
	return true
}

// DrawPattern tiles img over the w×h area at (x, y).
func (b *Backend) DrawPattern(img *blit.Image, x, y, w, h int) {
	if img.Empty() || !b.Drawable() {
		return
	}
	ox, oy := b.Offset()
	b.tile(img, x+ox, y+oy, w, h)
}

// tile draws a pattern at device coordinates into the current target.
func (b *Backend) tile(img *blit.Image, x, y, w, h int) {
	if b.target == nil {
		return
	}
	src := b.source(img)
	if src == nil {
		return
	}
	sp := image.Pt(img.Bounds.X, img.Bounds.Y)
	tile.Grid(w, h, img.Width(), img.Height(), func(px, py, tw, th int) {
		b.blend(src, sp, image.Rect(x+px, y+py, x+px+tw, y+py+th), img.Alpha)
	})
}

// DrawPatternCached queues a pattern until CompleteCache or the next clip
// change.
func (b *Backend) DrawPatternCached(img *blit.Image, x, y, w, h int) {
	if img.Empty() || !b.Drawable() {
		return
	}
	ox, oy := b.Offset()
	b.pending = append(b.pending, patternJob{img: img, x: x + ox, y: y + oy, w: w, h: h})
}

// CompleteCache draws every queued pattern under the clip it was queued in.
func (b *Backend) CompleteCache() {
	if len(b.pending) == 0 {
		return
	}
	for _, job := range b.pending {
		b.tile(job.img, job.x, job.y, job.w, job.h)
	}
	clear(b.pending)
	b.pending = b.pending[:0]
}

// DrawRescaledPattern tiles a scaledW×scaledH copy of img.
func (b *Backend) DrawRescaledPattern(img *blit.Image, x, y, w, h, scaledW, scaledH int) {
	if img.Empty() || scaledW <= 0 || scaledH <= 0 || !b.Drawable() {
		return
	}
	scaled, err := b.Scale(img, scaledW, scaledH)
	if err != nil {
		blit.Logger().Debug("software: cannot scale pattern", "err", err)
		return
	}
	defer scaled.Release()
	b.DrawPattern(scaled, x, y, w, h)
}

// Scale returns a transient w×h copy of img. The caller must Release it.
func (b *Backend) Scale(img *blit.Image, w, h int) (*blit.Image, error) {
	if img.Empty() || w <= 0 || h <= 0 {
		return nil, ErrInvalidScale
	}
	src := b.source(img)
	if src == nil {
		return nil, ErrNoPixels
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, img.Bounds.Image(), draw.Src, nil)

	out := blit.NewImage(dst)
	out.Alpha = img.Alpha
	b.transient++
	out.OnRelease(func() { b.transient-- })
	return out, nil
}

// DrawTile replays vert in device coordinates.
func (b *Backend) DrawTile(vert *blit.ImageVertexes) {
	if vert == nil || vert.Image.Empty() {
		return
	}
	src := b.source(vert.Image)
	if src == nil {
		return
	}
	for _, r := range vert.Rects {
		b.blend(src, image.Pt(r.Src.X, r.Src.Y), r.Dst.Image(), vert.Image.Alpha)
	}
}
