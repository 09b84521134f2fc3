// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "image"

// Graphics is the drawing contract shared by every backend.
//
// All calls for one frame happen between BeginDraw and EndDraw on the
// goroutine that owns the native context. Implementations are NOT safe for
// concurrent use.
//
// Draw calls never report errors: degenerate input (nil or zero-sized
// images, empty clip regions) is skipped silently, because dropping one
// sprite is better than aborting a frame.
type Graphics interface {
	// Name returns a human readable backend name.
	Name() string

	// Mode returns the render mode this backend implements.
	Mode() RenderMode

	// SetVideoMode creates the native window and context. On failure the
	// previous mode, if any, is left untouched and a *VideoModeError is
	// returned.
	SetVideoMode(m VideoMode) error

	// SetFullscreen switches between fullscreen and windowed mode.
	SetFullscreen(fullscreen bool) error

	// ResizeScreen changes the drawable size. Equal sizes are a no-op.
	// The current frame is ended and a new one begun; when reconfiguration
	// fails the previous mode is restored before the error is returned.
	ResizeScreen(width, height int) error

	// VideoMode returns the active video mode.
	VideoMode() VideoMode

	// Width and Height return the drawable size in pixels.
	Width() int
	Height() int

	// BeginDraw pushes the base clip region and sets per-frame native state.
	BeginDraw()

	// EndDraw pops the base clip region.
	EndDraw()

	// FrameDepth returns the number of unmatched BeginDraw calls. Anything
	// other than 0 or 1 indicates a bracket error.
	FrameDepth() int

	// UpdateScreen presents the completed frame.
	UpdateScreen()

	// PushClipArea intersects r, given in the current region's coordinates,
	// with the current region and makes it active. It reports whether the
	// resulting region has a non-zero area.
	PushClipArea(r Rect) bool

	// PopClipArea restores the previous region.
	PopClipArea()

	// SetColor sets the color used by primitive drawing.
	SetColor(c Color)

	// Color returns the current primitive color.
	Color() Color

	// DrawImage draws the whole image at (x, y) using its intrinsic alpha.
	DrawImage(img *Image, x, y int) bool

	// DrawImageRegion draws the w×h region at (srcX, srcY) of img at
	// (dstX, dstY). When useColor is set the pixels are multiplied by the
	// current color, alpha included; otherwise the image's own alpha is the
	// blend factor.
	DrawImageRegion(img *Image, srcX, srcY, dstX, dstY, w, h int, useColor bool) bool

	// DrawRescaledImage draws a region of img stretched to
	// desiredW×desiredH, with the smooth overlay enabled.
	DrawRescaledImage(img *Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor bool) bool

	// DrawRescaledImageSmooth is DrawRescaledImage with explicit control of
	// the smooth overlay. The overlay is dropped when the target is
	// strictly smaller than the source in both dimensions.
	DrawRescaledImageSmooth(img *Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor, smooth bool) bool

	// DrawPattern tiles img over the w×h area at (x, y).
	DrawPattern(img *Image, x, y, w, h int)

	// DrawPatternCached is DrawPattern for callers that drew with img
	// earlier in the frame and therefore skip per-image setup. Pending
	// work is flushed by CompleteCache.
	DrawPatternCached(img *Image, x, y, w, h int)

	// CompleteCache flushes work queued by DrawPatternCached.
	CompleteCache()

	// DrawRescaledPattern tiles a scaledW×scaledH rescaled copy of img.
	DrawRescaledPattern(img *Image, x, y, w, h, scaledW, scaledH int)

	// CalcPattern appends the tiles of a pattern fill to vert.
	CalcPattern(vert *ImageVertexes, img *Image, x, y, w, h int)

	// CalcPatternCollection appends a pattern fill to col, starting a new
	// list when img differs from the collection's current image.
	CalcPatternCollection(col *ImageCollection, img *Image, x, y, w, h int)

	// CalcTile appends a single unscaled copy of img at (x, y).
	CalcTile(vert *ImageVertexes, img *Image, x, y int)

	// CalcTileCollection is CalcTile on a collection.
	CalcTileCollection(col *ImageCollection, img *Image, x, y int)

	// DrawTile replays a draw list in insertion order.
	DrawTile(vert *ImageVertexes)

	// DrawTileCollection replays every list of col in order.
	DrawTileCollection(col *ImageCollection)

	// DrawImageRect composites a nine-slice frame.
	DrawImageRect(x, y, w, h int, r ImageRect)

	// CalcImageRect appends a nine-slice frame to vert. All grid images
	// must share vert.Image's texture.
	CalcImageRect(vert *ImageVertexes, x, y, w, h int, r ImageRect)

	// CalcWindow appends a nine-slice frame to col, keyed by the center
	// image.
	CalcWindow(col *ImageCollection, x, y, w, h int, r ImageRect)

	// DrawRectangle outlines r with the current color.
	DrawRectangle(r Rect)

	// FillRectangle fills r with the current color.
	FillRectangle(r Rect)

	// DrawLine draws a one pixel line including both end points.
	DrawLine(x1, y1, x2, y2 int)

	// DrawPoint sets one pixel.
	DrawPoint(x, y int)

	// DrawNet draws a grid of lines spaced w and h apart.
	DrawNet(x1, y1, x2, y2, w, h int)

	// Screenshot captures the current frame with rows ordered top to bottom.
	Screenshot() (*image.RGBA, error)

	// Close ends an open frame and releases the native context.
	Close() error
}

// Scaler is implemented by backends that produce rescaled image copies.
// The caller owns the returned image and must Release it.
type Scaler interface {
	Scale(img *Image, width, height int) (*Image, error)
}

// Capabilities is implemented by backends that can report hardware limits.
type Capabilities interface {
	// MaxTextureSize returns the largest texture edge the backend accepts.
	MaxTextureSize() int

	// Features returns the detected capability bitmask.
	Features() Feature
}

// Batcher is implemented by backends that submit quads in batches.
type Batcher interface {
	BatchSize() int
}
