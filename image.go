// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Image is an already decoded picture ready to be drawn by a backend.
//
// Images are created by the resource loader, which uploads the pixels to the
// active backend and stores the resulting native handle. The rendering core
// reads images but never frees them, with one exception: transient copies
// produced by a backend's Scale routine must be released by the function that
// requested them.
type Image struct {
	// Bounds is the source rectangle inside the backing texture or atlas.
	Bounds Rect

	// Alpha is the intrinsic opacity applied when drawing without the
	// current color.
	Alpha float32

	// TexWidth and TexHeight are the dimensions of the backing texture in
	// texels. Backends with normalised texture coordinates divide by them.
	TexWidth, TexHeight int

	// Format is the memory layout of Pixels.
	Format gputypes.TextureFormat

	// Handle is the backend-specific texture handle: a GL texture name
	// (uint32) for the OpenGL backends, an SDL texture for the SDL2
	// backend. The software backend draws from Pixels directly.
	Handle any

	// Pixels is the decoded bitmap, if the loader kept it.
	Pixels *image.RGBA

	release  func()
	released bool
}

// NewImage wraps decoded pixels in an Image covering the whole bitmap.
func NewImage(pixels *image.RGBA) *Image {
	b := pixels.Bounds()
	return &Image{
		Bounds:    NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy()),
		Alpha:     1,
		TexWidth:  b.Dx(),
		TexHeight: b.Dy(),
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Pixels:    pixels,
	}
}

// Width returns the width of the source rectangle.
func (img *Image) Width() int { return img.Bounds.W }

// Height returns the height of the source rectangle.
func (img *Image) Height() int { return img.Bounds.H }

// Empty reports whether the image has no drawable area.
func (img *Image) Empty() bool {
	return img == nil || img.Bounds.Empty()
}

// SubImage returns an image sharing the same texture whose source rectangle
// is r, relative to img's bounds. Used for atlas slicing.
func (img *Image) SubImage(r Rect) *Image {
	sub := *img
	sub.Bounds = r.Translate(img.Bounds.X, img.Bounds.Y).Intersect(img.Bounds)
	sub.release = nil
	sub.released = false
	return &sub
}

// OnRelease registers fn to be called when the image is released. Backends
// use it to free the native texture of transient copies.
func (img *Image) OnRelease(fn func()) {
	img.release = fn
}

// Release frees a transient image. It is idempotent.
func (img *Image) Release() {
	if img == nil || img.released {
		return
	}
	img.released = true
	if img.release != nil {
		img.release()
	}
}

// Released reports whether Release has been called.
func (img *Image) Released() bool {
	return img != nil && img.released
}

// ImageRect is a nine-slice grid in row-major order:
//
//	0 top-left    1 top     2 top-right
//	3 left        4 center  5 right
//	6 bottom-left 7 bottom  8 bottom-right
type ImageRect struct {
	Grid [9]*Image
}

// Nine-slice grid indices.
const (
	TopLeft = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)
