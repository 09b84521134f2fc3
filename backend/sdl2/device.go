// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdl2

import (
	"image"

	"github.com/gogpu/blit"
)

// Texture is a renderer owned texture. Implementations must be comparable;
// the backend keys its modulation state by texture.
type Texture interface {
	// SetColorMod sets the color the texture is multiplied with when
	// copied.
	SetColorMod(r, g, b uint8) error
	// SetAlphaMod sets the alpha the texture is multiplied with when
	// copied.
	SetAlphaMod(alpha uint8) error
	Destroy() error
}

// Renderer is the subset of the SDL2 2D renderer the backend uses. All
// rectangles and points are in window coordinates.
type Renderer interface {
	CreateTexture(px *image.RGBA, bgra bool) (Texture, error)
	Copy(tex Texture, src, dst blit.Rect) error

	SetClipRect(r blit.Rect) error
	SetDrawColor(c blit.Color) error
	FillRect(r blit.Rect) error
	DrawLine(x1, y1, x2, y2 int) error
	DrawLines(points []image.Point) error
	DrawPoint(x, y int) error

	Present()
	ReadPixels(dst *image.RGBA) error

	// MaxTextureSize returns the largest texture edge the renderer
	// accepts, 0 when unknown.
	MaxTextureSize() int
}

// Device owns the window and its renderer.
type Device interface {
	// Open creates the window or adapts it to m and returns the mode
	// obtained.
	Open(m blit.VideoMode) (blit.VideoMode, error)

	// Renderer returns the renderer of the window. It changes when Open
	// had to recreate it.
	Renderer() Renderer

	Close() error
}
