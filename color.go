// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit-per-channel RGBA color used for fills, lines and tints.
// The zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates an opaque color from RGB components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from integer components, clamping each to [0, 255].
func RGBA(r, g, b, a int) Color {
	return Color{R: clamp255(r), G: clamp255(g), B: clamp255(b), A: clamp255(a)}
}

// Hex creates an opaque color from a packed 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

// Add returns the channel-wise sum of c and o, saturated to 255.
// The result is always opaque.
func (c Color) Add(o Color) Color {
	return Color{
		R: clamp255(int(c.R) + int(o.R)),
		G: clamp255(int(c.G) + int(o.G)),
		B: clamp255(int(c.B) + int(o.B)),
		A: 255,
	}
}

// Sub returns the channel-wise difference of c and o, saturated to 0.
// The result is always opaque.
func (c Color) Sub(o Color) Color {
	return Color{
		R: clamp255(int(c.R) - int(o.R)),
		G: clamp255(int(c.G) - int(o.G)),
		B: clamp255(int(c.B) - int(o.B)),
		A: 255,
	}
}

// Scale multiplies the RGB channels by f, saturating each to [0, 255].
// Alpha is preserved.
func (c Color) Scale(f float32) Color {
	return Color{
		R: clamp255(int(float32(c.R) * f)),
		G: clamp255(int(float32(c.G) * f)),
		B: clamp255(int(float32(c.B) * f)),
		A: c.A,
	}
}

// NRGBA converts the color to the standard library's non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("Color [r = %d, g = %d, b = %d, a = %d]", c.R, c.G, c.B, c.A)
}

// clamp255 restricts a value to the [0, 255] range.
func clamp255(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(255, 255, 255)
	Red   = NewColor(255, 0, 0)
	Green = NewColor(0, 255, 0)
	Blue  = NewColor(0, 0, 255)
)
