// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewImage(t *testing.T) {
	img := NewImage(image.NewRGBA(image.Rect(0, 0, 32, 16)))
	if img.Width() != 32 || img.Height() != 16 {
		t.Errorf("size = %dx%d, want 32x16", img.Width(), img.Height())
	}
	if img.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", img.Alpha)
	}
	if img.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", img.Format)
	}
	if img.TexWidth != 32 || img.TexHeight != 16 {
		t.Errorf("texel size = %dx%d, want 32x16", img.TexWidth, img.TexHeight)
	}
}

func TestImageSubImage(t *testing.T) {
	atlas := NewImage(image.NewRGBA(image.Rect(0, 0, 64, 64)))
	atlas.Bounds = NewRect(16, 16, 32, 32)

	sub := atlas.SubImage(NewRect(8, 8, 100, 4))
	if want := NewRect(24, 24, 24, 4); sub.Bounds != want {
		t.Errorf("SubImage().Bounds = %v, want %v", sub.Bounds, want)
	}
	if sub.Pixels != atlas.Pixels {
		t.Error("SubImage() should share pixels")
	}
}

func TestImageReleaseOnce(t *testing.T) {
	img := NewImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	calls := 0
	img.OnRelease(func() { calls++ })

	img.Release()
	img.Release()

	if calls != 1 {
		t.Errorf("release hook called %d times, want 1", calls)
	}
	if !img.Released() {
		t.Error("Released() = false after Release")
	}
}

func TestImageEmpty(t *testing.T) {
	var img *Image
	if !img.Empty() {
		t.Error("nil image should be empty")
	}
	if !NewImage(image.NewRGBA(image.Rect(0, 0, 0, 5))).Empty() {
		t.Error("zero width image should be empty")
	}
}
