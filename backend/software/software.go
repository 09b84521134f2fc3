// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software implements the CPU backend. It composites into an
// *image.RGBA surface with golang.org/x/image/draw and is always
// available, which makes it the fallback for every other backend.
package software

import (
	"image"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	"github.com/gogpu/blit/backend/base"
	"github.com/gogpu/blit/internal/cache"
	"github.com/gogpu/blit/internal/clip"
)

// Name is the backend name reported by Name().
const Name = "software"

// DefaultMaxTextureSize is the largest image edge the backend reports.
// The CPU path has no hard limit; this keeps texture size probing bounded.
const DefaultMaxTextureSize = 16384

func init() {
	backend.Register(blit.ModeSoftware, Name, func() (blit.Graphics, error) {
		return New(), nil
	})
}

// Presenter shows a finished frame, for example by uploading it to a
// window. The frame must not be retained after Present returns.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// Option configures a Backend.
type Option func(*Backend)

// WithPresenter sets the presenter used by UpdateScreen.
func WithPresenter(p Presenter) Option {
	return func(b *Backend) { b.presenter = p }
}

// WithMaxTextureSize overrides DefaultMaxTextureSize.
func WithMaxTextureSize(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.maxTexture = n
		}
	}
}

// WithCacheSize sets how many byte-order converted images are kept.
func WithCacheSize(n int) Option {
	return func(b *Backend) { b.cacheSize = n }
}

// Backend is the software implementation of blit.Graphics.
type Backend struct {
	*base.Base

	surface *image.RGBA
	// target is surface restricted to the active clip region.
	target *image.RGBA

	presenter  Presenter
	maxTexture int
	cacheSize  int

	converted *cache.Cache[*image.RGBA, *image.RGBA]
	pending   []patternJob
	transient int
}

type patternJob struct {
	img        *blit.Image
	x, y, w, h int
}

var (
	_ blit.Graphics     = (*Backend)(nil)
	_ blit.Scaler       = (*Backend)(nil)
	_ blit.Capabilities = (*Backend)(nil)
)

// New returns an unconfigured software backend. Call SetVideoMode before
// drawing.
func New(opts ...Option) *Backend {
	b := &Backend{maxTexture: DefaultMaxTextureSize}
	for _, opt := range opts {
		opt(b)
	}
	b.converted = cache.New[*image.RGBA, *image.RGBA](b.cacheSize)
	b.Base = base.New(Name, blit.ModeSoftware, b)
	return b
}

// Surface returns the frame buffer, nil before SetVideoMode.
func (b *Backend) Surface() *image.RGBA { return b.surface }

// Configure allocates the frame buffer. The previous buffer is kept when
// the size does not change.
func (b *Backend) Configure(m blit.VideoMode) (blit.VideoMode, error) {
	if b.surface == nil || b.surface.Rect.Dx() != m.Width || b.surface.Rect.Dy() != m.Height {
		b.surface = image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	}
	return m, nil
}

// BeginFrame is a no-op; the surface keeps its previous contents.
func (b *Backend) BeginFrame() {}

// EndFrame drops the clip target. Queued patterns were flushed when the
// base region was popped.
func (b *Backend) EndFrame() {
	b.target = nil
}

// Release drops the surface and every converted image.
func (b *Backend) Release() error {
	b.converted.Clear()
	b.surface = nil
	b.target = nil
	b.pending = nil
	return nil
}

// ClipPushed flushes queued patterns, then restricts drawing to r.
func (b *Backend) ClipPushed(_, r clip.Region) {
	b.CompleteCache()
	b.setTarget(r)
}

// ClipPopped flushes queued patterns, then restores the clip of the new top.
func (b *Backend) ClipPopped(_, top clip.Region, ok bool) {
	b.CompleteCache()
	if !ok {
		b.target = nil
		return
	}
	b.setTarget(top)
}

func (b *Backend) setTarget(r clip.Region) {
	if b.surface == nil {
		return
	}
	b.target = b.surface.SubImage(r.Image()).(*image.RGBA)
}

// UpdateScreen hands the frame to the presenter, if any.
func (b *Backend) UpdateScreen() {
	if b.presenter == nil || b.surface == nil {
		return
	}
	if err := b.presenter.Present(b.surface); err != nil {
		blit.Logger().Warn("software: present failed", "err", err)
	}
}

// Screenshot returns a copy of the frame buffer.
func (b *Backend) Screenshot() (*image.RGBA, error) {
	if b.surface == nil {
		return nil, blit.ErrNoContext
	}
	out := image.NewRGBA(b.surface.Rect)
	copy(out.Pix, b.surface.Pix)
	return out, nil
}

// MaxTextureSize returns the configured image size limit.
func (b *Backend) MaxTextureSize() int { return b.maxTexture }

// Features reports no hardware capabilities.
func (b *Backend) Features() blit.Feature { return 0 }

// Transient returns the number of rescaled copies not yet released.
func (b *Backend) Transient() int { return b.transient }
