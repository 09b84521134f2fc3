// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sdl2

import (
	"errors"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend/base"
	"github.com/gogpu/blit/internal/cache"
	"github.com/gogpu/blit/internal/clip"
	"github.com/gogpu/blit/internal/tile"
)

// Name is the backend name reported by Name().
const Name = "SDL2"

var (
	// ErrNoDevice is returned by SetVideoMode when the backend was built
	// without a device.
	ErrNoDevice = errors.New("sdl2: no device")

	// ErrNoPixels is returned by Scale for images without CPU pixels.
	ErrNoPixels = errors.New("sdl2: image has no pixels")

	// ErrInvalidScale is returned by Scale for empty images or sizes.
	ErrInvalidScale = errors.New("sdl2: invalid scale size")
)

// Option configures a Backend.
type Option func(*Backend)

// WithTextureCache sets how many uploaded textures are kept alive.
func WithTextureCache(n int) Option {
	return func(b *Backend) { b.cacheSize = n }
}

// Backend draws through the SDL2 accelerated 2D renderer.
type Backend struct {
	*base.Base

	dev       Device
	r         Renderer
	cacheSize int
	textures  *cache.Cache[*image.RGBA, Texture]
	// mods holds the color and alpha modulation last applied per texture.
	mods map[Texture]blit.Color

	drawColor    blit.Color
	hasDrawColor bool
	transient    int
}

var (
	_ blit.Graphics     = (*Backend)(nil)
	_ blit.Scaler       = (*Backend)(nil)
	_ blit.Capabilities = (*Backend)(nil)
)

// New returns an unconfigured backend drawing through dev.
func New(dev Device, opts ...Option) *Backend {
	b := &Backend{dev: dev, mods: make(map[Texture]blit.Color)}
	for _, opt := range opts {
		opt(b)
	}
	b.textures = cache.New[*image.RGBA, Texture](b.cacheSize)
	b.textures.OnEvict(b.destroy)
	b.Base = base.New(Name, blit.ModeSDL2, b)
	return b
}

func (b *Backend) destroy(_ *image.RGBA, tex Texture) {
	delete(b.mods, tex)
	if err := tex.Destroy(); err != nil {
		blit.Logger().Debug("sdl2: destroy texture", "err", err)
	}
}

// Configure opens or adapts the window.
func (b *Backend) Configure(m blit.VideoMode) (blit.VideoMode, error) {
	if b.dev == nil {
		return m, ErrNoDevice
	}
	got, err := b.dev.Open(m)
	if err != nil {
		return m, err
	}
	if r := b.dev.Renderer(); r != b.r {
		// Textures belong to the renderer that created them.
		b.textures.OnEvict(nil)
		b.textures.Clear()
		b.textures.OnEvict(b.destroy)
		clear(b.mods)
		b.r = r
		b.hasDrawColor = false
	}
	blit.Logger().Info("sdl2 renderer", "max_texture", b.MaxTextureSize())
	return got, nil
}

// BeginFrame has no per-frame state.
func (b *Backend) BeginFrame() {}

// EndFrame has nothing to flush.
func (b *Backend) EndFrame() {}

// Release destroys cached textures and closes the device.
func (b *Backend) Release() error {
	b.textures.Clear()
	b.r = nil
	if b.dev == nil {
		return nil
	}
	return b.dev.Close()
}

// ClipPushed sets the renderer clip rectangle to r.
func (b *Backend) ClipPushed(_, r clip.Region) {
	b.setClip(r.Rect)
}

// ClipPopped restores the clip rectangle of the enclosing region.
func (b *Backend) ClipPopped(_, top clip.Region, ok bool) {
	if ok {
		b.setClip(top.Rect)
	}
}

func (b *Backend) setClip(r blit.Rect) {
	if err := b.r.SetClipRect(r); err != nil {
		blit.Logger().Debug("sdl2: set clip rect", "rect", r, "err", err)
	}
}

// texture returns the renderer texture of img, creating it on first
// use.
func (b *Backend) texture(img *blit.Image) (Texture, bool) {
	if tex, ok := img.Handle.(Texture); ok {
		return tex, true
	}
	if img.Pixels == nil || b.r == nil {
		return nil, false
	}
	tex, err := b.textures.GetOrCreate(img.Pixels, func() (Texture, error) {
		return b.r.CreateTexture(img.Pixels, img.Format == gputypes.TextureFormatBGRA8Unorm)
	})
	if err != nil {
		blit.Logger().Debug("sdl2: create texture", "err", err)
		return nil, false
	}
	return tex, true
}

// modulation returns the color a texture is multiplied with: the current
// color when useColor is set, else white at the image alpha.
func (b *Backend) modulation(img *blit.Image, useColor bool) blit.Color {
	if useColor {
		return b.Color()
	}
	return blit.Color{R: 255, G: 255, B: 255, A: uint8(img.Alpha*255 + 0.5)}
}

func (b *Backend) copy(tex Texture, src, dst blit.Rect) {
	if err := b.r.Copy(tex, src, dst); err != nil {
		blit.Logger().Debug("sdl2: copy", "src", src, "dst", dst, "err", err)
	}
}

// setMod applies c to tex, skipping the parts already in effect.
func (b *Backend) setMod(tex Texture, c blit.Color) {
	last, known := b.mods[tex]
	if known && last == c {
		return
	}
	if !known || last.R != c.R || last.G != c.G || last.B != c.B {
		if err := tex.SetColorMod(c.R, c.G, c.B); err != nil {
			blit.Logger().Debug("sdl2: color mod", "err", err)
		}
	}
	if !known || last.A != c.A {
		if err := tex.SetAlphaMod(c.A); err != nil {
			blit.Logger().Debug("sdl2: alpha mod", "err", err)
		}
	}
	b.mods[tex] = c
}

// DrawImageRegion copies a w×h region of img.
func (b *Backend) DrawImageRegion(img *blit.Image, srcX, srcY, dstX, dstY, w, h int, useColor bool) bool {
	return b.DrawRescaledImageSmooth(img, srcX, srcY, dstX, dstY, w, h, w, h, useColor, false)
}

// DrawRescaledImageSmooth copies a region of img stretched to
// desiredW×desiredH, followed by the smooth overlay passes.
func (b *Backend) DrawRescaledImageSmooth(img *blit.Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor, smooth bool) bool {
	if img.Empty() {
		return false
	}
	tex, ok := b.texture(img)
	if !ok {
		return false
	}
	ox, oy := b.Offset()
	src := blit.Rect{X: img.Bounds.X + srcX, Y: img.Bounds.Y + srcY, W: w, H: h}
	dst := blit.Rect{X: dstX + ox, Y: dstY + oy, W: desiredW, H: desiredH}

	mod := b.modulation(img, useColor)
	b.setMod(tex, mod)
	b.copy(tex, src, dst)
	if (w != desiredW || h != desiredH) && base.UseSmooth(w, h, desiredW, desiredH, smooth) {
		mod.A = uint8(base.SmoothAlpha * 255)
		b.setMod(tex, mod)
		for _, p := range base.SmoothPasses {
			b.copy(tex, src, blit.Rect{X: dst.X + p.DX, Y: dst.Y + p.DY, W: dst.W + p.DW, H: dst.H + p.DH})
		}
	}
	return true
}

// DrawPattern tiles img over the w×h area at (x, y).
func (b *Backend) DrawPattern(img *blit.Image, x, y, w, h int) {
	if img.Empty() || !b.Drawable() {
		return
	}
	tex, ok := b.texture(img)
	if !ok {
		return
	}
	ox, oy := b.Offset()
	x += ox
	y += oy
	b.setMod(tex, b.modulation(img, false))
	tile.Grid(w, h, img.Width(), img.Height(), func(px, py, tw, th int) {
		b.copy(tex, blit.Rect{X: img.Bounds.X, Y: img.Bounds.Y, W: tw, H: th}, blit.Rect{X: x + px, Y: y + py, W: tw, H: th})
	})
}

// DrawPatternCached draws immediately; the renderer batches on its own.
func (b *Backend) DrawPatternCached(img *blit.Image, x, y, w, h int) {
	b.DrawPattern(img, x, y, w, h)
}

// CompleteCache is a no-op.
func (b *Backend) CompleteCache() {}

// DrawRescaledPattern tiles a transient scaledW×scaledH copy of img.
func (b *Backend) DrawRescaledPattern(img *blit.Image, x, y, w, h, scaledW, scaledH int) {
	if img.Empty() || scaledW <= 0 || scaledH <= 0 || !b.Drawable() {
		return
	}
	scaled, err := b.Scale(img, scaledW, scaledH)
	if err != nil {
		blit.Logger().Debug("sdl2: cannot scale pattern", "err", err)
		return
	}
	defer scaled.Release()
	b.DrawPattern(scaled, x, y, w, h)
}

// Scale returns a w×h copy of img. Its texture is destroyed when the
// caller releases it.
func (b *Backend) Scale(img *blit.Image, w, h int) (*blit.Image, error) {
	if img.Empty() || w <= 0 || h <= 0 {
		return nil, ErrInvalidScale
	}
	if img.Pixels == nil {
		return nil, ErrNoPixels
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, img.Pixels, img.Bounds.Image(), draw.Src, nil)

	out := blit.NewImage(dst)
	out.Alpha = img.Alpha
	out.Format = img.Format
	b.transient++
	out.OnRelease(func() {
		b.textures.Delete(dst)
		b.transient--
	})
	return out, nil
}

// Transient returns the number of scaled copies not yet released.
func (b *Backend) Transient() int { return b.transient }

// DrawTile replays vert in device coordinates.
func (b *Backend) DrawTile(vert *blit.ImageVertexes) {
	if vert == nil || vert.Image.Empty() {
		return
	}
	tex, ok := b.texture(vert.Image)
	if !ok {
		return
	}
	b.setMod(tex, b.modulation(vert.Image, false))
	for _, r := range vert.Rects {
		b.copy(tex, r.Src, r.Dst)
	}
}

// UpdateScreen presents the frame.
func (b *Backend) UpdateScreen() {
	if b.r != nil {
		b.r.Present()
	}
}

// Screenshot reads back the current render target.
func (b *Backend) Screenshot() (*image.RGBA, error) {
	if b.r == nil {
		return nil, blit.ErrNoContext
	}
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	if err := b.r.ReadPixels(img); err != nil {
		return nil, err
	}
	return img, nil
}

// MaxTextureSize returns the renderer limit, 0 before SetVideoMode.
func (b *Backend) MaxTextureSize() int {
	if b.r == nil {
		return 0
	}
	return b.r.MaxTextureSize()
}

// Features reports no OpenGL capabilities.
func (b *Backend) Features() blit.Feature { return 0 }
