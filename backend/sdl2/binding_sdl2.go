// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build sdl2

package sdl2

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
)

// WindowTitle is the title of windows created by the SDL device.
var WindowTitle = "blit"

func init() {
	backend.Register(blit.ModeSDL2, Name, func() (blit.Graphics, error) {
		return New(NewSDLDevice()), nil
	})
}

// SDLDevice is a Device on an SDL window with an accelerated renderer.
type SDLDevice struct {
	win      *sdl.Window
	renderer *renderer
	mode     blit.VideoMode
}

// NewSDLDevice returns a device that creates its window on first Open.
func NewSDLDevice() *SDLDevice {
	return &SDLDevice{}
}

func windowFlags(m blit.VideoMode) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if m.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if m.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if m.NoFrame {
		flags |= sdl.WINDOW_BORDERLESS
	}
	return flags
}

// Open creates the window and renderer, or resizes the existing window.
func (d *SDLDevice) Open(m blit.VideoMode) (blit.VideoMode, error) {
	if d.win != nil {
		if m.Fullscreen != d.mode.Fullscreen {
			var flags uint32
			if m.Fullscreen {
				flags = sdl.WINDOW_FULLSCREEN
			}
			if err := d.win.SetFullscreen(flags); err != nil {
				return m, fmt.Errorf("sdl2: fullscreen %v: %w", m.Fullscreen, err)
			}
		}
		d.win.SetSize(int32(m.Width), int32(m.Height))
		return d.actual(m), nil
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return m, fmt.Errorf("sdl2: init: %w", err)
	}
	win, err := sdl.CreateWindow(WindowTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(m.Width), int32(m.Height), windowFlags(m))
	if err != nil {
		sdl.Quit()
		return m, fmt.Errorf("sdl2: create window %s: %w", m, err)
	}
	flags := uint32(sdl.RENDERER_SOFTWARE)
	if m.HWAccel {
		flags = sdl.RENDERER_ACCELERATED
	}
	if m.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	r, err := sdl.CreateRenderer(win, -1, flags)
	if err != nil {
		_ = win.Destroy()
		sdl.Quit()
		return m, fmt.Errorf("sdl2: create renderer: %w", err)
	}
	if err := r.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		blit.Logger().Debug("sdl2: blend mode", "err", err)
	}
	d.win = win
	d.renderer = &renderer{r: r}
	return d.actual(m), nil
}

func (d *SDLDevice) actual(m blit.VideoMode) blit.VideoMode {
	if w, h, err := d.renderer.r.GetOutputSize(); err == nil {
		m.Width, m.Height = int(w), int(h)
	}
	d.mode = m
	return m
}

// Renderer returns the window renderer, nil before Open.
func (d *SDLDevice) Renderer() Renderer {
	if d.renderer == nil {
		return nil
	}
	return d.renderer
}

// Close destroys the renderer and window and shuts SDL down.
func (d *SDLDevice) Close() error {
	if d.win == nil {
		return nil
	}
	err := d.renderer.r.Destroy()
	if werr := d.win.Destroy(); err == nil {
		err = werr
	}
	d.win, d.renderer = nil, nil
	sdl.Quit()
	return err
}

func sdlRect(r blit.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// renderer adapts *sdl.Renderer to Renderer.
type renderer struct {
	r *sdl.Renderer
}

type texture struct {
	t *sdl.Texture
}

func (t texture) SetColorMod(r, g, b uint8) error { return t.t.SetColorMod(r, g, b) }
func (t texture) SetAlphaMod(alpha uint8) error   { return t.t.SetAlphaMod(alpha) }
func (t texture) Destroy() error                  { return t.t.Destroy() }

func (r *renderer) CreateTexture(px *image.RGBA, bgra bool) (Texture, error) {
	format := uint32(sdl.PIXELFORMAT_ABGR8888)
	if bgra {
		format = sdl.PIXELFORMAT_ARGB8888
	}
	w, h := px.Rect.Dx(), px.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("sdl2: empty texture %dx%d", w, h)
	}
	t, err := r.r.CreateTexture(format, sdl.TEXTUREACCESS_STATIC, int32(w), int32(h))
	if err != nil {
		return nil, err
	}
	if err := t.Update(nil, unsafe.Pointer(&px.Pix[0]), px.Stride); err != nil {
		_ = t.Destroy()
		return nil, err
	}
	if err := t.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		_ = t.Destroy()
		return nil, err
	}
	return texture{t: t}, nil
}

func (r *renderer) Copy(tex Texture, src, dst blit.Rect) error {
	t, ok := tex.(texture)
	if !ok {
		return fmt.Errorf("sdl2: foreign texture %T", tex)
	}
	return r.r.Copy(t.t, sdlRect(src), sdlRect(dst))
}

func (r *renderer) SetClipRect(c blit.Rect) error { return r.r.SetClipRect(sdlRect(c)) }

func (r *renderer) SetDrawColor(c blit.Color) error {
	return r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *renderer) FillRect(rect blit.Rect) error { return r.r.FillRect(sdlRect(rect)) }

func (r *renderer) DrawLine(x1, y1, x2, y2 int) error {
	return r.r.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2))
}

func (r *renderer) DrawLines(points []image.Point) error {
	pts := make([]sdl.Point, len(points))
	for i, p := range points {
		pts[i] = sdl.Point{X: int32(p.X), Y: int32(p.Y)}
	}
	return r.r.DrawLines(pts)
}

func (r *renderer) DrawPoint(x, y int) error { return r.r.DrawPoint(int32(x), int32(y)) }

func (r *renderer) Present() { r.r.Present() }

func (r *renderer) ReadPixels(dst *image.RGBA) error {
	return r.r.ReadPixels(nil, sdl.PIXELFORMAT_ABGR8888, unsafe.Pointer(&dst.Pix[0]), dst.Stride)
}

func (r *renderer) MaxTextureSize() int {
	info, err := r.r.GetInfo()
	if err != nil {
		return 0
	}
	return int(info.MaxTextureWidth)
}
