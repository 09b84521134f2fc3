// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	"github.com/gogpu/blit/config"
)

// ErrUnsupported is returned by the child when the backend lacks the
// capability a probe measures.
var ErrUnsupported = errors.New("probe: capability not supported")

// OpenFunc creates and configures the backend for mode.
type OpenFunc func(mode blit.RenderMode, vm blit.VideoMode) (blit.Graphics, error)

// OpenRegistered opens mode through the backend registry without falling
// back to another backend.
func OpenRegistered(mode blit.RenderMode, vm blit.VideoMode) (blit.Graphics, error) {
	g, err := backend.New(mode)
	if err != nil {
		return nil, err
	}
	if err := g.SetVideoMode(vm); err != nil {
		_ = g.Close()
		return nil, err
	}
	return g, nil
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOpen replaces OpenRegistered.
func WithOpen(open OpenFunc) RunnerOption {
	return func(r *Runner) { r.open = open }
}

// WithFrames sets how many frames the availability and rescale probes
// draw.
func WithFrames(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.frames = n
		}
	}
}

// WithFPSWindow sets how long the FPS probe counts frames.
func WithFPSWindow(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.window = d
		}
	}
}

// Runner executes one probe in the child process.
type Runner struct {
	cfg        *config.Store
	resultPath string
	open       OpenFunc
	frames     int
	window     time.Duration
	now        func() time.Time
}

// NewRunner returns a runner reading the backend and window settings from
// cfg and reporting values to resultPath.
func NewRunner(cfg *config.Store, resultPath string, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:        cfg,
		resultPath: resultPath,
		open:       OpenRegistered,
		frames:     10,
		window:     3 * time.Second,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes tc. A nil error means the child exits with status 0.
func (r *Runner) Run(ctx context.Context, tc Testcase) error {
	if !tc.Valid() {
		return fmt.Errorf("probe: unknown testcase %d", int(tc))
	}
	if tc.Kind() == KindDetect {
		return WriteResult(r.resultPath, tc, int(r.detect()))
	}

	mode := r.cfg.RenderMode()
	log := blit.Logger().With("testcase", int(tc), "mode", mode)
	g, err := r.open(mode, r.cfg.VideoMode())
	if err != nil {
		log.Error("cannot open backend", "err", err)
		return err
	}
	defer g.Close()
	log.Info("probe started", "backend", g.Name())

	s := newScene(g)
	switch tc.Kind() {
	case KindAvailability:
		return r.draw(ctx, g, s.draw)

	case KindRescale:
		return r.draw(ctx, g, s.drawRescaled)

	case KindFPS:
		fps, err := r.fps(ctx, g, s)
		if err != nil {
			return err
		}
		log.Info("fps measured", "fps", fps)
		return WriteResult(r.resultPath, tc, fps)

	case KindBatch:
		b, ok := g.(blit.Batcher)
		if !ok {
			return ErrUnsupported
		}
		return WriteResult(r.resultPath, tc, b.BatchSize())

	case KindTexture:
		c, ok := g.(blit.Capabilities)
		if !ok {
			return ErrUnsupported
		}
		return WriteResult(r.resultPath, tc, powerOfTwoBelow(c.MaxTextureSize()))
	}
	return fmt.Errorf("probe: testcase %d has no runner", int(tc))
}

func (r *Runner) frame(g blit.Graphics, draw func()) {
	g.BeginDraw()
	draw()
	g.EndDraw()
	g.UpdateScreen()
}

// draw renders the configured number of frames.
func (r *Runner) draw(ctx context.Context, g blit.Graphics, draw func()) error {
	for i := 0; i < r.frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.frame(g, draw)
	}
	return nil
}

// fps counts the frames drawn during the measuring window.
func (r *Runner) fps(ctx context.Context, g blit.Graphics, s *scene) (int, error) {
	start := r.now()
	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		r.frame(g, s.draw)
		frames++
		if elapsed := r.now().Sub(start); elapsed >= r.window {
			return int(float64(frames) / elapsed.Seconds()), nil
		}
	}
}

// detect returns the features of the first OpenGL backend that opens, 0
// when none does.
func (r *Runner) detect() blit.Feature {
	vm := r.cfg.VideoMode()
	for _, mode := range []blit.RenderMode{blit.ModeNormalOpenGL, blit.ModeSafeOpenGL} {
		g, err := r.open(mode, vm)
		if err != nil {
			blit.Logger().Info("opengl backend unavailable", "mode", mode, "err", err)
			continue
		}
		var f blit.Feature
		if c, ok := g.(blit.Capabilities); ok {
			f = c.Features()
		}
		_ = g.Close()
		return f
	}
	return 0
}

// powerOfTwoBelow returns the largest power of two not above n, 0 for
// n < 1.
func powerOfTwoBelow(n int) int {
	if n < 1 {
		return 0
	}
	p := 1
	for p <= n/2 {
		p *= 2
	}
	return p
}

// scene is the test picture: a tiled background, a nine-slice frame and
// a few primitives.
type scene struct {
	g      blit.Graphics
	tile   *blit.Image
	frame  blit.ImageRect
	sprite *blit.Image
}

func newScene(g blit.Graphics) *scene {
	s := &scene{g: g}
	s.tile = blit.NewImage(checker(32, 8, color.RGBA{40, 80, 40, 255}, color.RGBA{60, 110, 60, 255}))

	// A 12x12 atlas cut into 4x4 cells.
	atlas := blit.NewImage(checker(12, 4, color.RGBA{200, 180, 120, 255}, color.RGBA{120, 100, 60, 255}))
	for i := range s.frame.Grid {
		s.frame.Grid[i] = atlas.SubImage(blit.Rect{X: i % 3 * 4, Y: i / 3 * 4, W: 4, H: 4})
	}
	s.sprite = blit.NewImage(checker(16, 2, color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 0}))
	return s
}

func checker(size, cell int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func (s *scene) draw() {
	g := s.g
	w, h := g.Width(), g.Height()
	g.DrawPattern(s.tile, 0, 0, w, h)

	if g.PushClipArea(blit.Rect{X: 50, Y: 50, W: w - 100, H: h - 100}) {
		g.DrawImageRect(0, 0, w-100, h-100, s.frame)
		for x := 20; x < w-120; x += 24 {
			g.DrawImage(s.sprite, x, 20)
		}
		g.SetColor(blit.Color{R: 255, G: 255, B: 0, A: 128})
		g.FillRectangle(blit.Rect{X: 20, Y: 60, W: 100, H: 40})
		g.SetColor(blit.White)
		g.DrawRectangle(blit.Rect{X: 20, Y: 60, W: 100, H: 40})
		g.DrawLine(20, 120, 220, 160)
	}
	g.PopClipArea()
}

func (s *scene) drawRescaled() {
	g := s.g
	g.DrawRescaledPattern(s.tile, 0, 0, g.Width(), g.Height(), 48, 48)
	g.DrawRescaledImage(s.sprite, 0, 0, 10, 10, 16, 16, 40, 40, false)
	if sc, ok := g.(blit.Scaler); ok {
		if img, err := sc.Scale(s.sprite, 24, 24); err == nil {
			g.DrawImage(img, 60, 10)
			img.Release()
		}
	}
}
