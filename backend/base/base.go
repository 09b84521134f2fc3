// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package base holds the state and geometry every backend shares: video
// mode bookkeeping, the frame bracket, the clip stack and its native sync,
// deferred tile lists, and nine-slice compositing.
//
// A backend embeds *Base and hands itself to New as the Impl. Base then
// implements the parts of blit.Graphics that do not touch the native API
// and calls back into the Impl for the rest.
package base

import (
	"errors"
	"fmt"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/internal/clip"
)

// ErrInvalidSize is wrapped by SetVideoMode for non-positive dimensions.
var ErrInvalidSize = errors.New("base: invalid video mode size")

// Native is the set of hooks a backend implements for its windowing and
// per-frame state.
type Native interface {
	// Configure creates or reconfigures the native window and context for
	// m and returns the mode actually obtained. It must leave the previous
	// configuration usable when it fails.
	Configure(m blit.VideoMode) (blit.VideoMode, error)

	// BeginFrame sets per-frame native state before the base region is
	// pushed.
	BeginFrame()

	// EndFrame runs after the base region has been popped.
	EndFrame()

	// Release destroys the native window and context.
	Release() error
}

// ClipSyncer keeps native clip state in step with the clip stack.
type ClipSyncer interface {
	// ClipPushed runs after r was pushed on top of prev. prev is the zero
	// Region for the base push.
	ClipPushed(prev, r clip.Region)

	// ClipPopped runs after popped was removed. top is the new top; ok is
	// false when the stack is now empty.
	ClipPopped(popped, top clip.Region, ok bool)
}

// Drawer is the native drawing surface Base composes higher level
// operations from.
type Drawer interface {
	DrawImageRegion(img *blit.Image, srcX, srcY, dstX, dstY, w, h int, useColor bool) bool
	DrawRescaledImageSmooth(img *blit.Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor, smooth bool) bool
	DrawPattern(img *blit.Image, x, y, w, h int)
	DrawTile(vert *blit.ImageVertexes)
	DrawLine(x1, y1, x2, y2 int)
}

// Impl is everything a backend hands to New.
type Impl interface {
	Native
	ClipSyncer
	Drawer
}

// Base implements the backend independent part of blit.Graphics.
type Base struct {
	name string
	mode blit.RenderMode
	impl Impl

	clips   *clip.Stack
	vm      blit.VideoMode
	hasMode bool
	color   blit.Color
	depth   int
}

// New returns a Base for the backend impl.
func New(name string, mode blit.RenderMode, impl Impl) *Base {
	return &Base{
		name:  name,
		mode:  mode,
		impl:  impl,
		clips: clip.NewStack(),
		color: blit.White,
	}
}

// Name returns the backend name.
func (b *Base) Name() string { return b.name }

// Mode returns the backend render mode.
func (b *Base) Mode() blit.RenderMode { return b.mode }

// VideoMode returns the active video mode.
func (b *Base) VideoMode() blit.VideoMode { return b.vm }

// HasVideoMode reports whether SetVideoMode has succeeded.
func (b *Base) HasVideoMode() bool { return b.hasMode }

// Width returns the drawable width.
func (b *Base) Width() int { return b.vm.Width }

// Height returns the drawable height.
func (b *Base) Height() int { return b.vm.Height }

// SetColor sets the primitive color.
func (b *Base) SetColor(c blit.Color) { b.color = c }

// Color returns the primitive color.
func (b *Base) Color() blit.Color { return b.color }

// SetVideoMode configures the native window. The stored mode only changes
// when the backend accepted the new one.
func (b *Base) SetVideoMode(m blit.VideoMode) error {
	if m.Width <= 0 || m.Height <= 0 {
		return &blit.VideoModeError{Mode: m, Backend: b.name, Err: ErrInvalidSize}
	}
	log := blit.Logger()
	log.Info("graphics backend", "name", b.name)
	log.Info("setting video mode", "mode", m, "bpp", m.BPP, "hwaccel", m.HWAccel)

	got, err := b.impl.Configure(m)
	if err != nil {
		return &blit.VideoModeError{Mode: m, Backend: b.name, Err: err}
	}
	b.vm = got
	b.hasMode = true
	return nil
}

// SetFullscreen toggles fullscreen, restoring the previous mode on failure.
func (b *Base) SetFullscreen(fullscreen bool) error {
	if !b.hasMode {
		return blit.ErrNoContext
	}
	if b.vm.Fullscreen == fullscreen {
		return nil
	}
	next := b.vm
	next.Fullscreen = fullscreen
	return b.reconfigure(next)
}

// ResizeScreen changes the drawable size, restoring the previous mode on
// failure. Equal sizes are a no-op.
func (b *Base) ResizeScreen(width, height int) error {
	if !b.hasMode {
		return blit.ErrNoContext
	}
	if b.vm.Width == width && b.vm.Height == height {
		return nil
	}
	return b.reconfigure(b.vm.WithSize(width, height))
}

// reconfigure ends the current frame, applies next and begins a new frame.
// When next fails the previous mode is reapplied; if that fails too the
// frame stays closed.
func (b *Base) reconfigure(next blit.VideoMode) error {
	prev := b.vm
	inFrame := b.depth > 0
	if inFrame {
		b.EndDraw()
	}

	err := b.SetVideoMode(next)
	if err != nil {
		blit.Logger().Warn("video mode change failed, restoring", "from", prev, "to", next, "err", err)
		if rerr := b.SetVideoMode(prev); rerr != nil {
			blit.Logger().Error("cannot restore video mode", "mode", prev, "err", rerr)
			return errors.Join(err, fmt.Errorf("restore %s: %w", prev, rerr))
		}
	}

	if inFrame {
		b.BeginDraw()
	}
	return err
}

// BeginDraw opens a frame and pushes the viewport as base clip region.
// Nested calls are counted and logged but push nothing.
func (b *Base) BeginDraw() {
	b.depth++
	if b.depth > 1 {
		blit.Logger().Warn("nested BeginDraw", "backend", b.name, "depth", b.depth)
		return
	}
	b.impl.BeginFrame()
	b.PushClipArea(blit.NewRect(0, 0, b.vm.Width, b.vm.Height))
}

// EndDraw closes the frame opened by the matching BeginDraw.
func (b *Base) EndDraw() {
	if b.depth == 0 {
		blit.Logger().Warn("EndDraw without BeginDraw", "backend", b.name)
		return
	}
	b.depth--
	if b.depth > 0 {
		return
	}
	if n := b.clips.Depth(); n != 1 {
		blit.Logger().Warn("unbalanced clip areas at end of frame", "backend", b.name, "depth", n)
	}
	for b.clips.Depth() > 0 {
		b.PopClipArea()
	}
	b.impl.EndFrame()
}

// FrameDepth returns the number of unmatched BeginDraw calls.
func (b *Base) FrameDepth() int { return b.depth }

// PushClipArea pushes r and syncs the native clip.
func (b *Base) PushClipArea(r blit.Rect) bool {
	prev, _ := b.clips.Top()
	reg, ok := b.clips.Push(r)
	b.impl.ClipPushed(prev, reg)
	return ok
}

// PopClipArea pops the top region and syncs the native clip. Popping an
// empty stack is a logged no-op.
func (b *Base) PopClipArea() {
	popped, ok := b.clips.Top()
	if !ok {
		blit.Logger().Warn("PopClipArea on empty clip stack", "backend", b.name)
		return
	}
	b.clips.Pop()
	top, ok := b.clips.Top()
	b.impl.ClipPopped(popped, top, ok)
}

// Clip returns the active clip region. ok is false outside a frame.
func (b *Base) Clip() (clip.Region, bool) {
	return b.clips.Top()
}

// ClipDepth returns the number of pushed clip regions.
func (b *Base) ClipDepth() int { return b.clips.Depth() }

// Offset returns the cumulative offset of the active clip region.
func (b *Base) Offset() (x, y int) {
	top, _ := b.clips.Top()
	return top.XOffset, top.YOffset
}

// Drawable reports whether the active clip region has a non-zero area.
func (b *Base) Drawable() bool {
	top, ok := b.clips.Top()
	return ok && !top.Empty()
}

// Close ends any open frame and releases the native context.
func (b *Base) Close() error {
	if b.depth > 0 {
		blit.Logger().Warn("Close inside a frame", "backend", b.name, "depth", b.depth)
		b.depth = 1
		b.EndDraw()
	}
	b.hasMode = false
	return b.impl.Release()
}

// DrawImage draws the whole image at (x, y) with its own alpha.
func (b *Base) DrawImage(img *blit.Image, x, y int) bool {
	if img.Empty() {
		return false
	}
	return b.impl.DrawImageRegion(img, 0, 0, x, y, img.Width(), img.Height(), false)
}

// DrawRescaledImage draws with the smooth overlay enabled.
func (b *Base) DrawRescaledImage(img *blit.Image, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH int, useColor bool) bool {
	return b.impl.DrawRescaledImageSmooth(img, srcX, srcY, dstX, dstY, w, h, desiredW, desiredH, useColor, true)
}

// DrawTileCollection replays every list of col in order.
func (b *Base) DrawTileCollection(col *blit.ImageCollection) {
	if col == nil {
		return
	}
	for _, vert := range col.Draws() {
		b.impl.DrawTile(vert)
	}
}

// DrawNet draws horizontal lines h apart and vertical lines w apart
// covering [x1, x2)×[y1, y2).
func (b *Base) DrawNet(x1, y1, x2, y2, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for y := y1; y < y2; y += h {
		b.impl.DrawLine(x1, y, x2, y)
	}
	for x := x1; x < x2; x += w {
		b.impl.DrawLine(x, y1, x, y2)
	}
}
