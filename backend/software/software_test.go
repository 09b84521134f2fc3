// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/blit"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
	none  = color.RGBA{}
)

func newFrame(t *testing.T, w, h int) *Backend {
	t.Helper()
	b := New()
	if err := b.SetVideoMode(blit.DefaultVideoMode().WithSize(w, h)); err != nil {
		t.Fatalf("SetVideoMode() error = %v", err)
	}
	b.BeginDraw()
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func solid(w, h int, c color.RGBA) *blit.Image {
	px := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(px.Pix); i += 4 {
		px.Pix[i], px.Pix[i+1], px.Pix[i+2], px.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return blit.NewImage(px)
}

// quad returns a 2x2 image: red, green / blue, white.
func quad() *blit.Image {
	px := image.NewRGBA(image.Rect(0, 0, 2, 2))
	px.SetRGBA(0, 0, red)
	px.SetRGBA(1, 0, green)
	px.SetRGBA(0, 1, blue)
	px.SetRGBA(1, 1, white)
	return blit.NewImage(px)
}

func pixel(b *Backend, x, y int) color.RGBA {
	return b.Surface().RGBAAt(x, y)
}

func TestName(t *testing.T) {
	b := New()
	if b.Name() != "software" {
		t.Errorf("Name() = %q, want %q", b.Name(), "software")
	}
	if b.Mode() != blit.ModeSoftware {
		t.Errorf("Mode() = %v, want %v", b.Mode(), blit.ModeSoftware)
	}
}

func TestSetVideoMode_AllocatesSurface(t *testing.T) {
	b := New()
	if b.Surface() != nil {
		t.Fatal("Surface() should be nil before SetVideoMode")
	}
	if err := b.SetVideoMode(blit.DefaultVideoMode().WithSize(64, 32)); err != nil {
		t.Fatalf("SetVideoMode() error = %v", err)
	}
	if got := b.Surface().Rect; got != image.Rect(0, 0, 64, 32) {
		t.Errorf("Surface().Rect = %v, want 64x32", got)
	}
}

func TestFillRectangle_ClipAndOffset(t *testing.T) {
	b := newFrame(t, 40, 40)
	b.SetColor(blit.Red)

	b.PushClipArea(blit.NewRect(10, 10, 10, 10))
	b.FillRectangle(blit.NewRect(-5, -5, 100, 100))
	b.PopClipArea()

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, none},
		{10, 10, red},
		{19, 19, red},
		{20, 20, none},
	}
	for _, tt := range tests {
		if got := pixel(b, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawImage_Alpha(t *testing.T) {
	b := newFrame(t, 8, 8)
	img := solid(2, 2, white)
	img.Alpha = 0.5

	if !b.DrawImage(img, 1, 1) {
		t.Fatal("DrawImage() = false")
	}
	got := pixel(b, 1, 1)
	if got.A < 120 || got.A > 135 {
		t.Errorf("alpha = %d, want about 128", got.A)
	}
	if b.DrawImage(nil, 0, 0) {
		t.Error("DrawImage(nil) = true, want false")
	}
}

func TestDrawImageRegion_UseColorTints(t *testing.T) {
	b := newFrame(t, 8, 8)
	img := solid(2, 2, white)
	b.SetColor(blit.Color{R: 128, G: 255, B: 0, A: 255})

	b.DrawImageRegion(img, 0, 0, 1, 1, 2, 2, true)
	if got, want := pixel(b, 1, 1), (color.RGBA{128, 255, 0, 255}); got != want {
		t.Errorf("pixel(1, 1) = %v, want %v", got, want)
	}
	b.DrawImageRegion(img, 0, 0, 4, 4, 2, 2, false)
	if got := pixel(b, 4, 4); got != white {
		t.Errorf("pixel(4, 4) = %v, want white without useColor", got)
	}
	b.DrawRescaledImageSmooth(img, 0, 0, 0, 4, 2, 2, 4, 4, true, false)
	if got, want := pixel(b, 1, 5), (color.RGBA{128, 255, 0, 255}); got != want {
		t.Errorf("rescaled pixel(1, 5) = %v, want %v", got, want)
	}
	if got := img.Pixels.RGBAAt(0, 0); got != white {
		t.Errorf("source pixel = %v, want unchanged white", got)
	}
}

func TestDrawImageRegion_SubImage(t *testing.T) {
	b := newFrame(t, 8, 8)
	sub := quad().SubImage(blit.NewRect(1, 1, 1, 1))
	b.DrawImage(sub, 3, 3)
	if got := pixel(b, 3, 3); got != white {
		t.Errorf("pixel(3, 3) = %v, want white", got)
	}
	if got := pixel(b, 4, 3); got != none {
		t.Errorf("pixel(4, 3) = %v, want untouched", got)
	}
}

func TestDrawImage_BGRASwizzle(t *testing.T) {
	b := newFrame(t, 4, 4)
	img := solid(1, 1, color.RGBA{0, 0, 255, 255}) // stored as B,G,R,A
	img.Format = gputypes.TextureFormatBGRA8Unorm

	b.DrawImage(img, 0, 0)
	b.DrawImage(img, 1, 0)
	if got := pixel(b, 0, 0); got != red {
		t.Errorf("pixel = %v, want red", got)
	}
	if n := b.converted.Len(); n != 1 {
		t.Errorf("converted cache holds %d images, want 1", n)
	}
}

func TestDrawPattern_Tiles(t *testing.T) {
	b := newFrame(t, 8, 8)
	b.DrawPattern(quad(), 1, 1, 5, 3)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{1, 1, red},
		{2, 1, green},
		{3, 1, red},
		{5, 1, red}, // partial last column
		{6, 1, none},
		{4, 2, white},
		{1, 3, red}, // partial last row
		{1, 4, none},
	}
	for _, tt := range tests {
		if got := pixel(b, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawPattern_ZeroSizedImage(t *testing.T) {
	b := newFrame(t, 4, 4)
	img := quad().SubImage(blit.NewRect(0, 0, 0, 2))
	b.DrawPattern(img, 0, 0, 4, 4)
	b.DrawPatternCached(img, 0, 0, 4, 4)
	b.CompleteCache()
	if got := pixel(b, 0, 0); got != none {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestDrawPatternCached_FlushedByCompleteCache(t *testing.T) {
	b := newFrame(t, 8, 8)
	b.DrawPatternCached(quad(), 2, 2, 2, 2)
	if got := pixel(b, 2, 2); got != none {
		t.Fatalf("pattern drawn before CompleteCache")
	}
	b.CompleteCache()
	if got := pixel(b, 2, 2); got != red {
		t.Errorf("pixel(2, 2) = %v, want red", got)
	}
}

func TestDrawPatternCached_FlushedByEndDraw(t *testing.T) {
	b := newFrame(t, 8, 8)
	b.DrawPatternCached(solid(2, 2, red), 0, 0, 4, 4)
	b.EndDraw()
	if got := pixel(b, 1, 1); got != red {
		t.Errorf("pixel(1, 1) = %v, want red", got)
	}
	if got := pixel(b, 3, 3); got != red {
		t.Errorf("pixel(3, 3) = %v, want red", got)
	}
}

func TestDrawPatternCached_KeepsQueuedClip(t *testing.T) {
	tests := []struct {
		name  string
		after func(b *Backend)
	}{
		{"pop then complete", func(b *Backend) { b.PopClipArea(); b.CompleteCache() }},
		{"nested push", func(b *Backend) { b.PushClipArea(blit.NewRect(-2, -2, 8, 8)); b.CompleteCache() }},
		{"end draw", func(b *Backend) { b.PopClipArea(); b.EndDraw() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFrame(t, 8, 8)
			b.PushClipArea(blit.NewRect(2, 2, 2, 2))
			b.DrawPatternCached(solid(2, 2, red), 0, 0, 8, 8)
			tt.after(b)
			if got := pixel(b, 3, 3); got != red {
				t.Errorf("pixel(3, 3) = %v, want red", got)
			}
			for _, p := range []image.Point{{1, 1}, {4, 4}, {5, 5}} {
				if got := pixel(b, p.X, p.Y); got != none {
					t.Errorf("pixel(%d, %d) = %v, want untouched outside the clip", p.X, p.Y, got)
				}
			}
		})
	}
}

func TestDrawRescaledPattern_ReleasesCopy(t *testing.T) {
	b := newFrame(t, 16, 16)
	b.DrawRescaledPattern(solid(2, 2, red), 0, 0, 10, 10, 4, 4)
	if got := pixel(b, 9, 9); got != red {
		t.Errorf("pixel(9, 9) = %v, want red", got)
	}
	if b.Transient() != 0 {
		t.Errorf("Transient() = %d, want 0", b.Transient())
	}
}

func TestScale(t *testing.T) {
	b := New()
	img := solid(2, 2, blue)
	img.Alpha = 0.75

	scaled, err := b.Scale(img, 6, 4)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if scaled.Width() != 6 || scaled.Height() != 4 || scaled.Alpha != 0.75 {
		t.Errorf("Scale() = %dx%d alpha %v", scaled.Width(), scaled.Height(), scaled.Alpha)
	}
	if b.Transient() != 1 {
		t.Errorf("Transient() = %d, want 1", b.Transient())
	}
	scaled.Release()
	scaled.Release()
	if b.Transient() != 0 {
		t.Errorf("Transient() = %d after Release, want 0", b.Transient())
	}

	if _, err := b.Scale(img, 0, 4); err == nil {
		t.Error("Scale() with zero width should fail")
	}
}

func TestDrawRescaledImage_EqualSizeIsPlainDraw(t *testing.T) {
	b := newFrame(t, 8, 8)
	b.DrawRescaledImage(quad(), 0, 0, 0, 0, 2, 2, 2, 2, false)
	if got := pixel(b, 1, 1); got != white {
		t.Errorf("pixel(1, 1) = %v, want white", got)
	}
}

func TestDrawRescaledImage_Upscale(t *testing.T) {
	b := newFrame(t, 16, 16)
	b.DrawRescaledImageSmooth(solid(2, 2, green), 0, 0, 4, 4, 2, 2, 8, 8, false, false)
	if got := pixel(b, 7, 7); got != green {
		t.Errorf("pixel(7, 7) = %v, want green", got)
	}
	if got := pixel(b, 12, 12); got != none {
		t.Errorf("pixel(12, 12) = %v, want untouched", got)
	}
}

func TestCalcAndDrawTile_MatchesDrawPattern(t *testing.T) {
	direct := newFrame(t, 12, 12)
	direct.PushClipArea(blit.NewRect(1, 2, 10, 10))
	direct.DrawPattern(quad(), 0, 0, 7, 5)
	direct.PopClipArea()

	batched := newFrame(t, 12, 12)
	img := quad()
	vert := blit.NewImageVertexes(img)
	batched.PushClipArea(blit.NewRect(1, 2, 10, 10))
	batched.CalcPattern(vert, img, 0, 0, 7, 5)
	batched.PopClipArea()
	batched.DrawTile(vert)

	want, got := direct.Surface(), batched.Surface()
	for i := range want.Pix {
		if want.Pix[i] != got.Pix[i] {
			t.Fatalf("surfaces differ at byte %d", i)
		}
	}
}

func TestDrawImageRect(t *testing.T) {
	b := newFrame(t, 20, 20)
	var r blit.ImageRect
	for i := range r.Grid {
		r.Grid[i] = solid(2, 2, blue)
	}
	r.Grid[blit.TopLeft] = solid(2, 2, red)
	r.Grid[blit.Center] = solid(2, 2, green)

	b.DrawImageRect(2, 2, 10, 10, r)
	if got := pixel(b, 2, 2); got != red {
		t.Errorf("top left = %v, want red", got)
	}
	if got := pixel(b, 6, 6); got != green {
		t.Errorf("center = %v, want green", got)
	}
	if got := pixel(b, 6, 2); got != blue {
		t.Errorf("top edge = %v, want blue", got)
	}
}

func TestDrawLine(t *testing.T) {
	b := newFrame(t, 10, 10)
	b.SetColor(blit.White)
	b.DrawLine(1, 1, 5, 5)

	for i := 1; i <= 5; i++ {
		if got := pixel(b, i, i); got != white {
			t.Errorf("pixel(%d, %d) = %v, want white", i, i, got)
		}
	}
	if got := pixel(b, 6, 6); got != none {
		t.Errorf("pixel(6, 6) = %v, want untouched", got)
	}
}

func TestDrawPoint_OutsideClip(t *testing.T) {
	b := newFrame(t, 10, 10)
	b.SetColor(blit.White)
	b.PushClipArea(blit.NewRect(2, 2, 2, 2))
	b.DrawPoint(5, 5)
	b.DrawPoint(1, 1)
	b.PopClipArea()

	if got := pixel(b, 7, 7); got != none {
		t.Errorf("point outside clip drawn")
	}
	if got := pixel(b, 3, 3); got != white {
		t.Errorf("pixel(3, 3) = %v, want white", got)
	}
}

func TestDrawRectangle_Outline(t *testing.T) {
	b := newFrame(t, 10, 10)
	b.SetColor(blit.White)
	b.DrawRectangle(blit.NewRect(1, 1, 5, 4))

	for _, p := range [][2]int{{1, 1}, {5, 1}, {1, 4}, {5, 4}, {3, 1}, {1, 2}} {
		if got := pixel(b, p[0], p[1]); got != white {
			t.Errorf("pixel%v = %v, want white", p, got)
		}
	}
	if got := pixel(b, 3, 2); got != none {
		t.Errorf("interior pixel drawn")
	}
}

func TestScreenshot(t *testing.T) {
	b := New()
	if _, err := b.Screenshot(); err == nil {
		t.Error("Screenshot() before SetVideoMode should fail")
	}

	b = newFrame(t, 4, 4)
	b.SetColor(blit.Red)
	b.FillRectangle(blit.NewRect(0, 0, 4, 1))
	shot, err := b.Screenshot()
	if err != nil {
		t.Fatalf("Screenshot() error = %v", err)
	}
	if shot.RGBAAt(0, 0) != red || shot.RGBAAt(0, 3) != none {
		t.Error("Screenshot() rows are not top to bottom")
	}
	shot.SetRGBA(0, 0, blue)
	if pixel(b, 0, 0) != red {
		t.Error("Screenshot() shares memory with the surface")
	}
}

type recordingPresenter struct{ frames int }

func (p *recordingPresenter) Present(*image.RGBA) error {
	p.frames++
	return nil
}

func TestUpdateScreen_Presents(t *testing.T) {
	p := &recordingPresenter{}
	b := New(WithPresenter(p), WithMaxTextureSize(2048))
	if err := b.SetVideoMode(blit.DefaultVideoMode()); err != nil {
		t.Fatal(err)
	}
	b.UpdateScreen()
	if p.frames != 1 {
		t.Errorf("frames = %d, want 1", p.frames)
	}
	if b.MaxTextureSize() != 2048 {
		t.Errorf("MaxTextureSize() = %d, want 2048", b.MaxTextureSize())
	}
}
