// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"errors"
	"image"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend/base"
	"github.com/gogpu/blit/internal/cache"
)

// ErrNoDevice is returned by SetVideoMode when the backend was built
// without a windowing device.
var ErrNoDevice = errors.New("opengl: no device")

// Option configures an OpenGL backend.
type Option func(*options)

type options struct {
	textureCache int
	batchSize    int
}

const (
	// MinBatchSize is the smallest accepted batch size.
	MinBatchSize = 256
	// DefaultBatchSize is used when no batch size is configured.
	DefaultBatchSize = 1024
)

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.batchSize == 0:
		o.batchSize = DefaultBatchSize
	case o.batchSize < MinBatchSize:
		o.batchSize = MinBatchSize
	}
	return o
}

// WithTextureCache sets how many uploaded textures are kept alive.
func WithTextureCache(n int) Option {
	return func(o *options) { o.textureCache = n }
}

// WithBatchSize sets the number of quads the normal backend submits per
// draw call. Values below MinBatchSize are raised to it.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// core is the state shared by the normal and safe backends.
type core struct {
	*base.Base

	dev Device
	gl  GL
	st  state

	// matrixClip is set when clip offsets are applied with glTranslate
	// rather than added to every vertex.
	matrixClip bool

	// flush runs before any draw that changes GL state; the normal
	// backend uses it to submit pending cached patterns.
	flush func()

	textures   *cache.Cache[*image.RGBA, uint32]
	maxTexture int
	features   blit.Feature
}

func (c *core) init(name string, mode blit.RenderMode, dev Device, impl base.Impl, o options) {
	c.dev = dev
	c.textures = cache.New[*image.RGBA, uint32](o.textureCache)
	c.textures.OnEvict(c.deleteTexture)
	c.Base = base.New(name, mode, impl)
}

func (c *core) deleteTexture(_ *image.RGBA, tex uint32) {
	if c.gl == nil {
		return
	}
	if c.st.lastTexture == tex {
		c.st.lastTexture = 0
	}
	c.gl.DeleteTexture(tex)
}

// Configure opens or reconfigures the window and queries the context.
func (c *core) Configure(m blit.VideoMode) (blit.VideoMode, error) {
	if c.dev == nil {
		return m, ErrNoDevice
	}
	got, err := c.dev.Open(m)
	if err != nil {
		return m, err
	}
	gl := c.dev.GL()
	if gl != c.gl {
		// A new context invalidates every texture name and cached state.
		c.textures.OnEvict(nil)
		c.textures.Clear()
		c.textures.OnEvict(c.deleteTexture)
		c.gl = gl
		c.st = newState(gl)
	}

	gl.Viewport(0, 0, int32(got.Width), int32(got.Height))
	c.maxTexture = int(gl.GetInteger(glMaxTextureSize))
	c.features = detectFeatures(gl.GetString(glVersion), gl.GetString(glExtensions))

	log := blit.Logger()
	log.Info("opengl context",
		"vendor", gl.GetString(glVendor),
		"renderer", gl.GetString(glRenderer),
		"version", gl.GetString(glVersion))
	log.Info("opengl texture size", "pixels", c.maxTexture)
	return got, nil
}

// BeginFrame resets matrices to a top-left origin pixel projection and
// disables everything a 2D compositor does not use.
func (c *core) BeginFrame() {
	gl := c.gl
	gl.MatrixMode(glTexture)
	gl.LoadIdentity()
	gl.MatrixMode(glProjection)
	gl.LoadIdentity()
	gl.Ortho(0, float64(c.Width()), float64(c.Height()), 0, -1, 1)
	gl.MatrixMode(glModelView)
	gl.LoadIdentity()

	gl.Enable(glScissorTest)
	for _, capability := range []uint32{glDither, glLighting, glDepthTest, glFog, glColorLogicOp, glColorMat, glStencilTest} {
		gl.Disable(capability)
	}
	gl.ShadeModel(glFlat)
	gl.BlendFunc(glSrcAlpha, glOneMinusSrcAlpha)
}

// Release deletes uploaded textures and closes the device.
func (c *core) Release() error {
	c.textures.Clear()
	if c.dev == nil {
		return nil
	}
	return c.dev.Close()
}

// SetColor sets the primitive color and records whether it needs
// blending.
func (c *core) SetColor(col blit.Color) {
	c.Base.SetColor(col)
	c.st.colorAlpha = col.A != 255
}

// scissor applies r, given top-left origin, to the bottom-left origin
// scissor box.
func (c *core) scissor(r blit.Rect) {
	c.gl.Scissor(int32(r.X), int32(c.Height()-r.Y-r.H), int32(r.W), int32(r.H))
}

// origin returns the offset added to vertices for the active region.
func (c *core) origin() (int, int) {
	if c.matrixClip {
		return 0, 0
	}
	return c.Offset()
}

// texture returns the texture name for img, uploading its pixels on
// first use. Images that already carry a texture name are used as is.
func (c *core) texture(img *blit.Image) (tex uint32, w, h int, ok bool) {
	w, h = img.TexWidth, img.TexHeight
	if t, isName := img.Handle.(uint32); isName {
		return t, w, h, w > 0 && h > 0
	}
	px := img.Pixels
	if px == nil {
		return 0, 0, 0, false
	}
	tex, err := c.textures.GetOrCreate(px, func() (uint32, error) {
		t := c.gl.GenTexture()
		c.st.bindTexture(t)
		c.gl.TexImage2D(int32(px.Rect.Dx()), int32(px.Rect.Dy()), packed(px), img.Format == gputypes.TextureFormatBGRA8Unorm)
		return t, nil
	})
	if err != nil {
		return 0, 0, 0, false
	}
	if w <= 0 || h <= 0 {
		w, h = px.Rect.Dx(), px.Rect.Dy()
	}
	return tex, w, h, true
}

// packed returns the pixels of px without row padding.
func packed(px *image.RGBA) []byte {
	w, h := px.Rect.Dx(), px.Rect.Dy()
	if px.Stride == w*4 {
		return px.Pix[:w*h*4]
	}
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := y * px.Stride
		out = append(out, px.Pix[row:row+w*4]...)
	}
	return out
}

// lookupTexture returns the texture name of img if it has one, without
// uploading.
func (c *core) lookupTexture(img *blit.Image) (uint32, bool) {
	if t, isName := img.Handle.(uint32); isName {
		return t, true
	}
	if img.Pixels == nil {
		return 0, false
	}
	return c.textures.Get(img.Pixels)
}

// bindImage prepares texturing for img and sets the modulation alpha.
func (c *core) bindImage(img *blit.Image, useColor bool) (tw, th int, ok bool) {
	tex, tw, th, ok := c.texture(img)
	if !ok {
		return 0, 0, false
	}
	if useColor {
		c.st.restoreColor(c.Color())
	} else {
		c.st.setColorAlpha(img.Alpha)
	}
	c.st.bindTexture(tex)
	c.st.setTexturingAndBlending(true)
	return tw, th, true
}

// UpdateScreen finishes rendering and swaps buffers.
func (c *core) UpdateScreen() {
	if c.gl == nil {
		return
	}
	c.gl.Flush()
	c.gl.Finish()
	c.dev.SwapBuffers()
}

// Screenshot reads back the frame buffer with rows top to bottom.
func (c *core) Screenshot() (*image.RGBA, error) {
	if c.gl == nil {
		return nil, blit.ErrNoContext
	}
	w, h := c.Width(), c.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c.gl.ReadPixels(0, 0, int32(w), int32(h), img.Pix)
	base.FlipRows(img)
	return img, nil
}

// MaxTextureSize returns GL_MAX_TEXTURE_SIZE of the current context.
func (c *core) MaxTextureSize() int { return c.maxTexture }

// Features returns the capabilities detected from the context.
func (c *core) Features() blit.Feature { return c.features }

// detectFeatures derives the capability bitmask from the version and
// extension strings.
func detectFeatures(version, extensions string) blit.Feature {
	var f blit.Feature
	major, _, _ := strings.Cut(version, ".")
	switch n, _ := strconv.Atoi(strings.TrimSpace(major)); {
	case n >= 4:
		f |= blit.FeatureOpenGL4
	case n == 3:
		f |= blit.FeatureOpenGL3
	case n == 2:
		f |= blit.FeatureOpenGL2
	case n == 1:
		f |= blit.FeatureOpenGL1
	}
	for _, ext := range strings.Fields(extensions) {
		switch ext {
		case "GL_ARB_sampler_objects":
			f |= blit.FeatureSampler
		case "GL_ARB_texture_compression", "GL_EXT_texture_compression_s3tc":
			f |= blit.FeatureCompression
		}
	}
	return f
}
