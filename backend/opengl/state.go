// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import "github.com/gogpu/blit"

// state caches the last applied OpenGL state so redundant driver calls
// are skipped. Each backend instance owns one.
type state struct {
	gl GL

	lastTexture uint32
	texturing   bool
	blending    bool
	// colorAlpha is set when the primitive color is translucent and
	// untextured draws need blending.
	colorAlpha bool

	byteColor bool
	byteCache blit.Color
	alpha     float32
}

func newState(gl GL) state {
	return state{gl: gl, alpha: -1}
}

// bindTexture binds tex unless it is already bound.
func (s *state) bindTexture(tex uint32) {
	if s.lastTexture == tex {
		return
	}
	s.lastTexture = tex
	s.gl.BindTexture(glTexture2D, tex)
}

// setTexturingAndBlending switches between textured quads (texturing and
// blending on) and plain primitives (texturing off, blending only for a
// translucent color). Disabling texturing forgets the bound texture.
func (s *state) setTexturingAndBlending(enable bool) {
	if enable {
		if !s.texturing {
			s.gl.Enable(glTexture2D)
			s.texturing = true
		}
		if !s.blending {
			s.gl.Enable(glBlend)
			s.blending = true
		}
		return
	}

	s.lastTexture = 0
	switch {
	case s.blending && !s.colorAlpha:
		s.gl.Disable(glBlend)
		s.blending = false
	case !s.blending && s.colorAlpha:
		s.gl.Enable(glBlend)
		s.blending = true
	}
	if s.texturing {
		s.gl.Disable(glTexture2D)
		s.texturing = false
	}
}

// setColorAlpha sets a white modulation color with the given alpha.
func (s *state) setColorAlpha(alpha float32) {
	if !s.byteColor && s.alpha == alpha {
		return
	}
	s.gl.Color4f(1, 1, 1, alpha)
	s.byteColor = false
	s.alpha = alpha
}

// restoreColor applies the primitive color c.
func (s *state) restoreColor(c blit.Color) {
	if s.byteColor && s.byteCache == c {
		return
	}
	s.gl.Color4ub(c.R, c.G, c.B, c.A)
	s.byteColor = true
	s.byteCache = c
}
