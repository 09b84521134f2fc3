// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import "github.com/gogpu/blit"

// Keys read and written by the renderer and the backend probe.
const (
	KeyOpenGL            = "opengl"
	KeyScreenWidth       = "screenwidth"
	KeyScreenHeight      = "screenheight"
	KeyFullscreen        = "screen"
	KeyHWAccel           = "hwaccel"
	KeyVSync             = "vsync"
	KeyShowBackground    = "showBackground"
	KeyFPSLimit          = "fpslimit"
	KeyAltFPSLimit       = "altfpslimit"
	KeySafeMode          = "safemode"
	KeyTextureSize       = "textureSize"
	KeyUseTextureSampler = "useTextureSampler"
	KeyCompressTextures  = "compresstextures"
	KeyTestInfo          = "testInfo"
	KeyProbed            = "probed"
)

// RenderMode returns the configured backend, software when unset or
// unknown.
func (s *Store) RenderMode() blit.RenderMode {
	m := blit.RenderMode(s.Int(KeyOpenGL, int(blit.ModeSoftware)))
	if !m.Valid() {
		return blit.ModeSoftware
	}
	return m
}

// VideoMode builds the window request from the screen keys, falling back
// to blit.DefaultVideoMode.
func (s *Store) VideoMode() blit.VideoMode {
	m := blit.DefaultVideoMode()
	m.Width = s.Int(KeyScreenWidth, m.Width)
	m.Height = s.Int(KeyScreenHeight, m.Height)
	m.Fullscreen = s.Bool(KeyFullscreen, false)
	m.HWAccel = s.Bool(KeyHWAccel, false)
	m.VSync = s.Bool(KeyVSync, false)
	return m
}
