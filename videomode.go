// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "fmt"

// VideoMode describes the window a backend should create.
type VideoMode struct {
	Width, Height int
	BPP           int
	Fullscreen    bool
	HWAccel       bool
	Resizable     bool
	NoFrame       bool

	// VSync requests presentation synchronised with the display refresh.
	VSync bool
}

// DefaultVideoMode returns an 800x600 32-bit windowed mode.
func DefaultVideoMode() VideoMode {
	return VideoMode{Width: 800, Height: 600, BPP: 32}
}

// WithSize returns a copy of m with the given dimensions.
func (m VideoMode) WithSize(w, h int) VideoMode {
	m.Width = w
	m.Height = h
	return m
}

func (m VideoMode) String() string {
	kind := "windowed"
	if m.Fullscreen {
		kind = "fullscreen"
	}
	return fmt.Sprintf("%dx%d %s", m.Width, m.Height, kind)
}
