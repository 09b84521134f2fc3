// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sdl2 implements a backend on the SDL2 2D renderer.
//
// Images become renderer textures on first use and are copied tile by
// tile; clipping uses the renderer clip rectangle. Native calls go through
// the Renderer and Device interfaces; building with the sdl2 tag adds an
// implementation on github.com/veandco/go-sdl2 and registers the backend.
package sdl2
