// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend maps render modes to backend implementations.
//
// Backends register themselves from init() functions, so a backend is only
// available when its package is linked in. The OpenGL and SDL2 backends
// additionally need the gl and sdl2 build tags for their native bindings:
//
//	import (
//		_ "github.com/gogpu/blit/backend/opengl"
//		_ "github.com/gogpu/blit/backend/software"
//	)
//
// # Selection
//
// The render mode is chosen once per installation by the probe package and
// persisted in the configuration. At startup the client opens it with
// Open, which falls back to the software backend when the preferred
// backend cannot create its window:
//
//	g, err := backend.Open(blit.ModeNormalOpenGL, blit.DefaultVideoMode())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer g.Close()
//
// # Available Backends
//
//   - ModeSoftware: CPU compositor over *image.RGBA (always available)
//   - ModeNormalOpenGL: batched vertex-array OpenGL (build tag gl)
//   - ModeSafeOpenGL: immediate-mode OpenGL (build tag gl)
//   - ModeSDL2: SDL2 texture renderer (build tag sdl2)
package backend
