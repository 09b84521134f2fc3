// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blit is the 2D rendering core of a game client.
//
// It defines one drawing contract, [Graphics], and the value types that flow
// through it: [Color], [Rect], [Image], [ImageRect], [ImageVertexes] and
// [ImageCollection]. Concrete backends live in sub-packages:
//
//   - backend/software: pure Go, draws into an *image.RGBA (always available)
//   - backend/opengl: batched and immediate-mode OpenGL (build tag "gl")
//   - backend/sdl2: SDL2 texture renderer (build tag "sdl2")
//
// A backend is picked once per process through the backend registry. The
// probe package decides which one on first run by starting the client in a
// restricted test mode for every backend and measuring it.
//
// # Frames
//
// Drawing happens between BeginDraw and EndDraw:
//
//	g.BeginDraw()
//	g.DrawPattern(background, 0, 0, g.Width(), g.Height())
//	if g.PushClipArea(blit.NewRect(10, 10, 200, 100)) {
//		g.DrawImageRect(0, 0, 200, 100, frame)
//	}
//	g.PopClipArea()
//	g.EndDraw()
//	g.UpdateScreen()
//
// Coordinates passed to draw calls are local to the active clip region.
//
// # Deferred drawing
//
// Static layers can be computed once into an [ImageCollection] with the Calc
// methods and replayed every frame with DrawTileCollection, which keeps
// texture binds to one per run of equal images.
package blit
