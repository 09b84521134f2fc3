// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package opengl implements the two fixed-function OpenGL backends.
//
// Normal batches textured quads into client side vertex arrays and adds
// clip offsets to every vertex. Safe sticks to immediate mode and moves
// the origin with the modelview matrix, for drivers where vertex arrays
// misbehave. Both clip with the scissor box and skip redundant state
// changes.
//
// Native calls go through the GL and Device interfaces. Building with the
// gl tag adds a go-gl/GLFW implementation and registers both backends
// with package backend.
package opengl
