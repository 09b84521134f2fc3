// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import "github.com/gogpu/blit"

// OpenGL enums used by the backends, duplicated so untagged builds need
// no cgo.
const (
	glPoints    = 0x0000
	glLines     = 0x0001
	glLineLoop  = 0x0002
	glQuads     = 0x0007
	glTexture2D = 0x0DE1

	glBlend        = 0x0BE2
	glScissorTest  = 0x0C11
	glDither       = 0x0BD0
	glLighting     = 0x0B50
	glDepthTest    = 0x0B71
	glFog          = 0x0B60
	glColorLogicOp = 0x0BF2
	glColorMat     = 0x0B57
	glStencilTest  = 0x0B90

	glFlat             = 0x1D00
	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303

	glModelView  = 0x1700
	glProjection = 0x1701
	glTexture    = 0x1702

	glVertexArray   = 0x8074
	glTexCoordArray = 0x8078

	glVendor     = 0x1F00
	glRenderer   = 0x1F01
	glVersion    = 0x1F02
	glExtensions = 0x1F03

	glMaxTextureSize = 0x0D33
)

// GL is the subset of the fixed-function OpenGL 1.x/2.1 API the backends
// use. Names follow the gl* entry points without the prefix; vertex
// pointers take Go slices instead of raw pointers.
type GL interface {
	Enable(capability uint32)
	Disable(capability uint32)
	EnableClientState(array uint32)
	DisableClientState(array uint32)
	BlendFunc(sfactor, dfactor uint32)
	ShadeModel(mode uint32)

	MatrixMode(mode uint32)
	LoadIdentity()
	Ortho(left, right, bottom, top, near, far float64)
	PushMatrix()
	PopMatrix()
	Translatef(x, y, z float32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)

	BindTexture(target, texture uint32)
	GenTexture() uint32
	DeleteTexture(texture uint32)
	TexImage2D(width, height int32, pixels []byte, bgra bool)

	Color4f(r, g, b, a float32)
	Color4ub(r, g, b, a uint8)
	Begin(mode uint32)
	End()
	TexCoord2f(s, t float32)
	Vertex2i(x, y int32)
	Vertex2f(x, y float32)

	VertexPointer(vertices []int32)
	TexCoordPointer(coords []float32)
	DrawArrays(mode uint32, first, count int32)

	ReadPixels(x, y, width, height int32, rgba []byte)
	Flush()
	Finish()

	GetString(name uint32) string
	GetInteger(name uint32) int32
}

// Device is the windowing collaborator: it owns the window and the
// OpenGL context bound to it.
type Device interface {
	// Open creates the window or reconfigures it for m and returns the
	// framebuffer size actually obtained.
	Open(m blit.VideoMode) (blit.VideoMode, error)

	// GL returns the entry points of the current context.
	GL() GL

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Close destroys the window and context.
	Close() error
}
