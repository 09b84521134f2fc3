// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gl

package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
)

// WindowTitle is the title of windows created by the GLFW device.
var WindowTitle = "blit"

func init() {
	// GLFW and the GL context are bound to the main thread.
	runtime.LockOSThread()

	backend.Register(blit.ModeNormalOpenGL, NormalName, func() (blit.Graphics, error) {
		return NewNormal(NewGLFWDevice()), nil
	})
	backend.Register(blit.ModeSafeOpenGL, SafeName, func() (blit.Graphics, error) {
		return NewSafe(NewGLFWDevice()), nil
	})
}

// GLFWDevice opens a legacy (2.1 compatible) OpenGL context in a GLFW
// window.
type GLFWDevice struct {
	win    *glfw.Window
	driver *driver
	mode   blit.VideoMode
}

// NewGLFWDevice returns a device that creates its window on first Open.
func NewGLFWDevice() *GLFWDevice {
	return &GLFWDevice{}
}

// Open creates the window or adapts the existing one to m.
func (d *GLFWDevice) Open(m blit.VideoMode) (blit.VideoMode, error) {
	if d.win != nil {
		return d.reconfigure(m), nil
	}
	if err := glfw.Init(); err != nil {
		return m, fmt.Errorf("opengl: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, boolHint(m.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(!m.NoFrame))

	var monitor *glfw.Monitor
	if m.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(m.Width, m.Height, WindowTitle, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return m, fmt.Errorf("opengl: create window %s: %w", m, err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return m, fmt.Errorf("opengl: load functions: %w", err)
	}
	glfw.SwapInterval(swapInterval(m.VSync))

	d.win = win
	d.driver = &driver{}
	return d.actual(m), nil
}

func (d *GLFWDevice) reconfigure(m blit.VideoMode) blit.VideoMode {
	if m.Fullscreen != d.mode.Fullscreen {
		var monitor *glfw.Monitor
		refresh := glfw.DontCare
		if m.Fullscreen {
			monitor = glfw.GetPrimaryMonitor()
			refresh = monitor.GetVideoMode().RefreshRate
		}
		d.win.SetMonitor(monitor, 0, 0, m.Width, m.Height, refresh)
	} else {
		d.win.SetSize(m.Width, m.Height)
	}
	glfw.SwapInterval(swapInterval(m.VSync))
	return d.actual(m)
}

// actual records m with the frame buffer size the window really got.
func (d *GLFWDevice) actual(m blit.VideoMode) blit.VideoMode {
	m.Width, m.Height = d.win.GetFramebufferSize()
	d.mode = m
	return m
}

// GL returns the function table of the current context.
func (d *GLFWDevice) GL() GL {
	if d.driver == nil {
		return nil
	}
	return d.driver
}

// SwapBuffers presents the back buffer and processes window events.
func (d *GLFWDevice) SwapBuffers() {
	if d.win == nil {
		return
	}
	d.win.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW.
func (d *GLFWDevice) Close() error {
	if d.win == nil {
		return nil
	}
	d.win.Destroy()
	d.win = nil
	d.driver = nil
	glfw.Terminate()
	return nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func swapInterval(vsync bool) int {
	if vsync {
		return 1
	}
	return 0
}

// driver forwards GL to go-gl's 2.1 bindings.
type driver struct{}

func (driver) Enable(capability uint32)          { gl.Enable(capability) }
func (driver) Disable(capability uint32)         { gl.Disable(capability) }
func (driver) EnableClientState(array uint32)    { gl.EnableClientState(array) }
func (driver) DisableClientState(array uint32)   { gl.DisableClientState(array) }
func (driver) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }
func (driver) ShadeModel(mode uint32)            { gl.ShadeModel(mode) }

func (driver) MatrixMode(mode uint32) { gl.MatrixMode(mode) }
func (driver) LoadIdentity()          { gl.LoadIdentity() }
func (driver) Ortho(left, right, bottom, top, near, far float64) {
	gl.Ortho(left, right, bottom, top, near, far)
}
func (driver) PushMatrix()                                { gl.PushMatrix() }
func (driver) PopMatrix()                                 { gl.PopMatrix() }
func (driver) Translatef(x, y, z float32)                 { gl.Translatef(x, y, z) }
func (driver) Viewport(x, y, width, height int32)         { gl.Viewport(x, y, width, height) }
func (driver) Scissor(x, y, width, height int32)          { gl.Scissor(x, y, width, height) }
func (driver) BindTexture(target, texture uint32)         { gl.BindTexture(target, texture) }
func (driver) DeleteTexture(texture uint32)               { gl.DeleteTextures(1, &texture) }
func (driver) Color4f(r, g, b, a float32)                 { gl.Color4f(r, g, b, a) }
func (driver) Color4ub(r, g, b, a uint8)                  { gl.Color4ub(r, g, b, a) }
func (driver) Begin(mode uint32)                          { gl.Begin(mode) }
func (driver) End()                                       { gl.End() }
func (driver) TexCoord2f(s, t float32)                    { gl.TexCoord2f(s, t) }
func (driver) Vertex2i(x, y int32)                        { gl.Vertex2i(x, y) }
func (driver) Vertex2f(x, y float32)                      { gl.Vertex2f(x, y) }
func (driver) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }
func (driver) Flush()                                     { gl.Flush() }
func (driver) Finish()                                    { gl.Finish() }

func (driver) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

// TexImage2D uploads pixels to the bound texture with nearest filtering
// and clamped edges.
func (driver) TexImage2D(width, height int32, pixels []byte, bgra bool) {
	format := uint32(gl.RGBA)
	if bgra {
		format = gl.BGRA
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (driver) VertexPointer(vertices []int32) {
	gl.VertexPointer(2, gl.INT, 0, gl.Ptr(vertices))
}

func (driver) TexCoordPointer(coords []float32) {
	gl.TexCoordPointer(2, gl.FLOAT, 0, gl.Ptr(coords))
}

func (driver) ReadPixels(x, y, width, height int32, rgba []byte) {
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
}

func (driver) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (driver) GetInteger(name uint32) int32 {
	var v int32
	gl.GetIntegerv(name, &v)
	return v
}
