// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/blit"
)

// recorder is a GL that logs every call as text.
type recorder struct {
	calls   []string
	nextTex uint32

	version    string
	extensions string
	maxTexture int32
	// frame is copied into ReadPixels.
	frame []byte
}

func newRecorder() *recorder {
	return &recorder{version: "2.1 Mesa", maxTexture: 4096}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// reset forgets recorded calls.
func (r *recorder) reset() { r.calls = nil }

// count returns how many calls start with prefix.
func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// has reports whether call was recorded verbatim.
func (r *recorder) has(call string) bool {
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (r *recorder) Enable(c uint32)             { r.log("enable %#x", c) }
func (r *recorder) Disable(c uint32)            { r.log("disable %#x", c) }
func (r *recorder) EnableClientState(a uint32)  { r.log("enable client %#x", a) }
func (r *recorder) DisableClientState(a uint32) { r.log("disable client %#x", a) }
func (r *recorder) BlendFunc(s, d uint32)       { r.log("blend func") }
func (r *recorder) ShadeModel(m uint32)         { r.log("shade model") }
func (r *recorder) MatrixMode(m uint32)         { r.log("matrix mode %#x", m) }
func (r *recorder) LoadIdentity()               { r.log("identity") }
func (r *recorder) Ortho(l, ri, b, t, n, f float64) {
	r.log("ortho %v %v %v %v", l, ri, b, t)
}
func (r *recorder) PushMatrix()                 { r.log("push matrix") }
func (r *recorder) PopMatrix()                  { r.log("pop matrix") }
func (r *recorder) Translatef(x, y, z float32)  { r.log("translate %v,%v", x, y) }
func (r *recorder) Viewport(x, y, w, h int32)   { r.log("viewport %d,%d %dx%d", x, y, w, h) }
func (r *recorder) Scissor(x, y, w, h int32)    { r.log("scissor %d,%d %dx%d", x, y, w, h) }
func (r *recorder) BindTexture(_, tex uint32)   { r.log("bind %d", tex) }
func (r *recorder) DeleteTexture(tex uint32)    { r.log("delete %d", tex) }
func (r *recorder) Color4f(_, _, _, a float32)  { r.log("color alpha %v", a) }
func (r *recorder) Color4ub(cr, g, b, a uint8)  { r.log("color %d,%d,%d,%d", cr, g, b, a) }
func (r *recorder) Begin(m uint32)              { r.log("begin %#x", m) }
func (r *recorder) End()                        { r.log("end") }
func (r *recorder) TexCoord2f(s, t float32)     { r.log("texcoord %v,%v", s, t) }
func (r *recorder) Vertex2i(x, y int32)         { r.log("vertex %d,%d", x, y) }
func (r *recorder) Vertex2f(x, y float32)       { r.log("vertexf %v,%v", x, y) }
func (r *recorder) VertexPointer(v []int32)     { r.log("vertex pointer %v", v) }
func (r *recorder) TexCoordPointer(c []float32) { r.log("texcoord pointer %d", len(c)) }
func (r *recorder) DrawArrays(m uint32, first, count int32) {
	r.log("draw arrays %#x %d", m, count)
}
func (r *recorder) Flush()  { r.log("flush") }
func (r *recorder) Finish() { r.log("finish") }

func (r *recorder) GenTexture() uint32 {
	r.nextTex++
	r.log("gen %d", r.nextTex)
	return r.nextTex
}

func (r *recorder) TexImage2D(w, h int32, _ []byte, bgra bool) {
	r.log("upload %dx%d bgra=%v", w, h, bgra)
}

func (r *recorder) ReadPixels(_, _, _, _ int32, rgba []byte) {
	copy(rgba, r.frame)
}

func (r *recorder) GetString(name uint32) string {
	switch name {
	case glVersion:
		return r.version
	case glExtensions:
		return r.extensions
	}
	return "test"
}

func (r *recorder) GetInteger(uint32) int32 { return r.maxTexture }

// device is a Device backed by a recorder.
type device struct {
	gl     *recorder
	fail   error
	opened []blit.VideoMode
	swaps  int
	closed bool
	newCtx bool
}

var errOpen = errors.New("device: cannot open")

func newDevice() *device {
	return &device{gl: newRecorder()}
}

func (d *device) Open(m blit.VideoMode) (blit.VideoMode, error) {
	if d.fail != nil {
		return m, d.fail
	}
	if d.newCtx {
		d.gl = newRecorder()
	}
	d.opened = append(d.opened, m)
	return m, nil
}

func (d *device) GL() GL       { return d.gl }
func (d *device) SwapBuffers() { d.swaps++ }
func (d *device) Close() error { d.closed = true; return nil }
