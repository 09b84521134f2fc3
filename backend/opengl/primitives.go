// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

import "github.com/gogpu/blit"

// Primitives are drawn in immediate mode by both backends. Lines and
// points are shifted to pixel centers so one pixel wide strokes stay
// sharp.

func (c *core) beginPrimitive() bool {
	if c.gl == nil || !c.Drawable() {
		return false
	}
	if c.flush != nil {
		c.flush()
	}
	c.st.setTexturingAndBlending(false)
	c.st.restoreColor(c.Color())
	return true
}

// DrawPoint sets one pixel.
func (c *core) DrawPoint(x, y int) {
	if !c.beginPrimitive() {
		return
	}
	ox, oy := c.origin()
	c.gl.Begin(glPoints)
	c.gl.Vertex2f(float32(x+ox)+0.5, float32(y+oy)+0.5)
	c.gl.End()
}

// DrawLine draws a line including both end points.
func (c *core) DrawLine(x1, y1, x2, y2 int) {
	if !c.beginPrimitive() {
		return
	}
	ox, oy := c.origin()
	fx1, fy1 := float32(x1+ox)+0.5, float32(y1+oy)+0.5
	fx2, fy2 := float32(x2+ox)+0.5, float32(y2+oy)+0.5

	c.gl.Begin(glLines)
	c.gl.Vertex2f(fx1, fy1)
	c.gl.Vertex2f(fx2, fy2)
	c.gl.End()

	// GL_LINES leaves out the last pixel.
	c.gl.Begin(glPoints)
	c.gl.Vertex2f(fx2, fy2)
	c.gl.End()
}

// DrawRectangle outlines r.
func (c *core) DrawRectangle(r blit.Rect) {
	c.rectangle(r, false)
}

// FillRectangle fills r.
func (c *core) FillRectangle(r blit.Rect) {
	c.rectangle(r, true)
}

func (c *core) rectangle(r blit.Rect, filled bool) {
	if r.Empty() || !c.beginPrimitive() {
		return
	}
	ox, oy := c.origin()
	r = r.Translate(ox, oy)

	var off float32
	mode := uint32(glQuads)
	if !filled {
		off = 0.5
		mode = glLineLoop
	}
	x1, y1 := float32(r.X)+off, float32(r.Y)+off
	x2, y2 := float32(r.Right())-off, float32(r.Bottom())-off

	c.gl.Begin(mode)
	c.gl.Vertex2f(x1, y1)
	c.gl.Vertex2f(x2, y1)
	c.gl.Vertex2f(x2, y2)
	c.gl.Vertex2f(x1, y2)
	c.gl.End()
}
