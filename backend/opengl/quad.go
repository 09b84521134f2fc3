// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package opengl

// quad is one textured rectangle: normalized texture coordinates and
// pixel vertices, corners in the order top-left, top-right, bottom-right,
// bottom-left.
type quad struct {
	tx1, ty1, tx2, ty2 float32
	x1, y1, x2, y2     int32
}

// makeQuad maps the w×h source region at (srcX, srcY) of a tw×th texture
// onto the dw×dh destination at (dstX, dstY).
func makeQuad(tw, th, srcX, srcY, w, h, dstX, dstY, dw, dh int) quad {
	fw, fh := float32(tw), float32(th)
	return quad{
		tx1: float32(srcX) / fw,
		ty1: float32(srcY) / fh,
		tx2: float32(srcX+w) / fw,
		ty2: float32(srcY+h) / fh,
		x1:  int32(dstX),
		y1:  int32(dstY),
		x2:  int32(dstX + dw),
		y2:  int32(dstY + dh),
	}
}

// emit sends q between Begin(glQuads) and End.
func (q quad) emit(gl GL) {
	gl.TexCoord2f(q.tx1, q.ty1)
	gl.Vertex2i(q.x1, q.y1)
	gl.TexCoord2f(q.tx2, q.ty1)
	gl.Vertex2i(q.x2, q.y1)
	gl.TexCoord2f(q.tx2, q.ty2)
	gl.Vertex2i(q.x2, q.y2)
	gl.TexCoord2f(q.tx1, q.ty2)
	gl.Vertex2i(q.x1, q.y2)
}

// appendTo adds q to vertex and texture coordinate arrays.
func (q quad) appendTo(verts []int32, coords []float32) ([]int32, []float32) {
	verts = append(verts, q.x1, q.y1, q.x2, q.y1, q.x2, q.y2, q.x1, q.y2)
	coords = append(coords, q.tx1, q.ty1, q.tx2, q.ty1, q.tx2, q.ty2, q.tx1, q.ty2)
	return verts, coords
}
