// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

// DoubleRect pairs a source rectangle with the device-space destination it
// is drawn to.
type DoubleRect struct {
	Src, Dst Rect
}

// ImageVertexes is a deferred draw list for one source image. It is filled
// during a calc pass and replayed in insertion order by DrawTile.
type ImageVertexes struct {
	Image *Image
	Rects []DoubleRect
}

// NewImageVertexes creates an empty draw list bound to img.
func NewImageVertexes(img *Image) *ImageVertexes {
	return &ImageVertexes{Image: img}
}

// Append adds one quad to the list.
func (v *ImageVertexes) Append(src, dst Rect) {
	v.Rects = append(v.Rects, DoubleRect{Src: src, Dst: dst})
}

// Len returns the number of quads.
func (v *ImageVertexes) Len() int { return len(v.Rects) }

// Clear drops all quads but keeps the image binding.
func (v *ImageVertexes) Clear() {
	v.Rects = v.Rects[:0]
}

// ImageCollection groups consecutive draw lists by source image so that
// runs of quads sharing a texture are bound once.
type ImageCollection struct {
	draws   []*ImageVertexes
	current *Image
	vert    *ImageVertexes
}

// NewImageCollection creates an empty collection.
func NewImageCollection() *ImageCollection {
	return &ImageCollection{}
}

// Vertexes returns the list to append to for img. A new list is started
// whenever img differs from the image of the previous call.
func (c *ImageCollection) Vertexes(img *Image) *ImageVertexes {
	if c.vert != nil && c.current == img {
		return c.vert
	}
	v := NewImageVertexes(img)
	c.current = img
	c.vert = v
	c.draws = append(c.draws, v)
	return v
}

// Draws returns the lists in accumulation order.
func (c *ImageCollection) Draws() []*ImageVertexes {
	return c.draws
}

// Len returns the number of lists.
func (c *ImageCollection) Len() int { return len(c.draws) }

// Clear releases every list.
func (c *ImageCollection) Clear() {
	clear(c.draws)
	c.draws = c.draws[:0]
	c.current = nil
	c.vert = nil
}
