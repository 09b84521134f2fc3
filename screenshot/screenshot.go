// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package screenshot encodes captured frames and writes them to disk.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/blit"
)

// Format is an output image format.
type Format int

const (
	PNG Format = iota
	BMP
)

// ErrUnknownFormat is returned for file extensions without an encoder.
var ErrUnknownFormat = errors.New("screenshot: unknown format")

// FormatFor returns the format matching the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes img to w. Frames are stored opaque, as the screen shows
// them.
func Encode(w io.Writer, img *image.RGBA, f Format) error {
	img = opaque(img)
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return ErrUnknownFormat
}

// Save encodes img into path, choosing the format by extension.
func Save(path string, img *image.RGBA) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot: %w", cerr)
		}
	}()
	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	blit.Logger().Info("screenshot saved", "path", path, "size", img.Rect.Size())
	return nil
}

// Capture grabs the current frame of g and saves it to path.
func Capture(g blit.Graphics, path string) error {
	img, err := g.Screenshot()
	if err != nil {
		return fmt.Errorf("screenshot: capture: %w", err)
	}
	return Save(path, img)
}

// opaque returns img with every alpha set to 255, copying only when
// needed.
func opaque(img *image.RGBA) *image.RGBA {
	if img.Opaque() {
		return img
	}
	out := image.NewRGBA(img.Rect)
	w := img.Rect.Dx() * 4
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		so, do := img.PixOffset(img.Rect.Min.X, y), out.PixOffset(img.Rect.Min.X, y)
		copy(out.Pix[do:do+w], img.Pix[so:so+w])
	}
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}
