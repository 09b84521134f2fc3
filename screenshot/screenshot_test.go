// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package screenshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend/software"
)

func frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 100, 100})
	return img
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("shot.PNG")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = FormatFor("dir/shot.bmp")
	require.NoError(t, err)
	assert.Equal(t, BMP, f)
	_, err = FormatFor("shot.gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeMakesOpaque(t *testing.T) {
	src := frame()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	_, _, _, a := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint8(100), src.Pix[7], "source modified")
}

func TestSaveBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.bmp")
	require.NoError(t, Save(path, frame()))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestSaveUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.txt")
	assert.ErrorIs(t, Save(path, frame()), ErrUnknownFormat)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file created for unknown format")
}

func TestCapture(t *testing.T) {
	b := software.New()
	assert.ErrorIs(t, Capture(b, filepath.Join(t.TempDir(), "x.png")), blit.ErrNoContext)

	require.NoError(t, b.SetVideoMode(blit.DefaultVideoMode().WithSize(4, 4)))
	defer b.Close()
	b.BeginDraw()
	b.SetColor(blit.Green)
	b.FillRectangle(blit.Rect{W: 4, H: 4})
	b.EndDraw()

	path := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, Capture(b, path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	_, g, _, _ := img.At(3, 3).RGBA()
	assert.Equal(t, uint32(0xffff), g)
}
