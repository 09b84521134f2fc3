// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides the LRU cache backends use to keep derived
// native resources alive: uploaded textures, byte-order converted bitmaps,
// and rescaled copies.
//
//	textures := cache.New[*image.RGBA, uint32](256)
//	textures.OnEvict(func(_ *image.RGBA, tex uint32) { deleteTexture(tex) })
//	tex, err := textures.GetOrCreate(pixels, upload)
//
// # Thread Safety
//
// A Cache belongs to one backend instance and is used from the rendering
// goroutine only. It is not safe for concurrent use.
package cache
