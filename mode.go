// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "fmt"

// RenderMode selects one concrete backend. The numeric values are persisted
// in the configuration under the "opengl" key and must stay stable.
type RenderMode int

const (
	// ModeSoftware draws into a CPU surface. Always available.
	ModeSoftware RenderMode = iota

	// ModeNormalOpenGL is the batched, vertex-array OpenGL backend.
	ModeNormalOpenGL

	// ModeSafeOpenGL is the immediate-mode OpenGL backend for weak drivers.
	ModeSafeOpenGL

	// ModeSDL2 is the SDL2 texture renderer backend.
	ModeSDL2
)

// Modes lists every render mode in probe order.
var Modes = []RenderMode{ModeSoftware, ModeNormalOpenGL, ModeSafeOpenGL, ModeSDL2}

// IsOpenGL reports whether the mode is one of the OpenGL backends.
func (m RenderMode) IsOpenGL() bool {
	return m == ModeNormalOpenGL || m == ModeSafeOpenGL
}

// Valid reports whether m names a known backend.
func (m RenderMode) Valid() bool {
	return m >= ModeSoftware && m <= ModeSDL2
}

func (m RenderMode) String() string {
	switch m {
	case ModeSoftware:
		return "software"
	case ModeNormalOpenGL:
		return "normal OpenGL"
	case ModeSafeOpenGL:
		return "safe OpenGL"
	case ModeSDL2:
		return "SDL2 default"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Feature is a capability bitmask reported by video detection. The low
// nibble records which OpenGL generation the driver supports; when it is
// zero OpenGL is considered unusable.
type Feature int

const (
	FeatureOpenGL1 Feature = 1 << iota
	FeatureOpenGL2
	FeatureOpenGL3
	FeatureOpenGL4
)

const (
	// FeatureOpenGLMask covers the OpenGL generation bits.
	FeatureOpenGLMask Feature = 15

	// FeatureSampler reports texture sampler object support.
	FeatureSampler Feature = 1024

	// FeatureCompression reports texture compression support.
	FeatureCompression Feature = 2048
)

// Has reports whether every bit of f2 is set in f.
func (f Feature) Has(f2 Feature) bool { return f&f2 == f2 }

// OpenGL reports whether any OpenGL generation bit is set.
func (f Feature) OpenGL() bool { return f&FeatureOpenGLMask != 0 }
