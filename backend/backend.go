// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/blit"
)

// ErrNoBackend is returned when no backend is registered for any of the
// requested modes.
var ErrNoBackend = errors.New("backend: no backend registered")

// Factory creates an unconfigured backend. Factories must not open
// windows or contexts; that happens in SetVideoMode.
type Factory func() (blit.Graphics, error)

// Entry describes a registered backend.
type Entry struct {
	// Mode is the render mode the backend implements.
	Mode blit.RenderMode

	// Name is the human readable backend name used in logs.
	Name string

	// Factory creates backend instances.
	Factory Factory
}
