// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrBackendUnavailable is returned when a backend cannot be used on
	// this system, either because it was not compiled in or because its
	// native API refused to initialise.
	ErrBackendUnavailable = errors.New("blit: backend not available")

	// ErrNoContext is returned by operations that need a video mode before
	// SetVideoMode has succeeded.
	ErrNoContext = errors.New("blit: no video mode set")
)

// VideoModeError reports a failure to create or reconfigure the native
// window or context. At startup it is fatal; on resize or fullscreen
// toggle the previous mode is restored.
type VideoModeError struct {
	Mode    VideoMode
	Backend string
	Err     error
}

func (e *VideoModeError) Error() string {
	return fmt.Sprintf("blit: %s: cannot set video mode %s: %v", e.Backend, e.Mode, e.Err)
}

func (e *VideoModeError) Unwrap() error { return e.Err }

// BackendUnavailableError names the backend that could not be used.
type BackendUnavailableError struct {
	Mode RenderMode
	Err  error
}

func (e *BackendUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blit: backend %s not available: %v", e.Mode, e.Err)
	}
	return fmt.Sprintf("blit: backend %s not available", e.Mode)
}

// Is matches ErrBackendUnavailable.
func (e *BackendUnavailableError) Is(target error) bool {
	return target == ErrBackendUnavailable
}

func (e *BackendUnavailableError) Unwrap() error { return e.Err }
