// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/blit"
)

var (
	registryMu sync.RWMutex
	backends   = make(map[blit.RenderMode]Entry)
)

// Register registers a backend factory for mode. It is typically called
// from init() in the backend package, guarded by the build tag that
// compiles the native binding in. Registering a mode twice replaces the
// previous entry.
func Register(mode blit.RenderMode, name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[mode] = Entry{Mode: mode, Name: name, Factory: factory}
}

// Unregister removes the backend for mode. This is useful for testing.
func Unregister(mode blit.RenderMode) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, mode)
}

// IsRegistered reports whether a backend is registered for mode.
func IsRegistered(mode blit.RenderMode) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[mode]
	return ok
}

// Available returns the registered modes in ascending order.
func Available() []blit.RenderMode {
	registryMu.RLock()
	defer registryMu.RUnlock()

	modes := make([]blit.RenderMode, 0, len(backends))
	for m := range backends {
		modes = append(modes, m)
	}
	slices.Sort(modes)
	return modes
}

// Get returns the registry entry for mode.
func Get(mode blit.RenderMode) (Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := backends[mode]
	return e, ok
}

// New creates the backend registered for mode. A missing registration or
// a failing factory is reported as *blit.BackendUnavailableError.
func New(mode blit.RenderMode) (blit.Graphics, error) {
	e, ok := Get(mode)
	if !ok {
		return nil, &blit.BackendUnavailableError{Mode: mode, Err: ErrNoBackend}
	}
	g, err := e.Factory()
	if err != nil {
		return nil, &blit.BackendUnavailableError{Mode: mode, Err: err}
	}
	return g, nil
}

// Open creates the backend for mode and sets vm on it. When that fails the
// software backend is tried next, so a broken driver degrades to CPU
// rendering instead of aborting startup. The returned error is non-nil
// only when every candidate failed.
func Open(mode blit.RenderMode, vm blit.VideoMode) (blit.Graphics, error) {
	candidates := []blit.RenderMode{mode}
	if mode != blit.ModeSoftware {
		candidates = append(candidates, blit.ModeSoftware)
	}

	var errs []error
	for _, m := range candidates {
		g, err := openMode(m, vm)
		if err == nil {
			if m != mode {
				blit.Logger().Warn("backend: falling back", "requested", mode, "using", m)
			}
			return g, nil
		}
		blit.Logger().Warn("backend: cannot open", "mode", m, "err", err)
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("backend: open %s: %w", mode, errors.Join(errs...))
}

func openMode(m blit.RenderMode, vm blit.VideoMode) (blit.Graphics, error) {
	g, err := New(m)
	if err != nil {
		return nil, err
	}
	if err := g.SetVideoMode(vm); err != nil {
		_ = g.Close()
		return nil, &blit.BackendUnavailableError{Mode: m, Err: err}
	}
	blit.Logger().Info("backend: opened", "backend", g.Name(), "mode", vm)
	return g, nil
}
