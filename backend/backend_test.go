// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	"github.com/gogpu/blit/backend/software"
)

func TestRegistry_SoftwareRegistered(t *testing.T) {
	if !backend.IsRegistered(blit.ModeSoftware) {
		t.Fatal("software backend should be auto-registered")
	}
	if !slices.Contains(backend.Available(), blit.ModeSoftware) {
		t.Errorf("Available() = %v, want software included", backend.Available())
	}

	g, err := backend.New(blit.ModeSoftware)
	if err != nil {
		t.Fatalf("New(software) error = %v", err)
	}
	if g.Name() != software.Name {
		t.Errorf("Name() = %q, want %q", g.Name(), software.Name)
	}
}

func TestRegistry_Unregistered(t *testing.T) {
	const mode = blit.RenderMode(42)
	_, err := backend.New(mode)
	if !errors.Is(err, blit.ErrBackendUnavailable) {
		t.Errorf("New() error = %v, want ErrBackendUnavailable", err)
	}
	if !errors.Is(err, backend.ErrNoBackend) {
		t.Errorf("New() error = %v, want ErrNoBackend", err)
	}
}

func TestRegistry_FactoryError(t *testing.T) {
	const mode = blit.RenderMode(43)
	errDriver := errors.New("driver missing")
	backend.Register(mode, "broken", func() (blit.Graphics, error) { return nil, errDriver })
	defer backend.Unregister(mode)

	_, err := backend.New(mode)
	var bue *blit.BackendUnavailableError
	if !errors.As(err, &bue) || bue.Mode != mode {
		t.Fatalf("New() error = %v, want *BackendUnavailableError for mode %d", err, mode)
	}
	if !errors.Is(err, errDriver) {
		t.Errorf("New() error should wrap the factory error")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	const mode = blit.RenderMode(44)
	backend.Register(mode, "temp", func() (blit.Graphics, error) { return software.New(), nil })
	if !backend.IsRegistered(mode) {
		t.Fatal("temp backend should be registered")
	}
	e, ok := backend.Get(mode)
	if !ok || e.Name != "temp" || e.Mode != mode {
		t.Errorf("Get() = %+v, %v", e, ok)
	}
	backend.Unregister(mode)
	if backend.IsRegistered(mode) {
		t.Error("temp backend should be unregistered")
	}
}

func TestOpen_FallsBackToSoftware(t *testing.T) {
	const mode = blit.RenderMode(45)
	backend.Register(mode, "broken", func() (blit.Graphics, error) {
		return nil, errors.New("no context")
	})
	defer backend.Unregister(mode)

	g, err := backend.Open(mode, blit.DefaultVideoMode())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer g.Close()
	if g.Mode() != blit.ModeSoftware {
		t.Errorf("Mode() = %v, want software fallback", g.Mode())
	}
	if g.Width() != 800 || g.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", g.Width(), g.Height())
	}
}

func TestOpen_InvalidModeFailsEverywhere(t *testing.T) {
	_, err := backend.Open(blit.ModeSoftware, blit.VideoMode{})
	var vme *blit.VideoModeError
	if !errors.As(err, &vme) {
		t.Errorf("Open() error = %v, want *VideoModeError", err)
	}
}
