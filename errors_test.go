// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import (
	"errors"
	"strings"
	"testing"
)

func TestVideoModeErrorUnwrap(t *testing.T) {
	cause := errors.New("no display")
	err := error(&VideoModeError{Mode: DefaultVideoMode(), Backend: "software", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	var vme *VideoModeError
	if !errors.As(err, &vme) {
		t.Fatal("errors.As should find *VideoModeError")
	}
	if !strings.Contains(err.Error(), "800x600 windowed") {
		t.Errorf("Error() = %q, want mode description", err.Error())
	}
}

func TestBackendUnavailableErrorIs(t *testing.T) {
	err := error(&BackendUnavailableError{Mode: ModeSafeOpenGL})
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Error("BackendUnavailableError should match ErrBackendUnavailable")
	}
	if !strings.Contains(err.Error(), "safe OpenGL") {
		t.Errorf("Error() = %q, want mode name", err.Error())
	}
}

func TestRenderModeString(t *testing.T) {
	tests := []struct {
		mode RenderMode
		want string
	}{
		{ModeSoftware, "software"},
		{ModeNormalOpenGL, "normal OpenGL"},
		{ModeSafeOpenGL, "safe OpenGL"},
		{ModeSDL2, "SDL2 default"},
		{RenderMode(42), "RenderMode(42)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if RenderMode(7).Valid() || !ModeSDL2.Valid() {
		t.Error("Valid() wrong")
	}
}

func TestFeatureBits(t *testing.T) {
	f := FeatureOpenGL2 | FeatureSampler
	if !f.OpenGL() {
		t.Error("OpenGL() = false, want true")
	}
	if !f.Has(FeatureSampler) || f.Has(FeatureCompression) {
		t.Error("Has() wrong")
	}
	if FeatureCompression.OpenGL() {
		t.Error("compression alone must not enable OpenGL")
	}
}
