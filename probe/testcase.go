// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"strconv"

	"github.com/gogpu/blit"
)

// Testcase identifies one child probe. The number is passed to the child
// with -t and tags its result file.
type Testcase int

// Probes run by the driver.
const (
	TestSoftware Testcase = 1
	TestNormalGL Testcase = 2
	TestSafeGL   Testcase = 3

	TestRescaleSoftware Testcase = 5
	TestRescaleNormalGL Testcase = 6
	TestRescaleSafeGL   Testcase = 7

	TestFPSSoftware Testcase = 8
	TestFPSNormalGL Testcase = 9
	TestFPSSafeGL   Testcase = 10

	TestBatch Testcase = 11

	TestTextureNormalGL Testcase = 14
	TestTextureSafeGL   Testcase = 16

	TestDetect Testcase = 99
)

// Kind groups test cases by what the child does.
type Kind int

const (
	KindUnknown Kind = iota
	KindAvailability
	KindRescale
	KindFPS
	KindBatch
	KindTexture
	KindDetect
)

var testcases = map[Testcase]struct {
	kind Kind
	mode blit.RenderMode
	name string
}{
	TestSoftware:        {KindAvailability, blit.ModeSoftware, "software"},
	TestNormalGL:        {KindAvailability, blit.ModeNormalOpenGL, "normal opengl"},
	TestSafeGL:          {KindAvailability, blit.ModeSafeOpenGL, "safe opengl"},
	TestRescaleSoftware: {KindRescale, blit.ModeSoftware, "software rescale"},
	TestRescaleNormalGL: {KindRescale, blit.ModeNormalOpenGL, "normal opengl rescale"},
	TestRescaleSafeGL:   {KindRescale, blit.ModeSafeOpenGL, "safe opengl rescale"},
	TestFPSSoftware:     {KindFPS, blit.ModeSoftware, "software fps"},
	TestFPSNormalGL:     {KindFPS, blit.ModeNormalOpenGL, "normal opengl fps"},
	TestFPSSafeGL:       {KindFPS, blit.ModeSafeOpenGL, "safe opengl fps"},
	TestBatch:           {KindBatch, blit.ModeNormalOpenGL, "batch size"},
	TestTextureNormalGL: {KindTexture, blit.ModeNormalOpenGL, "normal opengl texture size"},
	TestTextureSafeGL:   {KindTexture, blit.ModeSafeOpenGL, "safe opengl texture size"},
	TestDetect:          {KindDetect, blit.ModeSoftware, "video detect"},
}

// Valid reports whether t is a known probe.
func (t Testcase) Valid() bool {
	_, ok := testcases[t]
	return ok
}

// Kind returns what the probe measures.
func (t Testcase) Kind() Kind { return testcases[t].kind }

// Mode returns the backend the probe runs on. The driver writes it to the
// test configuration before starting the child.
func (t Testcase) Mode() blit.RenderMode { return testcases[t].mode }

func (t Testcase) String() string {
	if tc, ok := testcases[t]; ok {
		return tc.name
	}
	return "testcase " + strconv.Itoa(int(t))
}

// Per-backend probe triples, indexed by render mode.
var (
	availabilityTests = [...]Testcase{TestSoftware, TestNormalGL, TestSafeGL}
	fpsTests          = [...]Testcase{TestFPSSoftware, TestFPSNormalGL, TestFPSSafeGL}
	rescaleTests      = [...]Testcase{TestRescaleSoftware, TestRescaleNormalGL, TestRescaleSafeGL}
)
