// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/config"
)

const (
	// DefaultTimeout bounds each child probe.
	DefaultTimeout = 30 * time.Second

	// MinBatchSize is the batch size assumed when the batch probe reports
	// less or fails.
	MinBatchSize = 256

	// MinTextureSize is the texture size assumed when the probes report
	// less or fail.
	MinTextureSize = 1024
)

// BackendResult is what the driver learned about one backend.
type BackendResult struct {
	// Available is set when the availability and FPS probes succeeded
	// and the backend drew at least one frame per second.
	Available bool
	// Code is the exit code of the availability probe.
	Code int
	FPS  int
	// Rescale is the exit code of the rescale probe, -1 when it did not
	// run.
	Rescale int
}

// Result is the outcome of a probe run.
type Result struct {
	// Backends is indexed by render mode: software, normal and safe
	// OpenGL.
	Backends [3]BackendResult

	DetectMode  blit.Feature
	BatchSize   int
	Winner      blit.RenderMode
	TextureSize int
	Info        string
}

// Option configures a Driver.
type Option func(*Driver)

// WithExecutor replaces the child process runner.
func WithExecutor(e Executor) Option {
	return func(d *Driver) { d.exec = e }
}

// WithTimeout sets the per-probe timeout.
func WithTimeout(t time.Duration) Option {
	return func(d *Driver) {
		if t > 0 {
			d.timeout = t
		}
	}
}

// Driver runs the probe sequence and stores the chosen settings.
type Driver struct {
	main       *config.Store
	test       *config.Store
	resultPath string
	exec       Executor
	timeout    time.Duration
}

// NewDriver returns a driver that persists into main, hands settings to
// children through test and reads their results from resultPath.
func NewDriver(main, test *config.Store, resultPath string, opts ...Option) *Driver {
	d := &Driver{
		main:       main,
		test:       test,
		resultPath: resultPath,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Needed reports whether no probe run has been stored yet.
func (d *Driver) Needed() bool {
	return !d.main.Bool(config.KeyProbed, false)
}

// Reset forgets the stored probe run so the next start probes again.
func (d *Driver) Reset() error {
	d.main.Delete(config.KeyProbed)
	return d.main.Write()
}

// SelectWinner picks the fastest backend. Software wins unless an OpenGL
// backend is strictly faster; normal OpenGL is compared before safe.
func SelectWinner(softFPS, normalFPS, safeFPS int) blit.RenderMode {
	winner, best := blit.ModeSoftware, softFPS
	if best < normalFPS {
		winner, best = blit.ModeNormalOpenGL, normalFPS
	}
	if best < safeFPS {
		winner = blit.ModeSafeOpenGL
	}
	return winner
}

// Probe runs tc once in a child configured for tc's backend.
func (d *Driver) Probe(ctx context.Context, tc Testcase) error {
	d.test.Set(config.KeyOpenGL, tc.Mode())
	if err := d.test.Write(); err != nil {
		return &ProbeError{Testcase: tc, Code: -1, Err: err}
	}
	if d.exec == nil {
		return &ProbeError{Testcase: tc, Code: -1, Err: errors.New("no executor")}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	code, err := d.exec.Run(ctx, tc)
	blit.Logger().Info("probe finished", "testcase", int(tc), "name", tc.String(), "code", code, "err", err)
	switch {
	case err != nil:
		return &ProbeError{Testcase: tc, Code: -1, Err: err}
	case code != 0:
		return &ProbeError{Testcase: tc, Code: code}
	}
	return nil
}

// invoke runs tc and returns its exit code, -1 when it did not exit.
func (d *Driver) invoke(ctx context.Context, tc Testcase) int {
	err := d.Probe(ctx, tc)
	if err == nil {
		return 0
	}
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return -1
}

// value reads the result of tc, 0 when missing.
func (d *Driver) value(tc Testcase) int {
	v, err := ReadResult(d.resultPath, tc, 0)
	if err != nil {
		blit.Logger().Warn("probe result unusable", "testcase", int(tc), "err", err)
	}
	blit.Logger().Debug("probe value", "testcase", int(tc), "value", v)
	return v
}

// initTestConfig writes the conservative settings children start with.
func (d *Driver) initTestConfig() {
	d.test.Set(config.KeyHWAccel, false)
	d.test.Set(config.KeyFullscreen, false)
	d.test.Set(config.KeyFPSLimit, 0)
	d.test.Set(config.KeyScreenWidth, 800)
	d.test.Set(config.KeyScreenHeight, 600)
}

// Run probes every backend, selects the winner and writes the settings
// to the main store. Failing probes only disqualify their backend; Run
// fails when ctx is done or the main store cannot be written.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	d.initTestConfig()
	res := &Result{BatchSize: MinBatchSize, TextureSize: MinTextureSize}
	var info strings.Builder

	if d.invoke(ctx, TestDetect) == 0 {
		res.DetectMode = blit.Feature(d.value(TestDetect))
	}

	for i, tc := range availabilityTests {
		res.Backends[i] = BackendResult{Code: d.invoke(ctx, tc), Rescale: -1}
	}
	fmt.Fprintf(&info, "%d,%d,%d.", res.Backends[0].Code, res.Backends[1].Code, res.Backends[2].Code)

	for i := range res.Backends {
		b := &res.Backends[i]
		if b.Code == 0 {
			d.measure(ctx, i, b, &info)
		}
		info.WriteString(".")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	soft, normal, safe := res.Backends[0], res.Backends[1], res.Backends[2]
	res.Winner = SelectWinner(soft.FPS, normal.FPS, safe.FPS)

	switch res.Winner {
	case blit.ModeNormalOpenGL:
		if d.invoke(ctx, TestBatch) == 0 {
			res.BatchSize = d.value(TestBatch)
		}
		res.BatchSize = max(res.BatchSize, MinBatchSize)

		tex14, tex16 := MinTextureSize, MinTextureSize
		if d.invoke(ctx, TestTextureNormalGL) == 0 {
			tex14 = d.value(TestTextureNormalGL)
		}
		if d.invoke(ctx, TestTextureSafeGL) == 0 {
			tex16 = d.value(TestTextureSafeGL)
		}
		fmt.Fprintf(&info, ",%d,%d,-", tex14, tex16)
		res.TextureSize = max(min(tex14, tex16), MinTextureSize)

	case blit.ModeSafeOpenGL:
		tex16 := MinTextureSize
		if d.invoke(ctx, TestTextureSafeGL) == 0 {
			tex16 = d.value(TestTextureSafeGL)
		}
		tex14 := tex16
		if normal.Code != -1 && d.invoke(ctx, TestTextureNormalGL) == 0 {
			tex14 = d.value(TestTextureNormalGL)
		}
		fmt.Fprintf(&info, ",%d,%d,-", tex14, tex16)
		res.TextureSize = max(min(tex14, tex16), MinTextureSize)
	}

	if res.DetectMode&blit.FeatureOpenGLMask == 0 {
		res.Winner = blit.ModeSoftware
	}
	res.Info = info.String()

	if err := d.persist(res); err != nil {
		return res, err
	}
	return res, nil
}

// measure runs the FPS and rescale probes of backend i.
func (d *Driver) measure(ctx context.Context, i int, b *BackendResult, info *strings.Builder) {
	code := d.invoke(ctx, fpsTests[i])
	fmt.Fprintf(info, "%d", code)
	if code != 0 {
		b.Code = -1
		return
	}
	b.FPS = d.value(fpsTests[i])
	fmt.Fprintf(info, ",%d", b.FPS)
	if b.FPS == 0 {
		b.Code = -1
		return
	}
	b.Available = true
	b.Rescale = d.invoke(ctx, rescaleTests[i])
	fmt.Fprintf(info, ",%d", b.Rescale)
}

// persist writes the chosen settings to the main store.
func (d *Driver) persist(res *Result) error {
	rescale := res.Backends[res.Winner].Rescale
	blit.Logger().Info("probe selected backend", "mode", res.Winner, "texture_size", res.TextureSize, "info", res.Info)

	s := d.main
	s.Set(config.KeyOpenGL, res.Winner)
	s.Set(config.KeyShowBackground, rescale == 0)
	s.Set(config.KeyHWAccel, true)
	s.Set(config.KeyFPSLimit, 60)
	s.Set(config.KeyAltFPSLimit, 2)
	s.Set(config.KeySafeMode, false)
	s.Set(config.KeyTextureSize, res.TextureSize)
	s.Set(config.KeyUseTextureSampler, res.DetectMode&blit.FeatureSampler != 0)
	s.Set(config.KeyCompressTextures, res.DetectMode&blit.FeatureCompression != 0)
	s.Set(config.KeyTestInfo, res.Info)
	s.Set(config.KeyProbed, true)
	if err := s.Write(); err != nil {
		return fmt.Errorf("probe: save settings: %w", err)
	}
	return nil
}
