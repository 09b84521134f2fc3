// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command blitprobe picks the fastest rendering backend.
//
// Without flags it probes only when the configuration has no stored
// result. -detect probes unconditionally, -reset forgets the stored
// result, and -t N runs a single probe as a child process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/config"
	"github.com/gogpu/blit/probe"
	"github.com/gogpu/blit/screenshot"

	_ "github.com/gogpu/blit/backend/opengl"
	_ "github.com/gogpu/blit/backend/sdl2"
	_ "github.com/gogpu/blit/backend/software"
)

func main() {
	var (
		testcase = flag.Int("t", 0, "run probe `N` as a child and exit")
		dir      = flag.String("dir", defaultDir(), "directory for configuration and probe files")
		detect   = flag.Bool("detect", false, "probe even if a result is stored")
		reset    = flag.Bool("reset", false, "forget the stored result")
		shot     = flag.String("screenshot", "", "draw one frame with the configured backend and save it to `file`")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *testcase != 0:
		err = child(ctx, *dir, probe.Testcase(*testcase))
	case *shot != "":
		err = capture(ctx, *dir, *shot)
	default:
		err = drive(ctx, *dir, *detect, *reset)
	}
	if err != nil {
		slog.Error("blitprobe failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func defaultDir() string {
	if d, err := os.UserConfigDir(); err == nil {
		return filepath.Join(d, "blit")
	}
	return "."
}

func paths(dir string) (main, test, result string) {
	return filepath.Join(dir, "config.toml"), filepath.Join(dir, "test.toml"), filepath.Join(dir, probe.ResultFile)
}

func child(ctx context.Context, dir string, tc probe.Testcase) error {
	_, testPath, resultPath := paths(dir)
	cfg, err := config.Open(testPath)
	if err != nil {
		return err
	}
	return probe.NewRunner(cfg, resultPath).Run(ctx, tc)
}

func drive(ctx context.Context, dir string, force, reset bool) error {
	mainPath, testPath, resultPath := paths(dir)
	mainCfg, err := config.Open(mainPath)
	if err != nil {
		return err
	}
	testCfg, err := config.Open(testPath)
	if err != nil {
		return err
	}
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	d := probe.NewDriver(mainCfg, testCfg, resultPath, probe.WithExecutor(&probe.ProcessExecutor{
		Binary: self,
		Args:   []string{"-dir", dir},
		Stderr: os.Stderr,
	}))
	if reset {
		return d.Reset()
	}
	if !force && !d.Needed() {
		slog.Info("backend already selected", "mode", mainCfg.RenderMode(), "info", mainCfg.String(config.KeyTestInfo, ""))
		return nil
	}
	res, err := d.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("backend: %s\ntexture size: %d\ninfo: %s\n", res.Winner, res.TextureSize, res.Info)
	return nil
}

func capture(ctx context.Context, dir, path string) error {
	mainPath, _, resultPath := paths(dir)
	cfg, err := config.Open(mainPath)
	if err != nil {
		return err
	}
	g, err := probe.OpenRegistered(cfg.RenderMode(), cfg.VideoMode())
	if err != nil {
		return err
	}
	defer g.Close()

	if err := probe.NewRunner(cfg, resultPath, probe.WithFrames(1),
		probe.WithOpen(func(blit.RenderMode, blit.VideoMode) (blit.Graphics, error) { return keepOpen{g}, nil }),
	).Run(ctx, probe.TestSoftware); err != nil {
		return err
	}
	return screenshot.Capture(g, path)
}

// keepOpen hands an open backend to the runner without letting it close
// it.
type keepOpen struct{ blit.Graphics }

func (keepOpen) Close() error { return nil }
