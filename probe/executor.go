// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
)

// Executor starts one child probe and waits for it.
type Executor interface {
	// Run returns the child's exit code. err is set when the child could
	// not be started or did not exit normally, e.g. on timeout.
	Run(ctx context.Context, tc Testcase) (code int, err error)
}

// ProcessExecutor runs Binary with Args followed by "-t <testcase>".
type ProcessExecutor struct {
	Binary string
	Args   []string

	Stdout, Stderr io.Writer
}

// Run starts the child and waits for it or for ctx.
func (p *ProcessExecutor) Run(ctx context.Context, tc Testcase) (int, error) {
	args := append(append([]string(nil), p.Args...), "-t", strconv.Itoa(int(tc)))
	cmd := exec.CommandContext(ctx, p.Binary, args...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}
