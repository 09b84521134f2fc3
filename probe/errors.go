// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"errors"
	"fmt"
)

// ErrProbeFailed matches every *ProbeError.
var ErrProbeFailed = errors.New("probe: failed")

// ProbeError reports a child that timed out, crashed or exited non-zero.
type ProbeError struct {
	Testcase Testcase
	// Code is the exit code, -1 when the child did not exit normally.
	Code int
	Err  error
}

func (e *ProbeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("probe: %s (%d): %v", e.Testcase, int(e.Testcase), e.Err)
	}
	return fmt.Sprintf("probe: %s (%d): exit code %d", e.Testcase, int(e.Testcase), e.Code)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Is matches ErrProbeFailed.
func (e *ProbeError) Is(target error) bool { return target == ErrProbeFailed }
