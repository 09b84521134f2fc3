// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package probe benchmarks the backends on first run and stores the best
// settings.
//
// The Driver starts the program itself once per Testcase ("-t N"), with
// the backend to test written to a separate test configuration. Each
// child is a Runner: it opens that backend, draws, and reports a single
// number through the result file (see WriteResult). A child that crashes,
// hangs past the timeout or exits non-zero only disqualifies its backend.
//
// After the availability, FPS and rescale probes the driver picks the
// fastest backend, asks the OpenGL winner for its batch and texture
// limits, and writes the outcome to the main configuration.
package probe
