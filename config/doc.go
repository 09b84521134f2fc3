// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config is the durable key/value store for renderer settings.
// The file is a single TOML table; the backend probe writes its results
// here and the client reads them on the next start.
package config
