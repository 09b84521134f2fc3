// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/blit"
)

// ErrNoPath is returned by Write on a store that has no file.
var ErrNoPath = errors.New("config: store has no path")

// Store is a flat key/value configuration persisted as a TOML table.
// Values are kept as int64, float64, bool or string. A Store is not safe
// for concurrent use.
type Store struct {
	path   string
	values map[string]any
}

// New returns an empty store that is written to path.
func New(path string) *Store {
	return &Store{path: path, values: make(map[string]any)}
}

// Open reads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := New(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		blit.Logger().Debug("config: no file, starting empty", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	return s, nil
}

// Path returns the file the store is written to.
func (s *Store) Path() string { return s.path }

// Has reports whether key is set.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the set keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Int returns key as an integer, or def when it is unset or not numeric.
func (s *Store) Int(key string, def int) int {
	switch v := s.values[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Bool returns key as a boolean. Numbers are true when non-zero.
func (s *Store) Bool(key string, def bool) bool {
	switch v := s.values[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// Float returns key as a float.
func (s *Store) Float(key string, def float64) float64 {
	switch v := s.values[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// String returns key formatted as a string.
func (s *Store) String(key, def string) string {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
}

// Set stores value under key. Integer, float, bool and string kinds are
// kept; anything else is stored in its fmt representation.
func (s *Store) Set(key string, value any) {
	switch v := value.(type) {
	case int:
		s.values[key] = int64(v)
	case int32:
		s.values[key] = int64(v)
	case int64:
		s.values[key] = v
	case uint32:
		s.values[key] = int64(v)
	case float32:
		s.values[key] = float64(v)
	case float64, bool, string:
		s.values[key] = v
	case blit.RenderMode:
		s.values[key] = int64(v)
	default:
		s.values[key] = fmt.Sprint(v)
	}
}

// Delete removes key. It reports whether key was set.
func (s *Store) Delete(key string) bool {
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Write saves the store atomically: the table is written to a temporary
// file in the same directory, which then replaces the target.
func (s *Store) Write() error {
	if s.path == "" {
		return ErrNoPath
	}
	data, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("config: write %s: %w", s.path, err)
	}
	blit.Logger().Debug("config: written", "path", s.path, "keys", len(s.values))
	return nil
}
