// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package probe

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ResultFile is the name of the file a child reports its value in.
const ResultFile = "test.log"

// ErrBadResultTag is returned by ReadResult when the file is missing,
// malformed or was written by another test case.
var ErrBadResultTag = errors.New("probe: result tag mismatch")

// WriteResult records value for tc at path.
func WriteResult(path string, tc Testcase, value int) error {
	data := fmt.Sprintf("%d\n%d\n", int(tc), value)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("probe: write result: %w", err)
	}
	return nil
}

// ReadResult returns the value the child wrote for tc. When the file does
// not carry the tag of tc, def is returned with ErrBadResultTag.
func ReadResult(path string, tc Testcase, def int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return def, fmt.Errorf("%w: %w", ErrBadResultTag, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		return n, err == nil
	}
	tag, ok := line()
	if !ok || tag != int(tc) {
		return def, fmt.Errorf("%w: want %d", ErrBadResultTag, int(tc))
	}
	value, ok := line()
	if !ok {
		return def, fmt.Errorf("%w: no value for %d", ErrBadResultTag, int(tc))
	}
	return value, nil
}
