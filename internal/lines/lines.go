// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package lines supplies ordered line sequences to the diff engine.
//
// The engine itself accepts already-materialized line slices and is
// agnostic to where they came from; this package is the one concrete
// supplier the CLI uses. Content is treated as UTF-8 as-is, with no
// encoding detection.
package lines

import (
	"fmt"
	"os"
	"strings"
)

// Split splits file content into lines. Line endings are normalized
// (CRLF and lone CR become LF), a UTF-8 BOM is stripped, and a trailing
// final newline does not produce a phantom empty line. Empty content
// yields an empty slice.
func Split(content string) []string {
	if content == "" {
		return []string{}
	}

	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	split := strings.Split(content, "\n")
	if len(split) > 0 && split[len(split)-1] == "" {
		split = split[:len(split)-1]
	}
	return split
}

// ReadLines reads the file at path and splits it into lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Split(string(data)), nil
}

// Join renders a line sequence back to file content with a trailing
// newline, the inverse of Split for newline-terminated files.
func Join(seq []string) string {
	if len(seq) == 0 {
		return ""
	}
	return strings.Join(seq, "\n") + "\n"
}
