// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnified_Replace(t *testing.T) {
	e := mustEngine(t, Options{})
	ops := e.CompareLines([]string{"a", "old", "c"}, []string{"a", "new", "c"})

	got := FormatUnified(ops, "a", "b", 3)

	want := strings.Join([]string{
		"--- a",
		"+++ b",
		"@@ -2,1 +2,1 @@",
		"-old",
		"+new",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatUnified_Identical(t *testing.T) {
	e := mustEngine(t, Options{})
	ops := e.CompareLines([]string{"same"}, []string{"same"})

	got := FormatUnified(ops, "left", "right", 3)
	assert.Equal(t, "--- left\n+++ right", got)
}

func TestFormatUnified_InsertHunk(t *testing.T) {
	e := mustEngine(t, Options{})
	ops := e.CompareLines([]string{"l1", "l3"}, []string{"l1", "l2", "l3"})

	got := FormatUnified(ops, "a", "b", 3)

	require.Contains(t, got, "@@ -2,0 +2,1 @@")
	assert.Contains(t, got, "\n+l2")
	assert.NotContains(t, got, "\n-")
}

func TestFormatUnified_DeleteHunk(t *testing.T) {
	e := mustEngine(t, Options{})
	ops := e.CompareLines([]string{"l1", "l2", "l3"}, []string{"l1", "l3"})

	got := FormatUnified(ops, "a", "b", 3)

	require.Contains(t, got, "@@ -2,1 +2,0 @@")
	assert.Contains(t, got, "\n-l2")
}

func TestFormatUnified_MultipleHunks(t *testing.T) {
	e := mustEngine(t, Options{})
	ops := e.CompareLines(
		[]string{"a", "x", "c", "d", "y", "f"},
		[]string{"a", "X", "c", "d", "Y", "f"},
	)

	got := FormatUnified(ops, "a", "b", 3)
	assert.Equal(t, 2, strings.Count(got, "@@ -"))
}

func TestFormatUnified_NoTrailingNewline(t *testing.T) {
	e := mustEngine(t, Options{})
	ops := e.CompareLines([]string{"old"}, []string{"new"})

	got := FormatUnified(ops, "a", "b", 0)
	assert.False(t, strings.HasSuffix(got, "\n"))
}
