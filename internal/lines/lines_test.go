// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package lines

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{}},
		{"single line no newline", "hello", []string{"hello"}},
		{"single line with newline", "hello\n", []string{"hello"}},
		{"unix endings", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc\r\n", []string{"a", "b", "c"}},
		{"old mac endings", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed endings", "a\r\nb\nc\r", []string{"a", "b", "c"}},
		{"bom stripped", "\ufeffa\nb", []string{"a", "b"}},
		{"interior blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.content))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "", Join([]string{}))
	assert.Equal(t, "a\n", Join([]string{"a"}))
	assert.Equal(t, "a\nb\nc\n", Join([]string{"a", "b", "c"}))
}

func TestJoin_InverseOfSplit(t *testing.T) {
	content := "line1\nline2\n\nline4\n"
	assert.Equal(t, content, Join(Split(content)))
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\ny\n"), 0644))

	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}
