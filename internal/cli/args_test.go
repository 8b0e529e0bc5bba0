// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgParser_Positionals(t *testing.T) {
	p := NewArgParser([]string{"a.txt", "b.txt"})
	assert.Equal(t, []string{"a.txt", "b.txt"}, p.Positional())
}

func TestArgParser_BoolFlags(t *testing.T) {
	p := NewArgParser([]string{"--ignore-case", "-b", "a.txt", "b.txt"})

	assert.True(t, p.BoolFlag("ignore-case"))
	assert.True(t, p.BoolFlag("b"))
	assert.False(t, p.BoolFlag("stats"))
	assert.Equal(t, []string{"a.txt", "b.txt"}, p.Positional())
}

func TestArgParser_ValueFlagSpaceForm(t *testing.T) {
	p := NewArgParser([]string{"--output", "merged.txt", "base", "yours", "theirs"})

	assert.Equal(t, "merged.txt", p.Flag("output"))
	assert.Equal(t, []string{"base", "yours", "theirs"}, p.Positional())
}

func TestArgParser_ValueFlagEqualsForm(t *testing.T) {
	p := NewArgParser([]string{"--width=120", "a", "b"})
	assert.Equal(t, "120", p.Flag("width"))
}

func TestArgParser_ShortValueFlag(t *testing.T) {
	p := NewArgParser([]string{"-o", "out.txt"})
	assert.Equal(t, "out.txt", p.Flag("o"))
	assert.Empty(t, p.Positional())
}

func TestArgParser_RepeatableFlag(t *testing.T) {
	p := NewArgParser([]string{
		"--ignore-pattern", "^import ",
		"--ignore-pattern", "^from ",
	})

	assert.Equal(t, []string{"^import ", "^from "}, p.FlagAll("ignore-pattern"))
	// Flag returns the last value.
	assert.Equal(t, "^from ", p.Flag("ignore-pattern"))
}

func TestArgParser_ExplicitBoolValue(t *testing.T) {
	p := NewArgParser([]string{"--stats=true", "--fuzzy=false"})

	assert.True(t, p.BoolFlag("stats"))
	assert.False(t, p.BoolFlag("fuzzy"))
}

func TestArgParser_UnknownFlagIsBoolean(t *testing.T) {
	p := NewArgParser([]string{"--mystery", "a.txt"})

	assert.True(t, p.BoolFlag("mystery"))
	assert.Equal(t, []string{"a.txt"}, p.Positional())
}

func TestArgParser_MissingFlagValues(t *testing.T) {
	p := NewArgParser(nil)

	assert.Equal(t, "", p.Flag("output"))
	assert.Empty(t, p.FlagAll("ignore-pattern"))
	assert.Empty(t, p.Positional())
}

func TestArgParser_ValueFlagAtEnd(t *testing.T) {
	// A value flag with nothing after it degrades to boolean rather than
	// panicking.
	p := NewArgParser([]string{"--output"})
	assert.Equal(t, "", p.Flag("output"))
	assert.True(t, p.BoolFlag("output"))
}
