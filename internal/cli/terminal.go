// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// terminal.go - Terminal detection for examdiff output.
//
// - TTY detection for stdout
// - Terminal width detection for the side-by-side view
// - Color output control based on TTY, NO_COLOR, and FORCE_COLOR

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY AND WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback when detection fails.
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the narrowest width the side-by-side view
	// will attempt.
	MinTerminalWidth = 40
)

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the current terminal width, with sane bounds.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
	colorMode         = "auto"
)

// SetColorMode sets the configured color mode: "auto", "always", or
// "never". Must be called before the first style is rendered.
func SetColorMode(mode string) {
	colorMode = mode
	colorsEnabledOnce = sync.Once{}
}

// ColorsEnabled returns true if colored output should be used. In auto
// mode it respects the NO_COLOR convention (https://no-color.org/), the
// FORCE_COLOR override, and TTY detection, in that order.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		switch colorMode {
		case "always":
			colorsEnabled = true
			return
		case "never":
			colorsEnabled = false
			return
		}
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// ColorProfile returns the termenv color profile to render with: Ascii
// (no colors) when colors are disabled, otherwise whatever the terminal
// supports.
func ColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
