// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// styles.go - Centralized styling for examdiff output.
//
// Colors are disabled automatically for non-TTY output, and the NO_COLOR
// and FORCE_COLOR environment variables are honored (see terminal.go).

package cli

import "github.com/charmbracelet/lipgloss"

// applyColorProfile configures lipgloss for the detected terminal. Called
// once from Run after the color mode is known.
func applyColorProfile() {
	lipgloss.SetColorProfile(ColorProfile())
}

// =============================================================================
// DIFF OUTPUT STYLES
// =============================================================================

var (
	// AddedStyle renders inserted lines.
	AddedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	// RemovedStyle renders deleted lines.
	RemovedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	// ContextStyle renders unchanged lines.
	ContextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// HeaderStyle renders file headers and hunk headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// ConflictStyle renders three-way merge conflict markers.
	ConflictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")) // Yellow/Orange

	// DimStyle renders secondary information (stats, hints).
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// ErrorStyle renders error messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red
)
