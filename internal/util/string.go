// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package util

import "github.com/mattn/go-runewidth"

// StringWidth returns the display width of a string in terminal columns.
// Double-width characters (CJK) count as 2.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when truncation happens and there is room for it. Safe for UTF-8:
// truncation never splits a multi-byte character.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadWidth pads a string with spaces on the right to the given display
// width. Strings already at or beyond the width are returned unchanged.
func PadWidth(s string, width int) string {
	return runewidth.FillRight(s, width)
}
