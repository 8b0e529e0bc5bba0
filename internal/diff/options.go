// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

// =============================================================================
// COMPARISON OPTIONS
// =============================================================================

// Options is the comparison configuration value object. Each option
// independently toggles a preprocessing or post-processing stage; selected
// filters compose in a fixed order (blank-line skip, leading/trailing
// trim, comment strip, pattern exclusion, whitespace/case normalization).
//
// Options is plain data with no behavior; it is compiled and validated by
// New, which is the only place pattern errors can surface.
type Options struct {
	// IgnoreCase compares lines case-insensitively (Unicode case fold).
	IgnoreCase bool
	// IgnoreWhitespace collapses all runs of whitespace to a single
	// space before comparing.
	IgnoreWhitespace bool
	// IgnoreBlankLines drops lines that are empty or whitespace-only
	// from both sides before comparing.
	IgnoreBlankLines bool
	// IgnoreLeadingWhitespace strips leading whitespace before comparing.
	IgnoreLeadingWhitespace bool
	// IgnoreTrailingWhitespace strips trailing whitespace before comparing.
	IgnoreTrailingWhitespace bool
	// IgnoreComments strips comment text (per CommentPatterns) before
	// comparing.
	IgnoreComments bool
	// CommentPatterns are the regexes used by IgnoreComments. When empty,
	// DefaultCommentPatterns is used.
	CommentPatterns []string
	// IgnoreLinePatterns drops any line matching one of these regexes
	// from both sides entirely.
	IgnoreLinePatterns []string
	// FuzzyMatching merges adjacent Delete+Insert pairs whose joined text
	// is at least 60% similar into a single Replace.
	FuzzyMatching bool
	// MovingBlockDetection pairs Delete/Insert blocks with identical
	// content. The pairing is computed but results are returned
	// unchanged; see CompareLines.
	MovingBlockDetection bool
}

// DefaultCommentPatterns covers the common single-line comment styles.
var DefaultCommentPatterns = []string{
	`//.*$`,     // C++ style
	`#.*$`,      // shell / Python style
	`/\*.*?\*/`, // C style, single line
}

// FuzzyThreshold is the minimum similarity ratio for fuzzy
// replace-merging.
const FuzzyThreshold = 0.6
