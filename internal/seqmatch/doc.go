// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package seqmatch provides longest-matching-block sequence alignment in
// the style of Python's difflib.SequenceMatcher (Ratcliff/Obershelp
// "gestalt pattern matching").
//
// The matcher recursively finds the longest contiguous matching block
// between two sequences and aligns the pieces to its left and right. This
// does not yield minimal edit scripts, but produces alignments that look
// right to people, and it is cheap enough for the short token and
// character streams it is used on. Line-level diffs use the Myers solver
// in internal/myers instead; the two algorithms are deliberately separate.
//
// # Key Types
//
//   - Match: one contiguous matching block (a[A:A+Size] == b[B:B+Size])
//   - OpCode: a tagged span describing equal/replace/delete/insert regions
//   - Matcher: the alignment engine, also the source of the similarity
//     Ratio used by fuzzy replace-merging
//
// # Usage
//
//	m := seqmatch.NewMatcher(tokensA, tokensB)
//	for _, op := range m.OpCodes() {
//		// op.Tag is one of TagEqual, TagReplace, TagDelete, TagInsert
//	}
//	similarity := m.Ratio() // 2*matches / (len(a)+len(b)), in [0,1]
//
// The junk and popularity heuristics of the Python original are not
// ported: they only matter for long line sequences with many repeats,
// and this package is only applied to short word/character streams.
package seqmatch
