// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package diff provides the comparison engine: line, word, and character
// level diffs, three-way merge with conflict detection, and unified-diff
// formatting.
//
// Line-level comparison runs the Myers shortest-edit-script solver from
// internal/myers over preprocessed input, honoring the ignore options in
// Options. Word and character comparisons use the simpler opcode alignment
// from internal/seqmatch, which is adequate for short token streams and
// keeps the line-diff hot path free of generality it does not need.
//
// # Key Types
//
//   - Options: comparison options (ignore case/whitespace/comments, fuzzy
//     matching, moving block detection, ...)
//   - Engine: the orchestrator; construct with New, options are compiled
//     and validated up front
//   - WordDiff, CharDiff: intraline results
//   - Conflict: one three-way merge conflict
//
// # Usage
//
//	engine, err := diff.New(diff.Options{IgnoreCase: true})
//	if err != nil {
//		// a configuration problem, e.g. a malformed ignore pattern
//	}
//	ops := engine.CompareLines(oldLines, newLines)
//	fmt.Println(diff.FormatUnified(ops, "a", "b", 0))
//
// All engine methods are pure functions of their inputs: no shared mutable
// state, no I/O, no locks. Independent comparisons may run concurrently on
// separate goroutines.
package diff
