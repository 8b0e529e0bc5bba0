// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package myers implements Eugene Myers' O((N+M)D) difference algorithm.
//
// The algorithm finds the Shortest Edit Script (SES): the minimum number of
// insertions and deletions needed to transform one sequence of lines into
// another. It is the same algorithm family used by GNU diff and Git.
//
// The problem is modelled as a path through an edit graph where moving right
// inserts a line from sequence B, moving down deletes a line from sequence A,
// and moving diagonally matches equal lines at no cost. The search explores
// the graph in increasing edit distance D until a path from (0,0) to (N,M)
// is found.
//
// # Key Types
//
//   - Point, Path: coordinates through the edit graph
//   - OpKind: kind of diff operation (equal, insert, delete, replace)
//   - Op: a single diff operation with line ranges and content
//
// # Usage
//
// Compute a line diff directly:
//
//	ops := myers.Diff(oldLines, newLines)
//
// Or run the stages separately, diffing one representation of the input
// while attributing results to another (the diff engine does this for its
// ignore options):
//
//	path := myers.ShortestEditPath(keysA, keysB)
//	ops := myers.MergeReplaces(myers.BuildOps(path, displayA, displayB))
package myers
