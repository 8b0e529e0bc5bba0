// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package cli implements the examdiff command-line surface.
//
// Commands:
//
//	examdiff diff <fileA> <fileB>          compare two files
//	examdiff merge <base> <yours> <theirs> three-way merge
//	examdiff version                       print version information
//	examdiff help                          usage
//
// The diff command renders unified output by default, with --side-by-side,
// --words, and --chars alternatives, the full set of --ignore-* flags, and
// --watch to re-run the comparison whenever an input file changes.
//
// Colors are disabled automatically for non-TTY output and honor the
// NO_COLOR and FORCE_COLOR environment variables.
//
// Exit codes follow diff(1): 0 when inputs are identical, 1 when
// differences (or merge conflicts) were found, 2 on error.
package cli
