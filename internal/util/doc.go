// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package util provides shared helpers: atomic file writes for merge and
// config output, and width-aware string formatting for the side-by-side
// diff view.
package util
