// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import (
	"fmt"
	"strings"

	"github.com/gwaghmar/examdiff/internal/myers"
)

// =============================================================================
// DIFF STATISTICS
// =============================================================================

// DiffStats summarizes an operation list.
type DiffStats struct {
	Additions     int // lines inserted
	Deletions     int // lines deleted
	Modifications int // replace blocks
	EqualBlocks   int // unchanged blocks
	TotalDiffs    int // non-equal operations
}

// Stats computes summary statistics for a diff.
func Stats(ops []myers.Op) DiffStats {
	var s DiffStats
	for _, op := range ops {
		switch op.Kind {
		case myers.OpEqual:
			s.EqualBlocks++
		case myers.OpInsert:
			s.Additions += op.NewCount
			s.TotalDiffs++
		case myers.OpDelete:
			s.Deletions += op.OldCount
			s.TotalDiffs++
		case myers.OpReplace:
			s.Modifications++
			s.Additions += op.NewCount
			s.Deletions += op.OldCount
			s.TotalDiffs++
		}
	}
	return s
}

// Identical reports whether the diff contains no changes.
func (s DiffStats) Identical() bool {
	return s.TotalDiffs == 0
}

// Summary returns a short human-readable summary, e.g. "+3 -1 ~2".
func (s DiffStats) Summary() string {
	if s.Identical() {
		return "identical"
	}
	var parts []string
	if s.Additions > 0 {
		parts = append(parts, fmt.Sprintf("+%d", s.Additions))
	}
	if s.Deletions > 0 {
		parts = append(parts, fmt.Sprintf("-%d", s.Deletions))
	}
	if s.Modifications > 0 {
		parts = append(parts, fmt.Sprintf("~%d", s.Modifications))
	}
	return strings.Join(parts, " ")
}
