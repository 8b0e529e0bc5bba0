// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package plugin

import (
	"fmt"
	"io"

	"github.com/gwaghmar/examdiff/internal/myers"
)

// =============================================================================
// STATISTICS PLUGIN
// =============================================================================

// Statistics is an observing plugin that collects per-run comparison
// counts and prints a summary when the run completes. It never rewrites
// the operation list.
type Statistics struct {
	out io.Writer

	labelA      string
	labelB      string
	totalDiffs  int
	additions   int
	deletions   int
	modified    int
	equalBlocks int
}

// NewStatistics creates a statistics plugin writing its report to out.
func NewStatistics(out io.Writer) *Statistics {
	return &Statistics{out: out}
}

// Name implements Plugin.
func (s *Statistics) Name() string { return "Statistics Reporter" }

// OnCompareStart resets the counters for a new run.
func (s *Statistics) OnCompareStart(info StartInfo) {
	s.labelA = info.LabelA
	s.labelB = info.LabelB
	s.totalDiffs = 0
	s.additions = 0
	s.deletions = 0
	s.modified = 0
	s.equalBlocks = 0
}

// ProcessDiff tallies the operations and returns them unmodified.
func (s *Statistics) ProcessDiff(ops []myers.Op) []myers.Op {
	for _, op := range ops {
		switch op.Kind {
		case myers.OpEqual:
			s.equalBlocks++
		case myers.OpInsert:
			s.additions += op.NewCount
			s.totalDiffs++
		case myers.OpDelete:
			s.deletions += op.OldCount
			s.totalDiffs++
		case myers.OpReplace:
			s.modified++
			s.totalDiffs++
		}
	}
	return ops
}

// OnCompareComplete prints the collected statistics.
func (s *Statistics) OnCompareComplete(ops []myers.Op) {
	fmt.Fprintf(s.out, "[%s] %s vs %s\n", s.Name(), s.labelA, s.labelB)
	fmt.Fprintf(s.out, "  Total differences:  %d\n", s.totalDiffs)
	fmt.Fprintf(s.out, "  Lines added:        %d\n", s.additions)
	fmt.Fprintf(s.out, "  Lines deleted:      %d\n", s.deletions)
	fmt.Fprintf(s.out, "  Lines modified:     %d\n", s.modified)
	fmt.Fprintf(s.out, "  Unchanged blocks:   %d\n", s.equalBlocks)
}
