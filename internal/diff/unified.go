// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import (
	"fmt"
	"strings"

	"github.com/gwaghmar/examdiff/internal/myers"
)

// =============================================================================
// UNIFIED DIFF FORMATTER
// =============================================================================

// FormatUnified renders diff operations as a unified-diff text block:
// two label header lines, then one hunk per non-Equal operation with a
// 1-based "@@ -start,count +start,count @@" header followed by "-" lines
// for old content and "+" lines for new content.
//
// contextLines is accepted for signature compatibility but not used to
// surround hunks with Equal lines; hunks carry changed lines only. Output
// consumers depend on this exact shape, so the parameter stays inert.
func FormatUnified(ops []myers.Op, labelA, labelB string, contextLines int) string {
	_ = contextLines

	var sb strings.Builder
	sb.WriteString("--- " + labelA + "\n")
	sb.WriteString("+++ " + labelB)

	for _, op := range ops {
		if op.Kind == myers.OpEqual {
			continue
		}

		sb.WriteString(fmt.Sprintf("\n@@ -%d,%d +%d,%d @@",
			op.OldStart+1, op.OldCount, op.NewStart+1, op.NewCount))

		if op.Kind == myers.OpDelete || op.Kind == myers.OpReplace {
			for _, line := range op.OldLines {
				sb.WriteString("\n-" + line)
			}
		}
		if op.Kind == myers.OpInsert || op.Kind == myers.OpReplace {
			for _, line := range op.NewLines {
				sb.WriteString("\n+" + line)
			}
		}
	}

	return sb.String()
}
