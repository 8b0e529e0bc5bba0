// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// render.go - Terminal rendering of diff results: styled unified output,
// side-by-side view, and wdiff-style intraline markup.

package cli

import (
	"fmt"
	"strings"

	"github.com/gwaghmar/examdiff/internal/diff"
	"github.com/gwaghmar/examdiff/internal/myers"
	"github.com/gwaghmar/examdiff/internal/util"
)

// =============================================================================
// UNIFIED VIEW
// =============================================================================

// renderUnified writes the unified diff with per-line styling. The text
// shape matches diff.FormatUnified exactly; only colors are added.
func renderUnified(sb *strings.Builder, ops []myers.Op, labelA, labelB string) {
	sb.WriteString(HeaderStyle.Render("--- " + labelA))
	sb.WriteString("\n")
	sb.WriteString(HeaderStyle.Render("+++ " + labelB))

	for _, op := range ops {
		if op.Kind == myers.OpEqual {
			continue
		}

		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			op.OldStart+1, op.OldCount, op.NewStart+1, op.NewCount)
		sb.WriteString("\n")
		sb.WriteString(HeaderStyle.Render(header))

		if op.Kind == myers.OpDelete || op.Kind == myers.OpReplace {
			for _, line := range op.OldLines {
				sb.WriteString("\n")
				sb.WriteString(RemovedStyle.Render("-" + line))
			}
		}
		if op.Kind == myers.OpInsert || op.Kind == myers.OpReplace {
			for _, line := range op.NewLines {
				sb.WriteString("\n")
				sb.WriteString(AddedStyle.Render("+" + line))
			}
		}
	}
	sb.WriteString("\n")
}

// =============================================================================
// SIDE-BY-SIDE VIEW
// =============================================================================

// renderSideBySide writes a two-column view. Equal lines appear in both
// columns, deletions on the left, insertions on the right, and replace
// blocks are paired row by row.
func renderSideBySide(sb *strings.Builder, ops []myers.Op, totalWidth int) {
	if totalWidth <= 0 {
		totalWidth = TerminalWidth()
	}
	colWidth := (totalWidth - 3) / 2
	if colWidth < 10 {
		colWidth = 10
	}

	row := func(left, right string, leftStyle, rightStyle func(...string) string) {
		l := util.PadWidth(util.TruncateWidth(left, colWidth), colWidth)
		r := util.TruncateWidth(right, colWidth)
		sb.WriteString(leftStyle(l))
		sb.WriteString(" │ ")
		sb.WriteString(rightStyle(r))
		sb.WriteString("\n")
	}
	plain := ContextStyle.Render
	removed := RemovedStyle.Render
	added := AddedStyle.Render

	for _, op := range ops {
		switch op.Kind {
		case myers.OpEqual:
			for _, line := range op.OldLines {
				row(line, line, plain, plain)
			}
		case myers.OpDelete:
			for _, line := range op.OldLines {
				row(line, "", removed, plain)
			}
		case myers.OpInsert:
			for _, line := range op.NewLines {
				row("", line, plain, added)
			}
		case myers.OpReplace:
			rows := max(len(op.OldLines), len(op.NewLines))
			for i := 0; i < rows; i++ {
				var left, right string
				if i < len(op.OldLines) {
					left = op.OldLines[i]
				}
				if i < len(op.NewLines) {
					right = op.NewLines[i]
				}
				row(left, right, removed, added)
			}
		}
	}
}

// =============================================================================
// INTRALINE MARKUP
// =============================================================================

// renderIntraline writes the diff with replace blocks expanded into
// wdiff-style markup: deleted words as [-word-], inserted words as
// {+word+}. Non-replace operations render as in the unified view.
// At char granularity, runs of same-kind characters are grouped before
// marking up.
func renderIntraline(sb *strings.Builder, engine *diff.Engine, ops []myers.Op, chars bool) {
	for _, op := range ops {
		switch op.Kind {
		case myers.OpEqual:
			for _, line := range op.OldLines {
				sb.WriteString(ContextStyle.Render(" " + line))
				sb.WriteString("\n")
			}
		case myers.OpDelete:
			for _, line := range op.OldLines {
				sb.WriteString(RemovedStyle.Render("-" + line))
				sb.WriteString("\n")
			}
		case myers.OpInsert:
			for _, line := range op.NewLines {
				sb.WriteString(AddedStyle.Render("+" + line))
				sb.WriteString("\n")
			}
		case myers.OpReplace:
			rows := max(len(op.OldLines), len(op.NewLines))
			for i := 0; i < rows; i++ {
				switch {
				case i < len(op.OldLines) && i < len(op.NewLines):
					var markup string
					if chars {
						markup = charMarkup(engine, op.OldLines[i], op.NewLines[i])
					} else {
						markup = wordMarkup(engine, op.OldLines[i], op.NewLines[i])
					}
					sb.WriteString("~" + markup)
				case i < len(op.OldLines):
					sb.WriteString(RemovedStyle.Render("-" + op.OldLines[i]))
				default:
					sb.WriteString(AddedStyle.Render("+" + op.NewLines[i]))
				}
				sb.WriteString("\n")
			}
		}
	}
}

// wordMarkup renders a replaced line pair as a single marked-up line.
func wordMarkup(engine *diff.Engine, lineA, lineB string) string {
	var sb strings.Builder
	for _, wd := range engine.CompareWords(lineA, lineB) {
		switch wd.Kind {
		case myers.OpEqual:
			sb.WriteString(wd.Word)
		case myers.OpDelete:
			sb.WriteString(RemovedStyle.Render("[-" + wd.Word + "-]"))
		case myers.OpInsert:
			sb.WriteString(AddedStyle.Render("{+" + wd.Word + "+}"))
		}
	}
	return sb.String()
}

// charMarkup is wordMarkup at character granularity, with consecutive
// same-kind characters grouped into one marker.
func charMarkup(engine *diff.Engine, lineA, lineB string) string {
	diffs := engine.CompareChars(lineA, lineB)

	var sb strings.Builder
	i := 0
	for i < len(diffs) {
		kind := diffs[i].Kind
		var run strings.Builder
		for i < len(diffs) && diffs[i].Kind == kind {
			run.WriteString(diffs[i].Char)
			i++
		}
		switch kind {
		case myers.OpEqual:
			sb.WriteString(run.String())
		case myers.OpDelete:
			sb.WriteString(RemovedStyle.Render("[-" + run.String() + "-]"))
		case myers.OpInsert:
			sb.WriteString(AddedStyle.Render("{+" + run.String() + "+}"))
		}
	}
	return sb.String()
}

// =============================================================================
// MERGE AND STATS
// =============================================================================

// renderMerged writes merged lines with conflict markers highlighted.
func renderMerged(sb *strings.Builder, merged []string) {
	for _, line := range merged {
		switch line {
		case diff.MarkerYours, diff.MarkerSeparator, diff.MarkerTheirs:
			sb.WriteString(ConflictStyle.Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
}

// renderStats writes the one-line statistics footer.
func renderStats(sb *strings.Builder, stats diff.DiffStats) {
	sb.WriteString(DimStyle.Render(fmt.Sprintf(
		"%s (%d change blocks)", stats.Summary(), stats.TotalDiffs)))
	sb.WriteString("\n")
}
