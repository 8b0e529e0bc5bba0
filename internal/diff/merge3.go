// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import "github.com/gwaghmar/examdiff/internal/myers"

// =============================================================================
// THREE-WAY MERGE
// =============================================================================

// Conflict markers emitted into the merged output.
const (
	MarkerYours     = "<<<<<<< YOURS"
	MarkerSeparator = "======="
	MarkerTheirs    = ">>>>>>> THEIRS"
)

// Conflict describes one three-way merge conflict: both sides changed the
// same base region with differing content.
type Conflict struct {
	Line        int // base line index where the conflict starts (0-based)
	BaseLines   []string
	YoursLines  []string
	TheirsLines []string
}

// change is one side's edit at a base line index.
type change struct {
	oldCount int
	newLines []string
}

// ThreeWayMerge merges two divergent versions against their common base.
// It diffs base against each side, keys every non-Equal operation by its
// base start index, then walks the base line by line:
//
//   - neither side changed: the base line is kept
//   - one side changed: that side's replacement lines are taken
//   - both sides changed identically: taken once, no conflict
//   - both sides changed differently: a Conflict is recorded and the
//     region is emitted between conflict markers
//
// When both sides touch the same base index with different content it is
// always a conflict, and the walk advances by at least one line even if
// both edits are pure insertions, so overlapping zero-length regions
// cannot stall the merge.
func (e *Engine) ThreeWayMerge(base, yours, theirs []string) ([]string, []Conflict) {
	yoursChanges := buildChangeMap(e.CompareLines(base, yours))
	theirsChanges := buildChangeMap(e.CompareLines(base, theirs))

	var merged []string
	var conflicts []Conflict

	i := 0
	for i < len(base) {
		yc, hasYours := yoursChanges[i]
		tc, hasTheirs := theirsChanges[i]

		switch {
		case !hasYours && !hasTheirs:
			merged = append(merged, base[i])
			i++

		case hasYours && !hasTheirs:
			merged = append(merged, yc.newLines...)
			i += advance(yc.oldCount)

		case !hasYours && hasTheirs:
			merged = append(merged, tc.newLines...)
			i += advance(tc.oldCount)

		default:
			if equalLines(yc.newLines, tc.newLines) {
				// Same change on both sides.
				merged = append(merged, yc.newLines...)
			} else {
				span := max(yc.oldCount, tc.oldCount)
				end := min(i+span, len(base))
				conflicts = append(conflicts, Conflict{
					Line:        i,
					BaseLines:   base[i:end],
					YoursLines:  yc.newLines,
					TheirsLines: tc.newLines,
				})

				merged = append(merged, MarkerYours)
				merged = append(merged, yc.newLines...)
				merged = append(merged, MarkerSeparator)
				merged = append(merged, tc.newLines...)
				merged = append(merged, MarkerTheirs)
			}
			i += advance(max(yc.oldCount, tc.oldCount))
		}
	}

	return merged, conflicts
}

// buildChangeMap keys each non-Equal operation by the base line index it
// starts at.
func buildChangeMap(ops []myers.Op) map[int]change {
	changes := make(map[int]change)
	for _, op := range ops {
		if op.Kind == myers.OpEqual {
			continue
		}
		changes[op.OldStart] = change{
			oldCount: op.OldCount,
			newLines: op.NewLines,
		}
	}
	return changes
}

// advance guarantees forward progress for pure insertions (oldCount 0).
func advance(oldCount int) int {
	if oldCount < 1 {
		return 1
	}
	return oldCount
}
