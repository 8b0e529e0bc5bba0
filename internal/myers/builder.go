// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package myers

// =============================================================================
// DIFF RESULT BUILDER
// =============================================================================

// BuildOps converts an edit graph path into an ordered list of diff
// operations covering the full range of both sequences with no gaps.
//
// A maximal run of diagonal steps becomes one Equal operation, a run of
// horizontal steps one Insert from b, and a run of vertical steps one
// Delete from a. Content is sliced from the sequences given here at the
// coordinates the path uses, so callers that solved over a normalized
// representation can attribute results to the display content as long as
// indices line up.
func BuildOps(path Path, a, b []string) []Op {
	var ops []Op

	// extend grows the previous operation instead of appending when the
	// path continues a run of the same kind, so inserts and deletes are
	// maximal blocks just like equal runs.
	extend := func(op Op) {
		if n := len(ops); n > 0 && ops[n-1].Kind == op.Kind &&
			ops[n-1].OldStart+ops[n-1].OldCount == op.OldStart &&
			ops[n-1].NewStart+ops[n-1].NewCount == op.NewStart {
			prev := &ops[n-1]
			prev.OldCount += op.OldCount
			prev.NewCount += op.NewCount
			prev.OldLines = append(prev.OldLines, op.OldLines...)
			prev.NewLines = append(prev.NewLines, op.NewLines...)
			return
		}
		ops = append(ops, op)
	}

	i := 0
	for i < len(path)-1 {
		x1, y1 := path[i].X, path[i].Y
		x2, y2 := path[i+1].X, path[i+1].Y

		switch {
		case x2 > x1 && y2 > y1:
			// Diagonal move: extend over the whole run of matches.
			j := i + 1
			for j < len(path)-1 {
				next, after := path[j], path[j+1]
				if after.X == next.X+1 && after.Y == next.Y+1 {
					j++
				} else {
					break
				}
			}
			endX, endY := path[j].X, path[j].Y

			ops = append(ops, Op{
				Kind:     OpEqual,
				OldStart: x1,
				OldCount: endX - x1,
				NewStart: y1,
				NewCount: endY - y1,
				OldLines: a[x1:endX],
				NewLines: b[y1:endY],
			})
			i = j

		case x2 == x1 && y2 > y1:
			// Right move: one line inserted from b. The three-index
			// slice keeps extend from aliasing into b.
			extend(Op{
				Kind:     OpInsert,
				OldStart: x1,
				OldCount: 0,
				NewStart: y1,
				NewCount: 1,
				OldLines: nil,
				NewLines: b[y1:y2:y2],
			})
			i++

		case x2 > x1 && y2 == y1:
			// Down move: one line deleted from a.
			extend(Op{
				Kind:     OpDelete,
				OldStart: x1,
				OldCount: 1,
				NewStart: y1,
				NewCount: 0,
				OldLines: a[x1:x2:x2],
				NewLines: nil,
			})
			i++

		default:
			i++
		}
	}

	return ops
}

// Diff computes the complete diff between a and b: shortest edit path,
// operation construction, and adjacent Delete+Insert merging.
func Diff(a, b []string) []Op {
	path := ShortestEditPath(a, b)
	return MergeReplaces(BuildOps(path, a, b))
}
