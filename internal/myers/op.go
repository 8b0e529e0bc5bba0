// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package myers

import "fmt"

// =============================================================================
// OPERATION TYPES
// =============================================================================

// OpKind represents the kind of a diff operation.
type OpKind int

const (
	// OpEqual means the lines are identical on both sides.
	OpEqual OpKind = iota
	// OpInsert means the lines exist only in sequence B.
	OpInsert
	// OpDelete means the lines exist only in sequence A.
	OpDelete
	// OpReplace means lines from A were replaced by lines from B.
	// Replace is only ever produced by merging an adjacent Delete+Insert pair.
	OpReplace
)

// String returns the string representation of an operation kind.
func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// =============================================================================
// OPERATION
// =============================================================================

// Op represents a single diff operation.
//
// Starts are 0-based indices into the input sequences. Consecutive
// operations produced by BuildOps are contiguous and non-overlapping on
// each side: ops[i].OldStart+ops[i].OldCount == ops[i+1].OldStart, and the
// same on the new side. An Insert has OldCount == 0, a Delete has
// NewCount == 0.
//
// Ops are never mutated in place; merging and filtering passes build new
// slices.
type Op struct {
	Kind     OpKind
	OldStart int // starting line in sequence A (0-based)
	OldCount int // number of lines affected in sequence A
	NewStart int // starting line in sequence B (0-based)
	NewCount int // number of lines affected in sequence B
	OldLines []string
	NewLines []string
}

// String returns a compact debug representation of the operation.
func (op Op) String() string {
	return fmt.Sprintf("Op(%s old=[%d:%d] new=[%d:%d])",
		op.Kind, op.OldStart, op.OldStart+op.OldCount,
		op.NewStart, op.NewStart+op.NewCount)
}

// =============================================================================
// REPLACE MERGING
// =============================================================================

// MergeReplaces merges each Delete operation immediately followed by an
// Insert operation into a single Replace carrying the Delete's old range
// and the Insert's new range. The scan is a greedy single left-to-right
// pass with no lookahead beyond the immediate neighbor.
func MergeReplaces(ops []Op) []Op {
	merged := make([]Op, 0, len(ops))

	i := 0
	for i < len(ops) {
		if i < len(ops)-1 && ops[i].Kind == OpDelete && ops[i+1].Kind == OpInsert {
			cur, next := ops[i], ops[i+1]
			merged = append(merged, Op{
				Kind:     OpReplace,
				OldStart: cur.OldStart,
				OldCount: cur.OldCount,
				NewStart: next.NewStart,
				NewCount: next.NewCount,
				OldLines: cur.OldLines,
				NewLines: next.NewLines,
			})
			i += 2
			continue
		}
		merged = append(merged, ops[i])
		i++
	}

	return merged
}
