// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package myers

import (
	"math/rand"
	"testing"
)

// =============================================================================
// PATH TESTS
// =============================================================================

func TestShortestEditPath_Endpoints(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
	}{
		{"both empty", nil, nil},
		{"identical", []string{"x", "y"}, []string{"x", "y"}},
		{"disjoint", []string{"a", "b"}, []string{"c", "d"}},
		{"a empty", nil, []string{"x"}},
		{"b empty", []string{"x"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := ShortestEditPath(tc.a, tc.b)
			if len(path) == 0 {
				t.Fatal("empty path")
			}
			if path[0] != (Point{0, 0}) {
				t.Errorf("path starts at %v, want (0,0)", path[0])
			}
			last := path[len(path)-1]
			if last != (Point{len(tc.a), len(tc.b)}) {
				t.Errorf("path ends at %v, want (%d,%d)", last, len(tc.a), len(tc.b))
			}
		})
	}
}

func TestShortestEditPath_Monotonic(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "x", "c", "y", "e", "f"}

	path := ShortestEditPath(a, b)
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx < 0 || dy < 0 || dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("step %d: %v -> %v is not a unit move", i, path[i-1], path[i])
		}
	}
}

// =============================================================================
// DIFF SCENARIO TESTS
// =============================================================================

func kinds(ops []Op) []OpKind {
	out := make([]OpKind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

func kindsEqual(got []OpKind, want ...OpKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDiff_Identical(t *testing.T) {
	a := []string{"line1", "line2", "line3"}

	ops := Diff(a, a)

	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d: %v", len(ops), ops)
	}
	if ops[0].Kind != OpEqual || ops[0].OldCount != 3 || ops[0].NewCount != 3 {
		t.Errorf("expected full Equal op, got %v", ops[0])
	}
}

func TestDiff_BothEmpty(t *testing.T) {
	ops := Diff(nil, nil)
	if len(ops) != 0 {
		t.Errorf("expected no ops for empty inputs, got %v", ops)
	}
}

func TestDiff_EmptyVersusNonEmpty(t *testing.T) {
	ops := Diff(nil, []string{"x", "y"})

	if len(ops) != 1 {
		t.Fatalf("expected a single Insert, got %v", ops)
	}
	op := ops[0]
	if op.Kind != OpInsert || op.OldCount != 0 || op.NewCount != 2 {
		t.Errorf("expected Insert old=0 new=2, got %v", op)
	}
	if len(op.NewLines) != 2 || op.NewLines[0] != "x" || op.NewLines[1] != "y" {
		t.Errorf("expected NewLines [x y], got %v", op.NewLines)
	}
}

func TestDiff_PureInsertion(t *testing.T) {
	ops := Diff([]string{"l1", "l3"}, []string{"l1", "l2", "l3"})

	if !kindsEqual(kinds(ops), OpEqual, OpInsert, OpEqual) {
		t.Fatalf("expected [equal insert equal], got %v", ops)
	}
	if ops[1].NewLines[0] != "l2" {
		t.Errorf("expected inserted line l2, got %v", ops[1].NewLines)
	}
}

func TestDiff_PureDeletion(t *testing.T) {
	ops := Diff([]string{"l1", "l2", "l3"}, []string{"l1", "l3"})

	if !kindsEqual(kinds(ops), OpEqual, OpDelete, OpEqual) {
		t.Fatalf("expected [equal delete equal], got %v", ops)
	}
	if ops[1].OldLines[0] != "l2" {
		t.Errorf("expected deleted line l2, got %v", ops[1].OldLines)
	}
}

func TestDiff_ReplaceViaAdjacencyMerge(t *testing.T) {
	ops := Diff([]string{"a", "old", "c"}, []string{"a", "new", "c"})

	if !kindsEqual(kinds(ops), OpEqual, OpReplace, OpEqual) {
		t.Fatalf("expected [equal replace equal], got %v", ops)
	}
	rep := ops[1]
	if rep.OldLines[0] != "old" || rep.NewLines[0] != "new" {
		t.Errorf("unexpected replace content: %v -> %v", rep.OldLines, rep.NewLines)
	}
}

func TestDiff_CommonPrefixAndSuffix(t *testing.T) {
	ops := Diff(
		[]string{"line1", "line2", "line3", "old"},
		[]string{"line1", "line2", "line3", "new"},
	)
	if ops[0].Kind != OpEqual || ops[0].OldCount != 3 {
		t.Errorf("expected leading Equal of 3 lines, got %v", ops[0])
	}

	ops = Diff(
		[]string{"old", "line1", "line2", "line3"},
		[]string{"new", "line1", "line2", "line3"},
	)
	last := ops[len(ops)-1]
	if last.Kind != OpEqual || last.OldCount != 3 {
		t.Errorf("expected trailing Equal of 3 lines, got %v", last)
	}
}

// =============================================================================
// PROPERTY TESTS
// =============================================================================

func randomSeq(rng *rand.Rand, maxLen int) []string {
	alphabet := []string{"a", "b", "c", "d"}
	n := rng.Intn(maxLen + 1)
	seq := make([]string, n)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return seq
}

// bruteLCS is an O(N*M) longest-common-subsequence length, used as the
// oracle for the minimality property.
func bruteLCS(a, b []string) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp[len(a)][len(b)]
}

func editUnits(ops []Op) (deleted, inserted int) {
	for _, op := range ops {
		switch op.Kind {
		case OpDelete:
			deleted += op.OldCount
		case OpInsert:
			inserted += op.NewCount
		case OpReplace:
			deleted += op.OldCount
			inserted += op.NewCount
		}
	}
	return deleted, inserted
}

func TestDiff_Minimality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 500; trial++ {
		a := randomSeq(rng, 8)
		b := randomSeq(rng, 8)

		ops := Diff(a, b)
		deleted, inserted := editUnits(ops)

		want := len(a) + len(b) - 2*bruteLCS(a, b)
		if deleted+inserted != want {
			t.Fatalf("a=%v b=%v: %d edit units, want %d (ops %v)",
				a, b, deleted+inserted, want, ops)
		}
	}
}

func TestDiff_Coverage(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 200; trial++ {
		a := randomSeq(rng, 10)
		b := randomSeq(rng, 10)

		ops := Diff(a, b)

		var gotA, gotB []string
		for _, op := range ops {
			gotA = append(gotA, op.OldLines...)
			gotB = append(gotB, op.NewLines...)
		}

		if !seqEqual(gotA, a) {
			t.Fatalf("old lines do not reconstruct A: got %v want %v", gotA, a)
		}
		if !seqEqual(gotB, b) {
			t.Fatalf("new lines do not reconstruct B: got %v want %v", gotB, b)
		}
	}
}

func TestDiff_EditCountSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 200; trial++ {
		a := randomSeq(rng, 8)
		b := randomSeq(rng, 8)

		delAB, insAB := editUnits(Diff(a, b))
		delBA, insBA := editUnits(Diff(b, a))

		if delAB != insBA || insAB != delBA {
			t.Fatalf("a=%v b=%v: edits (%d,%d) vs reversed (%d,%d)",
				a, b, delAB, insAB, delBA, insBA)
		}
	}
}

func TestDiff_Contiguity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for trial := 0; trial < 200; trial++ {
		a := randomSeq(rng, 10)
		b := randomSeq(rng, 10)

		ops := Diff(a, b)
		oldPos, newPos := 0, 0
		for i, op := range ops {
			if op.OldStart != oldPos || op.NewStart != newPos {
				t.Fatalf("op %d not contiguous: %v (expected old=%d new=%d)",
					i, op, oldPos, newPos)
			}
			oldPos += op.OldCount
			newPos += op.NewCount
		}
		if oldPos != len(a) || newPos != len(b) {
			t.Fatalf("ops do not cover inputs: reached (%d,%d) of (%d,%d)",
				oldPos, newPos, len(a), len(b))
		}
	}
}

func seqEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// MERGE REPLACES
// =============================================================================

func TestMergeReplaces_DeleteInsertPair(t *testing.T) {
	ops := []Op{
		{Kind: OpDelete, OldStart: 0, OldCount: 1, NewStart: 0, OldLines: []string{"x"}},
		{Kind: OpInsert, OldStart: 1, NewStart: 0, NewCount: 1, NewLines: []string{"y"}},
	}

	merged := MergeReplaces(ops)
	if len(merged) != 1 || merged[0].Kind != OpReplace {
		t.Fatalf("expected single Replace, got %v", merged)
	}
	if merged[0].OldCount != 1 || merged[0].NewCount != 1 {
		t.Errorf("unexpected counts in %v", merged[0])
	}
}

func TestMergeReplaces_InsertDeleteNotMerged(t *testing.T) {
	ops := []Op{
		{Kind: OpInsert, NewCount: 1, NewLines: []string{"y"}},
		{Kind: OpDelete, OldCount: 1, OldLines: []string{"x"}},
	}

	merged := MergeReplaces(ops)
	if len(merged) != 2 {
		t.Fatalf("Insert followed by Delete must not merge, got %v", merged)
	}
}
