// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package myers

// =============================================================================
// EDIT GRAPH PATH
// =============================================================================

// Point is a coordinate in the edit graph: X indexes sequence A in [0,N],
// Y indexes sequence B in [0,M].
type Point struct {
	X int
	Y int
}

// Path is an ordered walk through the edit graph from (0,0) to (N,M).
// Coordinates are non-decreasing and each step advances one or both
// coordinates by exactly 1. For identical or empty inputs the path
// degenerates to the single point (0,0) == (N,M).
type Path []Point

// =============================================================================
// SHORTEST EDIT SCRIPT SEARCH
// =============================================================================

// ShortestEditPath finds the minimal-length path through the edit graph of
// a and b using Myers' algorithm.
//
// The search maintains, for each diagonal k = x-y, the furthest-reaching
// x-coordinate at the current edit distance d. Diagonals are explored for
// k in {-d, -d+2, ..., d}; on each the walker first takes a single down
// (delete) or right (insert) step, then extends greedily along the
// diagonal while lines match. The furthest-reach map is snapshotted at the
// start of every distance iteration so the final path can be reconstructed
// by backtracking.
//
// Time is O((N+M)D), working space O(N+M) per iteration plus the stored
// snapshots used for backtracking.
func ShortestEditPath(a, b []string) Path {
	n, m := len(a), len(b)
	maxD := n + m

	// furthest[k] is the furthest x reached on diagonal k. Seeding
	// furthest[1] = 0 makes the d=0, k=0 iteration start at the origin.
	furthest := map[int]int{1: 0}
	trace := make([]map[int]int, 0, maxD+1)

	for d := 0; d <= maxD; d++ {
		trace = append(trace, snapshot(furthest))

		for k := -d; k <= d; k += 2 {
			var x int
			if takeDownStep(furthest, k, d) {
				x = furthest[k+1] // down: delete from A, x unchanged
			} else {
				x = furthest[k-1] + 1 // right: insert from B
			}
			y := x - k

			// Extend along the diagonal while lines match.
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			furthest[k] = x

			if x >= n && y >= m {
				return backtrack(trace, d, n, m)
			}
		}
	}

	// Unreachable for finite inputs: distance d = N+M always suffices
	// (delete all of A, insert all of B). Getting here means the
	// tie-break logic is broken.
	panic("myers: edit distance exceeded N+M, tie-break invariant violated")
}

// takeDownStep reports whether the walker on diagonal k at distance d
// should move down (consume from A) rather than right. Down is taken at
// the lower boundary k == -d, or when the neighbor diagonal k+1 has
// reached strictly further than k-1. The identical rule is re-applied
// during backtracking, so both directions of the algorithm agree on every
// tie.
func takeDownStep(furthest map[int]int, k, d int) bool {
	return k == -d || (k != d && reach(furthest, k-1) < reach(furthest, k+1))
}

// reach returns the furthest x recorded for diagonal k, or -1 when the
// diagonal has not been visited. The -1 sentinel keeps unvisited diagonals
// from winning tie-breaks.
func reach(furthest map[int]int, k int) int {
	if x, ok := furthest[k]; ok {
		return x
	}
	return -1
}

func snapshot(furthest map[int]int) map[int]int {
	copied := make(map[int]int, len(furthest))
	for k, x := range furthest {
		copied[k] = x
	}
	return copied
}

// =============================================================================
// BACKTRACKING
// =============================================================================

// backtrack reconstructs the full coordinate path from (n,m) back to the
// origin using the furthest-reach snapshots, one edit distance at a time.
// At each distance it re-derives whether the move onto the current
// diagonal was down or right with the same tie-break used by the forward
// search, walks back along any diagonal run, then records the edit step.
func backtrack(trace []map[int]int, d, n, m int) Path {
	x, y := n, m
	path := Path{{x, y}}

	for depth := d; depth > 0; depth-- {
		furthest := trace[depth]
		k := x - y

		var prevK int
		if takeDownStep(furthest, k, depth) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := furthest[prevK]
		prevY := prevX - prevK

		// Walk back along the diagonal run.
		for x > prevX && y > prevY {
			x--
			y--
			path = append(path, Point{x, y})
		}

		// Record the edit step that entered the run.
		if x > prevX {
			path = append(path, Point{prevX, y})
			x = prevX
		} else {
			path = append(path, Point{x, prevY})
			y = prevY
		}
	}

	reverse(path)

	// The path must always span (0,0)..(n,m), even for zero-edit inputs,
	// so downstream builders never see a path too short to represent the
	// comparison.
	if len(path) == 0 || path[0] != (Point{0, 0}) {
		path = append(Path{{0, 0}}, path...)
	}
	if path[len(path)-1] != (Point{n, m}) {
		path = append(path, Point{n, m})
	}
	return path
}

func reverse(path Path) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
