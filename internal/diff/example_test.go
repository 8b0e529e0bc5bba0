// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff_test

import (
	"fmt"

	"github.com/gwaghmar/examdiff/internal/diff"
)

func ExampleEngine_CompareLines() {
	e, _ := diff.New(diff.Options{})

	ops := e.CompareLines(
		[]string{"line1", "line2", "line3"},
		[]string{"line1", "changed", "line3"},
	)
	fmt.Println(diff.FormatUnified(ops, "a.txt", "b.txt", 3))
	// Output:
	// --- a.txt
	// +++ b.txt
	// @@ -2,1 +2,1 @@
	// -line2
	// +changed
}

func ExampleEngine_ThreeWayMerge() {
	e, _ := diff.New(diff.Options{})

	merged, conflicts := e.ThreeWayMerge(
		[]string{"a", "b", "c"},
		[]string{"a", "b changed", "c"},
		[]string{"a", "b", "c changed"},
	)
	fmt.Println(len(conflicts), "conflicts")
	for _, line := range merged {
		fmt.Println(line)
	}
	// Output:
	// 0 conflicts
	// a
	// b changed
	// c changed
}

func ExampleStats() {
	e, _ := diff.New(diff.Options{})

	ops := e.CompareLines(
		[]string{"keep", "old"},
		[]string{"keep", "new", "extra"},
	)
	fmt.Println(diff.Stats(ops).Summary())
	// Output:
	// +2 -1 ~1
}
