// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreeWayMerge_NoChanges(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"line1", "line2", "line3"}

	merged, conflicts := e.ThreeWayMerge(base, base, base)

	assert.Equal(t, base, merged)
	assert.Empty(t, conflicts)
}

func TestThreeWayMerge_YoursOnly(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"a", "b", "c"}
	yours := []string{"a", "modified", "c"}

	merged, conflicts := e.ThreeWayMerge(base, yours, base)

	assert.Equal(t, yours, merged)
	assert.Empty(t, conflicts)
}

func TestThreeWayMerge_TheirsOnly(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"a", "b", "c"}
	theirs := []string{"a", "modified", "c"}

	merged, conflicts := e.ThreeWayMerge(base, base, theirs)

	assert.Equal(t, theirs, merged)
	assert.Empty(t, conflicts)
}

func TestThreeWayMerge_SameChangeBothSides(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"a", "b", "c"}
	changed := []string{"a", "modified", "c"}

	merged, conflicts := e.ThreeWayMerge(base, changed, changed)

	assert.Equal(t, changed, merged)
	assert.Empty(t, conflicts)
}

func TestThreeWayMerge_Conflict(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"a", "b", "c"}
	yours := []string{"a", "from-yours", "c"}
	theirs := []string{"a", "from-theirs", "c"}

	merged, conflicts := e.ThreeWayMerge(base, yours, theirs)

	require.Len(t, conflicts, 1)
	c := conflicts[0]
	assert.Equal(t, 1, c.Line)
	assert.Equal(t, []string{"b"}, c.BaseLines)
	assert.Equal(t, []string{"from-yours"}, c.YoursLines)
	assert.Equal(t, []string{"from-theirs"}, c.TheirsLines)

	want := []string{
		"a",
		MarkerYours,
		"from-yours",
		MarkerSeparator,
		"from-theirs",
		MarkerTheirs,
		"c",
	}
	assert.Equal(t, want, merged)
}

func TestThreeWayMerge_IndependentRegions(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"one", "two", "three", "four", "five"}
	yours := []string{"ONE", "two", "three", "four", "five"}
	theirs := []string{"one", "two", "three", "four", "FIVE"}

	merged, conflicts := e.ThreeWayMerge(base, yours, theirs)

	assert.Empty(t, conflicts)
	assert.Equal(t, []string{"ONE", "two", "three", "four", "FIVE"}, merged)
}

func TestThreeWayMerge_DeletionOneSide(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"a", "b", "c"}
	yours := []string{"a", "c"}

	merged, conflicts := e.ThreeWayMerge(base, yours, base)

	assert.Empty(t, conflicts)
	assert.Equal(t, []string{"a", "c"}, merged)
}

func TestThreeWayMerge_MultiLineConflictSpan(t *testing.T) {
	e := mustEngine(t, Options{})
	base := []string{"keep", "x1", "x2", "keep2"}
	yours := []string{"keep", "y1", "y2", "keep2"}
	theirs := []string{"keep", "t1", "t2", "keep2"}

	merged, conflicts := e.ThreeWayMerge(base, yours, theirs)

	require.Len(t, conflicts, 1)
	assert.Equal(t, []string{"x1", "x2"}, conflicts[0].BaseLines)

	assert.Equal(t, "keep", merged[0])
	assert.Equal(t, "keep2", merged[len(merged)-1])
	assert.Contains(t, merged, MarkerYours)
	assert.Contains(t, merged, MarkerSeparator)
	assert.Contains(t, merged, MarkerTheirs)
}

func TestThreeWayMerge_EmptyBase(t *testing.T) {
	e := mustEngine(t, Options{})

	merged, conflicts := e.ThreeWayMerge(nil, nil, nil)
	assert.Empty(t, merged)
	assert.Empty(t, conflicts)
}
