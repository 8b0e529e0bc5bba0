// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import (
	"regexp"
	"unicode/utf8"

	"github.com/gwaghmar/examdiff/internal/myers"
	"github.com/gwaghmar/examdiff/internal/seqmatch"
)

// =============================================================================
// INTRALINE DIFF TYPES
// =============================================================================

// WordDiff is one word-level difference within a line. Positions are
// cumulative rune offsets computed independently per side: StartPos/EndPos
// of an Equal or Delete token index into line A, those of an Insert token
// index into line B.
type WordDiff struct {
	Kind     myers.OpKind
	Word     string
	StartPos int
	EndPos   int
}

// CharDiff is one character-level difference. Position is the rune index
// of the character in its own source string.
type CharDiff struct {
	Kind     myers.OpKind
	Char     string
	Position int
}

// wordPattern tokenizes a line into alternating runs of non-whitespace
// and whitespace, each run an atomic token.
var wordPattern = regexp.MustCompile(`\S+|\s+`)

// =============================================================================
// WORD-LEVEL COMPARISON
// =============================================================================

// CompareWords compares two lines word by word. Whitespace runs are
// tokens too, so reflowed spacing shows up as its own change rather than
// shifting every following word.
func (e *Engine) CompareWords(lineA, lineB string) []WordDiff {
	wordsA := wordPattern.FindAllString(lineA, -1)
	wordsB := wordPattern.FindAllString(lineB, -1)

	m := seqmatch.NewMatcher(wordsA, wordsB)

	var diffs []WordDiff
	posA, posB := 0, 0

	appendA := func(kind myers.OpKind, i1, i2 int) {
		for _, w := range wordsA[i1:i2] {
			n := utf8.RuneCountInString(w)
			diffs = append(diffs, WordDiff{Kind: kind, Word: w, StartPos: posA, EndPos: posA + n})
			posA += n
		}
	}
	appendB := func(kind myers.OpKind, j1, j2 int) {
		for _, w := range wordsB[j1:j2] {
			n := utf8.RuneCountInString(w)
			diffs = append(diffs, WordDiff{Kind: kind, Word: w, StartPos: posB, EndPos: posB + n})
			posB += n
		}
	}

	for _, op := range m.OpCodes() {
		switch op.Tag {
		case seqmatch.TagEqual:
			appendA(myers.OpEqual, op.I1, op.I2)
			for _, w := range wordsB[op.J1:op.J2] {
				posB += utf8.RuneCountInString(w)
			}
		case seqmatch.TagDelete:
			appendA(myers.OpDelete, op.I1, op.I2)
		case seqmatch.TagInsert:
			appendB(myers.OpInsert, op.J1, op.J2)
		case seqmatch.TagReplace:
			appendA(myers.OpDelete, op.I1, op.I2)
			appendB(myers.OpInsert, op.J1, op.J2)
		}
	}

	return diffs
}

// =============================================================================
// CHARACTER-LEVEL COMPARISON
// =============================================================================

// CompareChars compares two strings character by character.
func (e *Engine) CompareChars(a, b string) []CharDiff {
	charsA := seqmatch.SplitRunes(a)
	charsB := seqmatch.SplitRunes(b)

	m := seqmatch.NewMatcher(charsA, charsB)

	var diffs []CharDiff
	for _, op := range m.OpCodes() {
		switch op.Tag {
		case seqmatch.TagEqual:
			for i := op.I1; i < op.I2; i++ {
				diffs = append(diffs, CharDiff{Kind: myers.OpEqual, Char: charsA[i], Position: i})
			}
		case seqmatch.TagDelete:
			for i := op.I1; i < op.I2; i++ {
				diffs = append(diffs, CharDiff{Kind: myers.OpDelete, Char: charsA[i], Position: i})
			}
		case seqmatch.TagInsert:
			for j := op.J1; j < op.J2; j++ {
				diffs = append(diffs, CharDiff{Kind: myers.OpInsert, Char: charsB[j], Position: j})
			}
		case seqmatch.TagReplace:
			for i := op.I1; i < op.I2; i++ {
				diffs = append(diffs, CharDiff{Kind: myers.OpDelete, Char: charsA[i], Position: i})
			}
			for j := op.J1; j < op.J2; j++ {
				diffs = append(diffs, CharDiff{Kind: myers.OpInsert, Char: charsB[j], Position: j})
			}
		}
	}

	return diffs
}
