// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package seqmatch

// =============================================================================
// ALIGNMENT TYPES
// =============================================================================

// Match describes one contiguous matching block: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// OpTag labels an aligned span.
type OpTag byte

const (
	// TagEqual: a[I1:I2] == b[J1:J2].
	TagEqual OpTag = 'e'
	// TagReplace: a[I1:I2] should be replaced by b[J1:J2].
	TagReplace OpTag = 'r'
	// TagDelete: a[I1:I2] should be deleted (J1 == J2).
	TagDelete OpTag = 'd'
	// TagInsert: b[J1:J2] should be inserted at a[I1:I1] (I1 == I2).
	TagInsert OpTag = 'i'
)

// OpCode is a tagged span describing how to turn a into b. Opcodes are
// contiguous: each span's I1/J1 equal the previous span's I2/J2.
type OpCode struct {
	Tag OpTag
	I1  int
	I2  int
	J1  int
	J2  int
}

// =============================================================================
// MATCHER
// =============================================================================

// Matcher aligns two sequences of comparable tokens. Matching blocks and
// opcodes are computed lazily and cached; a Matcher is not safe for
// concurrent use.
type Matcher struct {
	a              []string
	b              []string
	b2j            map[string][]int
	matchingBlocks []Match
	opCodes        []OpCode
}

// NewMatcher creates a matcher over the two sequences.
func NewMatcher(a, b []string) *Matcher {
	m := &Matcher{a: a, b: b}
	m.chainB()
	return m
}

// chainB builds the token -> indices map for sequence b, which drives the
// longest-match search.
func (m *Matcher) chainB() {
	b2j := make(map[string][]int, len(m.b))
	for j, tok := range m.b {
		b2j[tok] = append(b2j[tok], j)
	}
	m.b2j = b2j
}

// findLongestMatch finds the longest matching block within a[alo:ahi] and
// b[blo:bhi]. Of all maximal blocks it returns the one starting earliest
// in a, and among those, earliest in b. Returns a zero-size match at
// (alo, blo) when nothing matches.
func (m *Matcher) findLongestMatch(alo, ahi, blo, bhi int) Match {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest match ending with a[i-1]
	// and b[j], carried across iterations of i.
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks returns the matching blocks, monotonically increasing in
// both A and B, with adjacent blocks collapsed and a terminating
// zero-size sentinel at (len(a), len(b)).
func (m *Matcher) MatchingBlocks() []Match {
	if m.matchingBlocks != nil {
		return m.matchingBlocks
	}

	var matchBlocks func(alo, ahi, blo, bhi int, matched []Match) []Match
	matchBlocks = func(alo, ahi, blo, bhi int, matched []Match) []Match {
		match := m.findLongestMatch(alo, ahi, blo, bhi)
		if match.Size > 0 {
			if alo < match.A && blo < match.B {
				matched = matchBlocks(alo, match.A, blo, match.B, matched)
			}
			matched = append(matched, match)
			if match.A+match.Size < ahi && match.B+match.Size < bhi {
				matched = matchBlocks(match.A+match.Size, ahi, match.B+match.Size, bhi, matched)
			}
		}
		return matched
	}
	matched := matchBlocks(0, len(m.a), 0, len(m.b), nil)

	// Collapse adjacent blocks so no two consecutive entries describe
	// touching equal regions.
	var collapsed []Match
	i1, j1, k1 := 0, 0, 0
	for _, blk := range matched {
		if i1+k1 == blk.A && j1+k1 == blk.B {
			k1 += blk.Size
		} else {
			if k1 > 0 {
				collapsed = append(collapsed, Match{i1, j1, k1})
			}
			i1, j1, k1 = blk.A, blk.B, blk.Size
		}
	}
	if k1 > 0 {
		collapsed = append(collapsed, Match{i1, j1, k1})
	}

	collapsed = append(collapsed, Match{len(m.a), len(m.b), 0})
	m.matchingBlocks = collapsed
	return m.matchingBlocks
}

// OpCodes returns the list of tagged spans describing how to turn a into
// b. The first span starts at (0,0) and spans are contiguous through to
// (len(a), len(b)).
func (m *Matcher) OpCodes() []OpCode {
	if m.opCodes != nil {
		return m.opCodes
	}

	blocks := m.MatchingBlocks()
	codes := make([]OpCode, 0, len(blocks)*2)

	i, j := 0, 0
	for _, blk := range blocks {
		// Emit the non-matching gap before this block, then the block
		// itself. The zero-size sentinel only contributes a gap.
		var tag OpTag
		switch {
		case i < blk.A && j < blk.B:
			tag = TagReplace
		case i < blk.A:
			tag = TagDelete
		case j < blk.B:
			tag = TagInsert
		}
		if tag != 0 {
			codes = append(codes, OpCode{tag, i, blk.A, j, blk.B})
		}
		i, j = blk.A+blk.Size, blk.B+blk.Size
		if blk.Size > 0 {
			codes = append(codes, OpCode{TagEqual, blk.A, i, blk.B, j})
		}
	}

	m.opCodes = codes
	return m.opCodes
}

// Ratio returns a similarity measure in [0,1]: twice the number of
// matched tokens over the total number of tokens in both sequences.
// Two empty sequences are fully similar.
func (m *Matcher) Ratio() float64 {
	matches := 0
	for _, blk := range m.MatchingBlocks() {
		matches += blk.Size
	}
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matches) / float64(total)
}

// =============================================================================
// STRING HELPERS
// =============================================================================

// SplitRunes explodes a string into one-rune tokens for character-level
// alignment. Indices into the result are rune positions, not byte offsets.
func SplitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// StringRatio is a convenience for the similarity of two strings, aligned
// rune by rune. Used by fuzzy replace-merging with a whole-block text on
// each side.
func StringRatio(a, b string) float64 {
	return NewMatcher(SplitRunes(a), SplitRunes(b)).Ratio()
}
