// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package diff

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gwaghmar/examdiff/internal/myers"
	"github.com/gwaghmar/examdiff/internal/plugin"
	"github.com/gwaghmar/examdiff/internal/seqmatch"
)

// ErrBadPattern marks a malformed regex in CommentPatterns or
// IgnoreLinePatterns. The wrapped error names the offending pattern so
// callers can distinguish a configuration mistake from an engine bug.
var ErrBadPattern = errors.New("invalid ignore pattern")

// =============================================================================
// ENGINE
// =============================================================================

// Engine orchestrates comparisons. It holds the compiled form of its
// Options and an optional plugin registry; it has no other state and its
// methods are pure.
type Engine struct {
	opts           Options
	commentRegexps []*regexp.Regexp
	ignoreRegexps  []*regexp.Regexp
	folder         cases.Caser
	plugins        *plugin.Registry
}

// New creates an engine for the given options. All regex patterns are
// compiled here; a malformed pattern returns an error wrapping
// ErrBadPattern and naming the pattern string.
func New(opts Options) (*Engine, error) {
	e := &Engine{
		opts:   opts,
		folder: cases.Fold(),
	}

	if opts.IgnoreComments {
		patterns := opts.CommentPatterns
		if len(patterns) == 0 {
			patterns = DefaultCommentPatterns
		}
		for _, p := range patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("%w: comment pattern %q: %v", ErrBadPattern, p, err)
			}
			e.commentRegexps = append(e.commentRegexps, re)
		}
	}

	for _, p := range opts.IgnoreLinePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: ignore-line pattern %q: %v", ErrBadPattern, p, err)
		}
		e.ignoreRegexps = append(e.ignoreRegexps, re)
	}

	return e, nil
}

// NewWithPlugins is like New but attaches a plugin registry. The registry
// is consulted on every CompareLines call: ProcessDiff hooks may rewrite
// the operation list, and OnCompareComplete observes the final result.
func NewWithPlugins(opts Options, reg *plugin.Registry) (*Engine, error) {
	e, err := New(opts)
	if err != nil {
		return nil, err
	}
	e.plugins = reg
	return e, nil
}

// Options returns a copy of the engine's options.
func (e *Engine) Options() Options {
	return e.opts
}

// =============================================================================
// PREPROCESSING
// =============================================================================

// preprocess applies the engine's ignore options to one sequence. It
// returns two parallel slices: keys, the normalized lines the solver
// compares, and display, the text attributed to results at the same
// indices. Display lines carry the trim and comment-strip stages (what a
// user asked to ignore is genuinely gone from the output), while
// whitespace collapsing and case folding affect only the keys, so output
// text keeps its original spacing and case.
func (e *Engine) preprocess(lines []string) (keys, display []string) {
	keys = make([]string, 0, len(lines))
	display = make([]string, 0, len(lines))

	for _, line := range lines {
		if e.opts.IgnoreBlankLines && strings.TrimSpace(line) == "" {
			continue
		}

		if e.opts.IgnoreLeadingWhitespace {
			line = strings.TrimLeft(line, " \t")
		}
		if e.opts.IgnoreTrailingWhitespace {
			line = strings.TrimRight(line, " \t")
		}
		for _, re := range e.commentRegexps {
			line = re.ReplaceAllString(line, "")
		}

		if matchesAny(line, e.ignoreRegexps) {
			continue
		}

		key := line
		if e.opts.IgnoreWhitespace {
			key = strings.Join(strings.Fields(key), " ")
		}
		if e.opts.IgnoreCase {
			key = e.folder.String(key)
		}

		keys = append(keys, key)
		display = append(display, line)
	}

	return keys, display
}

func matchesAny(line string, regexps []*regexp.Regexp) bool {
	for _, re := range regexps {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// =============================================================================
// LINE-LEVEL COMPARISON
// =============================================================================

// CompareLines compares two sequences of lines and returns the ordered
// diff operations. The solver runs over the preprocessed keys; operation
// content is attributed to the display lines at the same indices, so
// lines dropped by a filter are invisible on both sides of the output.
func (e *Engine) CompareLines(a, b []string) []myers.Op {
	keysA, displayA := e.preprocess(a)
	keysB, displayB := e.preprocess(b)

	path := myers.ShortestEditPath(keysA, keysB)
	ops := myers.MergeReplaces(myers.BuildOps(path, displayA, displayB))

	if e.opts.FuzzyMatching {
		ops = mergeFuzzy(ops)
	}
	if e.opts.MovingBlockDetection {
		ops = detectMovingBlocks(ops)
	}

	if e.plugins != nil {
		ops = e.plugins.ProcessDiff(ops)
		e.plugins.EmitComplete(ops)
	}

	return ops
}

// =============================================================================
// POST-PROCESSING
// =============================================================================

// mergeFuzzy merges each adjacent Delete+Insert pair whose joined block
// text is at least FuzzyThreshold similar into a single Replace. Same
// mechanics as myers.MergeReplaces, but gated on the similarity ratio of
// the whole blocks rather than unconditional adjacency.
func mergeFuzzy(ops []myers.Op) []myers.Op {
	merged := make([]myers.Op, 0, len(ops))

	i := 0
	for i < len(ops) {
		if i < len(ops)-1 && ops[i].Kind == myers.OpDelete && ops[i+1].Kind == myers.OpInsert {
			cur, next := ops[i], ops[i+1]
			oldText := strings.Join(cur.OldLines, "\n")
			newText := strings.Join(next.NewLines, "\n")

			if seqmatch.StringRatio(oldText, newText) >= FuzzyThreshold {
				merged = append(merged, myers.Op{
					Kind:     myers.OpReplace,
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
		}
		merged = append(merged, ops[i])
		i++
	}

	return merged
}

// detectMovingBlocks pairs Delete blocks with Insert blocks carrying
// identical content. Rewriting the paired operations into explicit move
// operations is not implemented: the pairing runs, and the input is
// returned unchanged. Consumers rely on this pass being a pure
// pass-through, so completing the feature would be a behavior change, not
// a fix.
func detectMovingBlocks(ops []myers.Op) []myers.Op {
	type block struct {
		start int
		lines []string
	}

	var deleted, inserted []block
	for _, op := range ops {
		switch op.Kind {
		case myers.OpDelete:
			deleted = append(deleted, block{op.OldStart, op.OldLines})
		case myers.OpInsert:
			inserted = append(inserted, block{op.NewStart, op.NewLines})
		}
	}

	moves := make(map[int]int)
	taken := make(map[int]bool)
	for i, del := range deleted {
		for j, ins := range inserted {
			if taken[j] {
				continue
			}
			if equalLines(del.lines, ins.lines) {
				moves[i] = j
				taken[j] = true
				break
			}
		}
	}

	_ = moves
	return ops
}

func equalLines(a, b []string) bool {
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
