// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// diff_cmd.go - The "diff" command: compare two files.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gwaghmar/examdiff/internal/config"
	"github.com/gwaghmar/examdiff/internal/diff"
	"github.com/gwaghmar/examdiff/internal/lines"
	"github.com/gwaghmar/examdiff/internal/plugin"
)

// diffView selects the output format of the diff command.
type diffView int

const (
	viewUnified diffView = iota
	viewSideBySide
	viewWords
	viewChars
)

// HandleDiff runs the diff command. Returns the process exit code.
func HandleDiff(cfg *config.Config, args []string) int {
	p := NewArgParser(args)

	pos := p.Positional()
	if len(pos) != 2 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("usage: examdiff diff <fileA> <fileB> [flags]"))
		return 2
	}
	fileA, fileB := pos[0], pos[1]

	applyCompareFlags(cfg, p)

	view := viewUnified
	switch {
	case p.BoolFlag("side-by-side") || p.BoolFlag("s"):
		view = viewSideBySide
	case p.BoolFlag("words") || p.BoolFlag("w"):
		view = viewWords
	case p.BoolFlag("chars"):
		view = viewChars
	}

	labelA, labelB := fileA, fileB
	if v := p.Flag("label-a"); v != "" {
		labelA = v
	}
	if v := p.Flag("label-b"); v != "" {
		labelB = v
	}

	width := cfg.Display.SideBySideWidth
	if v := p.Flag("width"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			width = n
		}
	}

	reg := plugin.NewRegistry()
	if cfg.Display.ShowStats || p.BoolFlag("stats") {
		reg.Register(plugin.NewStatistics(os.Stderr))
	}

	engine, err := diff.NewWithPlugins(cfg.DiffOptions(), reg)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
		return 2
	}

	run := func() (exit int) {
		linesA, err := lines.ReadLines(fileA)
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
			return 2
		}
		linesB, err := lines.ReadLines(fileB)
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
			return 2
		}

		reg.EmitStart(fileA, fileB)
		ops := engine.CompareLines(linesA, linesB)
		stats := diff.Stats(ops)

		var sb strings.Builder
		switch view {
		case viewSideBySide:
			renderSideBySide(&sb, ops, width)
		case viewWords:
			renderIntraline(&sb, engine, ops, false)
		case viewChars:
			renderIntraline(&sb, engine, ops, true)
		default:
			renderUnified(&sb, ops, labelA, labelB)
		}
		fmt.Print(sb.String())

		if stats.Identical() {
			return 0
		}
		return 1
	}

	if p.BoolFlag("watch") {
		debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
		if err := watchAndRun([]string{fileA, fileB}, debounce, func() { run() }); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
			return 2
		}
		return 0
	}

	return run()
}

// applyCompareFlags overlays command-line ignore flags on the loaded
// configuration; flags win over the config file.
func applyCompareFlags(cfg *config.Config, p *ArgParser) {
	if p.BoolFlag("ignore-case") || p.BoolFlag("i") {
		cfg.Compare.IgnoreCase = true
	}
	if p.BoolFlag("ignore-whitespace") || p.BoolFlag("b") {
		cfg.Compare.IgnoreWhitespace = true
	}
	if p.BoolFlag("ignore-blank-lines") || p.BoolFlag("B") {
		cfg.Compare.IgnoreBlankLines = true
	}
	if p.BoolFlag("ignore-leading-whitespace") {
		cfg.Compare.IgnoreLeadingWhitespace = true
	}
	if p.BoolFlag("ignore-trailing-whitespace") {
		cfg.Compare.IgnoreTrailingWhitespace = true
	}
	if p.BoolFlag("ignore-comments") {
		cfg.Compare.IgnoreComments = true
	}
	if patterns := p.FlagAll("comment-pattern"); len(patterns) > 0 {
		cfg.Compare.IgnoreComments = true
		cfg.Compare.CommentPatterns = append(cfg.Compare.CommentPatterns, patterns...)
	}
	if patterns := p.FlagAll("ignore-pattern"); len(patterns) > 0 {
		cfg.Compare.IgnoreLinePatterns = append(cfg.Compare.IgnoreLinePatterns, patterns...)
	}
	if p.BoolFlag("fuzzy") {
		cfg.Compare.FuzzyMatching = true
	}
	if p.BoolFlag("moving-blocks") {
		cfg.Compare.MovingBlockDetection = true
	}
}
