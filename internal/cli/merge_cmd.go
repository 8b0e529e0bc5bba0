// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// merge_cmd.go - The "merge" command: three-way merge with conflict
// markers.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gwaghmar/examdiff/internal/config"
	"github.com/gwaghmar/examdiff/internal/diff"
	"github.com/gwaghmar/examdiff/internal/lines"
	"github.com/gwaghmar/examdiff/internal/util"
)

// HandleMerge runs the merge command. Returns the process exit code:
// 0 for a clean merge, 1 when conflicts were found, 2 on error.
func HandleMerge(cfg *config.Config, args []string) int {
	p := NewArgParser(args)

	pos := p.Positional()
	if len(pos) != 3 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("usage: examdiff merge <base> <yours> <theirs> [-o output]"))
		return 2
	}

	engine, err := diff.New(cfg.DiffOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
		return 2
	}

	var seqs [3][]string
	for i, path := range pos {
		seq, err := lines.ReadLines(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
			return 2
		}
		seqs[i] = seq
	}

	merged, conflicts := engine.ThreeWayMerge(seqs[0], seqs[1], seqs[2])

	output := p.Flag("output")
	if output == "" {
		output = p.Flag("o")
	}

	if output != "" {
		if err := util.AtomicWriteFile(output, []byte(lines.Join(merged)), 0644); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("examdiff: "+err.Error()))
			return 2
		}
	} else {
		var sb strings.Builder
		renderMerged(&sb, merged)
		fmt.Print(sb.String())
	}

	if len(conflicts) > 0 {
		fmt.Fprintln(os.Stderr, ConflictStyle.Render(
			fmt.Sprintf("%d conflict(s) found", len(conflicts))))
		for _, c := range conflicts {
			fmt.Fprintln(os.Stderr, DimStyle.Render(
				fmt.Sprintf("  conflict at base line %d", c.Line+1)))
		}
		return 1
	}
	return 0
}
