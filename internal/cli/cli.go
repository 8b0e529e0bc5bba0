// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// cli.go - Command parsing and dispatch for examdiff.

package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gwaghmar/examdiff/internal/config"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdHelp Command = iota
	CmdDiff
	CmdMerge
	CmdVersion
)

// Parse determines the command and its remaining arguments.
func Parse(args []string) (Command, []string) {
	if len(args) == 0 {
		return CmdHelp, nil
	}
	switch args[0] {
	case "diff":
		return CmdDiff, args[1:]
	case "merge":
		return CmdMerge, args[1:]
	case "version", "--version", "-v":
		return CmdVersion, args[1:]
	case "help", "--help", "-h":
		return CmdHelp, args[1:]
	default:
		// Bare "examdiff a b" is a diff.
		return CmdDiff, args
	}
}

// Run parses and executes a command line. Returns the process exit code.
func Run(args []string) int {
	cmd, rest := Parse(args)

	cfg, err := loadConfig(rest)
	if err != nil {
		fmt.Fprintln(os.Stderr, "examdiff: "+err.Error())
		return 2
	}

	SetColorMode(cfg.Display.Color)
	applyColorProfile()

	switch cmd {
	case CmdDiff:
		return HandleDiff(cfg, rest)
	case CmdMerge:
		return HandleMerge(cfg, rest)
	case CmdVersion:
		fmt.Printf("examdiff %s (%s, built %s, %s/%s)\n",
			Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH)
		return 0
	default:
		printUsage()
		return 0
	}
}

// loadConfig loads configuration from --config when given, or from the
// default location, falling back to built-in defaults.
func loadConfig(args []string) (*config.Config, error) {
	p := NewArgParser(args)
	if path := p.Flag("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

func printUsage() {
	fmt.Print(`examdiff - file comparison and merge tool

Usage:
  examdiff diff <fileA> <fileB> [flags]
  examdiff merge <base> <yours> <theirs> [-o output]
  examdiff version
  examdiff help

Diff flags:
  --side-by-side, -s          two-column view
  --words, -w                 word-level markup for changed lines
  --chars                     character-level markup for changed lines
  --ignore-case, -i           case-insensitive comparison
  --ignore-whitespace, -b     collapse whitespace runs before comparing
  --ignore-blank-lines, -B    skip blank lines
  --ignore-leading-whitespace
  --ignore-trailing-whitespace
  --ignore-comments           strip comments before comparing
  --comment-pattern <regex>   comment pattern (repeatable, implies above)
  --ignore-pattern <regex>    drop matching lines entirely (repeatable)
  --fuzzy                     merge similar delete/insert pairs (>= 60%)
  --moving-blocks             detect moved blocks
  --stats                     print comparison statistics to stderr
  --label-a, --label-b <s>    header labels for unified output
  --width <n>                 total width of the side-by-side view
  --watch                     re-run when an input file changes
  --config <path>             config file (default ~/.examdiff/config.toml)

Exit codes: 0 identical, 1 differences or conflicts found, 2 error.
`)
}
