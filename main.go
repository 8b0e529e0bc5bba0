// examdiff - file comparison and three-way merge for the terminal.
//
// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/gwaghmar/examdiff/internal/cli"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
