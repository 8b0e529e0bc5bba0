// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// args.go - Unified argument parsing for examdiff commands.
//
// Handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -o value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags

package cli

import "strings"

// valueFlags lists the flags that always take a value, so "--output file"
// binds the value instead of treating "file" as a positional argument.
// Flags not listed here default to boolean when no "=value" is attached.
var valueFlags = map[string]bool{
	"o": true, "output": true,
	"comment-pattern": true,
	"ignore-pattern":  true,
	"context":         true,
	"width":           true,
	"config":          true,
	"label-a":         true,
	"label-b":         true,
}

// ArgParser provides unified argument parsing for CLI commands.
type ArgParser struct {
	flags      map[string][]string // value flags; repeatable
	boolFlags  map[string]bool
	positional []string
}

// NewArgParser parses raw arguments. Value flags may repeat
// (--ignore-pattern can be given multiple times); boolean flags may be
// written --flag, --flag=true, or --flag=false.
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string][]string),
		boolFlags: make(map[string]bool),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if !strings.HasPrefix(arg, "-") {
			p.positional = append(p.positional, arg)
			i++
			continue
		}

		// --flag=value
		if strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			name := strings.TrimLeft(parts[0], "-")
			value := parts[1]
			if value == "true" || value == "false" {
				p.boolFlags[name] = value == "true"
			} else {
				p.flags[name] = append(p.flags[name], value)
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if valueFlags[name] && i+1 < len(raw) {
			p.flags[name] = append(p.flags[name], raw[i+1])
			i += 2
		} else {
			p.boolFlags[name] = true
			i++
		}
	}

	return p
}

// Flag returns the last value given for a flag, or "".
func (p *ArgParser) Flag(name string) string {
	vals := p.flags[name]
	if len(vals) == 0 {
		return ""
	}
	return vals[len(vals)-1]
}

// FlagAll returns every value given for a repeatable flag.
func (p *ArgParser) FlagAll(name string) []string {
	return p.flags[name]
}

// BoolFlag reports whether a boolean flag was set true.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Positional returns the positional arguments in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}
