// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gwaghmar/examdiff/internal/diff"
	"github.com/gwaghmar/examdiff/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete examdiff configuration.
type Config struct {
	Compare CompareConfig `toml:"compare"`
	Display DisplayConfig `toml:"display"`
	Watch   WatchConfig   `toml:"watch"`
}

// CompareConfig mirrors diff.Options; see that type for the semantics of
// each flag.
type CompareConfig struct {
	IgnoreCase               bool     `toml:"ignore_case"`
	IgnoreWhitespace         bool     `toml:"ignore_whitespace"`
	IgnoreBlankLines         bool     `toml:"ignore_blank_lines"`
	IgnoreLeadingWhitespace  bool     `toml:"ignore_leading_whitespace"`
	IgnoreTrailingWhitespace bool     `toml:"ignore_trailing_whitespace"`
	IgnoreComments           bool     `toml:"ignore_comments"`
	CommentPatterns          []string `toml:"comment_patterns"`
	IgnoreLinePatterns       []string `toml:"ignore_line_patterns"`
	FuzzyMatching            bool     `toml:"fuzzy_matching"`
	MovingBlockDetection     bool     `toml:"moving_block_detection"`
}

// DisplayConfig controls CLI rendering.
type DisplayConfig struct {
	// Color is "auto", "always", or "never".
	Color string `toml:"color"`
	// ContextLines is passed to the unified formatter.
	ContextLines int `toml:"context_lines"`
	// SideBySideWidth is the total column budget for the side-by-side
	// view; 0 means use the terminal width.
	SideBySideWidth int `toml:"side_by_side_width"`
	// ShowStats prints comparison statistics after each diff.
	ShowStats bool `toml:"show_stats"`
}

// WatchConfig controls --watch behavior.
type WatchConfig struct {
	// DebounceMillis coalesces file events closer together than this.
	DebounceMillis int `toml:"debounce_millis"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Compare: CompareConfig{},
		Display: DisplayConfig{
			Color:        "auto",
			ContextLines: 3,
		},
		Watch: WatchConfig{
			DebounceMillis: 200,
		},
	}
}

// DiffOptions converts the compare section to engine options.
func (c *Config) DiffOptions() diff.Options {
	return diff.Options{
		IgnoreCase:               c.Compare.IgnoreCase,
		IgnoreWhitespace:         c.Compare.IgnoreWhitespace,
		IgnoreBlankLines:         c.Compare.IgnoreBlankLines,
		IgnoreLeadingWhitespace:  c.Compare.IgnoreLeadingWhitespace,
		IgnoreTrailingWhitespace: c.Compare.IgnoreTrailingWhitespace,
		IgnoreComments:           c.Compare.IgnoreComments,
		CommentPatterns:          c.Compare.CommentPatterns,
		IgnoreLinePatterns:       c.Compare.IgnoreLinePatterns,
		FuzzyMatching:            c.Compare.FuzzyMatching,
		MovingBlockDetection:     c.Compare.MovingBlockDetection,
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the examdiff configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".examdiff"), nil
}

// DefaultPath returns the path of the default TOML config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads configuration from path, applies environment overrides, and
// validates. Defaults fill anything the file does not set.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config %s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads from the default path, falling back to defaults when
// no config file exists. Environment overrides apply either way.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Load(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path as TOML, atomically.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode TOML config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies EXAMDIFF_* environment variables on top of
// whatever was loaded. Unset variables leave the config untouched.
func (c *Config) ApplyEnvOverrides() {
	envBool("EXAMDIFF_IGNORE_CASE", &c.Compare.IgnoreCase)
	envBool("EXAMDIFF_IGNORE_WHITESPACE", &c.Compare.IgnoreWhitespace)
	envBool("EXAMDIFF_IGNORE_BLANK_LINES", &c.Compare.IgnoreBlankLines)
	envBool("EXAMDIFF_FUZZY_MATCHING", &c.Compare.FuzzyMatching)
	envBool("EXAMDIFF_SHOW_STATS", &c.Display.ShowStats)

	if v := os.Getenv("EXAMDIFF_COLOR"); v != "" {
		c.Display.Color = v
	}
	if v := os.Getenv("EXAMDIFF_CONTEXT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Display.ContextLines = n
		}
	}
}

func envBool(name string, dst *bool) {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks field ranges and, via the engine constructor, the
// ignore patterns. Pattern errors surface here so a bad config fails at
// startup, attributable to the pattern string, instead of mid-comparison.
func (c *Config) Validate() error {
	switch c.Display.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("display.color must be auto, always, or never (got %q)", c.Display.Color)
	}

	if c.Display.ContextLines < 0 {
		return fmt.Errorf("display.context_lines must be >= 0 (got %d)", c.Display.ContextLines)
	}
	if c.Watch.DebounceMillis < 0 {
		return fmt.Errorf("watch.debounce_millis must be >= 0 (got %d)", c.Watch.DebounceMillis)
	}

	if _, err := diff.New(c.DiffOptions()); err != nil {
		return err
	}
	return nil
}
