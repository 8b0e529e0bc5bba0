// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package config provides configuration loading for examdiff.
//
// Configuration is TOML, loaded from an explicit path or from
// ~/.examdiff/config.toml, with built-in defaults and EXAMDIFF_*
// environment variable overrides. The loaded value is passed explicitly
// into the pieces that need it; nothing in this package or its consumers
// keeps ambient global state.
package config
