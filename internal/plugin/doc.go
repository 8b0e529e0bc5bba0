// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

// Package plugin provides an explicit hook registry for observing and
// rewriting comparison results.
//
// Plugins implement a fixed capability interface and are registered with
// explicit calls at startup, from a static list or a config-driven
// factory. There is no directory scanning or dynamic discovery: what runs
// is exactly what was registered.
//
// # Usage
//
//	reg := plugin.NewRegistry()
//	reg.Register(plugin.NewStatistics(os.Stderr))
//
//	engine, err := diff.NewWithPlugins(opts, reg)
//	...
//	reg.EmitStart("a.txt", "b.txt")
//	ops := engine.CompareLines(linesA, linesB) // runs ProcessDiff + complete hooks
//
// Each EmitStart begins a run identified by a fresh UUID, passed to every
// OnCompareStart hook so plugins can correlate output across comparisons.
package plugin
