// Copyright (c) 2025 Gaurav Waghmar
// SPDX-License-Identifier: MIT

package plugin

import (
	"github.com/google/uuid"

	"github.com/gwaghmar/examdiff/internal/myers"
)

// =============================================================================
// PLUGIN INTERFACE
// =============================================================================

// StartInfo identifies one comparison run.
type StartInfo struct {
	RunID  string // fresh UUID per EmitStart
	LabelA string
	LabelB string
}

// Plugin is the fixed capability interface comparison hooks implement.
// ProcessDiff may return a rewritten operation list; plugins that only
// observe return their input unchanged.
type Plugin interface {
	Name() string
	OnCompareStart(info StartInfo)
	ProcessDiff(ops []myers.Op) []myers.Op
	OnCompareComplete(ops []myers.Op)
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds the registered plugins in registration order. It is
// populated at startup and read-only afterwards; Emit and Process calls
// are not synchronized.
type Registry struct {
	plugins []Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a plugin. Plugins run in registration order.
func (r *Registry) Register(p Plugin) {
	r.plugins = append(r.plugins, p)
}

// Plugins returns the registered plugins.
func (r *Registry) Plugins() []Plugin {
	return r.plugins
}

// EmitStart notifies all plugins that a comparison run is starting and
// returns the run's ID.
func (r *Registry) EmitStart(labelA, labelB string) string {
	info := StartInfo{
		RunID:  uuid.NewString(),
		LabelA: labelA,
		LabelB: labelB,
	}
	for _, p := range r.plugins {
		p.OnCompareStart(info)
	}
	return info.RunID
}

// ProcessDiff chains the operation list through every plugin's
// ProcessDiff hook in registration order.
func (r *Registry) ProcessDiff(ops []myers.Op) []myers.Op {
	for _, p := range r.plugins {
		ops = p.ProcessDiff(ops)
	}
	return ops
}

// EmitComplete notifies all plugins that a comparison run finished.
func (r *Registry) EmitComplete(ops []myers.Op) {
	for _, p := range r.plugins {
		p.OnCompareComplete(ops)
	}
}
