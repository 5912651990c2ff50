// Package rewrite translates bazel compile actions into compilation
// database entries: it classifies and rewrites paths against the workspace
// roots, scans argument vectors, and synthesizes entries for template
// implementation files.
package rewrite

import "go.trai.ch/compdb/internal/core/ports"

// Engine bundles the rewrite phases around shared filesystem access. All
// methods are pure given the prober; the engine holds no per-run state.
type Engine struct {
	prober ports.FileProber
}

// New creates a new Engine.
func New(prober ports.FileProber) *Engine {
	return &Engine{prober: prober}
}
