// Package domain contains the core domain models for compilation database generation.
package domain

// BuildAction is a single compile action extracted from the bazel action graph.
type BuildAction struct {
	// ID is the opaque action key reported by bazel. It is only used for
	// diagnostics when an action cannot be converted into an entry.
	ID string

	// Arguments is the full compiler command line, starting with the
	// compiler executable itself.
	Arguments []string
}
