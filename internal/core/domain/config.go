package domain

// ToolConfig holds the optional per-workspace defaults read from the
// configuration file. Flags and targets given on the command line are
// appended after these.
type ToolConfig struct {
	// Flags are bazel flags prepended to every aquery invocation.
	Flags []string

	// Targets are the default target patterns used when the invocation
	// names none.
	Targets []string
}
