package domain

// CompilationEntry is a single record of a compilation database as consumed
// by clang tooling. Field names follow the JSON compilation database format.
type CompilationEntry struct {
	// Directory is the working directory of the compilation, always the
	// exec root.
	Directory string `json:"directory"`

	// File is the absolute path of the translation unit.
	File string `json:"file"`

	// Arguments is the compile command as an argument vector.
	Arguments []string `json:"arguments"`

	// Output is the object file produced by the compilation. Synthesized
	// entries carry no output.
	Output string `json:"output,omitempty"`
}

// Clone returns a deep copy of the entry. The argument vector is copied so
// that mutations of the clone never alias the original.
func (e CompilationEntry) Clone() CompilationEntry {
	clone := e
	clone.Arguments = make([]string, len(e.Arguments))
	copy(clone.Arguments, e.Arguments)
	return clone
}
