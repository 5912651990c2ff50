package config

// File represents the structure of the compdb.yaml configuration file.
type File struct {
	// Flags are bazel flags prepended to every aquery invocation.
	Flags []string `yaml:"flags"`

	// Targets are the default target patterns used when the invocation
	// names none.
	Targets []string `yaml:"targets"`
}
