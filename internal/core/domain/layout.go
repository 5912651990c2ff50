package domain

const (
	// CompileCommandsFileName is the database file written to the
	// workspace root.
	CompileCommandsFileName = "compile_commands.json"

	// ConfigFileName is the optional per-workspace configuration file.
	ConfigFileName = "compdb.yaml"

	// WorkspaceEnvVar carries the workspace root when the tool runs under
	// "bazel run".
	WorkspaceEnvVar = "BUILD_WORKSPACE_DIRECTORY"

	// BazelEnvVar overrides the bazel binary, set by bazel wrapper scripts.
	BazelEnvVar = "BAZEL_REAL"

	// FilePerm is the permission mode for files created by the tool.
	FilePerm = 0o644
)

// WorkspaceMarkers are the files whose presence identifies a bazel
// workspace root, in the order they are probed.
var WorkspaceMarkers = []string{"WORKSPACE", "WORKSPACE.bazel", "MODULE.bazel"}
