package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrWorkspaceNotFound is returned when no bazel workspace root can be
	// discovered from the environment, marker files or git.
	ErrWorkspaceNotFound = zerr.New("bazel workspace not found")

	// ErrOutputBaseUnknown is returned when the bazel output base can be
	// determined neither from bazel itself nor from the exec root symlink.
	ErrOutputBaseUnknown = zerr.New("bazel output base unknown")

	// ErrQueryFailed is returned when the action graph query cannot be
	// executed at all, for example because bazel is not installed.
	ErrQueryFailed = zerr.New("action graph query failed")

	// ErrMalformedActionGraph is returned when the aquery output cannot be
	// decoded or is missing the actions field.
	ErrMalformedActionGraph = zerr.New("malformed action graph")

	// ErrMissingSourceFlag is returned when a compile action carries no -c
	// argument.
	ErrMissingSourceFlag = zerr.New("compile action has no source argument")

	// ErrMissingOutputFlag is returned when a compile action carries no -o
	// argument.
	ErrMissingOutputFlag = zerr.New("compile action has no output argument")

	// ErrSourceNotFound is returned when a source file exists neither under
	// the workspace nor under the exec root.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrConfigInvalid is returned when the workspace configuration file
	// cannot be read or parsed.
	ErrConfigInvalid = zerr.New("invalid workspace configuration")

	// ErrDatabaseWriteFailed is returned when the compilation database
	// cannot be written to the workspace root.
	ErrDatabaseWriteFailed = zerr.New("compilation database write failed")
)

// QueryError reports a bazel invocation that ran but exited non-zero. The
// exit code is preserved so the process can mirror it.
type QueryError struct {
	// ExitCode is the exit code of the bazel process.
	ExitCode int

	// Stderr is the captured diagnostic output of the bazel process.
	Stderr string
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("bazel exited with code %d", e.ExitCode)
}
