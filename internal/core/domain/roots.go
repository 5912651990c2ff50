package domain

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Roots bundles the three absolute directories every path rewrite is
// anchored on.
type Roots struct {
	// Workspace is the bazel workspace root.
	Workspace string

	// ExecRoot is the convenience symlink bazel places inside the
	// workspace, named bazel-<workspace basename>.
	ExecRoot string

	// OutputBase is the per-workspace output directory outside the
	// workspace, home of the external repository checkouts.
	OutputBase string
}

// NewRoots derives the conventional exec root from the workspace and pairs
// it with the given output base.
func NewRoots(workspace, outputBase string) Roots {
	return Roots{
		Workspace:  workspace,
		ExecRoot:   ConventionalExecRoot(workspace),
		OutputBase: outputBase,
	}
}

// ConventionalExecRoot returns the bazel-<basename> symlink path for a
// workspace root.
func ConventionalExecRoot(workspace string) string {
	return filepath.Join(workspace, "bazel-"+filepath.Base(workspace))
}

// ExecRootBase returns the last path element of the exec root, the marker
// compiler arguments are matched against.
func (r Roots) ExecRootBase() string {
	return filepath.Base(r.ExecRoot)
}

// Validate checks that all three roots are absolute paths.
func (r Roots) Validate() error {
	for name, dir := range map[string]string{
		"workspace":   r.Workspace,
		"exec root":   r.ExecRoot,
		"output base": r.OutputBase,
	} {
		if dir == "" || !filepath.IsAbs(dir) {
			return zerr.New(fmt.Sprintf("%s is not an absolute path: %q", name, dir))
		}
	}
	return nil
}
