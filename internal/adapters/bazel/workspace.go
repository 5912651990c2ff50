package bazel

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/compdb/internal/adapters/config"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceFinder = (*Finder)(nil)

// Finder implements ports.WorkspaceFinder.
//
// The workspace root is taken from BUILD_WORKSPACE_DIRECTORY when the tool
// runs under "bazel run", otherwise by walking up from the working
// directory until a workspace marker file appears, with the git toplevel as
// the last resort. The output base is asked from bazel itself, falling back
// to resolving the exec root symlink.
type Finder struct {
	env    *config.Environment
	logger ports.Logger
}

// NewFinder creates a new Finder.
func NewFinder(env *config.Environment, logger ports.Logger) *Finder {
	return &Finder{env: env, logger: logger}
}

// Discover locates the workspace and derives the exec root and output base.
func (f *Finder) Discover(ctx context.Context) (domain.Roots, error) {
	workspace, err := f.findWorkspace(ctx)
	if err != nil {
		return domain.Roots{}, err
	}

	outputBase, err := f.findOutputBase(ctx, workspace)
	if err != nil {
		return domain.Roots{}, err
	}

	roots := domain.NewRoots(workspace, outputBase)
	if err := roots.Validate(); err != nil {
		return domain.Roots{}, err
	}
	return roots, nil
}

func (f *Finder) findWorkspace(ctx context.Context) (string, error) {
	if f.env.Workspace != "" {
		return f.env.Workspace, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}

	currentDir := cwd
	for {
		for _, marker := range domain.WorkspaceMarkers {
			if _, err := os.Stat(filepath.Join(currentDir, marker)); err == nil {
				return currentDir, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if toplevel, err := gitToplevel(ctx, cwd); err == nil {
		return toplevel, nil
	}

	return "", zerr.With(domain.ErrWorkspaceNotFound, "cwd", cwd)
}

// gitToplevel returns the root of the enclosing git repository.
func gitToplevel(ctx context.Context, cwd string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = cwd
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	toplevel := strings.TrimSpace(string(output))
	if toplevel == "" {
		return "", zerr.New("empty git toplevel")
	}
	return toplevel, nil
}

// findOutputBase determines where bazel materializes external repositories.
// "bazel info output_base" is authoritative but needs a running bazel; when
// it fails the exec root symlink is resolved instead, which points at
// <outputBase>/execroot/<name>.
func (f *Finder) findOutputBase(ctx context.Context, workspace string) (string, error) {
	//nolint:gosec // The binary comes from the injected environment
	cmd := exec.CommandContext(ctx, f.env.Bazel, "info", "output_base")
	cmd.Dir = workspace
	if output, err := cmd.Output(); err == nil {
		if outputBase := strings.TrimSpace(string(output)); outputBase != "" {
			return outputBase, nil
		}
	} else {
		f.logger.Warn("bazel info output_base failed, falling back to the exec root symlink")
	}

	resolved, err := filepath.EvalSymlinks(domain.ConventionalExecRoot(workspace))
	if err != nil {
		return "", zerr.With(domain.ErrOutputBaseUnknown, "workspace", workspace)
	}
	return filepath.Dir(filepath.Dir(resolved)), nil
}
