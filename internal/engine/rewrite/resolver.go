package rewrite

import (
	"path/filepath"
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// externalPrefix marks paths into external repositories, relative to
	// the exec root.
	externalPrefix = "external/"

	// generatedPrefix marks bazel output trees. Paths under them are only
	// valid relative to the exec root and are never duplicated as
	// workspace paths.
	generatedPrefix = "bazel-"
)

// resolver classifies and rewrites paths against one set of roots.
type resolver struct {
	roots  domain.Roots
	prober ports.FileProber
}

func newResolver(roots domain.Roots, prober ports.FileProber) *resolver {
	return &resolver{roots: roots, prober: prober}
}

// rewriteInclude rewrites an include directory so it stays valid outside a
// live build. External repository paths are redirected into the output
// base, where bazel materializes them once per workspace; the per-build
// symlink under the exec root disappears with the sandbox. Everything else
// is left untouched.
func (r *resolver) rewriteInclude(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	if remainder, ok := r.externalRemainder(dir); ok {
		return domain.InternPath(filepath.Join(r.roots.OutputBase, externalPrefix, remainder))
	}
	return dir
}

// externalRemainder strips the external repository prefix, in either its
// bare form (external/...) or its exec-root-qualified form
// (bazel-<workspace>/external/...). A bare prefix with nothing behind it is
// not an external path.
func (r *resolver) externalRemainder(dir string) (string, bool) {
	trimmed := strings.TrimPrefix(dir, r.roots.ExecRootBase()+"/")
	remainder, found := strings.CutPrefix(trimmed, externalPrefix)
	if !found || remainder == "" {
		return "", false
	}
	return remainder, true
}

// isLocal reports whether dir is a plain workspace-relative directory:
// relative, not under a bazel output tree and not an external repository
// path.
func (r *resolver) isLocal(dir string) bool {
	if filepath.IsAbs(dir) || strings.HasPrefix(dir, generatedPrefix) {
		return false
	}
	if _, external := r.externalRemainder(dir); external {
		return false
	}
	return true
}

// resolveSource locates the source file on disk, trying the workspace
// first and the exec root second. Generated sources only exist under the
// exec root, hand-written ones under the workspace.
func (r *resolver) resolveSource(source string) (string, error) {
	if filepath.IsAbs(source) {
		if r.prober.Exists(source) {
			return source, nil
		}
		return "", zerr.With(domain.ErrSourceNotFound, "source", source)
	}

	for _, root := range []string{r.roots.Workspace, r.roots.ExecRoot} {
		candidate := filepath.Join(root, source)
		if r.prober.Exists(candidate) {
			return candidate, nil
		}
	}
	return "", zerr.With(domain.ErrSourceNotFound, "source", source)
}
