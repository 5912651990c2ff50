package rewrite

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// sourceFlag marks the next argument as the translation unit.
	sourceFlag = "-c"

	// outputFlag marks the next argument as the object file.
	outputFlag = "-o"
)

// includeFlags are the include directives the scan recognizes, in the order
// fused forms are decomposed. Split forms (flag and path as two arguments)
// and fused forms (-Ifoo/bar) both occur in bazel command lines.
var includeFlags = []string{"-I", "-iquote", "-isystem"}

// includeDirective is one recorded (flag, directory) pair, with the
// directory already rewritten.
type includeDirective struct {
	flag string
	dir  string
}

// Rewrite converts one compile action into a compilation database entry.
//
// The argument vector is scanned left to right exactly once. The source
// path behind -c is rewritten to its workspace-absolute form, the output
// behind -o is recorded verbatim, and include directories are rewritten so
// they survive outside the sandboxed exec root. After the scan every local
// workspace include directory is appended a second time in
// workspace-absolute form: inside a live build the exec root's symlink
// tree satisfies the relative form, but that tree does not exist when
// tooling replays the command from an arbitrary directory.
//
// The returned entry never aliases the action's argument slice.
func (e *Engine) Rewrite(roots domain.Roots, action domain.BuildAction) (domain.CompilationEntry, error) {
	res := newResolver(roots, e.prober)

	args := slices.Clone(action.Arguments)
	var source, output string
	var haveSource, haveOutput bool
	var includes []includeDirective

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == sourceFlag && i+1 < len(args):
			source = args[i+1]
			// An already absolute source stays put; joining would bury it
			// under the workspace root.
			if !filepath.IsAbs(source) {
				args[i+1] = filepath.Join(roots.Workspace, source)
			}
			haveSource = true
			i++

		case arg == outputFlag && i+1 < len(args):
			output = args[i+1]
			haveOutput = true
			i++

		case slices.Contains(includeFlags, arg) && i+1 < len(args):
			dir := res.rewriteInclude(args[i+1])
			args[i+1] = dir
			includes = append(includes, includeDirective{flag: arg, dir: dir})
			i++

		default:
			flag, value, ok := splitFused(arg)
			if !ok {
				continue
			}
			dir := res.rewriteInclude(value)
			args[i] = flag + dir
			includes = append(includes, includeDirective{flag: flag, dir: dir})
		}
	}

	if !haveSource {
		return domain.CompilationEntry{}, zerr.With(domain.ErrMissingSourceFlag, "action", action.ID)
	}
	if !haveOutput {
		return domain.CompilationEntry{}, zerr.With(domain.ErrMissingOutputFlag, "action", action.ID)
	}

	for _, include := range includes {
		if res.isLocal(include.dir) {
			args = append(args, include.flag, domain.InternPath(filepath.Join(roots.Workspace, include.dir)))
		}
	}

	file, err := res.resolveSource(source)
	if err != nil {
		return domain.CompilationEntry{}, zerr.With(err, "action", action.ID)
	}

	return domain.CompilationEntry{
		Directory: roots.ExecRoot,
		File:      file,
		Arguments: args,
		Output:    output,
	}, nil
}

// splitFused decomposes a fused include argument (-Ifoo/bar) into its flag
// and value. The flags are tried in a fixed order; the first matching
// prefix with a non-empty remainder wins. A bare flag is not fused, it
// takes its value from the next argument.
func splitFused(arg string) (flag, value string, ok bool) {
	for _, candidate := range includeFlags {
		if rest, found := strings.CutPrefix(arg, candidate); found && rest != "" {
			return candidate, rest, true
		}
	}
	return "", "", false
}
