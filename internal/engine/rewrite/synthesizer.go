package rewrite

import (
	"path/filepath"
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
)

var (
	// templateExtensions are the template implementation files bazel never
	// compiles standalone, in the order they are probed per entry.
	templateExtensions = []string{".inl", ".tcc"}

	// headerExtensions are probed in priority order to find the header
	// declaring a template implementation.
	headerExtensions = []string{".hh", ".hpp", ".h"}
)

// forcedIncludeFlag injects the declaring header into the synthesized
// command line. Template implementations are rarely self-contained; parsing
// them in the context of their header is what makes the entry useful.
const forcedIncludeFlag = "-include"

// Synthesize derives entries for template implementation files that sit
// next to a compiled source but have no entry of their own. Each synthetic
// entry shares its parent's directory and arguments (as an independent
// copy), points at the template file and carries no output, since bazel
// produces no object for it.
//
// Entries are visited in their given order and every synthesized file is
// indexed immediately, so a path receives at most one entry no matter how
// many primaries could produce it. The first producer wins.
func (e *Engine) Synthesize(entries []domain.CompilationEntry) []domain.CompilationEntry {
	index := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		index[entry.File] = struct{}{}
	}

	var synthesized []domain.CompilationEntry
	for _, entry := range entries {
		base := strings.TrimSuffix(entry.File, filepath.Ext(entry.File))

		for _, extension := range templateExtensions {
			sibling := base + extension
			if _, taken := index[sibling]; taken {
				continue
			}
			if !e.prober.Exists(sibling) {
				continue
			}

			synthetic := entry.Clone()
			synthetic.File = sibling
			synthetic.Output = ""

			for _, headerExtension := range headerExtensions {
				header := base + headerExtension
				if e.prober.Exists(header) {
					synthetic.Arguments = append(synthetic.Arguments, forcedIncludeFlag, header)
					break
				}
			}

			index[sibling] = struct{}{}
			synthesized = append(synthesized, synthetic)
		}
	}
	return synthesized
}
