// Package compiledb persists the assembled compilation database as
// compile_commands.json at the workspace root.
package compiledb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatabaseWriter = (*Writer)(nil)

// Writer implements ports.DatabaseWriter using a flat JSON file.
type Writer struct {
	hasher ports.FileHasher
	logger ports.Logger
}

// NewWriter creates a new Writer.
func NewWriter(hasher ports.FileHasher, logger ports.Logger) *Writer {
	return &Writer{hasher: hasher, logger: logger}
}

// Write serializes the entries and replaces compile_commands.json at the
// workspace root. When the existing file already holds identical content
// the write is skipped, so editors and language servers watching the file
// see no spurious change.
func (w *Writer) Write(workspace string, entries []domain.CompilationEntry) (domain.WriteSummary, error) {
	path := filepath.Join(workspace, domain.CompileCommandsFileName)

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return domain.WriteSummary{}, zerr.Wrap(err, "failed to marshal compilation database")
	}

	summary := domain.WriteSummary{
		Path:    path,
		Entries: len(entries),
		Digest:  w.hasher.Sum(data),
	}

	if existing, err := w.hasher.SumFile(path); err == nil && existing == summary.Digest {
		summary.Unchanged = true
		return summary, nil
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // Database is world-readable on purpose
		return domain.WriteSummary{}, zerr.With(zerr.With(domain.ErrDatabaseWriteFailed, "cause", err.Error()), "path", path)
	}

	w.logger.Info(fmt.Sprintf("wrote %d entries to %s (digest %016x)", summary.Entries, path, summary.Digest))
	return summary, nil
}
