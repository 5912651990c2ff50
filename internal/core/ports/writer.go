package ports

import "go.trai.ch/compdb/internal/core/domain"

// DatabaseWriter persists the assembled compilation database.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type DatabaseWriter interface {
	// Write serializes the entries and stores them at the workspace root,
	// replacing any previous database. Implementations may leave an
	// existing file untouched when its content already matches; the
	// summary reports whether that happened.
	Write(workspace string, entries []domain.CompilationEntry) (domain.WriteSummary, error)
}
