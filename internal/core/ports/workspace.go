package ports

import (
	"context"

	"go.trai.ch/compdb/internal/core/domain"
)

// WorkspaceFinder discovers the directories all path rewriting is anchored on.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceFinder interface {
	// Discover locates the bazel workspace root and derives the exec root
	// and output base from it. It returns domain.ErrWorkspaceNotFound or
	// domain.ErrOutputBaseUnknown when discovery fails; both are fatal.
	Discover(ctx context.Context) (domain.Roots, error)
}
