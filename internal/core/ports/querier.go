// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/compdb/internal/core/domain"
)

// ActionQuerier provides the build tool's action graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=mocks/mock_querier.go -package=mocks
type ActionQuerier interface {
	// Query runs an action graph query for the given expression inside the
	// workspace directory. The flags are forwarded to the build tool
	// verbatim, before the expression.
	//
	// A query that ran but exited non-zero is reported as a
	// *domain.QueryError carrying the tool's exit code.
	Query(ctx context.Context, workspace string, flags []string, expression string) ([]domain.BuildAction, error)
}
