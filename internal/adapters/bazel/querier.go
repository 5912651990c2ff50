// Package bazel implements the bazel-facing adapters: the action graph
// query and workspace discovery.
package bazel

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"

	"go.trai.ch/compdb/internal/adapters/config"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ActionQuerier = (*Querier)(nil)

// Querier implements ports.ActionQuerier by invoking bazel aquery.
type Querier struct {
	env *config.Environment
}

// NewQuerier creates a new Querier using the bazel binary from the given
// environment.
func NewQuerier(env *config.Environment) *Querier {
	return &Querier{env: env}
}

// actionGraph mirrors the jsonproto envelope of aquery. Only the fields the
// rewrite pipeline consumes are decoded.
type actionGraph struct {
	Actions *[]struct {
		ActionKey string   `json:"actionKey"`
		Arguments []string `json:"arguments"`
	} `json:"actions"`
}

// Query runs an aquery for the given expression inside the workspace. The
// flags sit between the fixed aquery arguments and the expression, exactly
// as the user passed them.
func (q *Querier) Query(ctx context.Context, workspace string, flags []string, expression string) ([]domain.BuildAction, error) {
	args := append([]string{"aquery", "--output=jsonproto", "--include_commandline"}, flags...)
	args = append(args, expression)

	//nolint:gosec // The binary comes from the injected environment
	cmd := exec.CommandContext(ctx, q.env.Bazel, args...)
	cmd.Dir = workspace
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &domain.QueryError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   string(exitErr.Stderr),
			}
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrQueryFailed, err.Error()), "bazel", q.env.Bazel)
	}

	var graph actionGraph
	if err := json.Unmarshal(output, &graph); err != nil {
		return nil, zerr.With(domain.ErrMalformedActionGraph, "cause", err.Error())
	}
	if graph.Actions == nil {
		return nil, zerr.With(domain.ErrMalformedActionGraph, "cause", "missing actions field")
	}

	actions := make([]domain.BuildAction, len(*graph.Actions))
	for i, action := range *graph.Actions {
		actions[i] = domain.BuildAction{
			ID:        action.ActionKey,
			Arguments: action.Arguments,
		}
	}
	return actions, nil
}
