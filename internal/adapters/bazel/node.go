package bazel

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/adapters/config"
	"go.trai.ch/compdb/internal/adapters/logger"
	"go.trai.ch/compdb/internal/core/ports"
)

const (
	QuerierNodeID graft.ID = "adapter.bazel.querier"
	FinderNodeID  graft.ID = "adapter.bazel.finder"
)

func init() {
	// Querier Node
	graft.Register(graft.Node[ports.ActionQuerier]{
		ID:        QuerierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.EnvironmentNodeID},
		Run: func(ctx context.Context) (ports.ActionQuerier, error) {
			env, err := graft.Dep[*config.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewQuerier(env), nil
		},
	})

	// Finder Node
	graft.Register(graft.Node[ports.WorkspaceFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.EnvironmentNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceFinder, error) {
			env, err := graft.Dep[*config.Environment](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFinder(env, log), nil
		},
	})
}
