package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/adapters/logger"
	"go.trai.ch/compdb/internal/core/ports"
)

const (
	EnvironmentNodeID graft.ID = "adapter.config.environment"
	LoaderNodeID      graft.ID = "adapter.config.loader"
)

func init() {
	// Environment Node
	graft.Register(graft.Node[*Environment]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Environment, error) {
			return NewEnvironment(), nil
		},
	})

	// Loader Node
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
