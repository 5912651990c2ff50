package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/adapters/bazel"     //nolint:depguard // Wired in app layer
	"go.trai.ch/compdb/internal/adapters/compiledb" //nolint:depguard // Wired in app layer
	"go.trai.ch/compdb/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/compdb/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/compdb/internal/adapters/telemetry/progrock"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/compdb/internal/engine/rewrite"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			bazel.FinderNodeID,
			bazel.QuerierNodeID,
			config.LoaderNodeID,
			rewrite.NodeID,
			compiledb.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	finder, err := graft.Dep[ports.WorkspaceFinder](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	querier, err := graft.Dep[ports.ActionQuerier](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*rewrite.Engine](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.DatabaseWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(finder, loader, querier, engine, writer, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
