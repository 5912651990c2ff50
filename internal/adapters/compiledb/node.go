package compiledb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/adapters/fs"
	"go.trai.ch/compdb/internal/adapters/logger"
	"go.trai.ch/compdb/internal/core/ports"
)

// NodeID is the unique identifier for the database writer Graft node.
const NodeID graft.ID = "adapter.compiledb"

func init() {
	graft.Register(graft.Node[ports.DatabaseWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DatabaseWriter, error) {
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(hasher, log), nil
		},
	})
}
