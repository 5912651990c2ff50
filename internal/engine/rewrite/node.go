package rewrite

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/adapters/fs"
	"go.trai.ch/compdb/internal/core/ports"
)

// NodeID is the unique identifier for the rewrite engine Graft node.
const NodeID graft.ID = "engine.rewrite"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProberNodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			prober, err := graft.Dep[ports.FileProber](ctx)
			if err != nil {
				return nil, err
			}
			return New(prober), nil
		},
	})
}
