package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/compdb/internal/core/ports"
)

const (
	ProberNodeID graft.ID = "adapter.fs.prober"
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Prober Node
	graft.Register(graft.Node[ports.FileProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileProber, error) {
			return NewProber(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})
}
