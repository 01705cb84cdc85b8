package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/internal/adapters/logger"
	"go.trai.ch/cscript/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the cache store Graft node.
	NodeID graft.ID = "adapter.cache_store"
	// EvictorNodeID is the unique identifier for the evictor Graft node.
	EvictorNodeID graft.ID = "adapter.evictor"
)

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Evictor]{
		ID:        EvictorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Evictor, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvictor(store, log), nil
		},
	})
}
