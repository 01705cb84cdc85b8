package sandbox

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/internal/core/ports"
)

// NodeID is the unique identifier for the sandbox Graft node.
const NodeID graft.ID = "adapter.sandbox"

func init() {
	graft.Register(graft.Node[ports.Sandbox]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sandbox, error) {
			return New(), nil
		},
	})
}
