package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/internal/core/ports"
)

// NodeID is the unique identifier for the source assembler Graft node.
const NodeID graft.ID = "adapter.source_assembler"

func init() {
	graft.Register(graft.Node[ports.SourceAssembler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceAssembler, error) {
			return NewAssembler(), nil
		},
	})
}
