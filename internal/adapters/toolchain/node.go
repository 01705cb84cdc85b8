package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/internal/adapters/shell"
	"go.trai.ch/cscript/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewGCC(runner), nil
		},
	})
}
