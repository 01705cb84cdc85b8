package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/internal/adapters/logger"
	"go.trai.ch/cscript/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the process runner Graft node.
	RunnerNodeID graft.ID = "adapter.process_runner"
	// DebuggerNodeID is the unique identifier for the debugger Graft node.
	DebuggerNodeID graft.ID = "adapter.debugger"
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
)

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(), nil
		},
	})

	graft.Register(graft.Node[ports.Debugger]{
		ID:        DebuggerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Debugger, error) {
			return NewGDB(), nil
		},
	})

	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID, DebuggerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			debugger, err := graft.Dep[ports.Debugger](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(runner, debugger, log), nil
		},
	})
}
