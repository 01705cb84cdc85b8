package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/internal/adapters/cas"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/fingerprint" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/sandbox"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/shell"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/source"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/adapters/toolchain"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cscript/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fingerprint.NodeID,
			cas.NodeID,
			cas.EvictorNodeID,
			sandbox.NodeID,
			source.NodeID,
			toolchain.NodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			evictor, err := graft.Dep[ports.Evictor](ctx)
			if err != nil {
				return nil, err
			}

			sb, err := graft.Dep[ports.Sandbox](ctx)
			if err != nil {
				return nil, err
			}

			assembler, err := graft.Dep[ports.SourceAssembler](ctx)
			if err != nil {
				return nil, err
			}

			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(fingerprinter, store, evictor, sb, assembler, compiler, executor, tracer, log), nil
		},
	})
}
