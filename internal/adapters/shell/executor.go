package shell

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports"
)

// Executor implements ports.Executor on top of a ProcessRunner.
type Executor struct {
	runner   ports.ProcessRunner
	debugger ports.Debugger
	logger   ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(runner ports.ProcessRunner, debugger ports.Debugger, logger ports.Logger) *Executor {
	return &Executor{
		runner:   runner,
		debugger: debugger,
		logger:   logger,
	}
}

// Run executes the artifact and reports how it ended. Abnormal termination is
// logged here; its signal is not carried into the exit code.
func (e *Executor) Run(ctx context.Context, req domain.RunRequest) (domain.ExitStatus, error) {
	argv := append([]string{req.Binary}, req.Args...)
	if req.UnderDebugger {
		argv = e.debugger.Command(req.Debugger, req.Binary, slices.Clone(req.Args))
	}

	status, err := e.runner.Spawn(ctx, argv)
	if err != nil {
		return status, err
	}

	if status.Abnormal {
		e.logger.Warn(fmt.Sprintf("%s terminated abnormally (%s)", filepath.Base(argv[0]), status.Signal))
	}

	return status, nil
}
