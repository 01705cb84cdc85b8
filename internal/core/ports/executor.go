// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cscript/internal/core/domain"
)

// ProcessRunner spawns a process with the tool's standard streams and waits for it.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessRunner interface {
	// Spawn runs argv to completion. The error is non-nil only when the process
	// could not be started; exit codes and signals are reported in the status.
	Spawn(ctx context.Context, argv []string) (domain.ExitStatus, error)
}

// Executor runs a built artifact, optionally under a debugger.
type Executor interface {
	// Run executes the artifact described by req and returns how it ended.
	Run(ctx context.Context, req domain.RunRequest) (domain.ExitStatus, error)
}
