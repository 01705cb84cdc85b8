package ports

import (
	"context"

	"go.trai.ch/cscript/internal/core/domain"
)

// Compiler invokes the external toolchain.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Compiler interface {
	// Compile builds req.SourcePath into req.OutputPath.
	Compile(ctx context.Context, req domain.CompileRequest) (domain.ExitStatus, error)
}

// Debugger wraps a program invocation in a debugger command line.
type Debugger interface {
	// Command returns the argv that runs binary with args under debugger.
	Command(debugger, binary string, args []string) []string
}
