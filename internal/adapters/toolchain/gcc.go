// Package toolchain drives the external C/C++ compiler.
package toolchain

import (
	"context"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports"
	"go.trai.ch/zerr"
)

// Macros the assembled source brackets its body with.
const (
	PrefixMacro = "__CSCRIPT_PREFIX__"
	SuffixMacro = "__CSCRIPT_SUFFIX__"
)

// GCC implements ports.Compiler for gcc-compatible drivers.
type GCC struct {
	runner ports.ProcessRunner
}

// NewGCC creates a GCC compiler running through runner.
func NewGCC(runner ports.ProcessRunner) *GCC {
	return &GCC{runner: runner}
}

// Compile invokes the compiler. A non-zero exit is returned in the status;
// the error is reserved for failing to start the compiler at all.
func (g *GCC) Compile(ctx context.Context, req domain.CompileRequest) (domain.ExitStatus, error) {
	status, err := g.runner.Spawn(ctx, Args(req))
	if err != nil {
		return status, zerr.With(zerr.Wrap(err, domain.ErrCompilerStartFailed.Error()), "compiler", req.Compiler)
	}
	return status, nil
}

// Args builds the compiler command line for req.
func Args(req domain.CompileRequest) []string {
	opts := req.Options

	argv := []string{req.Compiler, "-I."}
	if opts.Debug {
		argv = append(argv, "-g")
	}
	if opts.ShowAsm {
		argv = append(argv, "-S")
	}
	argv = append(argv, opts.CFlags...)

	if opts.OwnMain {
		argv = append(argv, "-D"+PrefixMacro+"=", "-D"+SuffixMacro+"=")
	} else {
		argv = append(argv,
			"-D"+PrefixMacro+"=int main(int argc, char** argv) {",
			"-D"+SuffixMacro+"=; return 0; }",
		)
	}

	argv = append(argv, "-o", req.OutputPath, req.SourcePath)
	return append(argv, opts.LDFlags...)
}
