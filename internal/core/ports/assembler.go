package ports

import "go.trai.ch/cscript/internal/core/domain"

// SourceAssembler turns an invocation into a build spec and compilable text.
//
//go:generate mockgen -source=assembler.go -destination=mocks/mock_assembler.go -package=mocks
type SourceAssembler interface {
	// Spec returns the build spec describing inv under cfg.
	Spec(cfg domain.Config, inv domain.Invocation) domain.BuildSpec

	// Assemble produces the full program text and the effective options after
	// applying #option lines found in the source.
	Assemble(inv domain.Invocation) ([]byte, domain.BuildOptions, error)
}
