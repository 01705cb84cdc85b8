package ports

import "go.trai.ch/cscript/internal/core/domain"

// Fingerprinter derives cache keys from build specs.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns the key for spec. It reports false when the spec is
	// too large to fingerprint, in which case the invocation is not cacheable.
	Fingerprint(spec domain.BuildSpec) (domain.Fingerprint, bool)
}
