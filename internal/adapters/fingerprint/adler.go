// Package fingerprint derives cache keys from build specs.
package fingerprint

import (
	"hash/adler32"

	"go.trai.ch/cscript/internal/core/domain"
)

// Adler fingerprints specs with the Adler-32 rolling checksum: the byte sum and
// the sum of partial sums, both modulo 65521, packed into 32 bits.
type Adler struct {
	limit int
}

// New returns a fingerprinter that refuses specs above domain.MaxSpecSize.
func New() *Adler {
	return &Adler{limit: domain.MaxSpecSize}
}

// NewWithLimit returns a fingerprinter with a custom size limit.
func NewWithLimit(limit int) *Adler {
	return &Adler{limit: limit}
}

// Fingerprint implements ports.Fingerprinter.
func (a *Adler) Fingerprint(spec domain.BuildSpec) (domain.Fingerprint, bool) {
	if spec.Len() > a.limit {
		return 0, false
	}
	return domain.Fingerprint(adler32.Checksum(spec.Bytes())), true
}
