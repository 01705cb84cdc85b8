package domain

import "fmt"

// Fingerprint is the fixed-width cache key derived from a BuildSpec.
// Distinct specs may share a fingerprint; it only selects the entry slot.
type Fingerprint uint32

// String renders the fingerprint as eight lowercase hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%08x", uint32(f))
}
