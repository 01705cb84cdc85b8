package ports

import (
	"context"

	"go.trai.ch/cscript/internal/core/domain"
)

// CacheStore maps fingerprints to published entry directories under a root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Prepare creates the root and its cache and temp areas if needed.
	Prepare(root string) error

	// Lookup checks whether an entry for fp exists and returns its path.
	Lookup(root string, fp domain.Fingerprint) (string, bool)

	// Verify reports whether the entry was built from exactly spec and is intact.
	// A mismatch or a damaged entry returns false with a nil error; an error means
	// the SPECS file exists but could not be read.
	Verify(entryPath string, spec domain.BuildSpec) (bool, error)

	// Touch refreshes the entry's recency marker.
	Touch(entryPath string) error

	// Seal records spec and the artifact digest inside a workspace before Commit.
	Seal(workspace string, spec domain.BuildSpec, fp domain.Fingerprint, compiler string) error

	// Commit publishes workspace as the entry for fp. Losing to an existing entry
	// is reported as domain.CommitLost, not as an error.
	Commit(root, workspace string, fp domain.Fingerprint) (domain.CommitOutcome, error)

	// Entries enumerates the published entries.
	Entries(ctx context.Context, root string) ([]domain.CacheEntry, error)

	// Remove deletes an entry.
	Remove(entryPath string) error
}
