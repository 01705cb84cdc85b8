package domain

import "time"

// CacheEntry describes a published entry found while enumerating the cache.
type CacheEntry struct {
	Name    string
	Path    string
	ModTime time.Time
	Size    int64
}

// Manifest is written next to SPECS when an entry is sealed.
type Manifest struct {
	Fingerprint  string    `json:"fingerprint"`
	SpecSize     int       `json:"spec_size"`
	ArtifactHash string    `json:"artifact_hash"`
	Compiler     string    `json:"compiler,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommitOutcome reports how publishing a workspace ended.
type CommitOutcome uint8

const (
	// CommitWon means the workspace is now the entry.
	CommitWon CommitOutcome = iota
	// CommitLost means the slot was occupied and the workspace was discarded.
	CommitLost
)

// String implements fmt.Stringer.
func (o CommitOutcome) String() string {
	if o == CommitLost {
		return "lost"
	}
	return "won"
}
