package domain

import "go.trai.ch/zerr"

var (
	// ErrRootCreateFailed is returned when the cache root directory cannot be created.
	ErrRootCreateFailed = zerr.New("failed to create cache root")

	// ErrRootNotOwned is returned when the cache root belongs to another user.
	ErrRootNotOwned = zerr.New("cache root owned by somebody else")

	// ErrSandboxCreateFailed is returned when a workspace directory cannot be created.
	ErrSandboxCreateFailed = zerr.New("failed to create temporary workspace")

	// ErrSandboxExhausted is returned when every attempt to pick a free workspace name collided.
	ErrSandboxExhausted = zerr.New("could not find a free temporary workspace name")

	// ErrSourceWriteFailed is returned when the assembled source cannot be written.
	ErrSourceWriteFailed = zerr.New("failed to write assembled source")

	// ErrSourceReadFailed is returned when the user's source cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source")

	// ErrSpecsReadFailed is returned when an entry's SPECS file exists but cannot be read.
	ErrSpecsReadFailed = zerr.New("failed to read entry specs")

	// ErrSpecsWriteFailed is returned when SPECS cannot be written into a workspace.
	ErrSpecsWriteFailed = zerr.New("failed to write entry specs")

	// ErrManifestWriteFailed is returned when the entry manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write entry manifest")

	// ErrArtifactHashFailed is returned when the built artifact cannot be hashed.
	ErrArtifactHashFailed = zerr.New("failed to hash artifact")

	// ErrCommitFailed is returned when publishing a workspace fails for a reason other than a lost race.
	ErrCommitFailed = zerr.New("failed to publish cache entry")

	// ErrTouchFailed is returned when an entry's recency marker cannot be refreshed.
	ErrTouchFailed = zerr.New("failed to refresh entry recency")

	// ErrEntryVanished is returned when an entry disappears while the cache is being scanned.
	ErrEntryVanished = zerr.New("cache entry vanished during scan")

	// ErrCacheScanFailed is returned when the cache directory cannot be listed.
	ErrCacheScanFailed = zerr.New("failed to scan cache")

	// ErrEvictFailed is returned when an eviction victim cannot be removed.
	ErrEvictFailed = zerr.New("failed to evict cache entry")

	// ErrCleanupFailed is returned when a workspace cannot be removed.
	ErrCleanupFailed = zerr.New("failed to remove temporary workspace")

	// ErrProcessStartFailed is returned when a child process cannot be started.
	ErrProcessStartFailed = zerr.New("could not spawn child process")

	// ErrCompilerStartFailed is returned when the compiler cannot be executed.
	ErrCompilerStartFailed = zerr.New("could not execute compiler")

	// ErrAbnormalTermination is returned when a child did not exit normally.
	ErrAbnormalTermination = zerr.New("child process terminated abnormally")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCapacity is returned when the configured cache capacity is not positive.
	ErrInvalidCapacity = zerr.New("cache capacity must be positive")

	// ErrRetainFailed is returned when a workspace cannot be marked as kept.
	ErrRetainFailed = zerr.New("failed to mark workspace as kept")

	// ErrNoSource is returned when neither a file, stdin nor an expression was given.
	ErrNoSource = zerr.New("no source given")

	// ErrInvalidPragma is returned when an #option line cannot be applied.
	ErrInvalidPragma = zerr.New("invalid #option line")

	// ErrMultipleExpressions is returned when -e is given more than once.
	ErrMultipleExpressions = zerr.New("multiple -e options not permitted")
)
