// Package cas implements the content addressable build cache.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// defaultStatLimit bounds concurrent stat calls while enumerating entries.
const defaultStatLimit = 8

// Store implements ports.CacheStore with one directory per fingerprint.
type Store struct {
	now       func() time.Time
	statLimit int
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{
		now:       time.Now,
		statLimit: defaultStatLimit,
	}
}

// Prepare creates the root with its cache and tmp areas.
func (s *Store) Prepare(root string) error {
	return PrepareRoot(root)
}

// Lookup checks whether an entry directory exists for fp.
func (s *Store) Lookup(root string, fp domain.Fingerprint) (string, bool) {
	path := domain.EntryPath(root, fp)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return path, true
}

// Verify compares the entry's SPECS with spec and checks the artifact digest.
func (s *Store) Verify(entryPath string, spec domain.BuildSpec) (bool, error) {
	//nolint:gosec // entry paths are derived from the cache root
	data, err := os.ReadFile(filepath.Join(entryPath, domain.SpecsFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrSpecsReadFailed.Error()), "entry", entryPath)
	}

	if !spec.Matches(data) {
		return false, nil
	}

	return intact(entryPath), nil
}

// Touch sets the entry's modification time to now.
func (s *Store) Touch(entryPath string) error {
	now := s.now()
	if err := os.Chtimes(entryPath, now, now); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTouchFailed.Error()), "entry", entryPath)
	}
	return nil
}

// Seal writes SPECS and the manifest into a workspace holding a built artifact.
func (s *Store) Seal(workspace string, spec domain.BuildSpec, fp domain.Fingerprint, compiler string) error {
	specsPath := filepath.Join(workspace, domain.SpecsFileName)
	if err := os.WriteFile(specsPath, spec.Bytes(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrSpecsWriteFailed.Error())
	}

	sum, err := artifactDigest(filepath.Join(workspace, domain.ArtifactFileName))
	if err != nil {
		return err
	}

	manifest := domain.Manifest{
		Fingerprint:  fp.String(),
		SpecSize:     spec.Len(),
		ArtifactHash: sum,
		Compiler:     compiler,
		CreatedAt:    s.now().UTC(),
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	manifestPath := filepath.Join(workspace, domain.ManifestFileName)
	if err := os.WriteFile(manifestPath, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	return nil
}

// Commit renames the workspace into the entry slot for fp.
// When the slot is already taken the workspace is left where it is and
// domain.CommitLost is returned; the caller still owns it.
func (s *Store) Commit(root, workspace string, fp domain.Fingerprint) (domain.CommitOutcome, error) {
	if err := os.MkdirAll(domain.CachePath(root), domain.DirPerm); err != nil {
		return domain.CommitLost, zerr.Wrap(err, domain.ErrCommitFailed.Error())
	}

	dest := domain.EntryPath(root, fp)
	err := os.Rename(workspace, dest)
	switch {
	case err == nil:
		return domain.CommitWon, nil
	case errors.Is(err, fs.ErrExist):
		// EEXIST and ENOTEMPTY both land here.
		return domain.CommitLost, nil
	default:
		return domain.CommitLost, zerr.With(zerr.Wrap(err, domain.ErrCommitFailed.Error()), "entry", dest)
	}
}

// Entries lists all entries with their recency marker and size.
// If an entry disappears mid-scan the error wraps domain.ErrEntryVanished.
func (s *Store) Entries(ctx context.Context, root string) ([]domain.CacheEntry, error) {
	dir := domain.CachePath(root)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheScanFailed.Error())
	}

	slots := make([]*domain.CacheEntry, len(dirEntries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.statLimit)

	for i, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := describe(dir, de)
			if err != nil {
				return err
			}
			slots[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]domain.CacheEntry, 0, len(slots))
	for _, e := range slots {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

// Remove deletes an entry directory.
func (s *Store) Remove(entryPath string) error {
	if err := os.RemoveAll(entryPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEvictFailed.Error()), "entry", entryPath)
	}
	return nil
}

func describe(dir string, de fs.DirEntry) (*domain.CacheEntry, error) {
	path := filepath.Join(dir, de.Name())

	info, err := de.Info()
	if err != nil {
		return nil, scanError(err, de.Name())
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, scanError(err, de.Name())
	}

	var size int64
	for _, f := range files {
		fi, err := f.Info()
		if err != nil {
			return nil, scanError(err, de.Name())
		}
		size += fi.Size()
	}

	return &domain.CacheEntry{
		Name:    de.Name(),
		Path:    path,
		ModTime: info.ModTime(),
		Size:    size,
	}, nil
}

func scanError(err error, name string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrEntryVanished, err), "entry", name)
	}
	return zerr.With(zerr.Wrap(err, domain.ErrCacheScanFailed.Error()), "entry", name)
}
