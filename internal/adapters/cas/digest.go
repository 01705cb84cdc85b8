package cas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// artifactDigest streams the file through xxhash and returns the hex sum.
func artifactDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is inside a workspace we own
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactHashFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactHashFailed.Error()), "path", path)
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// readManifest loads an entry's manifest.
func readManifest(entryPath string) (domain.Manifest, error) {
	var m domain.Manifest
	//nolint:gosec // entry paths are derived from the cache root
	data, err := os.ReadFile(filepath.Join(entryPath, domain.ManifestFileName))
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(data, &m)
	return m, err
}

// intact reports whether the entry's artifact still matches its manifest.
// Anything missing or unreadable counts as damaged.
func intact(entryPath string) bool {
	m, err := readManifest(entryPath)
	if err != nil || m.ArtifactHash == "" {
		return false
	}

	sum, err := artifactDigest(filepath.Join(entryPath, domain.ArtifactFileName))
	if err != nil {
		return false
	}

	return sum == m.ArtifactHash
}
