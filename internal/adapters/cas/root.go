package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// PrepareRoot creates the root with its cache and tmp areas.
// A root that already exists must belong to the effective user.
func PrepareRoot(root string) error {
	if err := os.MkdirAll(filepath.Dir(root), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRootCreateFailed.Error()), "root", root)
	}
	if err := os.Mkdir(root, domain.RootPerm); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrRootCreateFailed.Error()), "root", root)
		}
		info, err := os.Lstat(root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRootCreateFailed.Error()), "root", root)
		}
		if !ownedByCurrentUser(info) {
			return zerr.With(domain.ErrRootNotOwned, "root", root)
		}
	}

	for _, dir := range []string{domain.CachePath(root), domain.TempPath(root)} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrRootCreateFailed.Error()), "path", dir)
		}
	}

	return nil
}
