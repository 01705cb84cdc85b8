// Package sandbox manages exclusive temporary build workspaces.
package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sandbox implements ports.Sandbox.
type Sandbox struct {
	newName  func() (string, error)
	attempts int
	now      func() time.Time
}

// New creates a Sandbox that names workspaces with random UUIDs.
func New() *Sandbox {
	return &Sandbox{
		newName:  randomName,
		attempts: domain.MaxSandboxAttempts,
		now:      time.Now,
	}
}

func randomName() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}

// Create makes a fresh workspace directory. Only the caller that created a
// directory owns it, so name collisions are retried with a new name.
func (s *Sandbox) Create(tmpRoot string) (string, error) {
	if err := os.MkdirAll(tmpRoot, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSandboxCreateFailed.Error()), "path", tmpRoot)
	}

	for range s.attempts {
		name, err := s.newName()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrSandboxCreateFailed.Error())
		}

		path := filepath.Join(tmpRoot, name)
		err = os.Mkdir(path, domain.RootPerm)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrSandboxCreateFailed.Error()), "path", path)
		}
	}

	return "", zerr.With(domain.ErrSandboxExhausted, "attempts", s.attempts)
}

// WriteSource writes the assembled program into the workspace.
func (s *Sandbox) WriteSource(workspace, name string, text []byte) (string, error) {
	path := filepath.Join(workspace, name)
	if err := os.WriteFile(path, text, domain.PrivateFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceWriteFailed.Error()), "path", path)
	}
	return path, nil
}

// Cleanup removes the workspace and everything in it.
func (s *Sandbox) Cleanup(workspace string) error {
	if err := os.RemoveAll(workspace); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", workspace)
	}
	return nil
}

// Retain drops a marker into the workspace so Sweep never reclaims it.
func (s *Sandbox) Retain(workspace string) error {
	path := filepath.Join(workspace, domain.KeepMarkerFileName)
	if err := os.WriteFile(path, nil, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRetainFailed.Error()), "path", path)
	}
	return nil
}

// Sweep removes workspaces left behind by invocations that died or lost a
// commit race without cleaning up. Only directories untouched for olderThan
// are removed so in-flight builds are left alone, and retained ones are
// never removed.
func (s *Sandbox) Sweep(tmpRoot string, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(tmpRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", tmpRoot)
	}

	cutoff := s.now().Add(-olderThan)
	removed := 0
	var errs error
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed by its owner in the meantime.
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		workspace := filepath.Join(tmpRoot, e.Name())
		if retained(workspace) {
			continue
		}
		if err := s.Cleanup(workspace); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		removed++
	}

	return removed, errs
}

func retained(workspace string) bool {
	_, err := os.Lstat(filepath.Join(workspace, domain.KeepMarkerFileName))
	return err == nil
}
