package domain

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	// AppName is used for the default root and config directory names.
	AppName = "cscript"

	// CacheDirName is the name of the published entry directory under the root.
	CacheDirName = "cache"

	// TempDirName is the name of the workspace area under the root.
	TempDirName = "tmp"

	// SpecsFileName holds the raw BuildSpec bytes of an entry.
	SpecsFileName = "SPECS"

	// ManifestFileName holds the JSON manifest of an entry.
	ManifestFileName = "MANIFEST.json"

	// KeepMarkerFileName marks a workspace the user asked to keep.
	KeepMarkerFileName = "KEEP"

	// ArtifactFileName is the compiled binary inside a workspace or entry.
	ArtifactFileName = "a.out"

	// ConfigFileName is the name of the optional YAML config file.
	ConfigFileName = "config.yaml"

	// DefaultCapacity is the soft bound on the number of cache entries.
	DefaultCapacity = 128

	// MaxSpecSize is the largest BuildSpec that is fingerprinted.
	MaxSpecSize = 64 * 1024

	// MaxSandboxAttempts bounds the workspace name retry loop.
	MaxSandboxAttempts = 1000

	// FatalExitCode is returned by the tool itself on internal failure.
	FatalExitCode = 255

	// RootPerm is the permission of the cache root (rwx------).
	RootPerm = 0o700

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultRootPath returns the per-user root under the system temp directory.
func DefaultRootPath() string {
	return filepath.Join(os.TempDir(), AppName+"-"+strconv.Itoa(os.Geteuid()))
}

// CachePath joins root and cache.
func CachePath(root string) string {
	return filepath.Join(root, CacheDirName)
}

// TempPath joins root and tmp.
func TempPath(root string) string {
	return filepath.Join(root, TempDirName)
}

// EntryPath returns the directory an entry with the given fingerprint lives in.
func EntryPath(root string, fp Fingerprint) string {
	return filepath.Join(CachePath(root), fp.String())
}
