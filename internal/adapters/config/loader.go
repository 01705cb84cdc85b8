// Package config provides the configuration loader for cscript.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvConfig   = "CSCRIPT_CONFIG"
	EnvRoot     = "CSCRIPT_ROOT"
	EnvCapacity = "CSCRIPT_CAPACITY"
)

// Loader implements ports.ConfigLoader. Settings are layered as defaults,
// then the YAML file, then environment variables.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, getenv: os.Getenv}
}

// Load resolves the effective configuration.
func (l *Loader) Load() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, explicit := l.path()
	if path != "" {
		file, err := readFile(path)
		switch {
		case err == nil:
			if err := apply(&cfg, file); err != nil {
				return cfg, zerr.With(err, "path", path)
			}
			l.logger.Debug("loaded config from " + path)
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return cfg, zerr.With(err, "path", path)
		}
	}

	if root := l.getenv(EnvRoot); root != "" {
		cfg.Root = root
	}
	if raw := l.getenv(EnvCapacity); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrInvalidCapacity.Error()), "value", raw)
		}
		cfg.Capacity = n
	}

	if cfg.Capacity < 1 {
		return cfg, zerr.With(domain.ErrInvalidCapacity, "capacity", cfg.Capacity)
	}

	return cfg, nil
}

// path returns the config file location and whether it was set explicitly.
func (l *Loader) path() (string, bool) {
	if p := l.getenv(EnvConfig); p != "" {
		return p, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, domain.AppName, domain.ConfigFileName), false
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &file, nil
}

func apply(cfg *domain.Config, file *File) error {
	if file.Root != "" {
		cfg.Root = file.Root
	}
	if file.Capacity != nil {
		cfg.Capacity = *file.Capacity
	}
	if file.Compiler.C != "" {
		cfg.CCompiler = file.Compiler.C
	}
	if file.Compiler.CXX != "" {
		cfg.CXXCompiler = file.Compiler.CXX
	}
	if file.Debugger != "" {
		cfg.Debugger = file.Debugger
	}
	if file.SweepAfter != "" {
		d, err := time.ParseDuration(file.SweepAfter)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "sweep_after", file.SweepAfter)
		}
		cfg.SweepAfter = d
	}
	return nil
}
