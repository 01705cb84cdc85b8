// Package app implements the application layer for cscript.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports"
	"go.trai.ch/cscript/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	store        ports.CacheStore
	evictor      ports.Evictor
	sandbox      ports.Sandbox
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pipe *pipeline.Pipeline,
	store ports.CacheStore,
	evictor ports.Evictor,
	sandbox ports.Sandbox,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     pipe,
		store:        store,
		evictor:      evictor,
		sandbox:      sandbox,
		logger:       logger,
		out:          os.Stdout,
	}
}

// WithOutput redirects listings to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run builds and executes one program and returns the exit code the tool
// should end with.
func (a *App) Run(ctx context.Context, inv domain.Invocation) (int, error) {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return domain.FatalExitCode, zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.store.Prepare(cfg.Root); err != nil {
		return domain.FatalExitCode, err
	}

	inv, err = resolveSource(inv)
	if err != nil {
		return domain.FatalExitCode, err
	}

	res, err := a.pipeline.Run(ctx, cfg, inv)
	if err != nil {
		return domain.FatalExitCode, err
	}

	a.logger.Debug(fmt.Sprintf("%s run finished with exit code %d", res.Outcome, res.ExitCode))
	return res.ExitCode, nil
}

// resolveSource captures the identity of a source file: its absolute path,
// size and modification time.
func resolveSource(inv domain.Invocation) (domain.Invocation, error) {
	if inv.Source.Kind != domain.SourceFile {
		return inv, nil
	}

	path, err := filepath.Abs(inv.Source.Path)
	if err != nil {
		return inv, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", inv.Source.Path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return inv, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", inv.Source.Path)
	}
	if info.IsDir() {
		return inv, zerr.With(zerr.Wrap(errors.New("is a directory"), domain.ErrSourceReadFailed.Error()), "path", inv.Source.Path)
	}

	inv.Source.Path = path
	inv.Source.Size = info.Size()
	inv.Source.ModTime = info.ModTime()
	return inv, nil
}
