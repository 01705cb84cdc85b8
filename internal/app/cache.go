package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/ui/output"
	"go.trai.ch/cscript/internal/ui/style"
	"go.trai.ch/zerr"
)

// List prints the published entries, most recently used first.
func (a *App) List(ctx context.Context) error {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	entries, err := a.store.Entries(ctx, cfg.Root)
	if err != nil {
		return err
	}

	slices.SortFunc(entries, func(x, y domain.CacheEntry) int {
		if c := y.ModTime.Compare(x.ModTime); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})

	r := lipgloss.NewRenderer(a.out, termenv.WithProfile(output.ColorProfile(a.out)))
	header := r.NewStyle().Inherit(style.Header)
	muted := r.NewStyle().Inherit(style.Muted)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", header.Render(fmt.Sprintf("%-10s %10s  %s", "ENTRY", "SIZE", "LAST USED")))

	var total int64
	now := time.Now()
	for _, e := range entries {
		total += e.Size
		fmt.Fprintf(&b, "%-10s %10s  %s\n",
			e.Name,
			humanize.Bytes(uint64(max(e.Size, 0))),
			muted.Render(humanize.RelTime(e.ModTime, now, "ago", "from now")),
		)
	}
	fmt.Fprintf(&b, "%d of %d entries, %s in %s\n",
		len(entries), cfg.Capacity, humanize.Bytes(uint64(max(total, 0))), domain.CachePath(cfg.Root))

	_, err = fmt.Fprint(a.out, b.String())
	return err
}

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	Cache bool
	Temp  bool
}

// Clean removes the cache and temp areas.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Cache {
		remove(domain.CachePath(cfg.Root), "build cache")
	}
	if options.Temp {
		remove(domain.TempPath(cfg.Root), "temporary workspaces")
	}

	return errs
}

// GCOptions tunes a garbage collection pass.
type GCOptions struct {
	// OlderThan overrides the configured age after which workspaces are swept.
	OlderThan time.Duration
}

// GC enforces the capacity bound and sweeps abandoned workspaces.
func (a *App) GC(ctx context.Context, options GCOptions) error {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	removed, err := a.evictor.Enforce(ctx, cfg.Root, cfg.Capacity)
	if err != nil {
		return err
	}

	age := cfg.SweepAfter
	if options.OlderThan > 0 {
		age = options.OlderThan
	}
	swept, err := a.sandbox.Sweep(domain.TempPath(cfg.Root), age)

	a.logger.Info(fmt.Sprintf("evicted %d %s, swept %d %s",
		removed, plural(removed, "entry", "entries"), swept, plural(swept, "workspace", "workspaces")))

	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
