package cas

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/cscript/internal/core/ports"
)

// maxRestarts bounds how often a scan is restarted after concurrent changes.
const maxRestarts = 16

// Evictor implements ports.Evictor by removing the least recently used entry
// one at a time and rescanning after every removal.
type Evictor struct {
	store       ports.CacheStore
	logger      ports.Logger
	maxRestarts int
}

// NewEvictor creates an Evictor working on store.
func NewEvictor(store ports.CacheStore, logger ports.Logger) *Evictor {
	return &Evictor{
		store:       store,
		logger:      logger,
		maxRestarts: maxRestarts,
	}
}

// Enforce removes entries until at most capacity remain.
func (e *Evictor) Enforce(ctx context.Context, root string, capacity int) (int, error) {
	capacity = max(capacity, 0)

	removed := 0
	restarts := 0
	for {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		entries, err := e.store.Entries(ctx, root)
		if err != nil {
			if !errors.Is(err, domain.ErrEntryVanished) {
				return removed, err
			}
			restarts++
			if restarts > e.maxRestarts {
				e.logger.Warn(fmt.Sprintf("cache kept changing during eviction, giving up after %d rescans", e.maxRestarts))
				return removed, nil
			}
			e.logger.Debug("cache changed during scan, rescanning")
			continue
		}

		if len(entries) <= capacity {
			return removed, nil
		}

		victim := oldest(entries)
		if err := e.store.Remove(victim.Path); err != nil {
			return removed, err
		}
		removed++
		e.logger.Debug("evicted " + victim.Name)
	}
}

// oldest returns the entry with the smallest modification time.
// Ties go to the lexically smaller name so the choice is stable.
func oldest(entries []domain.CacheEntry) domain.CacheEntry {
	victim := entries[0]
	for _, e := range entries[1:] {
		if e.ModTime.Before(victim.ModTime) ||
			(e.ModTime.Equal(victim.ModTime) && e.Name < victim.Name) {
			victim = e
		}
	}
	return victim
}
