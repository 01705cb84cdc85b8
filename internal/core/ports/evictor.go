package ports

import "context"

// Evictor bounds the number of cache entries.
//
//go:generate mockgen -source=evictor.go -destination=mocks/mock_evictor.go -package=mocks
type Evictor interface {
	// Enforce removes least recently used entries until at most capacity remain.
	// It returns the number of removed entries.
	Enforce(ctx context.Context, root string, capacity int) (int, error)
}
