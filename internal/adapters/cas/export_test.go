// export_test.go exposes internals for white-box testing.
package cas

import "time"

// SetClock replaces the store's time source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// SetMaxRestarts overrides the rescan bound of an Evictor.
func (e *Evictor) SetMaxRestarts(n int) {
	e.maxRestarts = n
}

// Oldest exposes victim selection.
var Oldest = oldest
