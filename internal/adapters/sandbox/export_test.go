// export_test.go exposes internals for white-box testing.
package sandbox

import "time"

// NewWithNames returns a Sandbox drawing names from next with a custom attempt bound.
func NewWithNames(next func() (string, error), attempts int) *Sandbox {
	s := New()
	s.newName = next
	s.attempts = attempts
	return s
}

// SetClock replaces the time source used by Sweep.
func (s *Sandbox) SetClock(now func() time.Time) {
	s.now = now
}
