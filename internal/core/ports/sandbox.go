package ports

import "time"

// Sandbox manages exclusive temporary workspaces.
//
//go:generate mockgen -source=sandbox.go -destination=mocks/mock_sandbox.go -package=mocks
type Sandbox interface {
	// Create makes a new, randomly named workspace under tmpRoot.
	Create(tmpRoot string) (string, error)

	// WriteSource writes text as name inside the workspace and returns its path.
	WriteSource(workspace, name string, text []byte) (string, error)

	// Cleanup removes the workspace recursively. A missing workspace is not an error.
	Cleanup(workspace string) error

	// Retain marks the workspace as kept so Sweep leaves it alone.
	Retain(workspace string) error

	// Sweep removes workspaces under tmpRoot not modified for olderThan.
	// Retained workspaces are skipped.
	Sweep(tmpRoot string, olderThan time.Duration) (int, error)
}
