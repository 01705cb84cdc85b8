// Package shell spawns child processes on behalf of the pipeline.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"go.trai.ch/cscript/internal/core/domain"
	"go.trai.ch/zerr"
)

// defaultWaitDelay is how long a child may outlive an interrupt before it is killed.
const defaultWaitDelay = 5 * time.Second

// Runner implements ports.ProcessRunner. Children share the tool's standard
// streams and environment.
type Runner struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	env       []string
	waitDelay time.Duration
}

// NewRunner creates a Runner wired to the process's own stdio.
func NewRunner() *Runner {
	return NewRunnerWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewRunnerWithIO creates a Runner with explicit streams.
func NewRunnerWithIO(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		waitDelay: defaultWaitDelay,
	}
}

// WithEnv replaces the environment children see. Commands are still
// resolved against the tool's own PATH.
func (r *Runner) WithEnv(env []string) *Runner {
	r.env = env
	return r
}

// Spawn runs argv and waits for it. Cancelling ctx interrupts the child
// rather than killing it outright.
func (r *Runner) Spawn(ctx context.Context, argv []string) (domain.ExitStatus, error) {
	if len(argv) == 0 {
		return domain.ExitStatus{}, zerr.Wrap(errors.New("empty command"), domain.ErrProcessStartFailed.Error())
	}

	name := argv[0]
	cmd := exec.CommandContext(ctx, name, argv[1:]...) //nolint:gosec // running user programs is the point
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Env = r.env
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.waitDelay

	if err := cmd.Start(); err != nil {
		return domain.ExitStatus{}, zerr.With(zerr.Wrap(err, domain.ErrProcessStartFailed.Error()), "command", name)
	}

	// Wait errors only matter when no process state came back; exit codes and
	// signals are read from the state itself.
	waitErr := cmd.Wait()
	if cmd.ProcessState == nil {
		return domain.ExitStatus{}, zerr.With(zerr.Wrap(waitErr, domain.ErrProcessStartFailed.Error()), "command", name)
	}

	return statusOf(cmd.ProcessState), nil
}

func statusOf(state *os.ProcessState) domain.ExitStatus {
	if state.Exited() {
		return domain.ExitStatus{Code: state.ExitCode()}
	}

	status := domain.ExitStatus{Abnormal: true, Signal: state.String()}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		status.Signal = ws.Signal().String()
	}
	return status
}
