package domain

// ExitStatus is the structured result of a finished child process.
type ExitStatus struct {
	// Code is the exit code of a normally terminated child.
	Code int
	// Abnormal is set when the child did not exit normally, e.g. killed by a signal.
	Abnormal bool
	// Signal names the terminating signal when known.
	Signal string
}

// Success reports a normal exit with code zero.
func (s ExitStatus) Success() bool {
	return !s.Abnormal && s.Code == 0
}

// ExitCode maps the status to the tool's own exit code.
// Abnormal termination collapses into FatalExitCode; the signal is not propagated.
func (s ExitStatus) ExitCode() int {
	if s.Abnormal {
		return FatalExitCode
	}
	return s.Code
}
