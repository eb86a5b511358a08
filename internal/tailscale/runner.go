package tailscale

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Result describes one completed invocation of the tailscale CLI.
// A failed invocation is still a Result — never an error — so callers
// decide what a non-zero exit or a missing binary means for them.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	TimedOut bool
	NotFound bool
}

// OK reports whether the command ran and exited zero.
func (r Result) OK() bool {
	return r.ExitCode == 0 && !r.TimedOut && !r.NotFound
}

// Runner executes an external command with a bounded timeout.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// Run executes name with args, killing the process once timeout elapses.
// A timeout and a missing executable are reported as distinct Result
// fields, never folded into the exit code.
func (ExecRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		res.TimedOut = true
		res.ExitCode = -1
	case errors.Is(err, exec.ErrNotFound):
		res.NotFound = true
		res.ExitCode = -1
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
	}
	return res
}
