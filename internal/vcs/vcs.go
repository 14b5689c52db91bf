// Package vcs runs backend (git or gh) subcommands and reports the outcome.
//
// Every operation builds one argument vector, hands it to an [Executor],
// and prints a confirmation line on success:
//
//	git add . -> OK
//
// A failure is returned as *[SubprocessError]; nothing is retried.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/raphi011/fg/internal/cmd"
)

// ErrBackendNotFound matches a *SubprocessError whose backend executable is
// not on PATH.
var ErrBackendNotFound = errors.New("backend not found")

// installHints maps a backend to what the user should install.
var installHints = map[string]string{
	"git": "git (https://git-scm.com)",
	"gh":  "GitHub CLI (https://cli.github.com)",
}

// Executor runs a backend tool with argv and waits for it.
// A non-zero exit must be reported as an error with an ExitCode() int method.
type Executor interface {
	Execute(ctx context.Context, tool string, args []string) error
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, tool string, args []string) error

func (f ExecutorFunc) Execute(ctx context.Context, tool string, args []string) error {
	return f(ctx, tool, args)
}

// System executes backends as child processes attached to the given streams.
type System struct {
	Streams cmd.Streams
}

// NewSystem returns an executor attached to the process's own stdio.
func NewSystem() *System {
	return &System{Streams: cmd.Stdio()}
}

func (s *System) Execute(ctx context.Context, tool string, args []string) error {
	return cmd.RunContext(ctx, "", s.Streams, tool, args...)
}

// SubprocessError reports a backend invocation that failed to start or
// exited non-zero.
type SubprocessError struct {
	Tool string // backend, e.g. "git"
	Op   string // operation label, e.g. "commit" or "remote add"
	Code int    // exit status; -1 if the process did not exit normally
	Err  error
}

func (e *SubprocessError) Error() string {
	if errors.Is(e.Err, exec.ErrNotFound) {
		hint, ok := installHints[e.Tool]
		if !ok {
			hint = e.Tool
		}
		return fmt.Sprintf("%s not found: please install %s", e.Tool, hint)
	}
	if e.Code >= 0 {
		return fmt.Sprintf("%s %s failed (exit status %d)", e.Tool, e.Op, e.Code)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Tool, e.Op, e.Err)
}

func (e *SubprocessError) Unwrap() error {
	return e.Err
}

func (e *SubprocessError) Is(target error) bool {
	return target == ErrBackendNotFound && errors.Is(e.Err, exec.ErrNotFound)
}

func newSubprocessError(tool, op string, err error) *SubprocessError {
	code, ok := cmd.ExitCode(err)
	if !ok {
		code = -1
	}
	return &SubprocessError{Tool: tool, Op: op, Code: code, Err: err}
}
