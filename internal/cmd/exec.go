package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/raphi011/fg/internal/log"
)

// Streams holds the standard streams handed to a child process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Stdio returns the process's own standard streams.
func Stdio() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// RunContext runs name with args in dir (empty means the current directory)
// and waits for it. The command is logged in verbose mode.
//
// If ctx is cancelled the child is killed and ctx.Err() is returned.
// A non-zero exit is returned as *exec.ExitError.
func RunContext(ctx context.Context, dir string, streams Streams, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = streams.In
	c.Stdout = streams.Out
	c.Stderr = streams.Err

	err := c.Run()
	done(time.Since(start))

	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// ExitCode reports the exit status of a child that ran and exited non-zero.
// It matches *exec.ExitError and any other error with an ExitCode method.
func ExitCode(err error) (int, bool) {
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
