package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/fg/internal/output"
	"github.com/raphi011/fg/internal/ui/styles"
)

// Runner invokes backend subcommands through an Executor.
type Runner struct {
	exec Executor
}

// NewRunner creates a Runner using e.
func NewRunner(e Executor) *Runner {
	return &Runner{exec: e}
}

// invoke runs tool with args. op labels failures, ok is printed on success.
func (r *Runner) invoke(ctx context.Context, tool, op string, args []string, ok string) error {
	if err := r.exec.Execute(ctx, tool, args); err != nil {
		return newSubprocessError(tool, op, err)
	}
	output.FromContext(ctx).Println(styles.SuccessStyle.Render(ok))
	return nil
}

// Run executes a stored alias command. The command is split on whitespace
// only: quotes are not interpreted.
func (r *Runner) Run(ctx context.Context, tool, command string) error {
	return r.invoke(ctx, tool, command, strings.Fields(command),
		fmt.Sprintf("%s %s -> OK", tool, command))
}

// Init runs "<tool> init".
func (r *Runner) Init(ctx context.Context, tool string) error {
	return r.invoke(ctx, tool, "init", []string{"init"},
		fmt.Sprintf("%s init -> OK", tool))
}

// Add runs "<tool> add <path>".
func (r *Runner) Add(ctx context.Context, tool, path string) error {
	return r.invoke(ctx, tool, "add", []string{"add", path},
		fmt.Sprintf("%s add %s -> OK", tool, path))
}

// Commit runs "<tool> commit -m <message>". The message is one argument.
func (r *Runner) Commit(ctx context.Context, tool, message string) error {
	return r.invoke(ctx, tool, "commit", []string{"commit", "-m", message},
		fmt.Sprintf("%s commit -> OK (%s)", tool, message))
}

// Pull runs "<tool> pull <remote>".
func (r *Runner) Pull(ctx context.Context, tool, remote string) error {
	return r.invoke(ctx, tool, "pull", []string{"pull", remote},
		fmt.Sprintf("%s pull %s -> OK", tool, remote))
}

// Push runs "<tool> push <remote>".
func (r *Runner) Push(ctx context.Context, tool, remote string) error {
	return r.invoke(ctx, tool, "push", []string{"push", remote},
		fmt.Sprintf("%s push %s -> OK", tool, remote))
}

// SetBranch runs "<tool> checkout -b <branch>" for --setBranch.
func (r *Runner) SetBranch(ctx context.Context, tool, branch string) error {
	return r.invoke(ctx, tool, "setBranch", []string{"checkout", "-b", branch},
		fmt.Sprintf("%s setBranch %s -> OK", tool, branch))
}

// NewBranch runs "<tool> checkout -b <branch>" for --new.
func (r *Runner) NewBranch(ctx context.Context, tool, branch string) error {
	return r.invoke(ctx, tool, "checkout", []string{"checkout", "-b", branch},
		fmt.Sprintf("%s checkout -b %s -> OK", tool, branch))
}

// RemoteOrigin runs "<tool> remote add origin <url>".
func (r *Runner) RemoteOrigin(ctx context.Context, tool, url string) error {
	return r.invoke(ctx, tool, "remote add", []string{"remote", "add", "origin", url},
		fmt.Sprintf("%s remote add origin %s -> OK", tool, url))
}

// Status runs "<tool> status <path>".
func (r *Runner) Status(ctx context.Context, tool, path string) error {
	return r.invoke(ctx, tool, "status", []string{"status", path},
		fmt.Sprintf("%s status %s -> OK", tool, path))
}
