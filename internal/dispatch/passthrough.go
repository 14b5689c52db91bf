package dispatch

import (
	"context"

	"github.com/raphi011/fg/internal/config"
	"github.com/raphi011/fg/internal/vcs"
)

// passthrough maps one flag to one backend subcommand.
type passthrough struct {
	flag string

	// want describes a required value; empty means the value is optional.
	want string

	// fallback supplies the value when an optional one is omitted.
	fallback func(config.Settings) string

	// run has the shape of a *vcs.Runner method expression.
	run func(r *vcs.Runner, ctx context.Context, tool, value string) error
}

func defaultPath(s config.Settings) string   { return s.DefaultPath }
func defaultRemote(s config.Settings) string { return s.DefaultRemote }

// passthroughs is evaluated top to bottom; the order is part of the CLI
// contract.
var passthroughs = []passthrough{
	{
		flag: "--init",
		run: func(r *vcs.Runner, ctx context.Context, tool, _ string) error {
			return r.Init(ctx, tool)
		},
	},
	{
		flag:     "--add",
		fallback: defaultPath,
		run:      (*vcs.Runner).Add,
	},
	{
		flag: "--commit",
		want: "a message",
		run:  (*vcs.Runner).Commit,
	},
	{
		flag:     "--pull",
		fallback: defaultRemote,
		run:      (*vcs.Runner).Pull,
	},
	{
		flag:     "--push",
		fallback: defaultRemote,
		run:      (*vcs.Runner).Push,
	},
	{
		flag: "--setBranch",
		want: "a branch name",
		run:  (*vcs.Runner).SetBranch,
	},
	{
		flag: "--ro",
		want: "a repository URL",
		run:  (*vcs.Runner).RemoteOrigin,
	},
	{
		flag:     "--info",
		fallback: defaultPath,
		run:      (*vcs.Runner).Status,
	},
	{
		flag: "--new",
		want: "a branch name",
		run:  (*vcs.Runner).NewBranch,
	},
}
