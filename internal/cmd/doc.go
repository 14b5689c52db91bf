// Package cmd runs external commands for fg.
//
// The child inherits the caller's terminal streams so backend output (git
// status, gh prompts, pagers) reaches the user unchanged.
//
// # Usage
//
//	err := cmd.RunContext(ctx, "", cmd.Stdio(), "git", "status", ".")
//	if code, ok := cmd.ExitCode(err); ok {
//	    // child ran and exited non-zero
//	}
//
// # Design Notes
//
// fg shells out to git/gh rather than using Go libraries. This keeps every
// pass-through operation identical to typing the backend command, including
// user configuration (SSH keys, credential helpers, git aliases).
package cmd
