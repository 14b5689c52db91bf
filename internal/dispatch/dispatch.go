// Package dispatch decides which fg operation the raw arguments select and
// runs it.
//
// Operations are checked in priority order and the first match wins:
//
//	--help/-h, --version, --setMode, --getMode, --createAlias,
//	--listAliases, --alias
//
// When none of those is present, every pass-through flag found in the
// arguments runs its backend subcommand. Pass-through operations run in a
// fixed order (see [passthroughs]) regardless of command-line order, and the
// first failure stops the rest.
package dispatch

import (
	"context"
	"fmt"
	"iter"

	"github.com/raphi011/fg/internal/config"
	"github.com/raphi011/fg/internal/flags"
	"github.com/raphi011/fg/internal/log"
	"github.com/raphi011/fg/internal/output"
	"github.com/raphi011/fg/internal/ui/static"
	"github.com/raphi011/fg/internal/vcs"
)

// ModeStore persists the selected backend.
type ModeStore interface {
	ReadMode() string
	WriteMode(mode string) error
}

// AliasStore persists named command sequences.
type AliasStore interface {
	Create(name string, commands []string) error
	Lookup(name string) ([]string, error)
	All() iter.Seq2[string, []string]
}

// Options configures a Dispatcher.
type Options struct {
	Modes    ModeStore
	Aliases  AliasStore
	Runner   *vcs.Runner
	Settings config.Settings

	// Help is printed for no arguments or --help.
	Help string
	// Version is printed for --version.
	Version string
	// Terminal reports whether stdout is a terminal. Nil means it is not.
	Terminal func() bool
}

// Dispatcher maps raw arguments to one operation.
type Dispatcher struct {
	modes    ModeStore
	aliases  AliasStore
	runner   *vcs.Runner
	settings config.Settings
	help     string
	version  string
	terminal func() bool
}

// New creates a Dispatcher.
func New(opts Options) *Dispatcher {
	terminal := opts.Terminal
	if terminal == nil {
		terminal = func() bool { return false }
	}
	return &Dispatcher{
		modes:    opts.Modes,
		aliases:  opts.Aliases,
		runner:   opts.Runner,
		settings: opts.Settings,
		help:     opts.Help,
		version:  opts.Version,
		terminal: terminal,
	}
}

// WantsHelp reports whether args select the help text: no arguments, or
// --help/-h anywhere.
func WantsHelp(args []string) bool {
	return len(args) == 0 || flags.Has(args, "--help", "-h")
}

// Dispatch runs the operation selected by args.
func (d *Dispatcher) Dispatch(ctx context.Context, args []string) error {
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	if WantsHelp(args) {
		out.Print(d.help)
		return nil
	}

	if flags.Has(args, "--version") {
		out.Println(d.version)
		return nil
	}

	if mode, ok := flags.Extract(args, "--setMode"); ok {
		return d.setMode(ctx, mode)
	}

	if flags.Has(args, "--getMode") {
		out.Printf("Current mode: %s\n", d.modes.ReadMode())
		return nil
	}

	if name, ok := flags.Extract(args, "--createAlias"); ok {
		return d.createAlias(ctx, name, flags.Trailing(args, "--createAlias"))
	}

	if flags.Has(args, "--listAliases") {
		d.listAliases(ctx)
		return nil
	}

	if name, ok := flags.Extract(args, "--alias"); ok {
		return d.runAlias(ctx, name)
	}

	ran := false
	for _, p := range passthroughs {
		value, ok := flags.Extract(args, p.flag)
		if !ok {
			continue
		}
		if err := d.runPassthrough(ctx, p, value); err != nil {
			return err
		}
		ran = true
	}
	if !ran {
		l.Debug("no operation selected", "args", len(args))
	}
	return nil
}

func (d *Dispatcher) setMode(ctx context.Context, mode string) error {
	if mode == "" {
		return &MissingValueError{Flag: "--setMode", Want: "a value (git or gh)"}
	}
	if err := d.modes.WriteMode(mode); err != nil {
		return err
	}
	output.FromContext(ctx).Printf("Mode set to: %s\n", mode)
	return nil
}

func (d *Dispatcher) createAlias(ctx context.Context, name string, commands []string) error {
	if name == "" {
		return &MissingValueError{Flag: "--createAlias", Want: "a name"}
	}
	if len(commands) == 0 {
		return &MissingValueError{Flag: "--createAlias", Want: "at least one command"}
	}
	if err := d.aliases.Create(name, commands); err != nil {
		return fmt.Errorf("create alias %q: %w", name, err)
	}
	output.FromContext(ctx).Printf("Alias '%s' created with commands: %s\n", name, static.QuoteList(commands))
	return nil
}

func (d *Dispatcher) listAliases(ctx context.Context) {
	out := output.FromContext(ctx)

	var rows [][]string
	var lines []string
	for name, commands := range d.aliases.All() {
		rows = append(rows, static.AliasTableRow(name, commands))
		lines = append(lines, static.AliasLine(name, commands))
	}

	if len(rows) == 0 {
		out.Println("No aliases configured")
		return
	}

	out.Println("Configured aliases:")
	if d.terminal() {
		out.Print(static.RenderTable([]string{"NAME", "COMMANDS"}, rows))
		return
	}
	for _, line := range lines {
		out.Printf("  %s\n", line)
	}
}

// runAlias runs each stored command against the current mode in order.
// Commands that ran before a failure stay applied.
func (d *Dispatcher) runAlias(ctx context.Context, name string) error {
	if name == "" {
		return &MissingValueError{Flag: "--alias", Want: "a name"}
	}

	commands, err := d.aliases.Lookup(name)
	if err != nil {
		return err
	}

	tool := d.modes.ReadMode()
	log.FromContext(ctx).Debug("running alias", "name", name, "mode", tool, "commands", len(commands))

	for _, command := range commands {
		if err := d.runner.Run(ctx, tool, command); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) runPassthrough(ctx context.Context, p passthrough, value string) error {
	if value == "" {
		switch {
		case p.want != "":
			return &MissingValueError{Flag: p.flag, Want: p.want}
		case p.fallback != nil:
			value = p.fallback(d.settings)
		}
	}

	tool := d.modes.ReadMode()
	log.FromContext(ctx).Debug("pass-through", "flag", p.flag, "mode", tool)
	return p.run(d.runner, ctx, tool, value)
}
