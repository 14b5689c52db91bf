package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/fg/internal/alias"
	"github.com/raphi011/fg/internal/config"
	"github.com/raphi011/fg/internal/dispatch"
	"github.com/raphi011/fg/internal/flags"
	"github.com/raphi011/fg/internal/log"
	"github.com/raphi011/fg/internal/output"
	"github.com/raphi011/fg/internal/storage"
	"github.com/raphi011/fg/internal/ui/styles"
	"github.com/raphi011/fg/internal/vcs"
)

// newRootCmd builds the fg command. configDir is only reported in verbose
// mode; the stores in opts already point at it.
func newRootCmd(opts dispatch.Options, configDir string) *cobra.Command {
	d := dispatch.New(opts)

	return &cobra.Command{
		Use:   "fg [flags]",
		Short: "A fast Git/GitHub CLI wrapper",
		Args:  cobra.ArbitraryArgs,
		// fg flags take optional values ("--add [path]") and value lists
		// ("--createAlias name cmd..."), which pflag cannot express.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rest, verbose, quiet := splitGlobalFlags(args)

			// Help short-circuits everything, including flag validation.
			if verbose && quiet && !dispatch.WantsHelp(rest) {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
			logger.Debug("config", "dir", configDir)

			ctx := log.WithLogger(cmd.Context(), logger)
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rest, _, _ := splitGlobalFlags(args)
			return d.Dispatch(cmd.Context(), rest)
		},
	}
}

// splitGlobalFlags removes --verbose/-v and --quiet/-q from args and reports
// which were given. Tokens inside a --createAlias command list are alias
// commands, not global flags, and are kept.
func splitGlobalFlags(args []string) (rest []string, verbose, quiet bool) {
	start, end := flags.TrailingSpan(args, "--createAlias")
	for i, a := range args {
		if i >= start && i < end {
			rest = append(rest, a)
			continue
		}
		switch a {
		case "--verbose", "-v":
			verbose = true
		case "--quiet", "-q":
			quiet = true
		default:
			rest = append(rest, a)
		}
	}
	return rest, verbose, quiet
}

// Execute runs fg and exits with status 1 on any error.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes fg with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dir := storage.Dir()

	settings := config.Default()
	if rest, _, _ := splitGlobalFlags(args); !dispatch.WantsHelp(rest) {
		loaded, err := config.Load(dir)
		if err != nil {
			printWarning(stderr, err)
		}
		settings = loaded
	}

	opts := dispatch.Options{
		Modes:    config.NewModeStore(dir),
		Aliases:  alias.NewStore(dir),
		Runner:   vcs.NewRunner(vcs.NewSystem()),
		Settings: settings,
		Help:     helpText,
		Version:  versionString(),
		Terminal: stdoutIsTerminal,
	}

	root := newRootCmd(opts, dir)
	root.SetArgs(append([]string{}, args...))
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printWarning reports a recoverable problem; fg continues with defaults.
func printWarning(w io.Writer, err error) {
	cw := colorprofile.NewWriter(w, os.Environ())
	fmt.Fprintf(cw, "%s %v\n", styles.WarningStyle.Render("Warning:"), err)
}

// printError writes "Error: <err>" once, styled only on a terminal.
func printError(w io.Writer, err error) {
	cw := colorprofile.NewWriter(w, os.Environ())
	fmt.Fprintf(cw, "%s %v\n", styles.ErrorStyle.Render("Error:"), err)
}
