package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/jsreview/internal/harness"
	"github.com/roach88/jsreview/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	List    bool
	Record  string // archive path, empty to skip archiving
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Option configures the root command.
type Option func(*config)

type config struct {
	ids store.IDGenerator
}

// WithIDGenerator sets the generator for archived run IDs.
func WithIDGenerator(gen store.IDGenerator) Option {
	return func(c *config) {
		if gen != nil {
			c.ids = gen
		}
	}
}

// NewRootCommand creates the jsreview command over the lessons in reg.
func NewRootCommand(reg *harness.Registry, options ...Option) *cobra.Command {
	opts := &RootOptions{}
	cfg := &config{ids: store.UUIDv7Generator{}}
	for _, o := range options {
		o(cfg)
	}

	cmd := &cobra.Command{
		Use:   "jsreview [lesson...]",
		Short: "Run JavaScript review lessons",
		Long: `Run the JavaScript review lessons and report which completed.

With no arguments every lesson runs in order. Naming lessons runs only
those, in the order given.

Exit codes:
  0 - All selected lessons completed
  1 - One or more lessons failed
  2 - Command error (unknown lesson, invalid flag, archive failure)

Examples:
  jsreview
  jsreview closures oop
  jsreview --list
  jsreview --format json numbers
  jsreview --record runs.db`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.List {
				return listLessons(cmd, reg, opts)
			}
			return runLessons(cmd, reg, opts, cfg, args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list lessons without running them")
	cmd.Flags().StringVar(&opts.Record, "record", "", "archive the report in a SQLite database")

	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
