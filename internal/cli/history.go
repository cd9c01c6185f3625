package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/jsreview/internal/store"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <db> [run-id]",
		Short: "Show archived runs",
		Long: `Show runs archived with --record.

With only a database path, lists every archived run, oldest first.
With a run ID, prints that run's report.

Examples:
  jsreview history runs.db
  jsreview history runs.db 0192f5c4-8a3e-7b21-9c4d-2e6f1a0b3c5d --format json`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := os.Stat(args[0]); err != nil {
				return WrapExitError(ExitCommandError, "archive not found", err)
			}
			if len(args) == 1 {
				return showRuns(ctx, cmd, rootOpts, args[0])
			}
			return showRun(ctx, cmd, rootOpts, args[0], args[1])
		},
	}
}

func showRuns(ctx context.Context, cmd *cobra.Command, opts *RootOptions, path string) error {
	f := newFormatter(cmd, opts)

	s, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open archive", err)
	}
	defer s.Close()

	runs, err := s.ListRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot list runs", err)
	}

	if f.Structured() {
		return f.Success(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(f.Writer, "No runs recorded.")
		return nil
	}
	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tLESSONS\tFAILED\tDIGEST")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.ID, r.LessonCount, r.FailedCount, r.ReportDigest[:12])
	}
	return tw.Flush()
}

func showRun(ctx context.Context, cmd *cobra.Command, opts *RootOptions, path, runID string) error {
	f := newFormatter(cmd, opts)

	s, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open archive", err)
	}
	defer s.Close()

	report, err := s.ReadReport(ctx, runID)
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) && f.Structured() {
			_ = f.Error(CodeArchive, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "cannot read run", err)
	}

	result := newRunResult(report)
	result.RunID = runID
	if f.Structured() {
		return f.Success(result)
	}
	writeText(f, report, RunResult{Total: result.Total, Failed: result.Failed})
	return nil
}
