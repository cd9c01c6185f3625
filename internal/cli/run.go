package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/jsreview/internal/harness"
	"github.com/roach88/jsreview/internal/store"
)

// RunResult is the structured payload of a run.
type RunResult struct {
	RunID    string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Total    int               `json:"total" yaml:"total"`
	Passed   int               `json:"passed" yaml:"passed"`
	Failed   int               `json:"failed" yaml:"failed"`
	Outcomes []harness.Outcome `json:"outcomes" yaml:"outcomes"`
}

// LessonInfo describes one registered lesson for --list.
type LessonInfo struct {
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	ID    string `json:"id" yaml:"id"`
}

func runLessons(cmd *cobra.Command, reg *harness.Registry, opts *RootOptions, cfg *config, args []string) error {
	f := newFormatter(cmd, opts)
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	var names []string
	if len(args) > 0 {
		names = args
	}

	report, err := harness.NewRunner(reg, harness.WithLogger(logger)).RunNames(names)
	if err != nil {
		if f.Structured() {
			_ = f.Error(CodeUnknownLesson, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "cannot run lessons", err)
	}

	result := newRunResult(report)

	if opts.Record != "" {
		id, err := recordReport(cmd.Context(), opts.Record, cfg.ids, report, logger)
		if err != nil {
			if f.Structured() {
				_ = f.Error(CodeArchive, err.Error(), nil)
			}
			return WrapExitError(ExitCommandError, "cannot record report", err)
		}
		result.RunID = id
	}

	if f.Structured() {
		if err := writeStructured(f, result); err != nil {
			return WrapExitError(ExitCommandError, "cannot write output", err)
		}
	} else {
		writeText(f, report, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d lessons failed", result.Failed, result.Total))
	}
	return nil
}

func newRunResult(report *harness.Report) RunResult {
	failed := len(report.Failed())
	return RunResult{
		Total:    len(report.Outcomes),
		Passed:   len(report.Outcomes) - failed,
		Failed:   failed,
		Outcomes: report.Outcomes,
	}
}

func writeStructured(f *OutputFormatter, result RunResult) error {
	if result.Failed == 0 {
		return f.Success(result)
	}
	return f.encode(CLIResponse{
		Status: "error",
		Data:   result,
		Error: &CLIError{
			Code:    CodeLessonsFailed,
			Message: fmt.Sprintf("%d of %d lessons failed", result.Failed, result.Total),
		},
	})
}

func writeText(f *OutputFormatter, report *harness.Report, result RunResult) {
	w := f.Writer
	m := newMarkers(w)

	for _, o := range report.Outcomes {
		fmt.Fprintln(w, m.Header(o.Lesson))
		for _, line := range o.Output {
			fmt.Fprintln(w, line)
		}
		if o.OK() {
			fmt.Fprintln(w, m.Pass(o.Lesson))
		} else {
			fmt.Fprintln(w, m.Fail(o.Lesson, o.Reason))
		}
	}

	if result.Failed > 0 {
		fmt.Fprintf(w, "\n%d of %d lessons failed:\n", result.Failed, result.Total)
		for _, o := range report.Failed() {
			fmt.Fprintf(w, "  %s\n", m.Fail(o.Lesson, o.Reason))
		}
	}

	if result.RunID != "" {
		fmt.Fprintf(f.GetErrWriter(), "recorded run %s\n", result.RunID)
	}
}

func recordReport(ctx context.Context, path string, ids store.IDGenerator, report *harness.Report, logger *slog.Logger) (string, error) {
	s, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer s.Close()

	id := ids.Generate()
	if err := s.WriteReport(ctx, id, report); err != nil {
		return "", err
	}

	logger.Info("report recorded", "run_id", id, "path", path)
	return id, nil
}

func listLessons(cmd *cobra.Command, reg *harness.Registry, opts *RootOptions) error {
	f := newFormatter(cmd, opts)

	lessons := reg.Lessons()
	infos := make([]LessonInfo, len(lessons))
	for i, l := range lessons {
		infos[i] = LessonInfo{Name: l.Name, Title: l.Title, ID: l.ID.String()}
	}

	if f.Structured() {
		return f.Success(infos)
	}

	writeLessonTable(f.Writer, infos)
	return nil
}

func writeLessonTable(w io.Writer, infos []LessonInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Title)
	}
	tw.Flush()
}
