package harness

import (
	"fmt"
	"io"
	"log/slog"
)

// Runner executes registered lessons and collects a Report.
//
// A Runner keeps no state between runs and never modifies its registry, so
// running the same names twice yields identical reports.
type Runner struct {
	registry *Registry
	logger   *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for per-lesson diagnostics.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner over reg. Logs are discarded unless WithLogger is given.
func NewRunner(reg *Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named lessons in the given order.
// With no names, every registered lesson runs in registration order.
func (r *Runner) Run(names ...string) (*Report, error) {
	if len(names) == 0 {
		return r.RunNames(nil)
	}
	return r.RunNames(names)
}

// RunNames executes the lessons in names, in order.
//
// A nil slice selects every registered lesson. An empty non-nil slice runs
// nothing and returns an empty report.
//
// All names are resolved before any lesson runs: an unknown name returns
// *NotFoundError and no report, with zero lessons invoked. A lesson that
// fails (returns an error or panics) is recorded as Failed and the run
// continues with the next lesson.
func (r *Runner) RunNames(names []string) (*Report, error) {
	if names == nil {
		names = r.registry.List()
	}

	lessons := make([]Lesson, 0, len(names))
	for _, name := range names {
		lesson, err := r.registry.Get(name)
		if err != nil {
			r.logger.Debug("rejecting run", "lesson", name, "error", err)
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	report := NewReport()
	for i, lesson := range lessons {
		outcome := r.runLesson(lesson)
		report.Add(outcome)

		r.logger.Debug("lesson finished",
			"position", i,
			"lesson", lesson.Name,
			"status", outcome.Status,
			"lines", len(outcome.Output),
		)
	}

	r.logger.Info("run finished",
		"lessons", len(report.Outcomes),
		"failed", len(report.Failed()),
	)
	return report, nil
}

// runLesson invokes one lesson body with a fresh sink.
func (r *Runner) runLesson(lesson Lesson) Outcome {
	sink := NewSink()
	if err := invoke(lesson.Body, sink); err != nil {
		return Failed(lesson, failureReason(err))
	}
	return Completed(lesson, sink.Snapshot())
}

// invoke calls body, converting a panic into an error.
func invoke(body Body, sink *Sink) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &Failure{Reason: fmt.Sprintf("panic: %v", p)}
		}
	}()
	return body(sink)
}
