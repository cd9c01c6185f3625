// Package harness runs lessons and captures their output deterministically.
//
// A lesson is a named Body that writes lines to a Sink. Lessons are kept in a
// Registry, which preserves registration order and rejects duplicate names.
// A Runner executes a selection of lessons one after another, each with its
// own fresh Sink, and returns a Report with one Outcome per requested name.
//
// # Error Handling
//
// Registration and lookup problems are configuration errors and are returned
// to the caller immediately:
//
//   - *DuplicateNameError from Registry.Register
//   - *NotFoundError from Registry.Get and Runner.Run
//
// The runner resolves every requested name before it invokes anything, so a
// bad name never leaves a partially executed run.
//
// A lesson body that returns an error (usually built with Fail) or panics is
// recorded as a failed Outcome. The run continues with the next lesson.
//
// # Usage
//
//	reg := harness.NewRegistry()
//	_ = reg.Register("hello", func(out *harness.Sink) error {
//	    out.Write("hello, world")
//	    return nil
//	})
//
//	report, err := harness.NewRunner(reg).Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, o := range report.Outcomes {
//	    fmt.Println(o.Lesson, o.Status)
//	}
//
// # Determinism
//
// Lessons run sequentially in requested order. Lesson IDs are name-based
// UUIDs, and Report.Snapshot uses canonical JSON, so two runs over the same
// registry produce byte-identical snapshots. Golden comparison helpers live
// in golden.go.
package harness
