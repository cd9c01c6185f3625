package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/jsreview/internal/harness"
	"github.com/roach88/jsreview/internal/store"
)

// testRegistry holds one passing, one failing and one silent lesson.
func testRegistry(t *testing.T) *harness.Registry {
	t.Helper()
	reg := harness.NewRegistry()
	require.NoError(t, reg.Register("hello", func(out *harness.Sink) error {
		out.Write("hello, world")
		return nil
	}, harness.WithTitle("Hello")))
	require.NoError(t, reg.Register("broken", func(out *harness.Sink) error {
		out.Write("partial")
		return harness.Fail("boom")
	}, harness.WithTitle("Broken")))
	require.NoError(t, reg.Register("quiet", func(out *harness.Sink) error {
		return nil
	}))
	return reg
}

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, reg *harness.Registry, args ...string) result {
	t.Helper()
	cmd := NewRootCommand(reg, WithIDGenerator(store.NewFixedGenerator("run-1", "run-2")))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
