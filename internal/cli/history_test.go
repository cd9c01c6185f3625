package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jsreview/internal/store"
)

// recordRun archives one run of hello and broken as run-1.
func recordRun(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	res := execute(t, testRegistry(t), "--record", path, "hello", "broken")
	require.Equal(t, ExitFailure, GetExitCode(res.err))
	return path
}

func TestHistory_ListRunsJSON(t *testing.T) {
	path := recordRun(t)

	res := execute(t, testRegistry(t), "history", path, "--format", "json")
	require.NoError(t, res.err)

	var resp struct {
		Status string             `json:"status"`
		Data   []store.RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "run-1", resp.Data[0].ID)
	assert.Equal(t, 2, resp.Data[0].LessonCount)
	assert.Equal(t, 1, resp.Data[0].FailedCount)
}

func TestHistory_ListRunsText(t *testing.T) {
	path := recordRun(t)

	res := execute(t, testRegistry(t), "history", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "RUN")
	assert.Contains(t, res.stdout, "run-1")
}

func TestHistory_ShowRun(t *testing.T) {
	path := recordRun(t)

	res := execute(t, testRegistry(t), "history", path, "run-1")
	require.NoError(t, res.err)
	assert.Equal(t,
		"== hello ==\nhello, world\n✓ hello\n== broken ==\n✗ broken: boom\n\n1 of 2 lessons failed:\n  ✗ broken: boom\n",
		res.stdout)
}

func TestHistory_UnknownRun(t *testing.T) {
	path := recordRun(t)

	res := execute(t, testRegistry(t), "history", path, "run-9")
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.ErrorIs(t, res.err, store.ErrRunNotFound)
}

func TestHistory_MissingArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.db")

	res := execute(t, testRegistry(t), "history", path)
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.err.Error(), "archive not found")
}

func TestHistory_EmptyArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	res := execute(t, testRegistry(t), "history", path)
	require.NoError(t, res.err)
	assert.Equal(t, "No runs recorded.\n", res.stdout)
}
