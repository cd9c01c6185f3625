package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jsreview/internal/harness"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(harness.NewRegistry())
	require.NotNil(t, cmd)
	assert.Equal(t, "jsreview", cmd.Name())
	assert.Contains(t, cmd.Long, "Exit codes")
}

func TestHistoryCommandPresence(t *testing.T) {
	cmd := NewRootCommand(harness.NewRegistry())

	sub, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)
	assert.Equal(t, "history", sub.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(harness.NewRegistry())

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestRunFlags(t *testing.T) {
	cmd := NewRootCommand(harness.NewRegistry())

	require.NotNil(t, cmd.Flags().Lookup("list"))
	recordFlag := cmd.Flags().Lookup("record")
	require.NotNil(t, recordFlag)
	assert.Equal(t, "", recordFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	res := execute(t, testRegistry(t), "--format", "xml")

	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.err.Error(), `invalid format "xml"`)
	assert.Empty(t, res.stdout)
}

func TestUnknownFlag(t *testing.T) {
	res := execute(t, testRegistry(t), "--bogus")

	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.True(t, isValidFormat(f), f)
	}
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
}
