package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "openrocket", cmd.Use)
	assert.Contains(t, cmd.Long, "OpenRocket")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"validate", "info", "motors"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestMotorsSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"import", "search"} {
		subCmd, _, err := cmd.Find([]string{"motors", name})
		require.NoError(t, err)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("motordb")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	validateCmd, _, err := cmd.Find([]string{"validate"})
	require.NoError(t, err)

	strictFlag := validateCmd.Flags().Lookup("strict")
	require.NotNil(t, strictFlag)
	assert.Equal(t, "false", strictFlag.DefValue)
}

func TestInvalidFormatRejected(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "xml", "validate", "whatever.ork"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
