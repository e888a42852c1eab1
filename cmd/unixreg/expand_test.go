package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandCommand(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", "/home/tester")
	t.Setenv("UNIXREG_TEST_DRIVE", "/mnt/data")
	require.NoError(t, os.WriteFile(configPath, []byte(`
aliases:
  - from: DATADRIVE
    to: UNIXREG_TEST_DRIVE
`), 0o644))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "default alias", input: `%USERPROFILE%\Documents`, want: "/home/tester/Documents\n"},
		{name: "configured alias", input: `%DATADRIVE%\backups`, want: "/mnt/data/backups\n"},
		{name: "undefined", input: "%UNIXREG_TEST_UNDEFINED%", want: "%UNIXREG_TEST_UNDEFINED%\n"},
		{name: "no tokens", input: "plain", want: "plain\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := captureOutput(t, func() error {
				return runExpand([]string{tt.input})
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestExpandCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	t.Setenv("HOME", "/home/tester")

	output, err := captureOutput(t, func() error {
		return runExpand([]string{"%USERPROFILE%"})
	})
	require.NoError(t, err)

	result := assertJSON(t, output)
	assert.Equal(t, "%USERPROFILE%", result["input"])
	assert.Equal(t, "/home/tester", result["output"])
}
