package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit_Disabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: false, LogDir: dir}))
	t.Cleanup(func() { _ = Close() })

	Info("dropped")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "disabled logging creates no files")
	assert.False(t, L.Core().Enabled(zapcore.ErrorLevel))
}

func TestInit_WritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))

	Debug("below level")
	Info("key opened", zap.String("key", `HKEY_CURRENT_USER\App`))
	Error("careful")
	require.NoError(t, Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName(time.Now())))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "key opened", first["msg"])
	assert.Equal(t, `HKEY_CURRENT_USER\App`, first["key"])
}

func TestInit_DebugLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir, Level: zapcore.DebugLevel}))
	Debug("visible")
	require.NoError(t, Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestClose_ResetsToNop(t *testing.T) {
	require.NoError(t, Close())
	require.NoError(t, Init(Options{Enabled: true, LogDir: t.TempDir()}))
	require.NoError(t, Close())
	require.NoError(t, Close())
	assert.False(t, L.Core().Enabled(zapcore.ErrorLevel))
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	files := map[string]bool{
		"unixreg-2024-01-01.log": false, // expired
		"unixreg-2024-03-30.log": true,
		"unixreg-garbage.log":    true,
		"other-2020-01-01.log":   true,
		"unixreg-2020-01-01.txt": true,
	}
	for name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cleanOldLogs(dir, now)

	for name, kept := range files {
		if kept {
			assert.FileExists(t, filepath.Join(dir, name))
		} else {
			assert.NoFileExists(t, filepath.Join(dir, name))
		}
	}
}

func TestWithConsole(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Enabled: true, LogDir: dir}))
	t.Cleanup(func() { _ = Close() })

	var console bytes.Buffer
	log := WithConsole(&console, zapcore.WarnLevel)
	log.Info("file only")
	log.Warn("falling back", zap.String("dir", "/tmp/x"))
	require.NoError(t, Close())

	assert.NotContains(t, console.String(), "file only")
	assert.Contains(t, console.String(), "falling back")
	assert.Contains(t, console.String(), "/tmp/x")

	data, err := os.ReadFile(filepath.Join(dir, logFileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), "file only")
	assert.Contains(t, string(data), "falling back")
}

func TestWithConsole_LoggingDisabled(t *testing.T) {
	require.NoError(t, Init(Options{}))

	var console bytes.Buffer
	WithConsole(&console, zapcore.WarnLevel).Warn("still shown")
	assert.Contains(t, console.String(), "still shown")
}
