package registry

import (
	"bytes"
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/unixreg/pkg/types"
)

const importReg = `Windows Registry Editor Version 5.00

[HKEY_CURRENT_USER\Software\MyApp]
"Version"="1.0.0"
"InstallDir"="C:\\Program Files\\MyApp"
@="default"
"Stale"="gone soon"

[HKLM\Software\MyApp]
"Enabled"=dword:00000001

[HKEY_CURRENT_USER\Software\MyApp]
"Stale"=-

[-HKEY_CURRENT_USER\Software\Missing]
`

func readValueFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestImport_Sample(t *testing.T) {
	s := newTestSession(t)

	stats, err := Import(s, strings.NewReader(importReg), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, ImportStats{KeysCreated: 2, KeysDeleted: 1, ValuesSet: 5, ValuesDeleted: 1}, stats)

	root := s.Config().Root
	app := filepath.Join(root, "Software", "MyApp")
	assert.Equal(t, "1.0.0", readValueFile(t, filepath.Join(app, "Version")))
	assert.Equal(t, `C:\Program Files\MyApp`, readValueFile(t, filepath.Join(app, "InstallDir")))
	assert.Equal(t, "default", readValueFile(t, filepath.Join(app, DefaultValueFile)))
	assert.NoFileExists(t, filepath.Join(app, "Stale"))

	lm := filepath.Join(root, "HKEY_LOCAL_MACHINE", "Software", "MyApp")
	assert.Equal(t, "dword:00000001", readValueFile(t, filepath.Join(lm, "Enabled")))

	assert.Zero(t, s.OpenKeys().Len(), "imported keys are closed")
}

func TestImport_ReadsBackThroughSession(t *testing.T) {
	s := newTestSession(t)
	_, err := Import(s, strings.NewReader(importReg), ImportOptions{})
	require.NoError(t, err)

	got, err := s.GetValue(NewKey(types.HKEY_CURRENT_USER, "Software/MyApp"), "")
	require.NoError(t, err)
	assert.Equal(t, "default", got)
}

func TestImport_MalformedWritesNothing(t *testing.T) {
	s := newTestSession(t)

	input := "[HKCU\\Software\\App]\n\"ok\"=\"1\"\n\"broken\"=dword:12\n"
	_, err := Import(s, strings.NewReader(input), ImportOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrFormat)
	assert.NoDirExists(t, s.Config().Root)
}

func TestImport_UTF16(t *testing.T) {
	s := newTestSession(t)

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	text := "Windows Registry Editor Version 5.00\r\n\r\n[HKCU\\Intl]\r\n\"Greeting\"=\"grüß\"\r\n"
	for _, w := range utf16.Encode([]rune(text)) {
		_ = binary.Write(&buf, binary.LittleEndian, w)
	}

	_, err := Import(s, &buf, ImportOptions{})
	require.NoError(t, err)

	got, err := s.GetValue(NewKey(types.HKEY_CURRENT_USER, "Intl"), "Greeting")
	require.NoError(t, err)
	assert.Equal(t, "grüß", got)
}

func TestImportFile(t *testing.T) {
	s := newTestSession(t)

	path := filepath.Join(t.TempDir(), "settings.reg")
	require.NoError(t, os.WriteFile(path, []byte(importReg), 0o644))

	stats, err := ImportFile(s, path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.ValuesSet)

	_, err = ImportFile(s, filepath.Join(t.TempDir(), "missing.reg"), ImportOptions{})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestImport_Optimize(t *testing.T) {
	s := newTestSession(t)

	stats, err := Import(s, strings.NewReader(importReg), ImportOptions{Optimize: true})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped, "the overwritten Stale value is never written")
	assert.Equal(t, 4, stats.ValuesSet)
	assert.Equal(t, 1, stats.ValuesDeleted)
	assert.NoFileExists(t, filepath.Join(s.Config().Root, "Software", "MyApp", "Stale"))
}

func TestImportFiles_LaterFileWins(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()

	base := filepath.Join(dir, "base.reg")
	patch := filepath.Join(dir, "patch.reg")
	require.NoError(t, os.WriteFile(base, []byte("[HKCU\\App]\n\"Version\"=\"1.0\"\n\"Keep\"=\"yes\"\n"), 0o644))
	require.NoError(t, os.WriteFile(patch, []byte("[HKCU\\App]\n\"Version\"=\"2.0\"\n"), 0o644))

	stats, err := ImportFiles(s, []string{base, patch}, ImportOptions{Optimize: true})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Skipped)

	k := NewKey(types.HKEY_CURRENT_USER, "App")
	got, err := s.GetValue(k, "Version")
	require.NoError(t, err)
	assert.Equal(t, "2.0", got)
	got, err = s.GetValue(k, "Keep")
	require.NoError(t, err)
	assert.Equal(t, "yes", got)
}

func TestImportFiles_AnyMalformedFileWritesNothing(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.reg")
	bad := filepath.Join(dir, "bad.reg")
	require.NoError(t, os.WriteFile(good, []byte(importReg), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("\"orphan\"=\"x\"\n"), 0o644))

	_, err := ImportFiles(s, []string{good, bad}, ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.reg")
	assert.NoDirExists(t, s.Config().Root)
}
