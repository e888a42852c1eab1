package registry

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/unixreg/pkg/types"
)

var hkcu = FromRoot(types.HKEY_CURRENT_USER)

// newTestSession returns a session rooted in a fresh temporary directory.
func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	cfg := Config{
		Root:    filepath.Join(t.TempDir(), StorageDir),
		Aliases: DefaultAliases,
	}
	return NewSession(cfg, opts...)
}

// mapEnv adapts a map to the getenv signature.
func mapEnv(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

// mapLookup adapts a map to the lookup signature.
func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

// captureStderr returns what fn writes to os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	w.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read stderr: %v", err)
	}
	return buf.String()
}
