package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/unixreg/pkg/types"
)

func TestUnsupportedOperations(t *testing.T) {
	s := newTestSession(t)
	k := NewKey(types.HKEY_CURRENT_USER, "App")

	ops := map[string]func() error{
		"EnumKey": func() error { _, err := s.EnumKey(k, 0); return err },
		"EnumValue": func() error {
			_, _, _, err := s.EnumValue(k, 0)
			return err
		},
		"FlushKey":             func() error { return s.FlushKey(k) },
		"QueryInfoKey":         func() error { _, err := s.QueryInfoKey(k); return err },
		"LoadKey":              func() error { return s.LoadKey(k, Name("sub"), "hive.dat") },
		"SaveKey":              func() error { return s.SaveKey(k, "hive.dat") },
		"DisableReflectionKey": func() error { return s.DisableReflectionKey(k) },
		"EnableReflectionKey":  func() error { return s.EnableReflectionKey(k) },
		"QueryReflectionKey":   func() error { _, err := s.QueryReflectionKey(k); return err },
	}

	for name, call := range ops {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 2; i++ {
				err := call()
				assert.ErrorIs(t, err, types.ErrNotImplemented)
				assert.NotErrorIs(t, err, types.ErrNotFound)
				assert.Contains(t, err.Error(), name)
			}
		})
	}

	assert.NoDirExists(t, s.Config().Root, "no partial behavior")
}
