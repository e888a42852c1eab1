package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/unixreg/pkg/types"
)

func TestOpenKeys(t *testing.T) {
	o := NewOpenKeys()
	a := NewKey(types.HKEY_CURRENT_USER, "a").WithAccess(types.KEY_READ)
	b := NewKey(types.HKEY_CURRENT_USER, "b")

	o.Add(a)
	o.Add(b)
	o.Add(a)
	assert.Equal(t, 3, o.Len())
	assert.True(t, o.Contains(a.WithAccess(types.KEY_WRITE)), "membership ignores access")

	assert.True(t, o.Remove(a))
	assert.True(t, o.Contains(a), "second handle still open")
	assert.True(t, o.Remove(a))
	assert.False(t, o.Contains(a))

	assert.False(t, o.Remove(a), "removing a non-member is a no-op")
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, []Key{b}, o.Keys())
}

func TestOpenKeys_KeysIsSnapshot(t *testing.T) {
	var o OpenKeys
	o.Add(hkcu)
	snap := o.Keys()
	o.Remove(hkcu)
	assert.Len(t, snap, 1)
	assert.Zero(t, o.Len())
}
