package registry

import (
	"github.com/joshuapare/unixreg/pkg/types"
)

// SubKey is the optional sub-key argument of the key operations. It is one of
// NoSubKey(), Name(s) or Nested(k); a nil SubKey means NoSubKey().
type SubKey interface{ isSubKey() }

type emptySubKey struct{}

func (emptySubKey) isSubKey() {}

type nameSubKey string

func (nameSubKey) isSubKey() {}

type nestedSubKey struct{ key Key }

func (nestedSubKey) isSubKey() {}

// NoSubKey selects the key itself.
func NoSubKey() SubKey { return emptySubKey{} }

// Name selects the sub-key with the given "/"-separated path.
func Name(name string) SubKey { return nameSubKey(name) }

// Nested selects the sub-key whose path is the path of k. The root of k is
// ignored.
func Nested(k Key) SubKey { return nestedSubKey{key: k} }

// Compose returns the key for sub below parent. Empty sub-keys return parent
// unchanged. parent is never modified.
func Compose(parent Key, sub SubKey) (Key, error) {
	var segment string
	switch s := sub.(type) {
	case nil, emptySubKey:
		return parent, nil
	case nameSubKey:
		segment = string(s)
	case nestedSubKey:
		segment = s.key.path
	default:
		return Key{}, types.TypeError("sub_key", sub)
	}

	if segment == "" {
		return parent, nil
	}

	child := parent
	if parent.path == "" {
		child.path = segment
	} else {
		child.path = parent.path + keySeparator + segment
	}
	return child, nil
}

// SubKeyOf converts a dynamically typed sub-key argument into a SubKey.
// It accepts nil, string, Key, *Key and SubKey values and rejects everything
// else with a type-contract error, before any storage is touched.
func SubKeyOf(v any) (SubKey, error) {
	switch s := v.(type) {
	case nil:
		return NoSubKey(), nil
	case string:
		return Name(s), nil
	case Key:
		return Nested(s), nil
	case *Key:
		if s == nil {
			return NoSubKey(), nil
		}
		return Nested(*s), nil
	case SubKey:
		return s, nil
	default:
		return nil, types.TypeError("sub_key", v)
	}
}
