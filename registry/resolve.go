package registry

import (
	"path/filepath"
)

// DefaultValueFile is the file holding a key's unnamed (default) value,
// written "@" in .reg files.
const DefaultValueFile = "@"

// Resolver maps keys onto filesystem paths below a configuration root.
// It performs no I/O.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver for the given absolute configuration root.
func NewResolver(root string) Resolver {
	return Resolver{root: root}
}

// Root returns the configuration root.
func (r Resolver) Root() string { return r.root }

// Resolve returns the directory backing k.
func (r Resolver) Resolve(k Key) string {
	return filepath.Join(r.root, k.location())
}

// ValuePath returns the file backing the value name of k.
func (r Resolver) ValuePath(k Key, name string) string {
	return filepath.Join(r.Resolve(k), valueFile(name))
}

func valueFile(name string) string {
	if name == "" {
		return DefaultValueFile
	}
	return name
}
