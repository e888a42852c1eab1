package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/unixreg/pkg/types"
)

// keySeparator joins path segments inside a Key. It is independent of the
// host separator; the Resolver converts when building filesystem paths.
const keySeparator = "/"

// Key is the handle for a registry key: a root, a relative path below it and
// the access mode it was opened with.
//
// Key is a small value type. Composition never mutates the receiver, so a Key
// can be shared and reused freely. The configuration root is never part of a
// Key; it is applied only by the Resolver.
type Key struct {
	root   types.RootKey
	path   string
	access types.Access
}

// FromRoot wraps a predefined root as a zero-segment Key.
func FromRoot(root types.RootKey) Key {
	return Key{root: root}
}

// NewKey returns the Key for path below root. Segments are separated by "/";
// leading and trailing separators are ignored.
//
// Segments are not sanitized: a ".." segment resolves outside the key's
// directory. Callers must not pass untrusted path components.
func NewKey(root types.RootKey, path string) Key {
	return Key{root: root, path: strings.Trim(path, keySeparator)}
}

// Root returns the predefined root the key lives under.
func (k Key) Root() types.RootKey { return k.root }

// Path returns the "/"-separated path relative to the root.
func (k Key) Path() string { return k.path }

// Access returns the access mode recorded on the key.
func (k Key) Access() types.Access { return k.access }

// Segments returns the path segments. A root key has none.
func (k Key) Segments() []string {
	if k.path == "" {
		return nil
	}
	return strings.Split(k.path, keySeparator)
}

// IsRoot reports whether k has no path segments.
func (k Key) IsRoot() bool { return k.path == "" }

// WithAccess returns a copy of k carrying access.
func (k Key) WithAccess(access types.Access) Key {
	k.access = access
	return k
}

// Equal reports whether k and other address the same storage location.
// The access mode is not part of a key's identity.
func (k Key) Equal(other Key) bool {
	return k.root == other.root && k.location() == other.location()
}

// checkNamespace rejects current-user keys whose first segment names another
// root. Those would be stored in that root's directory.
func (k Key) checkNamespace() error {
	if k.root != types.HKEY_CURRENT_USER || k.path == "" {
		return nil
	}
	first, _, _ := strings.Cut(k.path, keySeparator)
	for _, root := range types.RootKeys {
		if root != types.HKEY_CURRENT_USER && strings.EqualFold(first, rootDir(root)) {
			return &types.Error{
				Kind: types.ErrKindUnsupported,
				Msg:  fmt.Sprintf("key %s: first segment %q is reserved for %s", k, first, root),
			}
		}
	}
	return nil
}

// location is the key's path relative to the configuration root, cleaned the
// same way the Resolver cleans it.
func (k Key) location() string {
	return filepath.Join(rootDir(k.root), filepath.FromSlash(k.path))
}

// String renders the key in registry notation, e.g. HKEY_CURRENT_USER\Software\App.
func (k Key) String() string {
	if k.path == "" {
		return k.root.String()
	}
	return k.root.String() + `\` + strings.ReplaceAll(k.path, keySeparator, `\`)
}

// rootDir is the directory a root occupies below the configuration root.
// The current user owns the configuration root itself; every other root gets
// its own sub-directory. checkNamespace keeps current-user keys out of those.
func rootDir(root types.RootKey) string {
	if root == types.HKEY_CURRENT_USER {
		return ""
	}
	return root.String()
}
