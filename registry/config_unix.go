//go:build unix

package registry

import (
	"os"

	"golang.org/x/sys/unix"
)

// writable reports whether dir can hold the registry. A directory that does
// not exist yet is accepted; it is created by the first CreateKey.
func writable(dir string) bool {
	if _, err := os.Stat(dir); err != nil {
		return true
	}
	return unix.Access(dir, unix.W_OK) == nil
}
