package registry

import (
	"time"

	"github.com/joshuapare/unixreg/pkg/types"
)

// The operations below have no equivalent on a plain directory tree. Each
// one always fails with an error matching types.ErrNotImplemented so callers
// can tell "unsupported" apart from "empty".

// KeyInfo is the result shape of QueryInfoKey.
type KeyInfo struct {
	SubKeys   int
	Values    int
	LastWrite time.Time
}

// EnumKey would return the name of the index-th sub-key of key.
func (s *Session) EnumKey(key Key, index int) (string, error) {
	return "", types.NotImplemented("EnumKey")
}

// EnumValue would return the name, data and type of the index-th value of key.
func (s *Session) EnumValue(key Key, index int) (string, string, types.RegType, error) {
	return "", "", types.REG_NONE, types.NotImplemented("EnumValue")
}

// FlushKey would force key's attributes to disk.
func (s *Session) FlushKey(key Key) error {
	return types.NotImplemented("FlushKey")
}

// QueryInfoKey would describe key's sub-keys, values and last write time.
func (s *Session) QueryInfoKey(key Key) (KeyInfo, error) {
	return KeyInfo{}, types.NotImplemented("QueryInfoKey")
}

// LoadKey would load a saved hive file under sub of key.
func (s *Session) LoadKey(key Key, sub SubKey, fileName string) error {
	return types.NotImplemented("LoadKey")
}

// SaveKey would save key and its sub-keys to fileName.
func (s *Session) SaveKey(key Key, fileName string) error {
	return types.NotImplemented("SaveKey")
}

// DisableReflectionKey would disable registry reflection for key.
func (s *Session) DisableReflectionKey(key Key) error {
	return types.NotImplemented("DisableReflectionKey")
}

// EnableReflectionKey would restore registry reflection for key.
func (s *Session) EnableReflectionKey(key Key) error {
	return types.NotImplemented("EnableReflectionKey")
}

// QueryReflectionKey would report whether reflection is disabled for key.
func (s *Session) QueryReflectionKey(key Key) (bool, error) {
	return false, types.NotImplemented("QueryReflectionKey")
}
