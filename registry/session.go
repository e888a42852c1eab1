package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/joshuapare/unixreg/pkg/types"
)

// Session performs registry operations against one configuration root and
// owns the set of keys opened through it.
//
// Every operation is a direct, blocking filesystem call. Failures from the
// filesystem are returned unchanged; nothing is retried.
type Session struct {
	cfg      Config
	resolver Resolver
	open     *OpenKeys
	fs       afero.Fs
	log      *zap.Logger
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

// NewSession returns a Session storing keys below cfg.Root.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		resolver: NewResolver(cfg.Root),
		open:     NewOpenKeys(),
		fs:       afero.NewOsFs(),
		log:      zap.NewNop(),
		dirMode:  DefaultDirMode,
		fileMode: DefaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Resolver returns the session's path resolver.
func (s *Session) Resolver() Resolver { return s.resolver }

// OpenKeys returns the set of keys currently open through the session.
func (s *Session) OpenKeys() *OpenKeys { return s.open }

// Fs returns the filesystem the session stores keys in.
func (s *Session) Fs() afero.Fs { return s.fs }

// normalize composes key and sub and stamps the access mode.
func (s *Session) normalize(key Key, sub SubKey, access types.Access) (Key, error) {
	k, err := Compose(key, sub)
	if err != nil {
		return Key{}, err
	}
	if err := k.checkNamespace(); err != nil {
		return Key{}, err
	}
	return k.WithAccess(access), nil
}

// CreateKey creates (or opens) sub below key with write access.
func (s *Session) CreateKey(key Key, sub SubKey) (Key, error) {
	return s.CreateKeyEx(key, sub, types.KEY_WRITE)
}

// CreateKeyEx creates the directory for sub below key if it is missing and
// records the key as open. Creating an existing key succeeds.
func (s *Session) CreateKeyEx(key Key, sub SubKey, access types.Access) (Key, error) {
	k, err := s.normalize(key, sub, access)
	if err != nil {
		return Key{}, err
	}

	path := s.resolver.Resolve(k)
	if err := s.fs.MkdirAll(path, s.dirMode); err != nil {
		return Key{}, err
	}

	s.open.Add(k)
	s.log.Debug("key opened", zap.String("key", k.String()), zap.String("path", path))
	return k, nil
}

// OpenKey opens sub below key with read access.
func (s *Session) OpenKey(key Key, sub SubKey) (Key, error) {
	return s.OpenKeyEx(key, sub, types.KEY_READ)
}

// OpenKeyEx opens sub below key.
//
// A plain directory has no notion of opening without creating, so this
// behaves exactly like CreateKeyEx: opening a missing key creates it.
func (s *Session) OpenKeyEx(key Key, sub SubKey, access types.Access) (Key, error) {
	return s.CreateKeyEx(key, sub, access)
}

// DeleteKey deletes sub below key.
func (s *Session) DeleteKey(key Key, sub SubKey) error {
	return s.DeleteKeyEx(key, sub, types.KEY_WOW64_64KEY)
}

// DeleteKeyEx removes the storage of sub below key when it is a regular
// file, or a symlink to one. A key backed by a directory is left in place,
// and a missing key is not an error.
func (s *Session) DeleteKeyEx(key Key, sub SubKey, access types.Access) error {
	k, err := s.normalize(key, sub, access)
	if err != nil {
		return err
	}

	path := s.resolver.Resolve(k)
	info, err := s.fs.Stat(path)
	switch {
	case isNotExist(err):
		return nil
	case err != nil:
		return err
	case info.Mode().IsRegular():
		return s.fs.Remove(path)
	default:
		s.log.Debug("delete of directory-backed key skipped",
			zap.String("key", k.String()), zap.String("path", path))
		return nil
	}
}

// CloseKey forgets an open key. Storage is not touched and closing a key that
// is not open does nothing.
func (s *Session) CloseKey(key Key) {
	if s.open.Remove(key) {
		s.log.Debug("key closed", zap.String("key", key.String()))
	}
}

// ConnectRegistry opens root on the local computer. Naming any computer
// fails: remote registries are not supported.
func (s *Session) ConnectRegistry(computer string, root types.RootKey) (Key, error) {
	if computer != "" {
		return Key{}, &types.Error{
			Kind: types.ErrKindUnsupported,
			Msg:  fmt.Sprintf("connect to %q", computer),
			Err:  errors.ErrUnsupported,
		}
	}
	return s.OpenKey(FromRoot(root), nil)
}

// WithKey opens sub below key, calls fn with it and always closes it
// afterwards, returning fn's error.
func (s *Session) WithKey(key Key, sub SubKey, access types.Access, fn func(Key) error) error {
	k, err := s.OpenKeyEx(key, sub, access)
	if err != nil {
		return err
	}
	defer s.CloseKey(k)
	return fn(k)
}

// GetValue returns the text stored in the value name of key. The empty name
// selects the default value.
func (s *Session) GetValue(key Key, name string) (string, error) {
	if err := key.checkNamespace(); err != nil {
		return "", err
	}
	path := s.resolver.ValuePath(key, name)
	data, err := afero.ReadFile(s.fs, path)
	if isNotExist(err) {
		return "", &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  fmt.Sprintf("value %q of %s not found", name, key),
			Err:  err,
		}
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// QueryValue is GetValue under its registry name.
func (s *Session) QueryValue(key Key, name string) (string, error) {
	return s.GetValue(key, name)
}

// SetValue replaces the contents of the value name of key with value.
// typ is accepted for compatibility and ignored. The key must exist: its
// directory is not created here.
func (s *Session) SetValue(key Key, name string, typ types.RegType, value string) error {
	if err := key.checkNamespace(); err != nil {
		return err
	}
	path := s.resolver.ValuePath(key, name)
	if err := afero.WriteFile(s.fs, path, []byte(value), s.fileMode); err != nil {
		return err
	}
	s.log.Debug("value set",
		zap.String("key", key.String()),
		zap.String("name", name),
		zap.Stringer("type", typ))
	return nil
}

// SetValueEx is SetValue under its registry name.
func (s *Session) SetValueEx(key Key, name string, typ types.RegType, value string) error {
	return s.SetValue(key, name, typ, value)
}

// DeleteValue removes the value name of key. A missing value is not an error.
func (s *Session) DeleteValue(key Key, name string) error {
	if err := key.checkNamespace(); err != nil {
		return err
	}
	err := s.fs.Remove(s.resolver.ValuePath(key, name))
	if err != nil && !isNotExist(err) {
		return err
	}
	return nil
}

// isNotExist treats a path whose parent is a regular file like a missing one.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
