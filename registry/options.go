package registry

import (
	"io/fs"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultDirMode  fs.FileMode = 0o755
	DefaultFileMode fs.FileMode = 0o644
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for key lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOpenKeys shares an existing open-key set, e.g. between sessions that
// must agree on which keys are open.
func WithOpenKeys(o *OpenKeys) Option {
	return func(s *Session) {
		if o != nil {
			s.open = o
		}
	}
}

// WithDirMode sets the permission bits of created key directories.
func WithDirMode(m fs.FileMode) Option {
	return func(s *Session) { s.dirMode = m }
}

// WithFileMode sets the permission bits of written value files.
func WithFileMode(m fs.FileMode) Option {
	return func(s *Session) { s.fileMode = m }
}

// WithFs stores keys in fsys instead of the host filesystem, e.g. an
// afero.NewMemMapFs in tests or an afero.NewBasePathFs jail.
func WithFs(fsys afero.Fs) Option {
	return func(s *Session) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}
