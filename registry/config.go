package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StorageDir is the directory created below the configuration base directory
// to hold all keys.
const StorageDir = "unixreg"

// Environment variables consulted while resolving the configuration root.
const (
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvHome       = "HOME"
	EnvTmpDir     = "TMPDIR"
	// EnvTox and EnvTesting silence the temporary-directory fallback warning.
	EnvTox     = "TOX"
	EnvTesting = "UNIXREG_TESTING"
)

// Config is the immutable process configuration shared by every component.
type Config struct {
	// Root is the absolute directory holding all keys (ends in StorageDir).
	Root string
	// Aliases is the ordered rename table applied by the Expander.
	Aliases []Alias
}

// Expander returns an Expander over the process environment using the
// configured aliases.
func (c Config) Expander() *Expander {
	return NewExpander(c.Aliases, nil)
}

// RootStrategy proposes a base directory for the configuration root.
type RootStrategy struct {
	// Name identifies the strategy in logs.
	Name string
	// Fallback marks a last-resort location; selecting it emits a warning.
	Fallback bool
	// Locate returns a candidate base directory, or "" to pass.
	Locate func(getenv func(string) string) (string, error)
}

// DefaultStrategies returns the standard resolution order: $XDG_CONFIG_HOME,
// then $HOME/.config, then a per-user directory below $TMPDIR (or the
// platform temp dir). The fallback directory is stable across runs so that
// separate processes share one store.
func DefaultStrategies() []RootStrategy {
	return []RootStrategy{
		{
			Name: "xdg-config-home",
			Locate: func(getenv func(string) string) (string, error) {
				return getenv(EnvConfigHome), nil
			},
		},
		{
			Name: "home",
			Locate: func(getenv func(string) string) (string, error) {
				home := getenv(EnvHome)
				if home == "" {
					return "", nil
				}
				return filepath.Join(home, ".config"), nil
			},
		},
		{
			Name:     "temp",
			Fallback: true,
			Locate: func(getenv func(string) string) (string, error) {
				base := getenv(EnvTmpDir)
				if base == "" {
					base = os.TempDir()
				}
				dir := filepath.Join(base, fmt.Sprintf("unixreg-%d", os.Getuid()))
				if err := os.MkdirAll(dir, 0o700); err != nil {
					return "", err
				}
				return dir, nil
			},
		},
	}
}

// LoadOptions controls LoadConfig.
type LoadOptions struct {
	// Override is an explicit base directory; it wins over every strategy.
	Override string
	// Strategies replaces DefaultStrategies when non-nil.
	Strategies []RootStrategy
	// Aliases are appended to DefaultAliases.
	Aliases []Alias
	// Getenv replaces os.Getenv when non-nil.
	Getenv func(string) string
	// Logger receives the fallback warning. Defaults to warnings on stderr.
	Logger *zap.Logger
}

// ErrNoConfigRoot is returned when no strategy produced a usable directory.
var ErrNoConfigRoot = errors.New("registry: could not find a directory to put the registry in")

var fallbackWarning sync.Once

// LoadConfig resolves the configuration root once and returns the immutable
// Config. It does not create the root directory.
func LoadConfig(opts LoadOptions) (Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	log := opts.Logger
	if log == nil {
		log = stderrLogger()
	}

	aliases := make([]Alias, 0, len(DefaultAliases)+len(opts.Aliases))
	aliases = append(aliases, DefaultAliases...)
	aliases = append(aliases, opts.Aliases...)

	if opts.Override != "" {
		base, err := filepath.Abs(opts.Override)
		if err != nil {
			return Config{}, fmt.Errorf("registry: resolve override %q: %w", opts.Override, err)
		}
		return Config{Root: filepath.Join(base, StorageDir), Aliases: aliases}, nil
	}

	strategies := opts.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}

	for _, s := range strategies {
		base, err := s.Locate(getenv)
		if err != nil {
			log.Debug("config root strategy failed", zap.String("strategy", s.Name), zap.Error(err))
			continue
		}
		if base == "" {
			continue
		}
		if !filepath.IsAbs(base) {
			log.Debug("ignoring relative config directory",
				zap.String("strategy", s.Name), zap.String("dir", base))
			continue
		}
		if !writable(base) {
			log.Warn("config directory is not writable",
				zap.String("strategy", s.Name), zap.String("dir", base))
			continue
		}

		if s.Fallback && getenv(EnvTox) == "" && getenv(EnvTesting) == "" {
			fallbackWarning.Do(func() {
				log.Warn("could not find directory to put registry in, falling back",
					zap.String("dir", base))
			})
		}
		log.Debug("config root resolved", zap.String("strategy", s.Name), zap.String("dir", base))
		return Config{Root: filepath.Join(base, StorageDir), Aliases: aliases}, nil
	}

	return Config{}, ErrNoConfigRoot
}

// stderrLogger prints warnings and errors to stderr without timestamps.
func stderrLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core)
}
