package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/unixreg/registry"
)

const configFileName = "unixreg.yaml"

// cliConfig is the on-disk configuration of the unixreg command.
type cliConfig struct {
	// Root is the base directory of the registry store. Empty means the
	// XDG/home/temp lookup.
	Root    string        `yaml:"root"`
	Aliases []aliasConfig `yaml:"aliases"`
	Log     logConfig     `yaml:"log"`
}

type aliasConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type logConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

func defaultCLIConfig() *cliConfig {
	return &cliConfig{}
}

// defaultConfigPath returns <user config dir>/unixreg.yaml, or "" when the
// platform has no user config directory.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

// loadCLIConfig reads the YAML config at path. An empty path means the
// default location. A missing file yields the defaults.
func loadCLIConfig(path string) (*cliConfig, error) {
	cfg := defaultCLIConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for i, a := range cfg.Aliases {
		if a.From == "" || a.To == "" {
			return nil, fmt.Errorf("config %s: alias %d needs both from and to", path, i)
		}
	}
	return cfg, nil
}

func (c *cliConfig) aliases() []registry.Alias {
	out := make([]registry.Alias, 0, len(c.Aliases))
	for _, a := range c.Aliases {
		out = append(out, registry.Alias{From: a.From, To: a.To})
	}
	return out
}
