package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joshuapare/unixreg/internal/logger"
	"github.com/joshuapare/unixreg/internal/regtext"
	"github.com/joshuapare/unixreg/registry"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	baseDir    string
	logDir     string
	logEnabled bool

	// loadedConfig is the config file read by the pre-run hook.
	loadedConfig *cliConfig
)

var rootCmd = &cobra.Command{
	Use:   "unixreg",
	Short: "Read and write a registry stored as plain files",
	Long: `unixreg stores Windows-style registry keys as directories and values as
files below a per-user configuration directory. It creates and deletes keys,
reads and writes values, expands %VAR% environment references and imports
.reg files.

Keys are written the way regedit shows them:
  unixreg set "HKCU\Software\MyApp" Version 1.0.0
  unixreg get "HKCU\Software\MyApp" Version`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCLIConfig(configPath)
		if err != nil {
			return err
		}
		loadedConfig = cfg
		return initLogging(cmd, cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default: <user config dir>/unixreg.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&baseDir, "root", "", "Base directory; the registry lives in <root>/unixreg")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for log files")
	rootCmd.PersistentFlags().BoolVar(&logEnabled, "log", false, "Write a log file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables the file logger when the flag or the config file asks
// for it. Flags win over the file.
func initLogging(cmd *cobra.Command, cfg *cliConfig) error {
	opts := logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
	}
	if cmd.Flags().Changed("log") {
		opts.Enabled = logEnabled
	}
	if logDir != "" {
		opts.LogDir = logDir
	}
	if cfg.Log.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		opts.Level = level
	}
	if verbose {
		opts.Level = zapcore.DebugLevel
	}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// currentConfig returns the config loaded by the pre-run hook, loading it
// when a command runs without one.
func currentConfig() (*cliConfig, error) {
	if loadedConfig != nil {
		return loadedConfig, nil
	}
	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		return nil, err
	}
	loadedConfig = cfg
	return cfg, nil
}

// openSession resolves the registry root and returns a session writing
// through the process logger. Warnings raised while locating the root are
// also printed to stderr unless --quiet is set.
func openSession() (*registry.Session, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}

	override := cfg.Root
	if baseDir != "" {
		override = baseDir
	}

	regCfg, err := registry.LoadConfig(registry.LoadOptions{
		Override: override,
		Aliases:  cfg.aliases(),
		Logger:   configLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to locate registry: %w", err)
	}

	logger.Debug("registry root resolved", zap.String("root", regCfg.Root))
	printVerbose("Registry root: %s\n", regCfg.Root)
	return registry.NewSession(regCfg, registry.WithLogger(logger.L)), nil
}

func configLogger() *zap.Logger {
	if quiet {
		return logger.L
	}
	return logger.WithConsole(os.Stderr, zapcore.WarnLevel)
}

// parseKeyArg turns HKCU\Software\App (or a bare Software\App) into a key.
func parseKeyArg(s string) registry.Key {
	root, path := regtext.SplitKeyPath(s)
	return registry.NewKey(root, path)
}

// parseValueName maps the .reg spelling "@" of the default value to "".
func parseValueName(s string) string {
	if s == registry.DefaultValueFile {
		return ""
	}
	return s
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
