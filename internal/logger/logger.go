// Package logger holds the process-wide logger used by the unixreg command.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global logger instance. It discards all output until Init enables
// file logging.
var L = zap.NewNop()

// file is the log file opened by the last successful Init, if any.
var file *os.File

const (
	logPrefix     = "unixreg-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool          // If false, all logging is discarded
	LogDir  string        // Directory for log files. Default: ~/.unixreg/logs
	Level   zapcore.Level // Minimum log level. The zero value is InfoLevel
}

// Init configures logging. Call from main before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		L = zap.NewNop()
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".unixreg", "logs")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Best effort; a stale log is not worth failing startup over.
	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, logFileName(time.Now()))
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), opts.Level)
	L = zap.New(core)
	file = f
	return nil
}

// Close flushes and closes the current log file and resets L to a no-op
// logger. It is safe to call when logging was never enabled.
func Close() error {
	if file == nil {
		return nil
	}
	_ = L.Sync()
	err := file.Close()
	file = nil
	L = zap.NewNop()
	return err
}

func logFileName(day time.Time) string {
	return logPrefix + day.Format(dateLayout) + logSuffix
}

// cleanOldLogs removes log files dated more than retentionDays before now.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// unixreg-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields ...zap.Field) { L.Debug(msg, fields...) }

// Info logs an info message with optional fields.
func Info(msg string, fields ...zap.Field) { L.Info(msg, fields...) }

// Error logs an error message with optional fields.
func Error(msg string, fields ...zap.Field) { L.Error(msg, fields...) }

// WithConsole returns L extended to also print entries at or above level to
// w in human-readable form. L itself is not changed.
func WithConsole(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	console := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(zapcore.NewTee(L.Core(), console))
}
