package registry

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/joshuapare/unixreg/internal/regmerge"
	"github.com/joshuapare/unixreg/internal/regtext"
)

// ImportOptions controls Import.
type ImportOptions struct {
	// Encoding applies when the file has no byte order mark: "UTF-8"
	// (default), "UTF-16LE", "UTF-16BE" or "WINDOWS-1252".
	Encoding string
	// Optimize drops edits overwritten later in the same batch before
	// anything is written.
	Optimize bool
}

// ImportStats counts the edits applied by Import.
type ImportStats struct {
	KeysCreated   int
	KeysDeleted   int
	ValuesSet     int
	ValuesDeleted int
	// Skipped counts edits removed by ImportOptions.Optimize.
	Skipped int
}

// ImportFile applies the .reg file at path to the session.
func ImportFile(s *Session, path string, opts ImportOptions) (ImportStats, error) {
	return ImportFiles(s, []string{path}, opts)
}

// ImportFiles applies several .reg files in order, later files overriding
// earlier ones. Every file is parsed before anything is written.
func ImportFiles(s *Session, paths []string, opts ImportOptions) (ImportStats, error) {
	sources := make([]regmerge.Source, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return ImportStats{}, err
		}
		defer f.Close()
		sources = append(sources, regmerge.Source{Name: path, Reader: f})
	}

	ops, err := regmerge.ParseAll(sources, regtext.ParseOptions{Encoding: opts.Encoding})
	if err != nil {
		return ImportStats{}, err
	}
	return apply(s, ops, opts)
}

// Import parses .reg text from r and applies it through CreateKey, SetValue,
// DeleteValue and DeleteKey. The whole input is parsed before anything is
// written, so malformed input leaves storage untouched. Edits applied before a
// storage failure are not rolled back.
func Import(s *Session, r io.Reader, opts ImportOptions) (ImportStats, error) {
	ops, err := regtext.Parse(r, regtext.ParseOptions{Encoding: opts.Encoding})
	if err != nil {
		return ImportStats{}, err
	}
	return apply(s, ops, opts)
}

func apply(s *Session, ops []regtext.Op, opts ImportOptions) (ImportStats, error) {
	var stats ImportStats

	if opts.Optimize {
		var opt regmerge.Stats
		ops, opt = regmerge.Optimize(ops)
		stats.Skipped = opt.Removed()
		s.log.Debug("import optimized",
			zap.Int("input", opt.InputOps), zap.Int("output", opt.OutputOps))
	}

	for _, op := range ops {
		switch op := op.(type) {
		case regtext.OpCreateKey:
			k, err := s.CreateKey(NewKey(op.Root, op.Path), nil)
			if err != nil {
				return stats, fmt.Errorf("create key %s: %w", NewKey(op.Root, op.Path), err)
			}
			s.CloseKey(k)
			stats.KeysCreated++

		case regtext.OpSetValue:
			k := NewKey(op.Root, op.Path)
			if err := s.SetValue(k, op.Name, op.Type, op.Data); err != nil {
				return stats, fmt.Errorf("set value %q of %s: %w", op.Name, k, err)
			}
			s.log.Debug("imported value",
				zap.String("key", k.String()), zap.String("name", op.Name), zap.String("value", op.Data))
			stats.ValuesSet++

		case regtext.OpDeleteValue:
			k := NewKey(op.Root, op.Path)
			if err := s.DeleteValue(k, op.Name); err != nil {
				return stats, fmt.Errorf("delete value %q of %s: %w", op.Name, k, err)
			}
			stats.ValuesDeleted++

		case regtext.OpDeleteKey:
			k := NewKey(op.Root, op.Path)
			if err := s.DeleteKey(k, nil); err != nil {
				return stats, fmt.Errorf("delete key %s: %w", k, err)
			}
			stats.KeysDeleted++
		}
	}

	return stats, nil
}
