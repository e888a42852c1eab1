package regmerge

import (
	"fmt"
	"io"

	"github.com/joshuapare/unixreg/internal/regtext"
)

// Source is one named .reg input.
type Source struct {
	Name   string
	Reader io.Reader
}

// ParseAll parses every source in order and concatenates the operations.
// Nothing is returned unless every source parses.
func ParseAll(sources []Source, opts regtext.ParseOptions) ([]regtext.Op, error) {
	var all []regtext.Op
	for _, src := range sources {
		ops, err := regtext.Parse(src.Reader, opts)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", src.Name, err)
		}
		all = append(all, ops...)
	}
	return all, nil
}
