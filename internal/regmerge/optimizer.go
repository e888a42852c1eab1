// Package regmerge combines the operations of one or more .reg files and
// removes those whose effect is overwritten later in the same batch.
package regmerge

import (
	"github.com/joshuapare/unixreg/internal/regtext"
	"github.com/joshuapare/unixreg/pkg/types"
)

// keyID identifies a key across roots. Paths are compared exactly; the
// backing filesystem decides case sensitivity, not the optimizer.
type keyID struct {
	root types.RootKey
	path string
}

// valueID identifies one value of one key.
type valueID struct {
	key  keyID
	name string
}

// Optimize drops operations that cannot change the final state:
//
//   - a SetValue or DeleteValue followed by another op on the same value
//     (last write wins)
//   - a CreateKey for a key already created earlier in the batch
//
// A DeleteKey is a barrier: ops on either side of it are never merged, since
// deleting a file-backed key can remove a value file of its parent.
// The relative order of the surviving ops is unchanged.
func Optimize(ops []regtext.Op) ([]regtext.Op, Stats) {
	stats := Stats{InputOps: len(ops)}
	if len(ops) == 0 {
		return ops, stats
	}

	keep := make([]bool, len(ops))

	// Right to left: the first value op seen per value is the winner.
	written := make(map[valueID]bool)
	for i := len(ops) - 1; i >= 0; i-- {
		switch o := ops[i].(type) {
		case regtext.OpSetValue:
			id := valueID{keyID{o.Root, o.Path}, o.Name}
			if written[id] {
				stats.DedupedValues++
				continue
			}
			written[id] = true
		case regtext.OpDeleteValue:
			id := valueID{keyID{o.Root, o.Path}, o.Name}
			if written[id] {
				stats.DedupedValues++
				continue
			}
			written[id] = true
		case regtext.OpDeleteKey:
			clear(written)
		}
		keep[i] = true
	}

	// Left to right: a key must exist before the values written into it, so
	// the first CreateKey wins.
	created := make(map[keyID]bool)
	for i, op := range ops {
		switch o := op.(type) {
		case regtext.OpCreateKey:
			id := keyID{o.Root, o.Path}
			if created[id] {
				keep[i] = false
				stats.DedupedCreates++
				continue
			}
			created[id] = true
		case regtext.OpDeleteKey:
			clear(created)
		}
	}

	out := make([]regtext.Op, 0, len(ops))
	for i, op := range ops {
		if keep[i] {
			out = append(out, op)
		}
	}
	stats.OutputOps = len(out)
	return out, stats
}
