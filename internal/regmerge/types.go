package regmerge

// Stats tracks what Optimize removed.
type Stats struct {
	// InputOps is the number of operations before optimization.
	InputOps int

	// OutputOps is the number of operations after optimization.
	OutputOps int

	// DedupedValues counts SetValue and DeleteValue ops overwritten by a
	// later op on the same (key, value name) pair.
	DedupedValues int

	// DedupedCreates counts repeated CreateKey ops on the same key.
	DedupedCreates int
}

// Removed returns the number of operations Optimize dropped.
func (s Stats) Removed() int { return s.InputOps - s.OutputOps }
