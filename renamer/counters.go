package renamer

import "sync/atomic"

// Counters are shared by every task of a run.
type Counters struct {
	succeeded atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64
}

// Succeeded returns renames applied, or reported in dry-run mode.
func (c *Counters) Succeeded() int64 { return c.succeeded.Load() }

// Failed returns renames that were attempted and failed.
func (c *Counters) Failed() int64 { return c.failed.Load() }

// Skipped returns entries or subtrees left out because they could not be read.
func (c *Counters) Skipped() int64 { return c.skipped.Load() }
