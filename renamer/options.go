package renamer

import "fmt"

// DefaultConcurrency is the permit budget used when none is configured. It is
// large enough to keep the disk busy on wide trees and small enough to stay
// well below common descriptor limits once RLIMIT_NOFILE has been raised.
const DefaultConcurrency = 32768

// Options controls a normalization run.
type Options struct {
	FollowSymlinks bool // descend into directories reached through symlinks
	Verbose        bool // report successful renames, not only failures
	DryRun         bool // report intended renames without touching the disk
	Strict         bool // abort the run on the first directory that cannot be listed
	Concurrency    int  // permit budget, see DefaultConcurrency
}

// DefaultOptions returns the options used by the CLI before flags are applied.
func DefaultOptions() Options {
	return Options{Concurrency: DefaultConcurrency}
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.Concurrency < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidConcurrency, o.Concurrency)
	}
	return nil
}
