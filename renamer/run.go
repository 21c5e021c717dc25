package renamer

import (
	"context"
	"path/filepath"
	"time"
)

// Summary aggregates a finished run.
type Summary struct {
	Succeeded int64
	Failed    int64
	Skipped   int64
	Elapsed   time.Duration
	DryRun    bool
}

// ExitCode returns the process status for the run: zero unless a rename
// failed.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Run normalizes every root in turn and waits for all of their task trees.
// Roots are walked one after another so that nested roots never race each
// other; entries inside a root are processed concurrently.
func Run(ctx context.Context, roots []string, opts Options, reporter Reporter) (Summary, error) {
	if err := opts.Validate(); err != nil {
		return Summary{}, err
	}
	if len(roots) == 0 {
		return Summary{}, ErrNoRoots
	}

	start := time.Now()
	counters := &Counters{}
	w := NewWalker(opts, NewLimiter(opts.Concurrency), reporter, counters)

	var err error
	seen := make(map[string]bool, len(roots))
	for _, root := range roots {
		clean := filepath.Clean(root)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		if _, err = w.Walk(ctx, clean); err != nil {
			break
		}
	}

	return Summary{
		Succeeded: counters.Succeeded(),
		Failed:    counters.Failed(),
		Skipped:   counters.Skipped(),
		Elapsed:   time.Since(start),
		DryRun:    opts.DryRun,
	}, err
}
