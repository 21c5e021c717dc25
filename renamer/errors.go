package renamer

import "errors"

// Sentinel errors for package renamer.
var (
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
	ErrNoRoots            = errors.New("no paths to normalize")

	// ErrListing wraps a directory that could not be listed while the walk
	// runs in strict mode.
	ErrListing = errors.New("cannot list directory")

	// ErrRenameFailed is returned by callers that turn a Summary with
	// failures into an error.
	ErrRenameFailed = errors.New("failed to rename one or more entries")
)
