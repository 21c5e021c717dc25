package renamer

import (
	"io/fs"
	"os"
)

// Outcome classifies what happened to a single entry.
type Outcome int

const (
	DryRun Outcome = iota + 1
	Succeeded
	Failed
)

func (o Outcome) String() string {
	switch o {
	case DryRun:
		return "dryrun"
	case Succeeded:
		return "success"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one rename attempt.
type Result struct {
	Outcome Outcome
	OldPath string
	NewPath string
	Err     error
}

// Executor applies renames, counts them and reports them.
type Executor struct {
	DryRun   bool
	Verbose  bool
	Reporter Reporter
	Counters *Counters
}

// Execute renames oldPath to newPath, or only reports it in dry-run mode.
// Failures are counted and reported here and never returned to the caller as
// an error: one entry failing must not stop its siblings.
func (x *Executor) Execute(oldPath, newPath string) Result {
	res := Result{OldPath: oldPath, NewPath: newPath}
	if x.DryRun {
		x.Counters.succeeded.Add(1)
		x.Reporter.DryRun(oldPath, newPath)
		res.Outcome = DryRun
		return res
	}
	if err := renameNoReplace(oldPath, newPath); err != nil {
		x.Counters.failed.Add(1)
		x.Reporter.Failed(oldPath, newPath, err)
		res.Outcome = Failed
		res.Err = err
		return res
	}
	x.Counters.succeeded.Add(1)
	if x.Verbose {
		x.Reporter.Renamed(oldPath, newPath)
	}
	res.Outcome = Succeeded
	return res
}

// sameFile reports whether both paths name the same inode. This happens on
// normalization-insensitive filesystems, where the composed name already
// resolves to the decomposed entry.
func sameFile(oldPath, newPath string) bool {
	src, err := os.Lstat(oldPath)
	if err != nil {
		return false
	}
	dst, err := os.Lstat(newPath)
	if err != nil {
		return false
	}
	return os.SameFile(src, dst)
}

// renameChecked is the portable fallback: refuse an existing destination,
// then rename. The check and the rename are not atomic together.
func renameChecked(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		if sameFile(oldPath, newPath) {
			return os.Rename(oldPath, newPath)
		}
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
	}
	return os.Rename(oldPath, newPath)
}
