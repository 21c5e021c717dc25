package renamer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/dendrascience/nfcname/nfc"
	"golang.org/x/sync/errgroup"
)

// Walker normalizes the names of whole trees.
type Walker struct {
	opts     Options
	limiter  *Limiter
	exec     *Executor
	reporter Reporter
	counters *Counters
}

// NewWalker returns a Walker that gates every task on limiter and records
// outcomes in counters.
func NewWalker(opts Options, limiter *Limiter, reporter Reporter, counters *Counters) *Walker {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Walker{
		opts:     opts,
		limiter:  limiter,
		reporter: reporter,
		counters: counters,
		exec: &Executor{
			DryRun:   opts.DryRun,
			Verbose:  opts.Verbose,
			Reporter: reporter,
			Counters: counters,
		},
	}
}

// Walk normalizes root and, when it is a directory, everything below it. It
// returns the number of entries renamed (reported, in dry-run mode). The only
// errors returned are cancellation of ctx and, in strict mode, a directory
// that could not be listed.
func (w *Walker) Walk(ctx context.Context, root string) (int64, error) {
	if err := w.limiter.Acquire(ctx); err != nil {
		return 0, err
	}
	e := rootEntry(root)
	info, err := os.Lstat(e.disk)
	if err != nil {
		w.limiter.Release()
		return 0, w.listingFailed(e.disk, err)
	}
	return w.process(ctx, e, info.Mode().Type())
}

// process handles one entry. The caller has already acquired a permit for it;
// process releases that permit before waiting on the entry's children.
func (w *Walker) process(ctx context.Context, e Entry, typ fs.FileMode) (int64, error) {
	release := sync.OnceFunc(w.limiter.Release)
	defer release()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	renamed, p := w.visit(e)
	if !w.descends(p.disk, typ) {
		return renamed, nil
	}

	f, err := os.Open(p.disk)
	if err != nil {
		return renamed, w.listingFailed(p.disk, err)
	}
	dirents, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		// keep what was read, the rest of this listing is lost
		w.skip(p.disk, err)
	}
	release()

	var total atomic.Int64
	total.Store(renamed)

	g, gctx := errgroup.WithContext(ctx)
	var acquireErr error
	for _, de := range dirents {
		if acquireErr = w.limiter.Acquire(gctx); acquireErr != nil {
			break
		}
		child, childType := p.child(de.Name()), de.Type()
		g.Go(func() error {
			n, err := w.process(gctx, child, childType)
			total.Add(n)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return total.Load(), err
	}
	return total.Load(), acquireErr
}

// visit renames e if its name is not NFC and returns where its children are
// to be found.
func (w *Walker) visit(e Entry) (int64, parent) {
	if !isNormalComponent(e.Name) || !nfc.Valid(e.Name) {
		return 0, pinned(e.disk)
	}

	d := nfc.Decide(e.Name)
	if !d.NeedsRename {
		return 0, parent{base: e.Base, rel: filepath.Join(e.Rel, e.Name), disk: e.disk}
	}

	oldPath, newPath := e.Resolve(d.NFC)
	res := w.exec.Execute(oldPath, newPath)
	switch res.Outcome {
	case Succeeded:
		return 1, parent{base: e.Base, rel: filepath.Join(e.Rel, d.NFC), disk: newPath}
	case DryRun:
		return 1, parent{base: e.Base, rel: filepath.Join(e.Rel, d.NFC), disk: e.disk}
	default:
		// children stay under the name that is still on disk
		return 0, pinned(oldPath)
	}
}

// descends reports whether the entry at path is a directory the walk enters.
func (w *Walker) descends(path string, typ fs.FileMode) bool {
	if typ.IsDir() {
		return true
	}
	if typ&fs.ModeSymlink == 0 || !w.opts.FollowSymlinks {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// listingFailed handles a directory (or root) that cannot be read at all.
func (w *Walker) listingFailed(path string, err error) error {
	if w.opts.Strict {
		return fmt.Errorf("%w %s: %w", ErrListing, path, err)
	}
	w.skip(path, err)
	return nil
}

func (w *Walker) skip(path string, err error) {
	w.counters.skipped.Add(1)
	w.reporter.Skipped(path, err)
}
