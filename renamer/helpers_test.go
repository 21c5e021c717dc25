package renamer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/dendrascience/nfcname/nfc"
)

const (
	decomposedHangul = "\u110b\u1161\u11ab\u1102\u1167\u11bc\u1112\u1161\u1109\u1166\u110b\u116d"
	composedHangul   = "안녕하세요"
	decomposedCafe   = "cafe\u0301"
	composedCafe     = "café"
)

type renamePair struct{ old, new string }

// recorder is a Reporter that keeps every event for inspection.
type recorder struct {
	mu       sync.Mutex
	dryRuns  []renamePair
	renamed  []renamePair
	failures []renamePair
	errs     []error
	skipped  []string
}

func (r *recorder) DryRun(oldPath, newPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dryRuns = append(r.dryRuns, renamePair{oldPath, newPath})
}

func (r *recorder) Renamed(oldPath, newPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renamed = append(r.renamed, renamePair{oldPath, newPath})
}

func (r *recorder) Failed(oldPath, newPath string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, renamePair{oldPath, newPath})
	r.errs = append(r.errs, err)
}

func (r *recorder) Skipped(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = append(r.skipped, path)
}

// relPairs returns pairs relative to root, sorted.
func relPairs(t *testing.T, root string, pairs []renamePair) []string {
	t.Helper()
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		o, err := filepath.Rel(root, p.old)
		if err != nil {
			t.Fatalf("Rel(%q, %q) error = %v", root, p.old, err)
		}
		n, err := filepath.Rel(root, p.new)
		if err != nil {
			t.Fatalf("Rel(%q, %q) error = %v", root, p.new, err)
		}
		out = append(out, o+" -> "+n)
	}
	sort.Strings(out)
	return out
}

// snapshot lists every path below root with its type and file content.
func snapshot(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		line := rel + " " + d.Type().String()
		if d.Type().IsRegular() {
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			line += " " + string(b)
		}
		out = append(out, line)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot(%q) error = %v", root, err)
	}
	sort.Strings(out)
	return out
}

// names returns the exact byte names listed in dir.
func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%q) error = %v", dir, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func hasName(t *testing.T, dir, name string) bool {
	t.Helper()
	for _, n := range names(t, dir) {
		if n == name {
			return true
		}
	}
	return false
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q) error = %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

// requireDistinctNames skips on filesystems that treat canonically equivalent
// names as the same entry (APFS, HFS+).
func requireDistinctNames(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, composedCafe), "")
	writeFile(t, filepath.Join(dir, decomposedCafe), "")
	if len(names(t, dir)) != 2 {
		t.Skip("filesystem does not keep NFC and NFD names apart")
	}
}

// buildTree creates the same mixed tree every time it is called.
func buildTree(t *testing.T, root string) {
	t.Helper()
	mkdir(t, filepath.Join(root, decomposedCafe, decomposedHangul, "deep"+decomposedCafe))
	mkdir(t, filepath.Join(root, "plain", "u\u0308bung"))
	writeFile(t, filepath.Join(root, decomposedCafe, "a.txt"), "a")
	writeFile(t, filepath.Join(root, decomposedCafe, decomposedHangul+".txt"), "hangul")
	writeFile(t, filepath.Join(root, decomposedCafe, decomposedHangul, "deep"+decomposedCafe, "re\u0301sume\u0301.pdf"), "cv")
	writeFile(t, filepath.Join(root, "plain", "u\u0308bung", "nai\u0308ve.md"), "n")
	writeFile(t, filepath.Join(root, "plain", "ok.txt"), "ok")
	writeFile(t, filepath.Join(root, composedHangul+".txt"), "composed")
}

// countNonNFC walks root and counts names a run would still rename.
func countNonNFC(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && nfc.Decide(d.Name()).NeedsRename {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("countNonNFC(%q) error = %v", root, err)
	}
	return n
}
