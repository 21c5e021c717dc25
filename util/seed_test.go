package util

import (
	"path/filepath"
	"testing"
)

func TestSeedTree(t *testing.T) {
	testCases := []struct {
		Name  string
		Count int
	}{
		{Name: "single file", Count: 1},
		{Name: "several buckets", Count: 50},
		{Name: "many files", Count: 300},
	}
	for _, c := range testCases {
		t.Run(c.Name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "seed")
			stats, err := SeedTree(dir, c.Count)
			if err != nil {
				t.Fatalf("SeedTree() error = %v", err)
			}
			if stats.Files != c.Count {
				t.Errorf("Files = %d, want %d", stats.Files, c.Count)
			}

			scan, err := ScanTree(dir)
			if err != nil {
				t.Fatalf("ScanTree() error = %v", err)
			}
			if scan.Files != c.Count {
				t.Errorf("scanned %d files, want %d", scan.Files, c.Count)
			}
			// the root itself is ASCII, everything below it is decomposed
			if scan.Dirs != stats.Dirs+1 {
				t.Errorf("scanned %d dirs, want %d", scan.Dirs, stats.Dirs+1)
			}
			if want := stats.Files + stats.Dirs; scan.NonNFC() != want {
				t.Errorf("NonNFC() = %d, want %d", scan.NonNFC(), want)
			}
		})
	}
}

func TestSeedTree_InvalidCount(t *testing.T) {
	_, err := SeedTree(t.TempDir(), 0)
	if err != ErrInvalidCount {
		t.Errorf("SeedTree() error = %v, want %v", err, ErrInvalidCount)
	}
}
