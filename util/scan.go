package util

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dendrascience/nfcname/nfc"
)

// TreeStats summarizes the names found under a root.
type TreeStats struct {
	Files    int
	Dirs     int
	Symlinks int
	NonUTF8  int
	// Pending lists entries whose names are not NFC, in walk order.
	Pending []string
}

// NonNFC returns the number of entries a normalization run would rename.
func (s TreeStats) NonNFC() int {
	return len(s.Pending)
}

// ScanTree walks root on a single goroutine without following symlinks and
// classifies every entry, root included. It renames nothing.
func ScanTree(root string) (TreeStats, error) {
	var stats TreeStats
	info, err := os.Lstat(root)
	if err != nil {
		return stats, err
	}
	if !info.IsDir() {
		return stats, ErrExpectedDirectory
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			stats.Symlinks++
		case d.IsDir():
			stats.Dirs++
		default:
			stats.Files++
		}

		name := d.Name()
		if path == root {
			name = filepath.Base(filepath.Clean(root))
		}
		if !nfc.Valid(name) {
			stats.NonUTF8++
			return nil
		}
		if nfc.Decide(name).NeedsRename {
			stats.Pending = append(stats.Pending, path)
		}
		return nil
	})
	return stats, err
}
