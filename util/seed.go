package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
	"golang.org/x/text/unicode/norm"
)

// SeedBuckets is the number of top-level directories SeedTree spreads files
// across.
const SeedBuckets = 16

// seedWords are stored composed and decomposed when written to disk, so every
// generated name needs normalization.
var seedWords = []string{
	"café",
	"안녕하세요",
	"naïve",
	"résumé",
	"Ångström",
	"façade",
	"über",
	"한글",
	"crème brûlée",
	"Škoda",
}

// SeedStats counts what SeedTree created.
type SeedStats struct {
	Files int
	Dirs  int
}

// SeedTree creates count files with decomposed names under root. Files are
// bucketed into decomposed directories by a colour hash of a random UUID, and
// every third file goes one level deeper, so both files and directories need
// renaming and parents are renamed before their children.
func SeedTree(root string, count int) (SeedStats, error) {
	var stats SeedStats
	if count < 1 {
		return stats, ErrInvalidCount
	}
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return stats, err
	}

	dirs := make(map[string]bool)
	for i := 0; i < count; i++ {
		id := uuid.New().String()
		bucket := colorhash.HashString(id) % SeedBuckets
		if bucket < 0 {
			bucket = -bucket
		}
		word := seedWords[bucket%len(seedWords)]

		dir := filepath.Join(root, fmt.Sprintf("%02d-%s", bucket, norm.NFD.String(word)))
		if i%3 == 0 {
			inner := seedWords[(bucket+i)%len(seedWords)]
			dir = filepath.Join(dir, norm.NFD.String(inner))
		}
		if !dirs[dir] {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return stats, err
			}
			dirs[dir] = true
		}

		name := fmt.Sprintf("%s-%s.txt", norm.NFD.String(word), id[:8])
		if err := os.WriteFile(filepath.Join(dir, name), []byte(id+"\n"), 0o644); err != nil {
			return stats, err
		}
		stats.Files++
	}

	// count each directory once, parents included
	created := make(map[string]bool)
	for dir := range dirs {
		for d := dir; d != root && !created[d]; d = filepath.Dir(d) {
			created[d] = true
		}
	}
	stats.Dirs = len(created)
	return stats, nil
}
