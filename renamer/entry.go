package renamer

import (
	"path/filepath"
	"strings"

	"github.com/dendrascience/nfcname/nfc"
)

// Entry is a filesystem entry discovered by the walk.
//
// Its directory segment is split in two. Base is a prefix the walk never
// renames: the parent of the root as given on the command line, or a
// directory whose own rename failed or whose name is not UTF-8. Rel is the
// part below Base that the walk owns and may have renamed since the entry was
// discovered.
type Entry struct {
	Base string
	Rel  string
	Name string

	// disk is the path the entry was found under, used for stat and listing.
	// It only differs from the resolved old path in dry-run mode, where
	// parents keep their decomposed names on disk.
	disk string
}

// NewEntry builds an Entry for dir/name where dir is not renamed by the walk.
func NewEntry(dir, name string) Entry {
	return Entry{Base: dir, Name: name, disk: filepath.Join(dir, name)}
}

// rootEntry splits a root path as typed by the user.
func rootEntry(root string) Entry {
	clean := filepath.Clean(root)
	return Entry{
		Base: filepath.Dir(clean),
		Name: filepath.Base(clean),
		disk: clean,
	}
}

// Path returns the path the entry was found under.
func (e Entry) Path() string {
	if e.disk != "" {
		return e.disk
	}
	return filepath.Join(e.Base, e.Rel, e.Name)
}

// Dir returns the entry's directory with the in-walk segment composed to NFC
// at the time of the call.
func (e Entry) Dir() string {
	return filepath.Join(e.Base, nfc.String(e.Rel))
}

// Resolve returns the current path of the entry and the path it should be
// renamed to. An ancestor inside the walk may have been renamed after this
// entry was discovered, so the directory segment is composed again here
// instead of being trusted as recorded.
func (e Entry) Resolve(candidate string) (oldPath, newPath string) {
	dir := e.Dir()
	return filepath.Join(dir, e.Name), filepath.Join(dir, candidate)
}

// isNormalComponent reports whether name is an ordinary leaf that can be
// renamed, as opposed to ".", ".." or a root or volume marker.
func isNormalComponent(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator) && filepath.VolumeName(name) == ""
}

// parent describes where the children of a visited entry live.
type parent struct {
	base string
	rel  string
	disk string
}

// pinned returns a parent whose children resolve directly under disk.
func pinned(disk string) parent {
	return parent{base: disk, disk: disk}
}

func (p parent) child(name string) Entry {
	return Entry{
		Base: p.base,
		Rel:  p.rel,
		Name: name,
		disk: filepath.Join(p.disk, name),
	}
}
