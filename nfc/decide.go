package nfc

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Decision is the per-name result of Decide.
type Decision struct {
	Name        string // name as found on disk
	NFC         string // composed candidate, equal to Name when no rename is needed
	NeedsRename bool
}

// Decide reports whether name must be renamed to become NFC.
func Decide(name string) Decision {
	composed := String(name)
	return Decision{
		Name:        name,
		NFC:         composed,
		NeedsRename: composed != name,
	}
}

// String returns s in NFC. When s is already composed the same string is
// returned, so callers can compare the result with == cheaply.
func String(s string) string {
	if norm.NFC.QuickSpanString(s) == len(s) {
		return s
	}
	composed := norm.NFC.String(s)
	if composed == s {
		return s
	}
	return composed
}

// Valid reports whether name is UTF-8 text that can be normalized.
func Valid(name string) bool {
	return utf8.ValidString(name)
}

// Equivalent reports whether a and b are canonically equivalent, i.e. differ
// only in normalization form.
func Equivalent(a, b string) bool {
	return String(a) == String(b)
}
