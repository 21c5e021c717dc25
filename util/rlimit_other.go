//go:build !linux && !darwin

package util

// RaiseOpenFileLimit is not supported on this platform.
func RaiseOpenFileLimit() (FileLimit, error) {
	return FileLimit{}, ErrUnsupportedPlatform
}
