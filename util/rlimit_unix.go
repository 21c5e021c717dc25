//go:build linux || darwin

package util

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// RaiseOpenFileLimit raises the soft open-file limit as far as the hard limit
// and the platform allow, and returns the limits in effect afterwards. When
// raising fails the current limits are still returned along with the error.
func RaiseOpenFileLimit() (FileLimit, error) {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err != nil {
		return FileLimit{}, fmt.Errorf("query RLIMIT_NOFILE: %w", err)
	}

	target := openFileCeiling(lim.Max)
	if lim.Cur < target {
		raised := lim
		raised.Cur = target
		if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &raised); err != nil {
			return FileLimit{Soft: lim.Cur, Hard: lim.Max}, fmt.Errorf("raise RLIMIT_NOFILE to %d: %w", target, err)
		}
		lim = raised
	}
	return FileLimit{Soft: lim.Cur, Hard: lim.Max}, nil
}
