package util

import "golang.org/x/sys/unix"

// openFileCeiling caps the hard limit at kern.maxfilesperproc; setrlimit
// rejects anything above it even when the hard limit is unlimited.
func openFileCeiling(hard uint64) uint64 {
	perProc, err := unix.SysctlUint32("kern.maxfilesperproc")
	if err != nil {
		return hard
	}
	if uint64(perProc) < hard {
		return uint64(perProc)
	}
	return hard
}
