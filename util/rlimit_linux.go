package util

import (
	"os"
	"strconv"
	"strings"
)

const rlimInfinity = ^uint64(0)

// openFileCeiling caps an unlimited hard limit at fs.nr_open, the most the
// kernel accepts for RLIMIT_NOFILE.
func openFileCeiling(hard uint64) uint64 {
	if hard != rlimInfinity {
		return hard
	}
	b, err := os.ReadFile("/proc/sys/fs/nr_open")
	if err != nil {
		return 1 << 20
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 1 << 20
	}
	return n
}
