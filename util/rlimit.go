package util

// SafeOpenFiles is the descriptor limit below which large trees may exhaust
// file handles.
const SafeOpenFiles = 1024

// FileLimit is the RLIMIT_NOFILE pair after adjustment.
type FileLimit struct {
	Soft uint64
	Hard uint64
}

// Low reports whether either limit is below SafeOpenFiles.
func (l FileLimit) Low() bool {
	return l.Soft < SafeOpenFiles || l.Hard < SafeOpenFiles
}
