package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Set with -ldflags "-X"; release builds fill all three.
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info contains version information
type Info struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Modified bool   `json:"modified"`
	Package  string `json:"package"`
}

// GetVersion returns the version string, preferring the compile-time value.
// A module version recorded by `go install` is used next.
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetCommit returns the git commit hash.
func GetCommit() string {
	return stamped(Commit, "vcs.revision")
}

// GetBuildDate returns the commit or build date.
func GetBuildDate() string {
	return stamped(Date, "vcs.time")
}

// stamped returns value unless it is unset, then the VCS setting key that the
// go tool records in the binary.
func stamped(value, key string) string {
	if value != "unknown" && value != "" {
		return value
	}
	if v, ok := setting(key); ok {
		return v
	}
	return "unknown"
}

func setting(key string) (string, bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// GetInfo returns complete version information
func GetInfo() Info {
	modified, _ := setting("vcs.modified")
	return Info{
		Version:  GetVersion(),
		Commit:   GetCommit(),
		Date:     GetBuildDate(),
		Modified: modified == "true",
		Package:  "nfcname",
	}
}

// GetFullVersion returns the version with a short commit and the build date
// when they are known, e.g. "v1.2.0 (0123abc, built 2025-01-01T00:00:00Z)".
func GetFullVersion() string {
	info := GetInfo()
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}
	commit := info.Commit[:7]
	if info.Modified {
		commit += "-dirty"
	}
	if info.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", info.Version, commit, info.Date)
	}
	return fmt.Sprintf("%s (%s)", info.Version, commit)
}
