package version

import (
	"runtime/debug"
	"testing"
)

func stub(t *testing.T, info *debug.BuildInfo, version, commit, date string) {
	t.Helper()
	oldRead, oldVersion, oldCommit, oldDate := readBuildInfo, Version, Commit, Date
	t.Cleanup(func() {
		readBuildInfo, Version, Commit, Date = oldRead, oldVersion, oldCommit, oldDate
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	Version, Commit, Date = version, commit, date
}

func buildInfo(version string, settings ...string) *debug.BuildInfo {
	info := &debug.BuildInfo{Main: debug.Module{Version: version}}
	for i := 0; i+1 < len(settings); i += 2 {
		info.Settings = append(info.Settings, debug.BuildSetting{Key: settings[i], Value: settings[i+1]})
	}
	return info
}

func TestGetFullVersion(t *testing.T) {
	tests := []struct {
		name    string
		info    *debug.BuildInfo
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name:    "no build info",
			version: "dev", commit: "unknown", date: "unknown",
			want: "development",
		},
		{
			name:    "ldflags",
			version: "v1.2.0", commit: "0123456789abcdef", date: "2025-01-01T00:00:00Z",
			want: "v1.2.0 (0123456, built 2025-01-01T00:00:00Z)",
		},
		{
			name:    "go install",
			info:    buildInfo("v0.3.1"),
			version: "dev", commit: "unknown", date: "unknown",
			want: "v0.3.1",
		},
		{
			name:    "vcs stamp",
			info:    buildInfo("(devel)", "vcs.revision", "fedcba9876543210", "vcs.modified", "true"),
			version: "dev", commit: "unknown", date: "unknown",
			want: "development (fedcba9-dirty)",
		},
		{
			name:    "short commit",
			version: "v1.0.0", commit: "abc", date: "2025-01-01",
			want: "v1.0.0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub(t, tt.info, tt.version, tt.commit, tt.date)
			if got := GetFullVersion(); got != tt.want {
				t.Errorf("GetFullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	stub(t, buildInfo("v0.1.0", "vcs.time", "2025-02-03T04:05:06Z"), "dev", "unknown", "unknown")
	info := GetInfo()
	if info.Package != "nfcname" || info.Version != "v0.1.0" {
		t.Errorf("GetInfo() = %+v", info)
	}
	if info.Date != "2025-02-03T04:05:06Z" {
		t.Errorf("Date = %q, want the vcs.time setting", info.Date)
	}
	if info.Commit != "unknown" || info.Modified {
		t.Errorf("Commit = %q, Modified = %v, want unknown and false", info.Commit, info.Modified)
	}
}
