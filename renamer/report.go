package renamer

// Reporter receives one call per diagnostic event of a run. Implementations
// must be safe for concurrent use.
type Reporter interface {
	DryRun(oldPath, newPath string)
	Renamed(oldPath, newPath string)
	Failed(oldPath, newPath string, err error)
	Skipped(path string, err error)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) DryRun(string, string)        {}
func (NopReporter) Renamed(string, string)       {}
func (NopReporter) Failed(string, string, error) {}
func (NopReporter) Skipped(string, error)        {}
