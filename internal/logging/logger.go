// Package logging writes the diagnostic lines of a normalization run.
//
// Every line starts with a tag (dryrun, success, error, skip, warning)
// followed by a colon. Tags are coloured when the output is a terminal, or
// when forced with [ColorAlways].
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/dendrascience/nfcname/renamer"
)

// ColorMode controls ANSI colour output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // colour when writing to a terminal (default)
	ColorAlways ColorMode = "always" // force colour
	ColorNever  ColorMode = "never"  // plain text
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use auto, always or never)", s)
}

var tagStyles = map[string]lipgloss.Style{
	"dryrun":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	"success": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	"error":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	"skip":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	"warning": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
}

// Logger is safe for concurrent use and implements renamer.Reporter.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

var _ renamer.Reporter = (*Logger)(nil)

// New returns a Logger writing to out.
func New(out io.Writer, mode ColorMode) *Logger {
	enable := false
	switch mode {
	case ColorAlways:
		enable = true
	case ColorAuto, "":
		enable = isTerminal(out) && os.Getenv("NO_COLOR") == "" && !strings.EqualFold(os.Getenv("TERM"), "dumb")
	}
	return &Logger{out: out, color: enable}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func (l *Logger) line(tag, text string) {
	label := tag
	if l.color {
		label = tagStyles[tag].Render(tag)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, label+": "+text+"\n")
}

// DryRun logs a rename that a real run would perform.
func (l *Logger) DryRun(oldPath, newPath string) {
	l.line("dryrun", fmt.Sprintf("%q -> %q", oldPath, newPath))
}

// Renamed logs a completed rename.
func (l *Logger) Renamed(oldPath, newPath string) {
	l.line("success", fmt.Sprintf("%q -> %q", oldPath, newPath))
}

// Failed logs a rename that could not be applied.
func (l *Logger) Failed(oldPath, newPath string, err error) {
	l.line("error", fmt.Sprintf("%q -> %q failed with %v", oldPath, newPath, err))
}

// Skipped logs an entry or directory left out because it could not be read.
func (l *Logger) Skipped(path string, err error) {
	l.line("skip", fmt.Sprintf("%q: %v", path, err))
}

// Warn logs a non-fatal problem.
func (l *Logger) Warn(format string, args ...any) {
	l.line("warning", fmt.Sprintf(format, args...))
}

// Summary logs the final counts of a run.
func (l *Logger) Summary(s renamer.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s.DryRun {
		fmt.Fprintf(l.out, "%d files will be renamed, took %v\n", s.Succeeded, s.Elapsed)
	} else {
		fmt.Fprintf(l.out, "renamed %d files, took %v\n", s.Succeeded, s.Elapsed)
	}
	if s.Failed > 0 {
		fmt.Fprintf(l.out, "failed to rename %d files\n", s.Failed)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(l.out, "skipped %d unreadable entries\n", s.Skipped)
	}
}
