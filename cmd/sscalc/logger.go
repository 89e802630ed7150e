package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	debugTag = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69")).Render("DEBUG")
	infoTag  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F")).Render("INFO ")
	warnTag  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DA702C")).Render("WARN ")
	errorTag = lipgloss.NewStyle().Foreground(lipgloss.Color("#D14D41")).Bold(true).Render("ERROR")
)

// stderrLogger writes level-tagged lines. Debug lines are dropped unless verbose.
type stderrLogger struct {
	w       io.Writer
	verbose bool
}

func newLogger(w io.Writer, verbose bool) *stderrLogger {
	return &stderrLogger{w: w, verbose: verbose}
}

func (l *stderrLogger) logf(tag, format string, args ...any) {
	fmt.Fprintf(l.w, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

func (l *stderrLogger) Debugf(format string, args ...any) {
	if l.verbose {
		l.logf(debugTag, format, args...)
	}
}

func (l *stderrLogger) Infof(format string, args ...any) {
	if l.verbose {
		l.logf(infoTag, format, args...)
	}
}

func (l *stderrLogger) Warnf(format string, args ...any)  { l.logf(warnTag, format, args...) }
func (l *stderrLogger) Errorf(format string, args ...any) { l.logf(errorTag, format, args...) }
