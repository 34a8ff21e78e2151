// Package logging provides leveled console diagnostics.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr at the given level. An
// unrecognized level falls back to warn so a typo in config never
// silences real warnings. User-facing command output never goes through
// this logger; it carries only diagnostics.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "todo",
	})
}
