// Package logging builds the stderr diagnostic logger for do2org runs.
//
// The converted document owns stdout, so every log line goes to the writer
// the command hands in, normally stderr. Loggers are built per run and
// passed down; there is no package-level logger to configure.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns the diagnostic logger for one run. Quiet runs only surface
// warnings and errors; verbose runs add debug lines with timestamps so a
// slow conversion can be traced entry by entry.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		Level:           level,
		Prefix:          "do2org",
	})
}
