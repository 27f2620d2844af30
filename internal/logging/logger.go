// Package logging provides the leveled stderr logger used by the CLI.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, prefixed lines. A nil *Logger discards everything.
type Logger struct {
	info    *log.Logger
	warn    *log.Logger
	err     *log.Logger
	debug   *log.Logger
	verbose bool
}

// New creates a Logger writing to w. Debug lines are only written when
// verbose is set.
func New(w io.Writer, verbose bool) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		info:    log.New(w, color.New(color.FgCyan).Sprint("INFO: "), flags),
		warn:    log.New(w, color.New(color.FgYellow).Sprint("WARN: "), flags),
		err:     log.New(w, color.New(color.FgRed, color.Bold).Sprint("ERROR: "), flags),
		debug:   log.New(w, color.New(color.FgHiBlack).Sprint("DEBUG: "), flags),
		verbose: verbose,
	}
}

// Default logs to stderr so stdout stays usable in pipelines.
func Default(verbose bool) *Logger {
	return New(os.Stderr, verbose)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.info.Printf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.warn.Printf(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l == nil {
		return
	}
	l.err.Printf(format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l == nil || !l.verbose {
		return
	}
	l.debug.Printf(format, v...)
}
