// Package logger provides a small leveled logger for the translation
// pipeline. Debug and Info lines are printed only in verbose mode; Warn and
// Error lines are always printed. A nil *Logger discards everything, so
// components can accept one optionally.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes prefixed log lines to an io.Writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New creates a Logger writing to w. A nil w means os.Stderr.
func New(w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{out: w, verbose: verbose}
}

// Discard returns a Logger that drops all output.
func Discard() *Logger {
	return New(io.Discard, false)
}

// IsVerbose reports whether Debug and Info lines are printed.
func (l *Logger) IsVerbose() bool {
	return l != nil && l.verbose
}

// Debug prints a message in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	if l.IsVerbose() {
		l.write("DEBUG", format, args...)
	}
}

// Info prints a message in verbose mode.
func (l *Logger) Info(format string, args ...any) {
	if l.IsVerbose() {
		l.write("INFO", format, args...)
	}
}

// Warn always prints.
func (l *Logger) Warn(format string, args ...any) {
	l.write("WARN", format, args...)
}

// Error always prints.
func (l *Logger) Error(format string, args ...any) {
	l.write("ERROR", format, args...)
}

func (l *Logger) write(level, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "["+level+"] "+format+"\n", args...)
}
