// Package logger provides diagnostic logging for chromcmm.
// Debug, info and section output appear only with --verbose; warnings are
// always written. Everything goes to stderr so documents streamed to stdout
// stay clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level orders log messages by importance.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

var (
	mu        sync.RWMutex
	threshold Level     = LevelWarn
	output    io.Writer = os.Stderr
)

// SetVerbose lowers the threshold to debug, or restores it to warn.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	if v {
		threshold = LevelDebug
	} else {
		threshold = LevelWarn
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return threshold <= LevelDebug
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level Level, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level < threshold {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Section prints a pipeline stage header if verbose mode is enabled.
func Section(name string) {
	logf(LevelInfo, "\n=== ", "%s ===", name)
}
