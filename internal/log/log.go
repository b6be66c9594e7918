// Package log wraps the standard library's log package behind a small
// Logger type, matching the teacher lineage's own ambient logging choice
// (rpc/service.go and rpc/interceptors.go both log through a bare
// *log.Logger) rather than introducing a structured-logging dependency
// this lineage never used.
package log

import (
	stdlog "log"
	"os"
)

// Logger is the minimal surface the client and server need for transport
// diagnostics: disconnects, panics, deadline trips. Wire-level and
// business errors are never logged internally; they always surface to the
// caller per spec.md §7.
type Logger struct {
	std *stdlog.Logger
}

// New wraps l, or the standard logger writing to stderr if l is nil.
func New(l *stdlog.Logger) *Logger {
	if l == nil {
		l = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	}
	return &Logger{std: l}
}

func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Printf(format, args...)
}
