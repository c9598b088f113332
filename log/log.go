// Package log provides the library's loggers, an env-gated debug mode and a
// render profiler. Enable debug mode by setting TERMTABLE_DEBUG=1.
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

// Package loggers. They discard everything until Initialize is called.
var (
	InfoLog    = charmlog.New(io.Discard)
	WarningLog = charmlog.New(io.Discard)
	ErrorLog   = charmlog.New(io.Discard)
)

var (
	logFileName = filepath.Join(os.TempDir(), "termtable.log")
	logFile     *os.File
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, prefix string, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          prefix,
		Level:           level,
	})
}

// Initialize opens the log file and points the package loggers at it.
// When toStderr is set the loggers write to stderr instead.
func Initialize(toStderr bool) {
	var w io.Writer = os.Stderr
	if !toStderr {
		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			newLogger(os.Stderr, "", charmlog.ErrorLevel).Errorf("could not open log file: %s", err)
			return
		}
		logFile = f
		w = f
	}

	InfoLog = newLogger(w, "info", charmlog.InfoLevel)
	WarningLog = newLogger(w, "warn", charmlog.WarnLevel)
	ErrorLog = newLogger(w, "error", charmlog.ErrorLevel)
}

// Close closes the log file, if one was opened.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or InfoLog if there is none.
func FromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return InfoLog
}
