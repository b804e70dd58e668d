package bgi

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by bgi and its sub-packages.
// By default bgi produces no log output. Pass nil to restore the silent
// default. SetLogger is safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: per-call diagnostics (scene operations)
//   - [slog.LevelWarn]: ignored calls (polygons with too few points)
//   - [slog.LevelError]: invariant violations, immediately followed by
//     process termination
//
// Example:
//
//	bgi.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// exitFunc terminates the process after a fatal error. Tests replace it.
var exitFunc = os.Exit

// warn logs a recoverable misuse. The call that triggered it has no effect.
func warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// fatal logs an invariant violation at error level and terminates the
// process with exit status 1. The message is also written to stderr so it
// is not lost when no logger is configured.
func fatal(msg string, err error, args ...any) {
	args = append(args, "err", err)
	Logger().Error(msg, args...)
	fmt.Fprintf(os.Stderr, "bgi: %s: %v\n", msg, err)
	exitFunc(1)
}
