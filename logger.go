package glmesh

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggers pairs the logger given to SetLogger with the derived one the
// library logs through, which tags every record with lib=glmesh.
type loggers struct {
	base *slog.Logger
	lib  *slog.Logger
}

func newLoggers(l *slog.Logger) *loggers {
	return &loggers{base: l, lib: l.With(slog.String("lib", "glmesh"))}
}

// loggerPtr stores the active loggers. Accessed atomically so that
// SetLogger can be called while another goroutine logs.
var loggerPtr atomic.Pointer[loggers]

func init() {
	loggerPtr.Store(newLoggers(newNopLogger()))
}

// SetLogger configures the logger used by glmesh.
// By default glmesh produces no log output. Pass nil to restore silence.
//
// Records emitted by glmesh carry a lib=glmesh attribute.
//
// Log levels used by glmesh:
//   - [slog.LevelDebug]: object creation and destruction (handles, sizes)
//   - [slog.LevelInfo]: driver and platform selection
//   - [slog.LevelWarn]: use after destroy, cleanup problems
//
// Example:
//
//	glmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(newLoggers(l))
}

// Logger returns the logger last passed to SetLogger, without the lib
// attribute, so it can be saved and restored.
func Logger() *slog.Logger {
	return loggerPtr.Load().base
}

func logger() *slog.Logger {
	return loggerPtr.Load().lib
}
