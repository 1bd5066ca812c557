package canvaslab

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/canvaslab/surface"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from image loads.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for canvaslab, the surface package and
// the canvas backends. By default nothing is logged.
//
// Pass nil to restore the silent default.
//
// Log levels used by canvaslab:
//   - [slog.LevelDebug]: rejected property assignments
//   - [slog.LevelWarn]: draws that cannot happen (no canvas, nothing to draw,
//     failed image loads)
//   - [slog.LevelError]: values pushed into a collection of another type
//
// Example:
//
//	canvaslab.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	surface.SetLogger(l)
}

// Logger returns the current logger used by canvaslab.
// The templates package calls this to share the same configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
