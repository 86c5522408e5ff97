package keyshape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for keyshape and its sub-packages.
// By default keyshape produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by keyshape:
//   - [slog.LevelDebug]: geometry regeneration, skipped layers and draws
//   - [slog.LevelWarn]: gg fill or stroke failures in integration/ggcanvas
//
// Example:
//
//	keyshape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by keyshape.
// Sub-packages (raster/, recording/, integration/ggcanvas/) call this to
// share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
