//go:build debug

package log

import (
	"context"
	"log/slog"
)

func init() {
	SetLogLevel(LevelDebug)
	defaultLogger.Warn("DEBUG")
}

// Debug logs at [LevelDebug]
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// debugHandler lets debug records through whatever the level of the
// wrapped handler.
type debugHandler struct {
	slog.Handler
}

func (h debugHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level == slog.LevelDebug || h.Handler.Enabled(ctx, level)
}

func (h debugHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return debugHandler{h.Handler.WithAttrs(attrs)}
}

func (h debugHandler) WithGroup(name string) slog.Handler {
	return debugHandler{h.Handler.WithGroup(name)}
}

// SetHandler sets the default logger's handler to the one given.
func SetHandler(h Handler) {
	defaultLogger.Logger = slog.New(debugHandler{h}).With(defaultLogger.with...)
}
