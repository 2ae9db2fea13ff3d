// Package log is a thin wrapper around [log/slog] used throughout thermo.
package log

import (
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

var DiscardHandler = slog.DiscardHandler

var level = new(slog.LevelVar)

type logger struct {
	*slog.Logger
	with []any
}

var defaultLogger = &logger{
	Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
}

// With adds args to every subsequent record of the default logger.
func With(args ...any) {
	defaultLogger.Logger = defaultLogger.Logger.With(args...)
	defaultLogger.with = append(defaultLogger.with, args...)
}

// SetTextHandler logs records as key=value pairs to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler logs records as line-delimited JSON to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLogLevel sets the minimum level of the text and JSON handlers.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the current minimum level.
func LogLevel() Level {
	return Level(level.Level())
}

// Enabled reports whether records at l would be logged.
func Enabled(l Level) bool {
	return l >= LogLevel() && l < LevelDisabled
}

func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}
