package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a log event. It extends
// [slog.Level] with [LevelDisabled], which silences all logging.
type Level slog.Level

const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns the uppercase name of the level, i.e. "WARN" or "DISABLED".
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}
	return slog.Level(l).String()
}

// MarshalJSON quotes the output of [Level.String].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON accepts any string accepted by [Level.UnmarshalText].
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}

func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText accepts the level names of [slog.Level], with optional
// offsets such as "Error+1", and "disable", "disabled" or "false" for
// [LevelDisabled], ignoring case.
func (l *Level) UnmarshalText(data []byte) error {
	switch strings.ToLower(string(bytes.TrimSpace(data))) {
	case "disable", "disabled", "false":
		*l = LevelDisabled
		return nil
	}
	return (*slog.Level)(l).UnmarshalText(bytes.TrimSpace(data))
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// LevelFlag implements [github.com/spf13/pflag.Value].
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return (Level)(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(s))
}

func (lf *LevelFlag) Type() string {
	return "level"
}
