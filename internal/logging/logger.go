// Package logging provides the level-gated Logger the rest of the
// program writes through. Because the TUI owns the terminal (alternate
// screen, raw mode), nothing here ever writes to stdout/stderr while
// the app is running: New opens an append-only log file and backs the
// Logger with log/slog's JSON handler instead of the teacher's
// stdlib-log Logger writing to os.Stdout.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// LogLevel represents the severity level of log messages, kept as its
// own enum (rather than slog.Level directly) so call sites read the
// same way the teacher's logging package did.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a CLI --log-level string onto a LogLevel, defaulting
// to INFO for anything unrecognized.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Logger wraps a *slog.Logger behind the teacher's level-gated API
// shape (Debug/Info/Warn/Error as printf-style methods).
type Logger struct {
	level LogLevel
	slog  *slog.Logger
	name  string
}

// New opens path for appending (creating parent directories as needed)
// and returns a Logger writing structured JSON lines to it at the given
// level. Call this before the terminal enters raw mode (§ Supplemented
// features: "install a file-backed logger before entering raw mode").
func New(path string, level LogLevel) (*Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level.slogLevel()})
	return &Logger{level: level, slog: slog.New(handler)}, f.Close, nil
}

// NewNoop returns a Logger that discards everything, for tests and for
// command invocations that never reach the TUI.
func NewNoop() *Logger {
	return &Logger{level: ERROR, slog: slog.New(slog.NewTextHandler(discard{}, nil))}
}

// WithName returns a copy of the logger annotated with a component
// name, mirroring the teacher's NewLoggerWithName.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{level: l.level, slog: l.slog.With("component", name), name: name}
}

// Slog exposes the underlying structured logger for packages that want
// key/value attributes directly instead of the printf-style wrapper.
func (l *Logger) Slog() *slog.Logger { return l.slog }

func (l *Logger) Debug(format string, args ...any) { l.log(DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(INFO, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(WARN, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(ERROR, format, args...) }

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if level < l.level {
		return
	}
	l.slog.Log(nil, level.slogLevel(), fmt.Sprintf(format, args...))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
