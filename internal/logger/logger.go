// Package logger is a small leveled logger with key/value fields.
//
// Log lines go to stderr so they never mix with the scaffold summary on
// stdout:
//
//	2024-05-01T10:00:00Z DEBUG backup created | path=README.md backup=README.md.bak.1714557600
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging surface the scaffolder depends on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	SetLevel(level Level)
}

// Field is one key/value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// sink is shared by a logger and everything derived from it via With,
// so level changes and writes stay consistent.
type sink struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	now   func() time.Time
}

type lineLogger struct {
	sink   *sink
	fields []Field
}

// New returns a Logger writing lines at or above level to out.
// A nil out means stderr.
func New(level Level, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &lineLogger{sink: &sink{out: out, level: level, now: time.Now}}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(LevelSilent, io.Discard)
}

func (l *lineLogger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

func (l *lineLogger) With(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &lineLogger{sink: l.sink, fields: merged}
}

func (l *lineLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *lineLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *lineLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *lineLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *lineLogger) log(level Level, msg string, fields []Field) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level || s.level == LevelSilent {
		return
	}

	var b strings.Builder
	b.WriteString(s.now().UTC().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	if len(l.fields)+len(fields) > 0 {
		b.WriteString(" |")
		for _, f := range l.fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
		for _, f := range fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(s.out, b.String())
}
