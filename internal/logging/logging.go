package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a Field holding a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field holding an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a Field holding an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a Field holding a bool value.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates a Field holding an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the unified logging interface used across the application.
// It decouples components from the underlying logging backend.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(l zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: l}
}

// NewLogger creates a ZerologAdapter writing to w, tagged with a component
// name added to every event.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	l := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: l}
}

// NewDefaultLogger creates a ZerologAdapter writing to stderr with a
// human-friendly console format.
func NewDefaultLogger() *ZerologAdapter {
	console := zerolog.ConsoleWriter{Out: os.Stderr}
	return &ZerologAdapter{logger: zerolog.New(console).With().Timestamp().Logger()}
}

// Info logs a message at info level with optional structured fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.logger.Info(), fields).Msg(msg)
}

// Error logs a message at error level, attaching the error and optional fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a message at debug level with optional structured fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs the arguments at info level, space-separated.
func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// applyFields attaches typed fields to a zerolog event, dispatching on the
// dynamic type of each value.
func (a *ZerologAdapter) applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// StdLoggerAdapter implements Logger on top of the standard library logger.
// It is a fallback for contexts where zerolog is undesirable (e.g., tests
// that assert on plain-text output).
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: l}
}

// Info logs a message at info level with optional structured fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs a message at error level, attaching the error and optional fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.logger.Printf("[ERROR] %s error=%v%s", msg, err, formatFields(fields))
}

// Debug logs a message at debug level with optional structured fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.logger.Printf(format, args...)
}

// Println logs the arguments, space-separated.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.logger.Println(args...)
}

// formatFields renders fields as " key=value" pairs appended to the message.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}
