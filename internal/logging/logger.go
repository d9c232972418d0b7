package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a field holding an error under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging contract used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a timestamped zerolog logger writing JSON lines to w,
// tagged with the given component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewDefaultLogger creates a logger writing to standard error.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "fibtime")
}

// NewLevelLogger creates a component logger filtered at the named level.
// Unknown level names fall back to warn.
func NewLevelLogger(w io.Writer, component, level string) *ZerologAdapter {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// ParseLevel converts a level name ("debug", "info", "warn", "error",
// "disabled") into a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

// Debug logs a message at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	z.applyFields(z.logger.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the given error attached.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msgf(format, args...)
}

// Println logs its arguments, space separated, at info level.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int32:
			event = event.Int32(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// StdLoggerAdapter implements Logger on top of the standard log package,
// producing plain text lines.
type StdLoggerAdapter struct {
	logger   *log.Logger
	minLevel zerolog.Level
}

// NewStdLoggerAdapter wraps a *log.Logger. Every level is written.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger, minLevel: zerolog.DebugLevel}
}

// NewTextLogger creates a plain text logger prefixed with the component name
// and filtered at the named level. Unknown level names fall back to warn.
func NewTextLogger(w io.Writer, component, level string) *StdLoggerAdapter {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	return &StdLoggerAdapter{logger: log.New(w, component+" ", log.LstdFlags), minLevel: lvl}
}

// New returns the text logger for format "text" and the zerolog JSON logger
// otherwise.
func New(w io.Writer, component, level, format string) Logger {
	if format == "text" {
		return NewTextLogger(w, component, level)
	}
	return NewLevelLogger(w, component, level)
}

func (s *StdLoggerAdapter) enabled(lvl zerolog.Level) bool {
	return lvl >= s.minLevel
}

func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	if s.enabled(zerolog.DebugLevel) {
		s.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
	}
}

func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	if s.enabled(zerolog.InfoLevel) {
		s.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
	}
}

func (s *StdLoggerAdapter) Warn(msg string, fields ...Field) {
	if s.enabled(zerolog.WarnLevel) {
		s.logger.Printf("[WARN] %s%s", msg, formatFields(fields))
	}
}

func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if s.enabled(zerolog.ErrorLevel) {
		s.logger.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
	}
}

func (s *StdLoggerAdapter) Printf(format string, args ...any) {
	if s.enabled(zerolog.InfoLevel) {
		s.logger.Printf(format, args...)
	}
}

func (s *StdLoggerAdapter) Println(args ...any) {
	if s.enabled(zerolog.InfoLevel) {
		s.logger.Println(args...)
	}
}

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
