// internal/logger/pretty.go
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Colors for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
)

func prettyEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// customLevelEncoder formats log levels with colors
func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString(ColorCyan + "[DEBUG]" + ColorReset)
	case zapcore.InfoLevel:
		enc.AppendString(ColorGreen + "[INFO]" + ColorReset)
	case zapcore.WarnLevel:
		enc.AppendString(ColorYellow + "[WARN]" + ColorReset)
	case zapcore.ErrorLevel:
		enc.AppendString(ColorRed + "[ERROR]" + ColorReset)
	case zapcore.FatalLevel:
		enc.AppendString(ColorRed + ColorBold + "[FATAL]" + ColorReset)
	default:
		enc.AppendString("[" + level.CapitalString() + "]")
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05"))
}

func levelFor(debug bool) zapcore.Level {
	if debug {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

// CreatePrettyLogger creates a console logger for the lines printed before
// the TUI starts and after it exits
func CreatePrettyLogger(debug bool) (*zap.Logger, error) {
	return NewPrettyLogger(os.Stdout, debug), nil
}

// NewPrettyLogger writes human-friendly lines to w. Known messages are
// rewritten by FormatMessage and structured fields are dropped.
func NewPrettyLogger(w io.Writer, debug bool) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(prettyEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		levelFor(debug),
	)
	return zap.New(&FieldFilterCore{core: core})
}

// CreateTUILogger creates a JSON logger writing only to sink. Nothing may
// reach stdout while the TUI is running.
func CreateTUILogger(debug bool, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	if sink == nil {
		return nil, errors.New("log sink is required for TUI logger")
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, levelFor(debug))
	return zap.New(core), nil
}

// FormatMessage creates user-friendly log messages
func FormatMessage(msg string, fields ...zap.Field) string {
	switch {
	case strings.Contains(msg, "Starting tokenboard"):
		return fmt.Sprintf("%s🚀 Starting tokenboard%s", ColorGreen, ColorReset)

	case strings.Contains(msg, "Config loaded"):
		return fmt.Sprintf("%s⚙ Config loaded: %s%s", ColorBlue, orDefault(extractField(fields, "path"), "defaults"), ColorReset)

	case strings.Contains(msg, "Logging to file"):
		return fmt.Sprintf("%s📝 Logs: %s%s", ColorBlue, extractField(fields, "path"), ColorReset)

	case strings.Contains(msg, "Snapshot feed started"):
		return fmt.Sprintf("%s📡 Watching %s every %s%s", ColorCyan,
			extractField(fields, "path"), extractField(fields, "interval"), ColorReset)

	case strings.Contains(msg, "Shutting down"):
		return fmt.Sprintf("%s🛑 Shutting down%s", ColorYellow, ColorReset)

	case strings.Contains(msg, "TUI application failed"):
		return fmt.Sprintf("%s💥 TUI failed: %s%s", ColorRed+ColorBold, extractField(fields, "error"), ColorReset)

	default:
		return msg
	}
}

func extractField(fields []zap.Field, key string) string {
	for _, field := range fields {
		if field.Key != key {
			continue
		}
		switch field.Type {
		case zapcore.StringType:
			return field.String
		case zapcore.DurationType:
			return time.Duration(field.Integer).String()
		case zapcore.ErrorType:
			if err, ok := field.Interface.(error); ok {
				return err.Error()
			}
		}
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// FieldFilterCore rewrites messages with FormatMessage and drops the fields
type FieldFilterCore struct {
	core   zapcore.Core
	fields []zapcore.Field
}

func (c *FieldFilterCore) Enabled(level zapcore.Level) bool {
	return c.core.Enabled(level)
}

func (c *FieldFilterCore) With(fields []zapcore.Field) zapcore.Core {
	merged := append(append([]zapcore.Field{}, c.fields...), fields...)
	return &FieldFilterCore{core: c.core, fields: merged}
}

func (c *FieldFilterCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *FieldFilterCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	all := append(append([]zapcore.Field{}, c.fields...), fields...)
	entry.Message = FormatMessage(entry.Message, all...)
	return c.core.Write(entry, nil)
}

func (c *FieldFilterCore) Sync() error {
	return c.core.Sync()
}
