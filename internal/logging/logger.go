// Package logging adapts zap to the heroku.Logger interface.
package logging

import (
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements heroku.Logger on top of zap.
type Logger struct {
	z *zap.Logger
}

// New builds a JSON logger writing to w at the named level. Unknown levels
// fall back to info.
func New(level string, w io.Writer) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		ParseLevel(level),
	)

	return Wrap(zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)))
}

// Wrap adapts an existing zap logger.
func Wrap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}

	return &Logger{z: z}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toZapFields(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toZapFields(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toZapFields(fields)...)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.z.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

// fields are emitted in key order so output is stable.
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		zapFields = append(zapFields, zap.Any(key, fields[key]))
	}

	return zapFields
}
