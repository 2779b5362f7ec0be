package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a production zap logger at the given level ("debug", "info", ...).
func NewLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// GormWriter adapts a zap logger to gorm's logger.Writer.
type GormWriter struct {
	Logger *zap.Logger
}

// Printf implements gorm's logger.Writer.
func (w GormWriter) Printf(format string, args ...interface{}) {
	w.Logger.Debug(fmt.Sprintf(format, args...))
}
