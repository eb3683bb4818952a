// Package logging constructs the zap.Logger shared by cmd/metta and the
// interpreter driver's trace events.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger at the given level ("debug", "info", "warn",
// "error"; anything else falls back to "info"). The returned cleanup func
// flushes buffered log entries and should be deferred by the caller.
func New(level string) (*zap.Logger, func()) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.TimeKey = ""

	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	return log, func() { _ = log.Sync() }
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
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
