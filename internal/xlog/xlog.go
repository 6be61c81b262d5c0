// Package xlog centralises zap.Logger construction so every package that
// needs structured logging (network, validate, cmd/incgraph) configures it
// identically instead of hand-rolling encoder configs at each call site.
package xlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON-encoded logger writing to stderr at the given level.
// Complexity: O(1).
func New(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// Nop returns a logger that discards everything, the default for
// components that don't take a WithLogger option.
func Nop() *zap.Logger {
	return zap.NewNop()
}
