package logging

import (
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shortlink/internal/conf"
)

// ProviderSet is logging providers.
var ProviderSet = wire.NewSet(ProvideLogger, NewKratosLogger, NewWatermillLogger)

// New builds the process logger. Format "console" gives human readable
// output, anything else is JSON.
func New(c *conf.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if c.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// ProvideLogger builds the process logger and flushes it on cleanup.
func ProvideLogger(c *conf.Log) (*zap.Logger, func(), error) {
	logger, err := New(c)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}
