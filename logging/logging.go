// Package logging builds the service's zap logger and carries it through
// request contexts.
package logging

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level       string `envconfig:"DIABETES_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Development bool   `envconfig:"DIABETES_LOG_DEVELOPMENT" default:"false"`
	// File switches output from stderr to a rotated log file.
	File       string `envconfig:"DIABETES_LOG_FILE"`
	MaxSizeMB  int    `envconfig:"DIABETES_LOG_MAX_SIZE_MB" default:"100" validate:"min=1"`
	MaxBackups int    `envconfig:"DIABETES_LOG_MAX_BACKUPS" default:"3" validate:"min=0"`
	MaxAgeDays int    `envconfig:"DIABETES_LOG_MAX_AGE_DAYS" default:"28" validate:"min=0"`
}

type contextKey struct{}

var (
	defaultLogger     *zap.SugaredLogger
	defaultLoggerOnce sync.Once
)

// New creates a logger writing JSON, or console output in development mode.
func New(cfg Config) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var encoder zapcore.Encoder
	if cfg.Development {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if cfg.File != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Sugar(), nil
}

// DefaultLogger is used when no logger was put in the context.
func DefaultLogger() *zap.SugaredLogger {
	defaultLoggerOnce.Do(func() {
		logger, err := New(Config{Level: "info"})
		if err != nil {
			logger = zap.NewNop().Sugar()
		}
		defaultLogger = logger
	})
	return defaultLogger
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && logger != nil {
		return logger
	}
	return DefaultLogger()
}
