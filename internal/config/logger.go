package config

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

var baseLogger = logrus.New()

// InitLogger configures the package logger from the app config.
// Production gets JSON logs, everything else the default text format.
func InitLogger(cfg *App) {
	baseLogger.SetOutput(os.Stdout)
	if cfg.Env == "production" {
		baseLogger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	baseLogger.SetLevel(level)
}

// Logger returns the configured base logger.
func Logger() *logrus.Logger {
	return baseLogger
}

// WithContext returns the request-scoped log entry stored in ctx,
// falling back to the base logger.
func WithContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(baseLogger)
}

// IntoContext stores a log entry in ctx for downstream handlers.
func IntoContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry)
}
