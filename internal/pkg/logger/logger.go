// Package logger exposes a global, Sugared Zap logger writing JSON to
// stdout. When the telemetry package has been initialized, an OTEL bridge
// core forwards every entry to the telemetry backend as well.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/solsweep/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance, set once by Init.
	logger *zap.SugaredLogger

	// initOnce guards against repeated initialization.
	initOnce sync.Once
)

// config holds the logger settings applied during Init.
type config struct {
	level string // minimum log level (debug, info, warn, error, panic, fatal)
}

// Option customizes the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level, e.g. "debug" or "warn".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// Init configures the global logger. By default it emits JSON to stdout at
// the "info" level. If telemetry.LoggerProvider() is non-nil, an OTEL bridge
// core is added so entries also reach the telemetry backend. Calling Init
// again after a successful initialization has no effect.
//
// Returns an error if the configured level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{level: "info"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("", otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes buffered entries. Call it on shutdown.
func Sync() error {
	return logger.Sync()
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, keysAndValues...)
}

// Panic logs a panic-level message and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and then exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, keysAndValues...)
}
