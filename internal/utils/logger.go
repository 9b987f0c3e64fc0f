// internal/utils/logger.go
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggingConfig controls the logger built by NewLogger. The encoder itself
// only ever logs at Debug level; hosts embedding the encoder pick the sink.
type LoggingConfig struct {
	Level      string `json:"level"`  // debug, info, warn, error
	Format     string `json:"format"` // json or console
	Output     string `json:"output"` // stdout, stderr or a file path
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
	Compress   bool   `json:"compress"`
}

// NewLogger creates a zap logger for the given configuration. File outputs
// are rotated with lumberjack.
func NewLogger(cfg *LoggingConfig) (*zap.Logger, error) {
	var enc zapcore.Encoder
	switch cfg.Format {
	case "console":
		enc = zapcore.NewConsoleEncoder(encoderConfig(cfg.Format))
	default:
		enc = zapcore.NewJSONEncoder(encoderConfig(cfg.Format))
	}

	sink, err := writeSyncer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create write syncer: %w", err)
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(enc, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func encoderConfig(format string) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.MessageKey = "message"

	if format == "console" {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	}

	return cfg
}

func writeSyncer(cfg *LoggingConfig) (zapcore.WriteSyncer, error) {
	switch cfg.Output {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Output,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}), nil
	}
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// EncoderLogger wraps zap.Logger with encoder-specific functionality
type EncoderLogger struct {
	*zap.Logger
	dialect string
}

// NewEncoderLogger creates a dialect-scoped logger. A nil base logger is
// replaced with a no-op logger so encoding never requires logging setup.
func NewEncoderLogger(baseLogger *zap.Logger, dialect string) *EncoderLogger {
	if baseLogger == nil {
		baseLogger = zap.NewNop()
	}

	logger := baseLogger.With(
		zap.String("dialect", dialect),
		zap.String("component", "encoder"),
	)

	return &EncoderLogger{
		Logger:  logger,
		dialect: dialect,
	}
}

// LogCommand logs an encoded command sequence at debug level
func (el *EncoderLogger) LogCommand(operation string, size int, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("operation", operation),
		zap.Int("bytes", size),
	}, fields...)

	el.Debug("Command encoded", allFields...)
}
