package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "GREENSCREEN_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks GREENSCREEN_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The terminal owns stdout while a session is running, so path should be a
// file. An empty path falls back to stderr.
func Initialize(level string, path string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Plain levels: the log usually ends up in a file, not a color terminal
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// SetLogger replaces the global logger. Intended for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogNavigation logs a screen transition
func LogNavigation(session string, from string, to string, depth int) {
	Debug("Screen navigation",
		zap.String("session", session),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("history_depth", depth),
	)
}

// LogFunctionKey logs a PF key press and the action it resolved to
func LogFunctionKey(session string, screenID string, key int, action string) {
	Debug("PF key pressed",
		zap.String("session", session),
		zap.String("screen", screenID),
		zap.Int("key", key),
		zap.String("action", action),
	)
}

// LogFieldUpdate logs a field edit. The value itself is not logged,
// only its length, since fields may hold passwords.
func LogFieldUpdate(session string, screenID string, fieldID string, length int, clipped bool) {
	Debug("Field updated",
		zap.String("session", session),
		zap.String("screen", screenID),
		zap.String("field", fieldID),
		zap.Int("length", length),
		zap.Bool("clipped", clipped),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
