package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the structured logger used across the application.
	Log *zap.Logger = zap.NewNop()
	// SLog is the sugared variant for printf-style messages.
	SLog *zap.SugaredLogger = Log.Sugar()
)

// InitLogger builds the global loggers from APP_ENV and LOG_LEVEL.
// Development mode gets a colored console encoder, everything else JSON.
func InitLogger() {
	InitLoggerWith(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
}

// InitLoggerWith builds the global loggers for the given environment and level.
func InitLoggerWith(env, level string) {
	var cfg zap.Config
	if strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil && level != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewExample()
		logger.Error("Logger could not be configured, falling back to example logger", zap.Error(err))
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call it with defer in main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
