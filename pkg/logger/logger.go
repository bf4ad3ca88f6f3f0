package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log *zap.Logger
)

func init() {
	// 默认 Nop Logger，库代码在未 Init 时调用也不会 panic，测试中也保持安静
	Log = zap.NewNop()
}

// Init initializes the global logger. level may be empty, in which case the
// environment default is used (info for production, debug otherwise).
func Init(env, level string) {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			panic(err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	var err error
	Log, err = config.Build(zap.AddCallerSkip(1)) // Skip 1 caller so logs show where logger.Info was called, not wrapper
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(Log)
}

// Set replaces the global logger, mainly for tests (zaptest / observer).
func Set(l *zap.Logger) {
	Log = l
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Log.Sync()
}

// Helper functions for direct usage
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}
