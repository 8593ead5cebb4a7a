package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type implLogger struct {
	sugar *zap.SugaredLogger
	level zapcore.Level
}

// New creates a Logger writing to stdout. format is "json" or "text";
// unknown levels fall back to info.
func New(level, format string) Logger {
	lvl := parseLevel(level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)
	return &implLogger{sugar: zap.New(core).Sugar(), level: lvl}
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(l *zap.Logger) Logger {
	return &implLogger{sugar: l.Sugar(), level: zapcore.DebugLevel}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewFromZap(zap.NewNop())
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func (l *implLogger) shouldLog(level zapcore.Level) bool {
	return level >= l.level
}

func (l *implLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zapcore.DebugLevel) {
		l.with(ctx).Debugf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zapcore.InfoLevel) {
		l.with(ctx).Infof(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zapcore.WarnLevel) {
		l.with(ctx).Warnf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog(zapcore.ErrorLevel) {
		l.with(ctx).Errorf(msg, args...)
	}
}

// Sync flushes buffered entries when l is backed by zap.
func Sync(l Logger) {
	if z, ok := l.(*implLogger); ok {
		_ = z.sugar.Sync()
	}
}
