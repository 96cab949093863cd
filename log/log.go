// Package log holds the process-wide zap logger.
package log

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
)

func init() {
	global = newLogger(FormatConsole, zapcore.Lock(os.Stderr))
}

func newLogger(format string, ws zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "time"

	var enc zapcore.Encoder
	if format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	return zap.New(zapcore.NewCore(enc, ws, level)).Named("apklinker")
}

// Init replaces the global logger. format is "console" or "json", lvl any
// level zap understands.
func Init(format, lvl string) error {
	l, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", lvl)
	}
	switch format {
	case FormatConsole, FormatJSON:
	default:
		return errors.Newf("invalid log format %q, expect %q or %q", format, FormatConsole, FormatJSON)
	}

	level.SetLevel(l)
	ReplaceGlobal(newLogger(format, zapcore.Lock(os.Stderr)))
	return nil
}

// ReplaceGlobal swaps the global logger, mostly for tests.
func ReplaceGlobal(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = logger
}

// SetLevel changes the level of loggers built by Init.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// L returns the global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Sync flushes the global logger.
func Sync() {
	_ = L().Sync()
}
