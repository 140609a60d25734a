package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	if err := Init("info"); err != nil {
		panic(err)
	}
}

// Init rebuilds the global logger at the given level ("debug", "info", "warn", "error").
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(lvl)

	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	L = built
	return nil
}

// WithComponent returns a child logger tagged with the component name (handler, service, mq, worker...).
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// Sync flushes buffered entries; call it before exit.
func Sync() {
	_ = L.Sync()
}
