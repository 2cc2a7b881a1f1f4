package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log starts as a no-op logger so packages can log safely before Init runs.
var log *zap.SugaredLogger = zap.NewNop().Sugar()

// Init configures the process-wide logger at the given level.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	log = logger.Sugar()
	return nil
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	log.Infow(msg, kv(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	log.Errorw(msg, kv(fields)...)
}

// Sync flushes buffered log entries on shutdown.
func Sync() {
	_ = log.Sync()
}

func kv(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
