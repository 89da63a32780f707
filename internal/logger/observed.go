package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewObserved returns a Logger that keeps entries at or above level in memory.
// Tests use the returned logs to assert on what was logged.
func NewObserved(level LogLevel) (Logger, *observer.ObservedLogs) {
	lvl, err := zapLevel(level)
	if err != nil {
		lvl = zapcore.DebugLevel
	}
	core, logs := observer.New(lvl)
	return NewFromZap(zap.New(core)), logs
}
