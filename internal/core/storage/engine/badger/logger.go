package badger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// slogLogger 将 BadgerDB 日志转发到 slog
type slogLogger struct {
	log *slog.Logger
	min slog.Level
}

func newLogger(log *slog.Logger, min slog.Level) badger.Logger {
	return &slogLogger{log: log, min: min}
}

func (l *slogLogger) emit(level slog.Level, format string, args ...interface{}) {
	if level < l.min || !l.log.Enabled(context.Background(), level) {
		return
	}
	l.log.Log(context.Background(), level, strings.TrimSpace(fmt.Sprintf(format, args...)), "engine", "badger")
}

func (l *slogLogger) Errorf(format string, args ...interface{}) {
	l.emit(slog.LevelError, format, args...)
}

func (l *slogLogger) Warningf(format string, args ...interface{}) {
	l.emit(slog.LevelWarn, format, args...)
}

func (l *slogLogger) Infof(format string, args ...interface{}) {
	l.emit(slog.LevelInfo, format, args...)
}

func (l *slogLogger) Debugf(format string, args ...interface{}) {
	l.emit(slog.LevelDebug, format, args...)
}
