package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Shrihari123456/cryptography/internal/pkg/config"
)

// levels maps configured level names onto slog levels. Unknown names fall back to info.
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

// slogLogger adapts a *slog.Logger to the variadic Logger interface.
// Arguments are joined with fmt.Sprint into the record message.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) slogLogger {
	return slogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg)
	panic(msg)
}
