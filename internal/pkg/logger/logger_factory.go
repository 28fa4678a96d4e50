package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Shrihari123456/cryptography/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger before a successful InitLogger.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

// registry holds the process-wide logger. The first InitLogger call decides its outcome.
type registry struct {
	once   sync.Once
	logger Logger
	err    error
}

var global = &registry{}

// InitLogger builds the process-wide logger from settings. Console records go to stderr.
// Later calls return the outcome of the first one.
func InitLogger(settings *config.LoggerSettings) error {
	r := global
	r.once.Do(func() {
		r.logger, r.err = New(settings, os.Stderr)
	})
	return r.err
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if global.logger == nil {
		return nil, ErrNotInitialized
	}
	return global.logger, nil
}

// New validates settings and builds the logger they describe.
// The console sink writes to console; the file sink ignores it and writes to settings.FilePath.
func New(settings *config.LoggerSettings, console io.Writer) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return newConsoleLogger(console, settings.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}
