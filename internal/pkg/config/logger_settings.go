package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in LoggerSettings.LogLevel. Critical maps to the error level.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log sinks accepted in LoggerSettings.LogType.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation bounds for the file logger.
const (
	MaxLogFileSizeMB  = 100
	MaxLogFileBackups = 10
	MaxLogFileAgeDays = 365
)

// LoggerSettings selects the log sink and level. Rotation fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `yaml:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `yaml:"log_type" validate:"required,oneof=console file"`
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return describeValidationError("LoggerSettings", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	switch {
	case s.FilePath == "":
		return fmt.Errorf("file path is required for file logger")
	case s.MaxSize < 1 || s.MaxSize > MaxLogFileSizeMB:
		return fmt.Errorf("max size must be between 1 and %d MB", MaxLogFileSizeMB)
	case s.MaxBackups < 1 || s.MaxBackups > MaxLogFileBackups:
		return fmt.Errorf("max backups must be between 1 and %d", MaxLogFileBackups)
	case s.MaxAge < 1 || s.MaxAge > MaxLogFileAgeDays:
		return fmt.Errorf("max age must be between 1 and %d days", MaxLogFileAgeDays)
	}

	return nil
}

// describeValidationError lists the failing fields of a validator error.
func describeValidationError(structName string, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation error: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("validation failed for %s: %v", structName, messages)
}
