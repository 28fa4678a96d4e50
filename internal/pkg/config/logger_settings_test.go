//go:build unit
// +build unit

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileLoggerSettings(maxSize, maxBackups, maxAge int) *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/crypto-algorithms.log",
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name        string
		settings    *LoggerSettings
		errContains string
	}{
		{
			name:     "console logger",
			settings: &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole},
		},
		{
			name:     "critical level",
			settings: &LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole},
		},
		{
			name:     "file logger within rotation bounds",
			settings: fileLoggerSettings(MaxLogFileSizeMB, MaxLogFileBackups, MaxLogFileAgeDays),
		},
		{
			name:     "console logger ignores rotation settings",
			settings: &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 1000},
		},
		{
			name:        "missing log level",
			settings:    &LoggerSettings{LogType: LogTypeConsole},
			errContains: "LoggerSettings.LogLevel",
		},
		{
			name:        "unknown log type",
			settings:    &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			errContains: "LoggerSettings.LogType",
		},
		{
			name: "file logger without path",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			errContains: "file path is required",
		},
		{
			name:        "file logger max size too large",
			settings:    fileLoggerSettings(MaxLogFileSizeMB+1, 3, 28),
			errContains: "max size",
		},
		{
			name:        "file logger missing backups",
			settings:    fileLoggerSettings(10, 0, 28),
			errContains: "max backups",
		},
		{
			name:        "file logger max age too large",
			settings:    fileLoggerSettings(10, 3, MaxLogFileAgeDays+1),
			errContains: "max age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDescribeValidationError(t *testing.T) {
	t.Run("plain errors are wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		err := describeValidationError("Settings", cause)
		assert.ErrorIs(t, err, cause)
	})
}
