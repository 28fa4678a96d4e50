package testutil

import (
	"fmt"
	"testing"

	"github.com/Shrihari123456/cryptography/internal/pkg/config"
	"github.com/Shrihari123456/cryptography/internal/pkg/logger"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// MockLogger is a testify mock implementing logger.Logger.
// Each call is recorded with its arguments joined into a single message string.
type MockLogger struct {
	mock.Mock
}

// Debug records the call.
func (m *MockLogger) Debug(args ...interface{}) { m.Called(fmt.Sprint(args...)) }

// Info records the call.
func (m *MockLogger) Info(args ...interface{}) { m.Called(fmt.Sprint(args...)) }

// Warn records the call.
func (m *MockLogger) Warn(args ...interface{}) { m.Called(fmt.Sprint(args...)) }

// Error records the call.
func (m *MockLogger) Error(args ...interface{}) { m.Called(fmt.Sprint(args...)) }

// Fatal records the call.
func (m *MockLogger) Fatal(args ...interface{}) { m.Called(fmt.Sprint(args...)) }

// Panic records the call.
func (m *MockLogger) Panic(args ...interface{}) { m.Called(fmt.Sprint(args...)) }

// NewPermissiveMockLogger returns a MockLogger that accepts any debug, info, warn or error call.
func NewPermissiveMockLogger() *MockLogger {
	m := &MockLogger{}
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(method, mock.Anything).Maybe()
	}
	return m
}
