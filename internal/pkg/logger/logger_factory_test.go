//go:build unit
// +build unit

package logger

import (
	"testing"

	"github.com/docseal/docseal/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		settings      *config.LoggerSettings
		expectedError bool
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
			expectedError: false,
		},
		{
			name: "file logger",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelDebug,
				LogType:    config.LogTypeFile,
				FilePath:   "test.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     7,
			},
			expectedError: false,
		},
		{
			name: "invalid log type",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  "invalid",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := newLogger(tt.settings)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, log)
			}
		})
	}
}

func TestInitAndGetLogger(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	// Repeated init is a no-op for the singleton
	require.NoError(t, InitLogger(settings))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, parseLevel(config.LogLevelDebug).String(), "DEBUG")
	assert.Equal(t, parseLevel(config.LogLevelInfo).String(), "INFO")
	assert.Equal(t, parseLevel(config.LogLevelWarning).String(), "WARN")
	assert.Equal(t, parseLevel(config.LogLevelError).String(), "ERROR")
	assert.Equal(t, parseLevel("unknown").String(), "INFO")
}
