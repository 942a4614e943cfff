package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfigByEnvironment(t *testing.T) {
	prod := loggerConfig("production")
	assert.Equal(t, "json", prod.Encoding)
	assert.False(t, prod.Development)
	assert.False(t, prod.Level.Enabled(zapcore.DebugLevel))
	assert.Equal(t, []string{"stdout"}, prod.OutputPaths)
	assert.Equal(t, "production", prod.InitialFields["env"])

	dev := loggerConfig("development")
	assert.Equal(t, "console", dev.Encoding)
	assert.True(t, dev.Level.Enabled(zapcore.DebugLevel))
	assert.Equal(t, serviceName, dev.InitialFields["service"])
	assert.Equal(t, "development", dev.InitialFields["env"])
}

func TestNewLoggerBuilds(t *testing.T) {
	for _, env := range []string{"production", "development", "staging"} {
		logger := NewLogger(env)
		require.NotNil(t, logger)
		assert.Equal(t, env == "production", !logger.Core().Enabled(zapcore.DebugLevel))
	}
}
