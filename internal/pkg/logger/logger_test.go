package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestBuildConfig(t *testing.T) {
	prod := buildConfig("info")
	assert.Equal(t, "json", prod.Encoding)
	assert.False(t, prod.Development)
	assert.Equal(t, "ts", prod.EncoderConfig.TimeKey)

	dev := buildConfig("debug")
	assert.Equal(t, "console", dev.Encoding)
	assert.True(t, dev.Development)
}

func TestNew(t *testing.T) {
	log, err := New("error", "surfquest-api")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
