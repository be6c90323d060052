package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")

	logger := New(Config{Level: "info", Format: "json", File: path, MaxSizeMB: 1})
	logger.Debug("hidden")
	logger.Info("loaded catalog")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loaded catalog"`)
	assert.False(t, strings.Contains(string(data), "hidden"))
}

func TestL_NopBeforeInit(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, L())
	assert.NoError(t, Sync())
}

func TestInit_SetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.log")
	Init(Config{Level: "warn", Format: "json", File: path})
	t.Cleanup(func() { globalLogger = nil })

	L().Info("dropped")
	SetLevel("info")
	L().Info("kept")
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}
