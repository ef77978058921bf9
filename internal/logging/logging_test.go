package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewFile(t *testing.T) {
	nop, err := NewFile("", "info")
	require.NoError(t, err)
	assert.False(t, nop.Core().Enabled(zapcore.ErrorLevel))

	path := filepath.Join(t.TempDir(), "logs", "bench.log")
	log, err := NewFile(path, "warn")
	require.NoError(t, err)
	log.Info("dropped")
	log.Warn("kept", zap.String("key", "theme"))
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "dropped")
	assert.Contains(t, string(b), `"msg":"kept"`)
	assert.Contains(t, string(b), `"key":"theme"`)
}
