package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := InitLogger("test", WithLogsDir(dir), WithConsole(&console))
	require.NoError(t, err)

	logger.Debug("debug only in file", zap.String("run_id", "abc"))
	logger.Info("visible everywhere")
	_ = logger.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "test_"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id":"abc"`)
	assert.Contains(t, string(data), "visible everywhere")

	assert.Contains(t, console.String(), "visible everywhere")
	assert.NotContains(t, console.String(), "debug only in file")
}

func TestInitLogger_WithoutFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	logger, err := InitLogger("test", WithLogsDir(dir), WithoutFile(), WithConsole(&console), WithConsoleLevel(zapcore.WarnLevel))
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}
