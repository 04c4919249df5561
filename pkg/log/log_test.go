package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerDiscards(t *testing.T) {
	t.Setenv("DEBUG", "")
	appConfig := &config.AppConfig{ConfigDir: t.TempDir(), Version: "1.0.0"}

	log := NewLogger(appConfig)
	log.Error("nobody sees this")

	assert.Equal(t, logrus.ErrorLevel, log.Logger.GetLevel())
	_, err := os.Stat(LogPath(appConfig))
	assert.True(t, os.IsNotExist(err))
}

func TestDevelopmentLoggerWritesJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	appConfig := &config.AppConfig{ConfigDir: t.TempDir(), Debug: true, Version: "1.0.0", Commit: "abc"}

	log := NewLogger(appConfig)
	log.Debug("filtered out")
	log.WithField("snapshot", 12).Info("deleted snapshot")

	content, err := os.ReadFile(LogPath(appConfig))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, "deleted snapshot", entry["msg"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "abc", entry["commit"])
	assert.EqualValues(t, 12, entry["snapshot"])
}

func TestDevelopmentLoggerTextFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")
	appConfig := &config.AppConfig{ConfigDir: t.TempDir(), Debug: true}

	NewLogger(appConfig).Warn("rollback to 12")

	content, err := os.ReadFile(LogPath(appConfig))
	require.NoError(t, err)
	assert.Contains(t, string(content), `level=warning msg="rollback to 12"`)
}

func TestRotate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "development.log")

	assert.NoError(t, rotate(path, 4))

	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))
	assert.NoError(t, rotate(path, 4))
	assert.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("abcdef"), 0o644))
	assert.NoError(t, rotate(path, 4))
	assert.NoFileExists(t, path)

	previous, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(previous))
}
