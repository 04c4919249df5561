package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppConfig(t *testing.T) *AppConfig {
	t.Helper()
	t.Setenv("CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("lazysnapper", "version", "commit", "date", "buildSource", false)
	require.NoError(t, err)
	return conf
}

func TestNewAppConfigCreatesConfigFile(t *testing.T) {
	conf := newTestAppConfig(t)

	_, err := os.Stat(conf.ConfigFilename())
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(conf.ConfigDir, "translations"), conf.TranslationsDir())
	assert.Equal(t, "snapper", conf.UserConfig.Snapper.Binary)
	assert.False(t, conf.Debug)
}

func TestNewAppConfigReadsUserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	content := "snapper:\n  defaultConfig: home\ngui:\n  language: de_DE\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))

	conf, err := NewAppConfig("lazysnapper", "version", "commit", "date", "buildSource", true)
	require.NoError(t, err)

	assert.True(t, conf.Debug)
	assert.Equal(t, "home", conf.UserConfig.Snapper.DefaultConfig)
	assert.Equal(t, "de_DE", conf.UserConfig.Gui.Language)
	assert.Equal(t, "/var/lib/lazysnapper", conf.UserConfig.Snapper.PreSnapshotDir)
}

func TestWritingToConfigFile(t *testing.T) {
	conf := newTestAppConfig(t)

	testFn := func(t *testing.T, ac *AppConfig, newValue bool) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.ConfirmOnQuit = newValue
			return nil
		}

		require.NoError(t, ac.WriteToUserConfig(updateFn))

		content, err := os.ReadFile(ac.ConfigFilename())
		require.NoError(t, err)

		sampleUC := UserConfig{}
		require.NoError(t, yaml.Unmarshal(content, &sampleUC))
		assert.Equal(t, newValue, sampleUC.ConfirmOnQuit)
	}

	// insert value into an empty file
	testFn(t, conf, true)

	// modifying an existing file that already has 'ConfirmOnQuit'
	testFn(t, conf, false)
}

func TestWriteToUserConfigKeepsOtherValues(t *testing.T) {
	conf := newTestAppConfig(t)

	require.NoError(t, conf.WriteToUserConfig(func(uc *UserConfig) error {
		uc.Gui.Theme.Mode = "light"
		return nil
	}))
	require.NoError(t, conf.WriteToUserConfig(func(uc *UserConfig) error {
		uc.Gui.Language = "ja"
		return nil
	}))

	content, err := os.ReadFile(conf.ConfigFilename())
	require.NoError(t, err)

	written := UserConfig{}
	require.NoError(t, yaml.Unmarshal(content, &written))
	assert.Equal(t, "light", written.Gui.Theme.Mode)
	assert.Equal(t, "ja", written.Gui.Language)
}
