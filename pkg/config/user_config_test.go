package config

import (
	"testing"
	"time"

	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultKeybindings(t *testing.T) {
	defaults := GetDefaultKeybindings()

	assert.Equal(t, "q", defaults.Universal.Quit)
	assert.Equal(t, "<c-c>", defaults.Universal.QuitAlt)
	assert.Equal(t, "<esc>", defaults.Universal.Return)
	assert.Equal(t, "n", defaults.Snapshots.Create)
	assert.Equal(t, "d", defaults.Snapshots.Remove)
	assert.Equal(t, "D", defaults.Snapshots.RemoveSelected)
	assert.Equal(t, "R", defaults.Snapshots.Rollback)
	assert.Equal(t, " ", defaults.Files.ToggleCheck)
	assert.Equal(t, "r", defaults.Files.Restore)
	assert.Equal(t, "<enter>", defaults.Filter.Confirm)
}

func TestKeybindingConfigYAMLMerge(t *testing.T) {
	defaults := GetDefaultKeybindings()

	yamlContent := `
universal:
  quit: 'X'
snapshots:
  remove: '<delete>'
files:
  restore: '<disabled>'
`

	require.NoError(t, yaml.Unmarshal([]byte(yamlContent), &defaults))

	assert.Equal(t, "X", defaults.Universal.Quit)
	assert.Equal(t, "<delete>", defaults.Snapshots.Remove)
	assert.Equal(t, "<disabled>", defaults.Files.Restore)

	// untouched values keep their defaults
	assert.Equal(t, "<c-c>", defaults.Universal.QuitAlt)
	assert.Equal(t, "R", defaults.Snapshots.Rollback)
	assert.Equal(t, "a", defaults.Files.CheckAll)

	assert.NoError(t, validateKeybindings("", defaults))
}

func TestUserConfigYAMLMerge(t *testing.T) {
	config := GetDefaultConfig()

	yamlContent := `
gui:
  language: ja
  theme:
    mode: light
    palette:
      important: "#FFD600"
snapper:
  defaultConfig: home
  refreshInterval: 30s
`

	require.NoError(t, yaml.Unmarshal([]byte(yamlContent), &config))

	assert.Equal(t, "ja", config.Gui.Language)
	assert.Equal(t, "light", config.Gui.Theme.Mode)
	assert.Equal(t, map[string]string{"important": "#FFD600"}, config.Gui.Theme.Palette)
	assert.Equal(t, "home", config.Snapper.DefaultConfig)
	assert.Equal(t, 30*time.Second, config.Snapper.RefreshInterval)
	// defaults survive
	assert.Equal(t, "snapper", config.Snapper.Binary)
	assert.Equal(t, 100, config.Snapper.RestoreBatchSize)
	assert.Equal(t, []string{"green", "bold"}, config.Gui.Theme.ActiveBorderColor)
}

func TestValidate(t *testing.T) {
	type scenario struct {
		name          string
		mutate        func(*UserConfig)
		expectedError string
	}

	scenarios := []scenario{
		{
			name:   "defaults",
			mutate: func(*UserConfig) {},
		},
		{
			name: "unknown key",
			mutate: func(c *UserConfig) {
				c.Keybinding.Snapshots.Rollback = "<rollback>"
			},
			expectedError: "Unrecognized key '<rollback>' for keybinding 'Snapshots.Rollback'",
		},
		{
			name: "unknown theme mode",
			mutate: func(c *UserConfig) {
				c.Gui.Theme.Mode = "solarized"
			},
			expectedError: "Unrecognized theme mode 'solarized'",
		},
		{
			name: "bad palette colour",
			mutate: func(c *UserConfig) {
				c.Gui.Theme.Palette = map[string]string{"error": "red"}
			},
			expectedError: "Invalid colour 'red' for palette entry 'error'",
		},
		{
			name: "good palette colour",
			mutate: func(c *UserConfig) {
				c.Gui.Theme.Palette = map[string]string{"error": "#f00", "success": "4CAF50"}
			},
		},
		{
			name: "negative batch size",
			mutate: func(c *UserConfig) {
				c.Snapper.RestoreBatchSize = -1
			},
			expectedError: "snapper.restoreBatchSize must not be negative",
		},
		{
			name: "side panel too wide",
			mutate: func(c *UserConfig) {
				c.Gui.SidePanelWidth = 1.5
			},
			expectedError: "gui.sidePanelWidth must be a fraction",
		},
		{
			name: "column without a path",
			mutate: func(c *UserConfig) {
				c.Gui.SnapshotColumns = append(c.Gui.SnapshotColumns, ColumnConfig{Title: "Cleanup"})
			},
			expectedError: "gui.snapshotColumns[4] has no path",
		},
		{
			name: "negative timeline",
			mutate: func(c *UserConfig) {
				c.Gui.TimelineDays = -7
			},
			expectedError: "gui.timelineDays must not be negative",
		},
		{
			name: "negative timeout",
			mutate: func(c *UserConfig) {
				c.Snapper.CommandTimeout = -time.Second
			},
			expectedError: "snapper.commandTimeout must not be negative",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			config := GetDefaultConfig()
			s.mutate(&config)
			err := config.Validate()
			if s.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, s.expectedError)
			}
		})
	}
}
