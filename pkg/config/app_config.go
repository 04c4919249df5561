package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required for lazysnapper.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"lazysnapper"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are
// all in PascalCase but in your actual config.yml they'll be in camelCase. You
// can view the default config with `lazysnapper --config`.
type UserConfig struct {
	// Gui is for configuring visual things like colors and whether we show or hide things
	Gui GuiConfig `yaml:"gui,omitempty"`

	// Snapper configures how we talk to the snapper binary
	Snapper SnapperConfig `yaml:"snapper,omitempty"`

	// ConfirmOnQuit when enabled prompts you to confirm you want to quit when you hit esc or q when no confirmation panels are open
	ConfirmOnQuit bool `yaml:"confirmOnQuit,omitempty"`

	// CustomCommands determines what shows up in your custom commands menu when
	// you press 'c' on a snapshot. Commands are go templates with access to
	// .Snapper (the snapper binary), .Config and .Snapshot
	CustomCommands CustomCommands `yaml:"customCommands,omitempty"`

	// OS determines what defaults are set for opening files and links
	OS OSConfig `yaml:"oS,omitempty"`

	// Keybinding lets you remap any key. Use '<disabled>' to turn a binding off
	Keybinding KeybindingConfig `yaml:"keybinding,omitempty"`
}

// ThemeConfig is for setting the colors of panels and some text.
type ThemeConfig struct {
	ActiveBorderColor   []string `yaml:"activeBorderColor,omitempty"`
	InactiveBorderColor []string `yaml:"inactiveBorderColor,omitempty"`
	OptionsTextColor    []string `yaml:"optionsTextColor,omitempty"`

	// Mode is one of "light", "dark" or "system". System looks at COLORFGBG
	// and falls back to dark
	Mode string `yaml:"mode,omitempty"`

	// Palette overrides individual hex colours of the active mode, e.g.
	// `important: "#FFD600"`. Keys are the roles listed in the theme package
	Palette map[string]string `yaml:"palette,omitempty"`
}

// ColumnConfig is a column of the snapshots list
type ColumnConfig struct {
	// Title is shown in the header row
	Title string `yaml:"title,omitempty"`

	// Path points into the Snapshot struct, e.g. "Number", "Date" or
	// "Userdata.important"
	Path string `yaml:"path,omitempty"`
}

// GuiConfig is for configuring visual things like colors and whether we show or hide things
type GuiConfig struct {
	// ScrollHeight determines how many characters you scroll at a time when scrolling the main panel
	ScrollHeight int `yaml:"scrollHeight,omitempty"`

	// ScrollPastBottom determines whether you can scroll past the bottom of the main view
	ScrollPastBottom bool `yaml:"scrollPastBottom,omitempty"`

	// MouseEvents allows you to focus panels and pick tabs by clicking on them
	MouseEvents bool `yaml:"mouseEvents,omitempty"`

	Theme ThemeConfig `yaml:"theme,omitempty"`

	// Language is a locale like "de_DE" or "ja", or "auto" to use the system language
	Language string `yaml:"language,omitempty"`

	// SidePanelWidth is the fraction of the screen the side panels take up
	SidePanelWidth float64 `yaml:"sidePanelWidth,omitempty"`

	// ExpandFocusedSidePanel grows the focused side panel
	ExpandFocusedSidePanel bool `yaml:"expandFocusedSidePanel,omitempty"`

	// ScreenMode is one of "normal", "half" or "fullscreen"
	ScreenMode string `yaml:"screenMode,omitempty"`

	// WrapMainPanel wraps long lines in the main panel
	WrapMainPanel bool `yaml:"wrapMainPanel,omitempty"`

	// HideBottomLine hides the options and status line at the bottom
	HideBottomLine bool `yaml:"hideBottomLine,omitempty"`

	// DateFormat is a go time layout used for snapshot dates
	DateFormat string `yaml:"dateFormat,omitempty"`

	// TimelineDays is how many days the timeline graph covers
	TimelineDays int `yaml:"timelineDays,omitempty"`

	// SnapshotColumns are the columns of the snapshots list
	SnapshotColumns []ColumnConfig `yaml:"snapshotColumns,omitempty"`
}

// SnapperConfig determines how snapper is called
type SnapperConfig struct {
	// Binary is the snapper executable
	Binary string `yaml:"binary,omitempty"`

	// DefaultConfig is the snapper config selected at startup
	DefaultConfig string `yaml:"defaultConfig,omitempty"`

	// Root is the filesystem root passed to `snapper --root` when checking
	// whether snapper is set up
	Root string `yaml:"root,omitempty"`

	// PreSnapshotDir holds the numbers of pre snapshots waiting for their post
	PreSnapshotDir string `yaml:"preSnapshotDir,omitempty"`

	// RestoreBatchSize is how many files go into one undochange call
	RestoreBatchSize int `yaml:"restoreBatchSize,omitempty"`

	// RefreshInterval is how often the snapshot list is reloaded
	RefreshInterval time.Duration `yaml:"refreshInterval,omitempty"`

	// CommandTimeout bounds every snapper call except restores
	CommandTimeout time.Duration `yaml:"commandTimeout,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// OpenCommand is the command for opening a file
	OpenCommand string `yaml:"openCommand,omitempty"`

	// Shell is started inside a snapshot directory. Defaults to $SHELL
	Shell string `yaml:"shell,omitempty"`
}

// CustomCommands contains the custom commands that you might want to use on a snapshot
type CustomCommands struct {
	Snapshots []CustomCommand `yaml:"snapshots,omitempty"`
}

// CustomCommand is a template for a command we want to run against a snapshot
type CustomCommand struct {
	// Name is what shows up in the menu
	Name string `yaml:"name"`

	// Attach tells us whether to switch to a subprocess to interact with the
	// called program, or just read its output
	Attach bool `yaml:"attach,omitempty"`

	// Command is the command we want to run, e.g.
	// `{{ .Snapper }} -c {{ .Config.Name }} diff {{ .Snapshot.Number }}..0`
	Command string `yaml:"command"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Gui: GuiConfig{
			ScrollHeight:     2,
			ScrollPastBottom: false,
			MouseEvents:      true,
			Theme: ThemeConfig{
				ActiveBorderColor:   []string{"green", "bold"},
				InactiveBorderColor: []string{"default"},
				OptionsTextColor:    []string{"blue"},
				Mode:                "system",
			},
			Language:       "auto",
			SidePanelWidth: 0.3333,
			ScreenMode:     "normal",
			DateFormat:     "2006-01-02 15:04",
			TimelineDays:   30,
			SnapshotColumns: []ColumnConfig{
				{Title: "#", Path: "Number"},
				{Title: "Type", Path: "Type"},
				{Title: "Date", Path: "Date"},
				{Title: "Description", Path: "Description"},
			},
		},
		Snapper: SnapperConfig{
			Binary:           "snapper",
			DefaultConfig:    "root",
			Root:             "/",
			PreSnapshotDir:   "/var/lib/lazysnapper",
			RestoreBatchSize: 100,
			RefreshInterval:  10 * time.Second,
			CommandTimeout:   time.Minute,
		},
		ConfirmOnQuit: false,
		CustomCommands: CustomCommands{
			Snapshots: []CustomCommand{
				{
					Name:    "diff against current system",
					Command: "{{ .Snapper }} -c {{ .Config.Name }} diff {{ .Snapshot.Number }}..0",
				},
				{
					Name:    "show status",
					Command: "{{ .Snapper }} -c {{ .Config.Name }} status {{ .Snapshot.Number }}..0",
				},
			},
		},
		OS:         GetPlatformDefaultConfig(),
		Keybinding: GetDefaultKeybindings(),
	}
}

// GetPlatformDefaultConfig gets the defaults for the platform
func GetPlatformDefaultConfig() OSConfig {
	return OSConfig{
		OpenCommand: `sh -c "xdg-open {{filename}} >/dev/null"`,
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

// configDirForVendor lets CONFIG_DIR win over the xdg location, which is how
// the tests keep away from the real home directory
func configDirForVendor(vendor string, projectName string) string {
	envConfigDir := os.Getenv("CONFIG_DIR")
	if envConfigDir != "" {
		return envConfigDir
	}
	configDirs := xdg.New(vendor, projectName)
	return configDirs.ConfigHome()
}

func configDir(projectName string) string {
	return configDirForVendor("jesseduffield", projectName)
}

func findOrCreateConfigDir(projectName string) (string, error) {
	folder := configDir(projectName)

	err := os.MkdirAll(folder, 0o755)
	if err != nil {
		return "", err
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}

// TranslationsDir is where users can drop their own .ts catalogs
func (c *AppConfig) TranslationsDir() string {
	return filepath.Join(c.ConfigDir, "translations")
}
