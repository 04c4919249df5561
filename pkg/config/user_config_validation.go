package config

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-errors/errors"
	"github.com/samber/lo"
)

var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports the first problem with the user config. Keys may repeat
// across panels on purpose ('d' removes in more than one place); within a
// panel yaml already makes the last one win.
func (config *UserConfig) Validate() error {
	checks := []func() error{
		func() error { return validateKeybindings("", config.Keybinding) },
		func() error { return validateTheme(config.Gui.Theme) },
		func() error { return validateGui(config.Gui) },
		func() error { return validateSnapper(config.Snapper) },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func validateTheme(theme ThemeConfig) error {
	if theme.Mode != "" && !lo.Contains([]string{"light", "dark", "system"}, theme.Mode) {
		return fmt.Errorf("Unrecognized theme mode '%s'. Use one of light, dark or system", theme.Mode)
	}

	for role, hex := range theme.Palette {
		if !hexColorRegex.MatchString(hex) {
			return fmt.Errorf("Invalid colour '%s' for palette entry '%s'. Expected a hex colour like #4CAF50", hex, role)
		}
	}

	return nil
}

func validateGui(gui GuiConfig) error {
	if gui.SidePanelWidth < 0 || gui.SidePanelWidth >= 1 {
		return fmt.Errorf("gui.sidePanelWidth must be a fraction between 0 and 1, got %v", gui.SidePanelWidth)
	}

	if gui.TimelineDays < 0 {
		return fmt.Errorf("gui.timelineDays must not be negative, got %d", gui.TimelineDays)
	}

	for index, column := range gui.SnapshotColumns {
		if column.Path == "" {
			return fmt.Errorf("gui.snapshotColumns[%d] has no path", index)
		}
	}

	return nil
}

func validateSnapper(snapper SnapperConfig) error {
	if snapper.RestoreBatchSize < 0 {
		return fmt.Errorf("snapper.restoreBatchSize must not be negative, got %d", snapper.RestoreBatchSize)
	}

	if snapper.RefreshInterval < 0 || snapper.CommandTimeout < 0 {
		return errors.New("snapper.refreshInterval and snapper.commandTimeout must not be negative")
	}

	return nil
}

// validateKeybindings walks the keybinding structs, checking every string
// field is a key we know. path names the field for the error, e.g.
// Snapshots.Rollback.
func validateKeybindings(path string, node interface{}) error {
	value := reflect.ValueOf(node)

	switch value.Kind() {
	case reflect.Struct:
		for _, field := range reflect.VisibleFields(value.Type()) {
			fieldPath := field.Name
			if path != "" {
				fieldPath = path + "." + field.Name
			}
			if err := validateKeybindings(fieldPath, value.FieldByIndex(field.Index).Interface()); err != nil {
				return err
			}
		}
	case reflect.String:
		if key := value.String(); !IsValidKeybindingKey(key) {
			return fmt.Errorf("Unrecognized key '%s' for keybinding '%s'. For permitted values see https://github.com/jesseduffield/lazysnapper/blob/master/docs/Config.md",
				key, path)
		}
	case reflect.Invalid:
	default:
		return fmt.Errorf("Unexpected type for property '%s': %s", path, value.Kind())
	}

	return nil
}
