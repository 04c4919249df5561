package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
)

// GetColor bitwise OR's a list of attributes obtained via the given keys
func (gui *Gui) GetColor(keys []string) gocui.Attribute {
	var attribute gocui.Attribute
	for _, key := range keys {
		attribute |= utils.GetGocuiAttribute(key)
	}
	return attribute
}

// GetOptionsPanelTextColor gets the color of the options panel text
func (gui *Gui) GetOptionsPanelTextColor() gocui.Attribute {
	return gui.GetColor(gui.Config.UserConfig.Gui.Theme.OptionsTextColor)
}

// SetColorScheme sets the color scheme for the app based on the user config
func (gui *Gui) SetColorScheme() error {
	gui.g.FgColor = gui.GetColor(gui.Config.UserConfig.Gui.Theme.InactiveBorderColor)
	gui.g.SelFgColor = gui.GetColor(gui.Config.UserConfig.Gui.Theme.ActiveBorderColor)
	return nil
}

// handleToggleTheme cycles dark, light and system, re-renders everything that
// uses the palette and remembers the choice in the user config
func (gui *Gui) handleToggleTheme(g *gocui.Gui, v *gocui.View) error {
	mode := gui.Theme.ToggleMode()
	gui.Config.UserConfig.Gui.Theme.Mode = string(mode)

	gui.applyThemeColors()

	// the main view caches on ObjectKey, so force it to redraw in the new colours
	gui.State.Panels.Main.ObjectKey = ""

	for _, panel := range gui.allSidePanels() {
		if err := panel.RerenderList(); err != nil {
			return err
		}
	}

	gui.showToast(gui.themeModeLabel(mode))

	return gui.Config.WriteToUserConfig(func(userConfig *config.UserConfig) error {
		userConfig.Gui.Theme.Mode = string(mode)
		return nil
	})
}

func (gui *Gui) themeModeLabel(mode theme.Mode) string {
	switch mode {
	case theme.Light:
		return gui.Tr.LightMode
	case theme.Dark:
		return gui.Tr.DarkMode
	default:
		return gui.Tr.SystemMode
	}
}
