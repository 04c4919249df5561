package presentation

import (
	"github.com/fatih/color"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
)

func GetMenuItemDisplayStrings(menuItem *types.MenuItem) []string {
	if menuItem.LabelColumns != nil {
		return menuItem.LabelColumns
	}

	if menuItem.Disabled() {
		return []string{utils.ColoredString(menuItem.Label, color.FgHiBlack)}
	}

	if menuItem.OpensMenu {
		return []string{utils.ColoredString(menuItem.Label+"...", color.FgMagenta)}
	}

	return []string{menuItem.Label}
}
