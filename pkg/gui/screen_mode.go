package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/samber/lo"
)

// WindowMaximisation is how much room the focused panel gets. Diffs of big
// snapshots are easier to read with the main view taking half or all of the
// screen.
type WindowMaximisation int

const (
	SCREEN_NORMAL WindowMaximisation = iota
	SCREEN_HALF
	SCREEN_FULL
)

var screenModes = []WindowMaximisation{SCREEN_NORMAL, SCREEN_HALF, SCREEN_FULL}

func getScreenMode(guiConfig config.GuiConfig) WindowMaximisation {
	switch guiConfig.ScreenMode {
	case "half":
		return SCREEN_HALF
	case "fullscreen":
		return SCREEN_FULL
	default:
		return SCREEN_NORMAL
	}
}

// cycle steps offset places through values, wrapping around. An unknown
// current value counts as the first one.
func cycle[T comparable](values []T, current T, offset int) T {
	index := max(lo.IndexOf(values, current), 0)
	n := len(values)
	return values[((index+offset)%n+n)%n]
}

// growing the main view means shrinking the side panels, so the direction
// flips while the main view is focused
func (gui *Gui) screenModeOffset(offset int) int {
	if gui.currentViewName() == "main" {
		return -offset
	}
	return offset
}

func (gui *Gui) nextScreenMode(g *gocui.Gui, v *gocui.View) error {
	gui.State.ScreenMode = cycle(screenModes, gui.State.ScreenMode, gui.screenModeOffset(1))
	return nil
}

func (gui *Gui) prevScreenMode(g *gocui.Gui, v *gocui.View) error {
	gui.State.ScreenMode = cycle(screenModes, gui.State.ScreenMode, gui.screenModeOffset(-1))
	return nil
}
