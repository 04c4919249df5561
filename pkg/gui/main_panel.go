package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// the main view shows diffs and file listings which can be far wider and
// taller than the screen, so it scrolls in both directions.

func (gui *Gui) scrollStep() int {
	return max(1, gui.Config.UserConfig.Gui.ScrollHeight)
}

// lowest origin y that still leaves content on screen
func (gui *Gui) mainScrollLimitY() int {
	mainView := gui.Views.Main
	if gui.Config.UserConfig.Gui.ScrollPastBottom {
		return max(0, mainView.ViewLinesHeight()-1)
	}
	_, height := mainView.Size()
	return max(0, mainView.ViewLinesHeight()-height)
}

func (gui *Gui) mainScrollLimitX() int {
	mainView := gui.Views.Main
	widest := lo.Max(lo.Map(mainView.ViewBufferLines(), func(line string, _ int) int {
		return runewidth.StringWidth(line)
	}))
	width, _ := mainView.Size()
	return max(0, widest-width)
}

// moves the main view's origin, staying within the content
func (gui *Gui) scrollMainBy(dx int, dy int) error {
	mainView := gui.Views.Main
	ox, oy := mainView.Origin()

	if dy != 0 {
		mainView.Autoscroll = false
		limit := gui.mainScrollLimitY()
		// the view may already be past the limit, e.g. after a resize
		if dy > 0 && oy >= limit {
			return nil
		}
		oy = max(0, min(oy+dy, max(limit, oy)))
	}

	if dx != 0 {
		limit := gui.mainScrollLimitX()
		if dx > 0 && ox >= limit {
			return nil
		}
		ox = max(0, min(ox+dx, max(limit, ox)))
	}

	return mainView.SetOrigin(ox, oy)
}

func (gui *Gui) scrollUpMain(g *gocui.Gui, v *gocui.View) error {
	return gui.scrollMainBy(0, -gui.scrollStep())
}

func (gui *Gui) scrollDownMain(g *gocui.Gui, v *gocui.View) error {
	return gui.scrollMainBy(0, gui.scrollStep())
}

func (gui *Gui) scrollLeftMain(g *gocui.Gui, v *gocui.View) error {
	return gui.scrollMainBy(-gui.scrollStep(), 0)
}

func (gui *Gui) scrollRightMain(g *gocui.Gui, v *gocui.View) error {
	return gui.scrollMainBy(gui.scrollStep(), 0)
}

func (gui *Gui) jumpToTopMain(g *gocui.Gui, v *gocui.View) error {
	gui.Views.Main.Autoscroll = false
	_ = gui.Views.Main.SetCursor(0, 0)
	return gui.Views.Main.SetOrigin(0, 0)
}

func (gui *Gui) jumpToBottomMain(g *gocui.Gui, v *gocui.View) error {
	gui.Views.Main.Autoscroll = false
	_, height := gui.Views.Main.Size()
	return gui.Views.Main.SetOrigin(0, max(0, gui.Views.Main.ViewLinesHeight()-height))
}

// clicking a tab title of the main view, e.g. "Changes" for a snapshot
func (gui *Gui) onMainTabClick(tabIndex int) error {
	sidePanel, ok := gui.currentSidePanel()
	if !ok {
		return nil
	}

	sidePanel.SetMainTabIndex(tabIndex)
	return sidePanel.HandleSelect()
}

// focusMain remembers where focus came from so that escape goes back there
func (gui *Gui) focusMain(from *gocui.View) error {
	if from != nil && from.Name() != "main" {
		gui.Views.Main.ParentView = from
	}
	return gui.switchFocus(gui.Views.Main)
}

func (gui *Gui) handleEnterMain(g *gocui.Gui, v *gocui.View) error {
	return gui.focusMain(v)
}

func (gui *Gui) handleExitMain(g *gocui.Gui, v *gocui.View) error {
	v.ParentView = nil
	return gui.returnFocus()
}

func (gui *Gui) handleMainClick() error {
	if gui.popupPanelFocused() {
		return nil
	}

	return gui.focusMain(gui.g.CurrentView())
}
