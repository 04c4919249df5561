package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

const UNKNOWN_VIEW_ERROR_MSG = "unknown view"

// getFocusLayout returns a manager that notices when focus moves between
// non-popup views. Opening a menu over the snapshots panel doesn't count.
func (gui *Gui) getFocusLayout() func(g *gocui.Gui) error {
	var previousView *gocui.View
	return func(g *gocui.Gui) error {
		newView := g.CurrentView()
		if newView == nil || newView == previousView || gui.isPopupPanel(newView.Name()) {
			return nil
		}

		gui.onFocusChange(previousView, newView)
		previousView = newView
		return nil
	}
}

func (gui *Gui) onFocusChange(previous *gocui.View, next *gocui.View) {
	if previous != nil {
		previous.ParentView = nil
		// a squashed panel changes height when it loses focus, so keep its
		// selection in view
		gui.focusPointInView(previous)
		gui.Log.Debugf("%s focus lost", previous.Name())
	}

	gui.focusPointInView(next)
	gui.Log.Debugf("%s focus gained", next.Name())
}

// layout is called for every screen re-render e.g. when the screen is resized
func (gui *Gui) layout(g *gocui.Gui) error {
	g.Highlight = true

	dimensions := gui.getWindowDimensions(gui.getInformationContent(), gui.statusManager.getStatusString())
	for _, viewName := range gui.autoPositionedViewNames() {
		dims, ok := dimensions[viewName]
		if err := gui.placeView(viewName, dims, ok); err != nil && err.Error() != UNKNOWN_VIEW_ERROR_MSG {
			return err
		}
	}

	// the main view's title follows the side panel it belongs to
	gui.Views.Main.Title = gui.mainViewTitle()

	return gui.resizeCurrentPopupPanel()
}

// placeView sizes an already created view. Views without dimensions are
// hidden but keep covering the screen, so content rendered into them while
// hidden is laid out for a sensible width.
func (gui *Gui) placeView(viewName string, dims boxlayout.Dimensions, visible bool) error {
	view, err := gui.g.View(viewName)
	if err != nil {
		return err
	}

	view.Visible = visible
	if !visible {
		width, height := gui.g.Size()
		_, err = gui.g.SetView(viewName, 0, 0, width, height, 0)
		return err
	}

	// frameless views would otherwise lose a cell on every side
	frameOffset := 0
	if !view.Frame {
		frameOffset = 1
	}
	_, err = gui.g.SetView(
		viewName,
		dims.X0-frameOffset,
		dims.Y0-frameOffset,
		dims.X1+frameOffset,
		dims.Y1+frameOffset,
		0,
	)
	return err
}

func (gui *Gui) mainViewTitle() string {
	if gui.Views.Main.ParentView != nil {
		return gui.Views.Main.ParentView.Title
	}
	if view, err := gui.g.View(gui.currentSideViewName()); err == nil {
		return view.Title
	}
	return gui.Tr.MainTitle
}

func (gui *Gui) focusPointInView(view *gocui.View) {
	if view == nil {
		return
	}

	currentListPanel, ok := gui.listPanelByView(view)
	if ok {
		currentListPanel.Refocus()
	}
}

func (gui *Gui) prepareView(viewName string) (*gocui.View, error) {
	// arbitrarily giving the view enough size so that we don't get an error, but
	// it's expected that the view will be given the correct size before being shown
	return gui.g.SetView(viewName, 0, 0, 10, 10, 0)
}
