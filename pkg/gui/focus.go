package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/samber/lo"
)

// newLineFocused runs when a view gains focus. List panels re-render the main
// view for their selection.
func (gui *Gui) newLineFocused(v *gocui.View) error {
	if v == nil {
		return nil
	}

	if listPanel, ok := gui.listPanelByView(v); ok {
		return listPanel.HandleSelect()
	}

	switch v.Name() {
	case "main":
		v.Highlight = false
	case "confirmation", "filter":
	default:
		gui.Log.Warnf("no handler for focusing view %s", v.Name())
	}
	return nil
}

func (gui *Gui) switchFocus(newView *gocui.View) error {
	gui.Mutexes.ViewStackMutex.Lock()
	defer gui.Mutexes.ViewStackMutex.Unlock()

	return gui.switchFocusAux(newView)
}

func (gui *Gui) switchFocusAux(newView *gocui.View) error {
	gui.pushView(newView.Name())
	gui.Log.Info("new focused view is " + newView.Name())
	if _, err := gui.g.SetCurrentView(newView.Name()); err != nil {
		return err
	}

	gui.g.Cursor = newView.Editable

	if err := gui.renderPanelOptions(); err != nil {
		return err
	}

	// a filter only lives as long as its panel is in the stack
	if panel := gui.State.Filter.panel; panel != nil && !lo.Contains(gui.State.ViewStack, panel.GetView().Name()) {
		if err := gui.clearFilter(); err != nil {
			return err
		}
	}

	if !lo.Contains(gui.State.ViewStack, "menu") {
		gui.Views.Menu.Visible = false
	}

	return gui.newLineFocused(newView)
}

func (gui *Gui) returnFocus() error {
	gui.Mutexes.ViewStackMutex.Lock()
	defer gui.Mutexes.ViewStackMutex.Unlock()

	if len(gui.State.ViewStack) <= 1 {
		return nil
	}

	previousViewName := gui.State.ViewStack[len(gui.State.ViewStack)-2]
	previousView, err := gui.g.View(previousViewName)
	if err != nil {
		return err
	}

	return gui.switchFocusAux(previousView)
}

func (gui *Gui) removeViewFromStack(view *gocui.View) {
	gui.Mutexes.ViewStackMutex.Lock()
	defer gui.Mutexes.ViewStackMutex.Unlock()

	gui.State.ViewStack = lo.Filter(gui.State.ViewStack, func(viewName string, _ int) bool {
		return viewName != view.Name()
	})
}

// pushView puts name on top of the view stack. Callers hold the view stack
// mutex, so go through switchFocus.
//
// Popups never stay underneath another view, except for the filter prompt
// which can filter the menu. Focusing a side panel starts a fresh stack.
func (gui *Gui) pushView(name string) {
	stack := gui.State.ViewStack
	if lo.Contains(gui.sideViewNames(), name) {
		stack = nil
	}

	stack = lo.Filter(stack, func(viewName string, _ int) bool {
		if viewName == name {
			return false
		}
		return name == "filter" || !gui.isPopupPanel(viewName)
	})

	gui.State.ViewStack = append(stack, name)
}

// topOfViewStack is the most recently pushed view satisfying keep, or the
// initially focused view when there is none
func (gui *Gui) topOfViewStack(keep func(viewName string) bool) string {
	gui.Mutexes.ViewStackMutex.Lock()
	defer gui.Mutexes.ViewStackMutex.Unlock()

	for i := len(gui.State.ViewStack) - 1; i >= 0; i-- {
		if keep(gui.State.ViewStack[i]) {
			return gui.State.ViewStack[i]
		}
	}

	return gui.initiallyFocusedViewName()
}

// excludes popups
func (gui *Gui) currentStaticViewName() string {
	return gui.topOfViewStack(func(viewName string) bool {
		return !gui.isPopupPanel(viewName)
	})
}

func (gui *Gui) currentSideViewName() string {
	sideViewNames := gui.sideViewNames()
	return gui.topOfViewStack(func(viewName string) bool {
		return lo.Contains(sideViewNames, viewName)
	})
}

func (gui *Gui) listPanelByView(view *gocui.View) (panels.ISideListPanel, bool) {
	if view == nil {
		return nil, false
	}

	return lo.Find(gui.allListPanels(), func(panel panels.ISideListPanel) bool {
		return panel.GetView() == view
	})
}

func (gui *Gui) currentListPanel() (panels.ISideListPanel, bool) {
	return gui.listPanelByView(gui.g.CurrentView())
}

// the side panel that is focused, or that the main view belongs to
func (gui *Gui) currentSidePanel() (panels.ISideListPanel, bool) {
	viewName := gui.currentSideViewName()

	return lo.Find(gui.allSidePanels(), func(panel panels.ISideListPanel) bool {
		return panel.GetView().Name() == viewName
	})
}

func (gui *Gui) handleGoTo(view *gocui.View) func(g *gocui.Gui, v *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		gui.resetMainView()
		return gui.switchFocus(view)
	}
}

func (gui *Gui) cycleSideView(offset int) error {
	sideViewNames := gui.sideViewNames()
	if len(sideViewNames) == 0 {
		return nil
	}

	next := cycle(sideViewNames, gui.currentSideViewName(), offset)

	view, err := gui.g.View(next)
	if err != nil {
		return err
	}

	gui.resetMainView()
	return gui.switchFocus(view)
}

func (gui *Gui) nextView(g *gocui.Gui, v *gocui.View) error {
	return gui.cycleSideView(1)
}

func (gui *Gui) previousView(g *gocui.Gui, v *gocui.View) error {
	return gui.cycleSideView(-1)
}

func (gui *Gui) resetMainView() {
	gui.State.Panels.Main.ObjectKey = ""
	gui.Views.Main.Wrap = gui.Config.UserConfig.Gui.WrapMainPanel
}
