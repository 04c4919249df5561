package gui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

// scrollIntoView moves the origin of v as little as possible so that line
// selectedY is visible, and puts the cursor on it. The origin never leaves
// empty lines below the last item.
func scrollIntoView(v *gocui.View, selectedY int, lineCount int) {
	if selectedY < 0 || selectedY > lineCount {
		return
	}

	ox, oy := v.Origin()
	cx, cy := v.Cursor()
	_, height := v.Size()
	visible := max(height, 1)

	newOy := oy
	if selectedY < oy {
		newOy = selectedY
	} else if selectedY >= oy+visible {
		newOy = selectedY - visible + 1
	}
	newOy = max(0, min(newOy, lineCount-visible))

	if newOy != oy {
		_ = v.SetOrigin(ox, newOy)
	}
	if newCy := selectedY - newOy; newCy != cy {
		_ = v.SetCursor(cx, newCy)
	}
}

func (gui *Gui) FocusY(selectedY int, lineCount int, v *gocui.View) {
	scrollIntoView(v, selectedY, lineCount)
}

func (gui *Gui) ResetOrigin(v *gocui.View) {
	_ = v.SetOrigin(0, 0)
	_ = v.SetCursor(0, 0)
}

func (gui *Gui) setViewContent(v *gocui.View, s string) error {
	v.Clear()
	fmt.Fprint(v, utils.CleanString(s))
	return nil
}

// writeToView replaces the content of the named view on the ui thread. Views
// that no longer exist are skipped.
func (gui *Gui) writeToView(viewName string, s string, resetOrigin bool) {
	gui.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(viewName)
		if err != nil {
			return nil
		}
		if resetOrigin {
			if err := v.SetOrigin(0, 0); err != nil {
				return err
			}
			if err := v.SetCursor(0, 0); err != nil {
				return err
			}
		}
		return gui.setViewContent(v, s)
	})
}

// renderString resets the origin of a view and sets its content
func (gui *Gui) renderString(g *gocui.Gui, viewName, s string) error {
	gui.writeToView(viewName, s, true)
	return nil
}

func (gui *Gui) RenderStringMain(s string) error {
	return gui.renderString(gui.g, "main", s)
}

// reRenderString sets the view's content, without changing its origin
func (gui *Gui) reRenderString(viewName, s string) {
	gui.writeToView(viewName, s, false)
}

// e.g. "esc: close, space: toggle", sorted so the line doesn't jump around
func (gui *Gui) optionsMapToString(optionsMap map[string]string) string {
	options := lo.MapToSlice(optionsMap, func(key string, description string) string {
		return key + ": " + description
	})
	sort.Strings(options)
	return strings.Join(options, ", ")
}

func (gui *Gui) renderOptionsMap(optionsMap map[string]string) error {
	return gui.renderString(gui.g, "options", gui.optionsMapToString(optionsMap))
}

func (gui *Gui) GetMainView() *gocui.View {
	return gui.Views.Main
}

func (gui *Gui) trimmedContent(v *gocui.View) string {
	return strings.TrimSpace(v.TextArea.GetContent())
}

func (gui *Gui) currentViewName() string {
	currentView := gui.g.CurrentView()
	// this can happen when the app is first starting up
	if currentView == nil {
		return gui.initiallyFocusedViewName()
	}
	return currentView.Name()
}

func (gui *Gui) resizeCurrentPopupPanel() error {
	v := gui.g.CurrentView()
	if v == nil {
		return nil
	}

	if gui.isPopupPanel(v.Name()) {
		return gui.resizePopupPanel(v)
	}
	return nil
}

func (gui *Gui) resizePopupPanel(v *gocui.View) error {
	// If the confirmation panel is already displayed, just resize the width,
	// otherwise continue
	content := v.Buffer()
	x0, y0, x1, y1 := gui.getConfirmationPanelDimensions(v.Wrap, content)
	vx0, vy0, vx1, vy1 := v.Dimensions()
	if vx0 == x0 && vy0 == y0 && vx1 == x1 && vy1 == y1 {
		return nil
	}
	_, err := gui.g.SetView(v.Name(), x0, y0, x1, y1, 0)
	return err
}

func (gui *Gui) renderPanelOptions() error {
	currentView := gui.g.CurrentView()
	switch currentView.Name() {
	case "menu":
		return gui.renderMenuOptions()
	case "confirmation":
		return gui.renderConfirmationOptions()
	}
	return gui.renderGlobalOptions()
}

func (gui *Gui) isPopupPanel(viewName string) bool {
	return lo.Contains(gui.popupViewNames(), viewName)
}

func (gui *Gui) popupPanelFocused() bool {
	return gui.isPopupPanel(gui.currentViewName())
}

// HandleClick selects the clicked line of a list view. Clicks outside an open
// popup are ignored.
func (gui *Gui) HandleClick(v *gocui.View, itemCount int, selectedLine *int, handleSelect func() error) error {
	if gui.popupPanelFocused() && v != nil && !gui.isPopupPanel(v.Name()) {
		return nil
	}

	_, cy := v.Cursor()
	_, oy := v.Origin()
	*selectedLine = max(0, min(cy+oy, itemCount-1))

	if gui.IsCurrentView(v) {
		return handleSelect()
	}

	// focusing the view runs its select handler
	return gui.switchFocus(v)
}

func (gui *Gui) CurrentView() *gocui.View {
	return gui.g.CurrentView()
}
