package gui

import (
	"strings"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// The confirmation view doubles as a yes/no prompt, a message box and a one
// line text prompt. Its keybindings are replaced every time it opens.

func (gui *Gui) wrappedConfirmationFunction(function func() error) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		if err := gui.closeConfirmationPrompt(); err != nil {
			return err
		}

		if function == nil {
			return nil
		}
		return function()
	}
}

func (gui *Gui) wrappedPromptConfirmationFunction(function func(string) error) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		content := gui.trimmedContent(v)

		if err := gui.closeConfirmationPrompt(); err != nil {
			return err
		}

		return function(content)
	}
}

func (gui *Gui) closeConfirmationPrompt() error {
	if err := gui.returnFocus(); err != nil {
		return err
	}
	gui.g.DeleteViewKeybindings("confirmation")
	gui.Views.Confirmation.Visible = false
	gui.Views.Confirmation.Editable = false
	gui.Views.Confirmation.ClearTextArea()
	return nil
}

// messageHeight is the number of rows message needs in a view of the given
// width. Colour codes take no room, wide runes take two columns.
func messageHeight(message string, width int, wrap bool) int {
	lines := strings.Split(message, "\n")
	if !wrap || width <= 0 {
		return len(lines)
	}

	return lo.Sum(lo.Map(lines, func(line string, _ int) int {
		return runewidth.StringWidth(utils.Decolorise(line))/width + 1
	}))
}

// centeredPopupDimensions puts a popup half as wide as the screen in its middle
func centeredPopupDimensions(screenWidth int, screenHeight int, message string, wrap bool) (int, int, int, int) {
	panelWidth := screenWidth / 2
	panelHeight := messageHeight(message, panelWidth, wrap)
	return screenWidth/2 - panelWidth/2,
		screenHeight/2 - panelHeight/2 - panelHeight%2 - 1,
		screenWidth/2 + panelWidth/2,
		screenHeight/2 + panelHeight/2
}

func (gui *Gui) getConfirmationPanelDimensions(wrap bool, prompt string) (int, int, int, int) {
	width, height := gui.g.Size()
	return centeredPopupDimensions(width, height, prompt, wrap)
}

// createPromptPanel asks for a line of text. handleConfirm gets the trimmed
// text, escape closes the prompt without calling it.
func (gui *Gui) createPromptPanel(title string, handleConfirm func(string) error) error {
	gui.onNewPopupPanel()
	gui.g.DeleteViewKeybindings("confirmation")
	gui.Views.Confirmation.ClearTextArea()
	gui.Views.Confirmation.Clear()
	gui.Views.Confirmation.Editable = true

	if err := gui.prepareConfirmationPanel(title, ""); err != nil {
		return err
	}

	if err := gui.g.SetKeybinding("confirmation", gocui.KeyEnter, gocui.ModNone, gui.wrappedPromptConfirmationFunction(handleConfirm)); err != nil {
		return err
	}
	return gui.g.SetKeybinding("confirmation", gocui.KeyEsc, gocui.ModNone, gui.wrappedConfirmationFunction(nil))
}

func (gui *Gui) prepareConfirmationPanel(title, prompt string) error {
	x0, y0, x1, y1 := gui.getConfirmationPanelDimensions(true, prompt)
	confirmationView := gui.Views.Confirmation
	_, err := gui.g.SetView("confirmation", x0, y0, x1, y1, 0)
	if err != nil && err.Error() != UNKNOWN_VIEW_ERROR_MSG {
		return err
	}
	confirmationView.Title = title
	confirmationView.Visible = true
	gui.g.Update(func(g *gocui.Gui) error {
		return gui.switchFocus(confirmationView)
	})
	return nil
}

func (gui *Gui) onNewPopupPanel() {
	gui.Views.Menu.Visible = false
	gui.Views.Confirmation.Visible = false
}

// createConfirmationPanel asks a yes/no question. Never put the prompt into an
// error message: it can contain a user's snapshot description.
func (gui *Gui) createConfirmationPanel(title, prompt string, handleConfirm func() error) error {
	return gui.createPopupPanel(title, prompt, handleConfirm, nil)
}

// createMessagePanel shows a message that any of the confirmation keys dismisses
func (gui *Gui) createMessagePanel(title, message string) error {
	return gui.createPopupPanel(title, message, nil, nil)
}

func (gui *Gui) createPopupPanel(title, prompt string, handleConfirm, handleClose func() error) error {
	gui.onNewPopupPanel()
	gui.g.Update(func(g *gocui.Gui) error {
		if gui.currentViewName() == "confirmation" {
			if err := gui.closeConfirmationPrompt(); err != nil {
				gui.Log.Error(err.Error())
			}
		}
		if err := gui.prepareConfirmationPanel(title, prompt); err != nil {
			return err
		}
		gui.Views.Confirmation.Editable = false
		if err := gui.renderString(g, "confirmation", prompt); err != nil {
			return err
		}
		return gui.setConfirmationKeyBindings(handleConfirm, handleClose)
	})
	return nil
}

func (gui *Gui) setConfirmationKeyBindings(handleConfirm, handleClose func() error) error {
	bindings := []struct {
		key     interface{}
		handler func() error
	}{
		{gocui.KeyEnter, handleConfirm},
		{'y', handleConfirm},
		{gocui.KeyEsc, handleClose},
		{'n', handleClose},
	}

	for _, binding := range bindings {
		if err := gui.g.SetKeybinding("confirmation", binding.key, gocui.ModNone, gui.wrappedConfirmationFunction(binding.handler)); err != nil {
			return err
		}
	}

	return nil
}

// snapper's own error text is shown as is, in the theme's error colour
func (gui *Gui) createErrorPanel(message string) error {
	return gui.createConfirmationPanel(gui.Tr.ErrorTitle, gui.Theme.Colorize(theme.Error, strings.TrimSpace(message)), nil)
}

func (gui *Gui) renderConfirmationOptions() error {
	return gui.renderOptionsMap(map[string]string{
		"n/esc":   gui.Tr.No,
		"y/enter": gui.Tr.Yes,
	})
}
