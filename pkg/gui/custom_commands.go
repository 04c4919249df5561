package gui

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

// runCustomCommand runs an already templated command. Attached commands get
// the terminal; the rest run in the background and show their output, if
// any, in a message panel.
func (gui *Gui) runCustomCommand(command config.CustomCommand, resolved string) error {
	cmd := gui.OSCommand.RunCustomCommand(resolved)
	if command.Attach {
		return gui.runSubprocess(cmd)
	}

	return gui.WithWaitingStatus(gui.Tr.RunningCustomCommand, func() error {
		output, err := gui.OSCommand.RunExecutableWithOutput(cmd)
		if err != nil {
			return err
		}

		output = strings.TrimSpace(output)
		if output == "" {
			gui.showToast(command.Name)
			return nil
		}

		gui.Update(func() error {
			return gui.createMessagePanel(command.Name, output)
		})
		return nil
	})
}

// createCustomCommandMenu lists the user's custom commands with their
// templates already filled in from commandObject, so the user sees exactly
// what will run
func (gui *Gui) createCustomCommandMenu(customCommands []config.CustomCommand, commandObject commands.CommandObject) error {
	items := lo.Map(customCommands, func(command config.CustomCommand, _ int) *types.MenuItem {
		resolved := utils.ApplyTemplate(command.Command, commandObject)
		return &types.MenuItem{
			LabelColumns: []string{command.Name, utils.ColoredString(resolved, color.FgCyan)},
			OnPress:      func() error { return gui.runCustomCommand(command, resolved) },
		}
	})

	return gui.Menu(CreateMenuOptions{
		Title: gui.Tr.CustomCommandTitle,
		Items: items,
	})
}
