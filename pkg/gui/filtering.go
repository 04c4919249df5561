package gui

import (
	"fmt"
	"strconv"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
)

// The filter needle is a list of words that all have to match. Besides free
// text, `field:value` words match a field exactly, e.g. `type:pre`,
// `important:yes` or `#42`. See the FilterFields of each panel.

func (gui *Gui) handleOpenFilter() error {
	panel, ok := gui.currentListPanel()
	if !ok {
		return nil
	}

	if panel.IsFilterDisabled() {
		return nil
	}

	gui.State.Filter.active = true
	gui.State.Filter.panel = panel

	if err := gui.renderFilterPrompt(); err != nil {
		return err
	}

	return gui.switchFocus(gui.Views.Filter)
}

func (gui *Gui) onNewFilterNeedle(value string) error {
	gui.State.Filter.needle = value
	gui.ResetOrigin(gui.State.Filter.panel.GetView())
	if err := gui.State.Filter.panel.RerenderList(); err != nil {
		return err
	}

	return gui.renderFilterPrompt()
}

func (gui *Gui) wrapEditor(f func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool) func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
	return func(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
		matched := f(v, key, ch, mod)
		if matched && gui.State.Filter.panel != nil {
			if err := gui.onNewFilterNeedle(v.TextArea.GetContent()); err != nil {
				gui.Log.Error(err)
			}
		}
		return matched
	}
}

func (gui *Gui) escapeFilterPrompt() error {
	if err := gui.clearFilter(); err != nil {
		return err
	}

	return gui.returnFocus()
}

func (gui *Gui) clearFilter() error {
	gui.State.Filter.needle = ""
	gui.State.Filter.active = false
	panel := gui.State.Filter.panel
	gui.State.Filter.panel = nil
	gui.Views.Filter.ClearTextArea()

	if err := gui.renderFilterPrompt(); err != nil {
		return err
	}

	if panel == nil {
		return nil
	}

	gui.ResetOrigin(panel.GetView())

	return panel.RerenderList()
}

// returns to the list view with the filter still applied
func (gui *Gui) commitFilter() error {
	if gui.State.Filter.needle == "" {
		if err := gui.clearFilter(); err != nil {
			return err
		}
	}

	return gui.returnFocus()
}

func (gui *Gui) renderFilterPrompt() error {
	if gui.Views.FilterPrefix == nil {
		return nil
	}
	return gui.setViewContent(gui.Views.FilterPrefix, gui.filterPrompt())
}

// e.g. "filter (3/40): " once something is typed
func (gui *Gui) filterPrompt() string {
	panel := gui.State.Filter.panel
	if panel == nil || gui.State.Filter.needle == "" {
		return fmt.Sprintf("%s: ", gui.Tr.FilterPrompt)
	}

	shown, total := panel.FilterCounts()
	return fmt.Sprintf("%s (%d/%d): ", gui.Tr.FilterPrompt, shown, total)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func snapshotFilterFields(snapshot *commands.Snapshot) map[string]string {
	fields := map[string]string{
		"number":    strconv.Itoa(snapshot.Number),
		"type":      string(snapshot.Type),
		"user":      snapshot.User,
		"cleanup":   string(snapshot.Cleanup),
		"important": yesNo(snapshot.Important()),
	}
	if snapshot.PreNumber >= 0 {
		fields["pre"] = strconv.Itoa(snapshot.PreNumber)
	}
	for key, value := range snapshot.Userdata {
		if _, taken := fields[key]; !taken {
			fields[key] = value
		}
	}
	return fields
}

func fileChangeFilterFields(item *commands.FileChangeItem) map[string]string {
	fields := map[string]string{
		"checked": yesNo(item.Checked),
		"dir":     yesNo(item.IsDirectory()),
	}
	if !item.IsDirectory() {
		fields["change"] = item.Type.String()
	}
	return fields
}

func configFilterFields(cfg *commands.Config) map[string]string {
	return map[string]string{
		"name":      cfg.Name,
		"subvolume": cfg.Subvolume,
	}
}
