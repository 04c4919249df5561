package gui

import (
	"fmt"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/gui/keybindings"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
)

// Binding - a keybinding mapping a key and modifier to a handler. The keypress
// is only handled if the given view has focus, or handled globally if the view
// is ""
type Binding struct {
	ViewName    string
	Handler     func(*gocui.Gui, *gocui.View) error
	Key         interface{} // FIXME: find out how to get `gocui.Key | rune`
	Modifier    gocui.Modifier
	Description string
}

// GetKey returns the label of the binding's key, e.g. "<c-r>" or "space"
func (b *Binding) GetKey() string {
	return keybindings.LabelFromKey(b.Key)
}

// a binding before its key string from the config has been parsed
type keySpec struct {
	viewName    string
	key         string
	handler     types.KeybindingHandler
	description string
}

func (gui *Gui) KeybindingOpts() types.KeybindingsOpts {
	return types.KeybindingsOpts{
		GetKey: keybindings.GetKey,
		Config: gui.Config.UserConfig.Keybinding,
		Guards: types.KeybindingGuards{
			NotRestoring: gui.notRestoring,
		},
	}
}

func (gui *Gui) notRestoring(handler types.KeybindingHandler) types.KeybindingHandler {
	return func(g *gocui.Gui, v *gocui.View) error {
		if gui.isRestoring() {
			gui.showToast(gui.Tr.RestoringPleaseWait)
			return nil
		}
		return handler(g, v)
	}
}

func resolveKeySpecs(opts types.KeybindingsOpts, specs []keySpec) ([]*Binding, error) {
	bindings := make([]*Binding, 0, len(specs))
	for _, spec := range specs {
		key, err := opts.GetKey(spec.key)
		if err != nil {
			return nil, fmt.Errorf("invalid keybinding '%s': %w", spec.key, err)
		}
		bindings = append(bindings, &Binding{
			ViewName:    spec.viewName,
			Key:         key,
			Modifier:    gocui.ModNone,
			Handler:     spec.handler,
			Description: spec.description,
		})
	}
	return bindings, nil
}

// GetInitialKeybindings returns every binding, disabled ones included with a
// nil key
func (gui *Gui) GetInitialKeybindings(opts types.KeybindingsOpts) ([]*Binding, error) {
	universal := opts.Config.Universal
	status := opts.Config.Status
	snapshots := opts.Config.Snapshots
	files := opts.Config.Files
	mainKeys := opts.Config.Main
	menu := opts.Config.Menu
	filter := opts.Config.Filter
	notRestoring := opts.Guards.NotRestoring

	specs := []keySpec{
		{"", universal.Return, wrappedHandler(gui.escape), gui.Tr.Return},
		{"", universal.Quit, gui.quit, gui.Tr.Quit},
		{"", universal.QuitAlt, gui.quit, ""},
		{"", universal.ScrollUpMain, gui.scrollUpMain, gui.Tr.Scroll},
		{"", universal.ScrollDownMain, gui.scrollDownMain, gui.Tr.Scroll},
		{"", universal.ScrollUpMainAlt1, gui.scrollUpMain, ""},
		{"", universal.ScrollDownMainAlt1, gui.scrollDownMain, ""},
		{"", universal.ScrollUpMainAlt2, gui.scrollUpMain, ""},
		{"", universal.ScrollDownMainAlt2, gui.scrollDownMain, ""},
		{"", universal.ScrollLeftMain, gui.scrollLeftMain, ""},
		{"", universal.ScrollRightMain, gui.scrollRightMain, ""},
		{"", universal.JumpToTopMain, gui.jumpToTopMain, ""},
		{"", universal.JumpToBottomMain, gui.jumpToBottomMain, ""},
		{"", universal.OpenMenu, gui.handleCreateOptionsMenu, gui.Tr.Menu},
		{"", universal.OpenMenuAlt, gui.handleCreateOptionsMenu, ""},
		{"", universal.Refresh, gui.handleRefresh, gui.Tr.LcRefresh},
		{"", universal.NextScreenMode, gui.nextScreenMode, gui.Tr.LcNextScreenMode},
		{"", universal.PrevScreenMode, gui.prevScreenMode, gui.Tr.LcPrevScreenMode},
		{"", universal.ToggleTheme, gui.handleToggleTheme, gui.Tr.ToggleTheme},
		{"", universal.GoToStatus, gui.handleGoTo(gui.Views.Status), ""},
		{"", universal.GoToConfigs, gui.handleGoTo(gui.Views.Configs), ""},
		{"", universal.GoToSnapshots, gui.handleGoTo(gui.Views.Snapshots), ""},
		{"", universal.GoToFiles, gui.handleGoTo(gui.Views.Files), ""},

		{"status", status.About, gui.handleAbout, gui.Tr.LcAbout},
		{"status", status.EditConfig, gui.handleEditConfig, gui.Tr.EditConfig},
		{"status", status.OpenConfig, gui.handleOpenConfig, gui.Tr.OpenConfig},

		{"configs", opts.Config.Configs.Select, notRestoring(gui.handleConfigSelect), gui.Tr.SelectConfig},

		{"snapshots", snapshots.Create, notRestoring(gui.handleCreateSnapshot), gui.Tr.LcCreateSnapshot},
		{"snapshots", snapshots.CreateImportant, notRestoring(gui.handleCreateImportantSnapshot), gui.Tr.LcCreateImportant},
		{"snapshots", snapshots.CreatePre, notRestoring(gui.handleCreatePreSnapshot), gui.Tr.LcCreatePre},
		{"snapshots", snapshots.CreatePost, notRestoring(gui.handleCreatePostSnapshot), gui.Tr.LcCreatePost},
		{"snapshots", snapshots.Remove, notRestoring(gui.handleRemoveSnapshot), gui.Tr.LcRemove},
		{"snapshots", snapshots.RemoveSelected, notRestoring(gui.handleRemoveSelectedSnapshots), gui.Tr.LcRemoveSelected},
		{"snapshots", snapshots.ToggleSelect, gui.handleToggleSnapshotSelection, gui.Tr.LcToggleSelect},
		{"snapshots", snapshots.Rollback, notRestoring(gui.handleRollbackSnapshot), gui.Tr.LcRollback},
		{"snapshots", snapshots.ViewFiles, gui.handleViewSnapshotFiles, gui.Tr.LcViewFiles},
		{"snapshots", snapshots.OpenShell, gui.handleOpenSnapshotShell, gui.Tr.LcOpenShell},
		{"snapshots", snapshots.CustomCommand, gui.handleSnapshotCustomCommand, gui.Tr.RunCustomCommand},

		{"files", files.ToggleCheck, gui.handleToggleFileCheck, gui.Tr.LcToggleCheck},
		{"files", files.CheckAll, gui.handleCheckAllFiles, gui.Tr.LcCheckAll},
		{"files", files.UncheckAll, gui.handleUncheckAllFiles, gui.Tr.LcUncheckAll},
		{"files", files.ToggleCollapse, gui.handleToggleFileCollapse, gui.Tr.LcToggleCollapse},
		{"files", files.Restore, notRestoring(gui.handleRestoreFiles), gui.Tr.LcRestore},

		{"main", mainKeys.Return, gui.handleExitMain, gui.Tr.Return},
		{"main", mainKeys.ScrollLeft, gui.scrollLeftMain, ""},
		{"main", mainKeys.ScrollRight, gui.scrollRightMain, ""},
		{"main", mainKeys.ScrollLeftAlt, gui.scrollLeftMain, ""},
		{"main", mainKeys.ScrollRightAlt, gui.scrollRightMain, ""},

		{"menu", menu.Close, wrappedHandler(gui.handleMenuClose), gui.Tr.Close},
		{"menu", menu.CloseAlt, wrappedHandler(gui.handleMenuClose), ""},
		{"menu", menu.Select, wrappedHandler(gui.handleMenuPress), gui.Tr.Execute},
		{"menu", menu.SelectAlt, wrappedHandler(gui.handleMenuPress), ""},
		{"menu", menu.Confirm, wrappedHandler(gui.handleMenuPress), ""},

		{"filter", filter.Confirm, wrappedHandler(gui.commitFilter), gui.Tr.Confirm},
		{"filter", filter.Escape, wrappedHandler(gui.escapeFilterPrompt), gui.Tr.Return},
	}

	for _, panel := range gui.allSidePanels() {
		viewName := panel.GetView().Name()
		specs = append(specs,
			keySpec{viewName, universal.PrevPanel, gui.previousView, ""},
			keySpec{viewName, universal.NextPanel, gui.nextView, ""},
			keySpec{viewName, universal.PrevPanelAlt, gui.previousView, ""},
			keySpec{viewName, universal.NextPanelAlt, gui.nextView, ""},
			keySpec{viewName, universal.TogglePanel, gui.nextView, ""},
			keySpec{viewName, universal.TogglePanelAlt, gui.previousView, ""},
			keySpec{viewName, universal.EnterMain, gui.handleEnterMain, gui.Tr.FocusMain},
			keySpec{viewName, universal.PrevMainTab, wrappedHandler(panel.HandlePrevMainTab), gui.Tr.PreviousContext},
			keySpec{viewName, universal.NextMainTab, wrappedHandler(panel.HandleNextMainTab), gui.Tr.NextContext},
		)
	}

	for _, panel := range gui.allListPanels() {
		viewName := panel.GetView().Name()
		specs = append(specs,
			keySpec{viewName, universal.PrevItem, wrappedHandler(panel.HandlePrevLine), ""},
			keySpec{viewName, universal.NextItem, wrappedHandler(panel.HandleNextLine), ""},
			keySpec{viewName, universal.PrevItemAlt, wrappedHandler(panel.HandlePrevLine), ""},
			keySpec{viewName, universal.NextItemAlt, wrappedHandler(panel.HandleNextLine), ""},
			keySpec{viewName, universal.GotoTop, wrappedHandler(panel.HandleGotoTop), gui.Tr.GotoTop},
			keySpec{viewName, universal.GotoBottom, wrappedHandler(panel.HandleGotoBottom), gui.Tr.GotoBottom},
		)
		if !panel.IsFilterDisabled() {
			specs = append(specs, keySpec{viewName, universal.Filter, wrappedHandler(gui.handleOpenFilter), gui.Tr.LcFilter})
		}
	}

	bindings, err := resolveKeySpecs(opts, specs)
	if err != nil {
		return nil, err
	}

	// mouse events don't come from the config
	mouseBinding := func(viewName string, key gocui.Key, handler func() error) *Binding {
		return &Binding{ViewName: viewName, Key: key, Modifier: gocui.ModNone, Handler: wrappedHandler(handler)}
	}

	for _, panel := range gui.allListPanels() {
		viewName := panel.GetView().Name()
		bindings = append(bindings,
			mouseBinding(viewName, gocui.MouseWheelUp, panel.HandlePrevLine),
			mouseBinding(viewName, gocui.MouseWheelDown, panel.HandleNextLine),
			mouseBinding(viewName, gocui.MouseLeft, panel.HandleClick),
		)
	}

	bindings = append(bindings,
		mouseBinding("main", gocui.MouseWheelUp, func() error { return gui.scrollUpMain(gui.g, gui.Views.Main) }),
		mouseBinding("main", gocui.MouseWheelDown, func() error { return gui.scrollDownMain(gui.g, gui.Views.Main) }),
		mouseBinding("main", gocui.MouseLeft, gui.handleMainClick),
	)

	return bindings, nil
}

func (gui *Gui) keybindings(g *gocui.Gui) error {
	bindings, err := gui.GetInitialKeybindings(gui.KeybindingOpts())
	if err != nil {
		return err
	}

	for _, binding := range bindings {
		// '<disabled>' in the config leaves the key nil
		if binding.Key == nil {
			continue
		}
		if err := g.SetKeybinding(binding.ViewName, binding.Key, binding.Modifier, binding.Handler); err != nil {
			return err
		}
	}

	if err := g.SetTabClickBinding("main", gui.onMainTabClick); err != nil {
		return err
	}

	return nil
}

func wrappedHandler(f func() error) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		return f()
	}
}
