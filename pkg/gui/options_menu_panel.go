package gui

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
	"github.com/samber/lo"
)

func (gui *Gui) getBindings(v *gocui.View) []*Binding {
	var bindingsGlobal, bindingsPanel []*Binding

	bindings, err := gui.GetInitialKeybindings(gui.KeybindingOpts())
	if err != nil {
		gui.Log.Error(err)
		return nil
	}

	described := lo.Filter(bindings, func(binding *Binding, _ int) bool {
		return binding.GetKey() != "" && binding.Description != ""
	})

	for _, binding := range described {
		switch binding.ViewName {
		case "":
			bindingsGlobal = append(bindingsGlobal, binding)
		case v.Name():
			bindingsPanel = append(bindingsPanel, binding)
		}
	}

	// check if we have any keybindings from our parent view to add
	if v.ParentView != nil {
		for _, binding := range described {
			if binding.ViewName != v.ParentView.Name() {
				continue
			}
			// if we haven't got a conflict we will display the binding
			conflict := lo.SomeBy(bindingsPanel, func(ownBinding *Binding) bool {
				return ownBinding.GetKey() == binding.GetKey()
			})
			if !conflict {
				bindingsPanel = append(bindingsPanel, binding)
			}
		}
	}

	return append(bindingsPanel, bindingsGlobal...)
}

func (gui *Gui) handleCreateOptionsMenu(g *gocui.Gui, v *gocui.View) error {
	if v == nil || gui.isPopupPanel(v.Name()) {
		return nil
	}

	menuItems := lo.Map(gui.getBindings(v), func(binding *Binding, _ int) *types.MenuItem {
		return &types.MenuItem{
			LabelColumns: []string{binding.GetKey(), binding.Description},
			OnPress: func() error {
				if binding.Handler == nil {
					return nil
				}

				return binding.Handler(g, v)
			},
		}
	})

	return gui.Menu(CreateMenuOptions{
		Title:      gui.Tr.MenuTitle,
		Items:      menuItems,
		HideCancel: true,
	})
}
