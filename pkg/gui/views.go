package gui

import (
	"github.com/fatih/color"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

type Views struct {
	// side panels
	Status    *gocui.View
	Configs   *gocui.View
	Snapshots *gocui.View
	Files     *gocui.View

	// main panel
	Main *gocui.View

	// bottom line
	Options     *gocui.View
	Information *gocui.View
	AppStatus   *gocui.View
	// text that prompts you to enter text in the Filter view
	FilterPrefix *gocui.View
	// appears next to the FilterPrefix view, it's where you type in the filter string
	Filter *gocui.View

	// popups
	Confirmation *gocui.View
	Menu         *gocui.View

	// will cover everything when it appears
	Limit *gocui.View
}

// viewLayer says who places a view. Views are created in the order they are
// listed, so later views draw over earlier ones.
type viewLayer int

const (
	// sized by arrangement.go on every layout
	layerArranged viewLayer = iota
	// sized to their content when they open
	layerPopup
)

type viewSpec struct {
	name  string
	view  **gocui.View
	layer viewLayer
}

func (gui *Gui) viewSpecs() []viewSpec {
	views := &gui.Views
	return []viewSpec{
		{"status", &views.Status, layerArranged},
		{"configs", &views.Configs, layerArranged},
		{"snapshots", &views.Snapshots, layerArranged},
		{"files", &views.Files, layerArranged},
		{"main", &views.Main, layerArranged},

		{"options", &views.Options, layerArranged},
		{"appStatus", &views.AppStatus, layerArranged},
		{"information", &views.Information, layerArranged},
		{"filter", &views.Filter, layerArranged},
		{"filterPrefix", &views.FilterPrefix, layerArranged},

		{"menu", &views.Menu, layerPopup},
		{"confirmation", &views.Confirmation, layerPopup},

		// last, so it hides everything on a terminal that is too small
		{"limit", &views.Limit, layerArranged},
	}
}

func viewNamesInLayer(specs []viewSpec, layer viewLayer) []string {
	inLayer := lo.Filter(specs, func(spec viewSpec, _ int) bool { return spec.layer == layer })
	return lo.Map(inLayer, func(spec viewSpec, _ int) string { return spec.name })
}

func (gui *Gui) createAllViews() error {
	for _, spec := range gui.viewSpecs() {
		view, err := gui.prepareView(spec.name)
		if err != nil && err.Error() != UNKNOWN_VIEW_ERROR_MSG {
			return err
		}
		view.FgColor = gocui.ColorDefault
		*spec.view = view
	}

	gui.setupSideViews()
	gui.setupBottomLine()
	gui.setupPopups()
	gui.applyThemeColors()

	return nil
}

func (gui *Gui) listViews() []*gocui.View {
	return []*gocui.View{gui.Views.Configs, gui.Views.Snapshots, gui.Views.Files, gui.Views.Menu}
}

func (gui *Gui) setupSideViews() {
	gui.Views.Status.Title = gui.Tr.StatusTitle
	gui.Views.Configs.Title = gui.Tr.ConfigsTitle
	gui.Views.Snapshots.Title = gui.Tr.SnapshotsTitle
	gui.Views.Files.Title = gui.Tr.FilesTitle

	for _, view := range []*gocui.View{gui.Views.Configs, gui.Views.Snapshots, gui.Views.Files} {
		view.Highlight = true
	}

	gui.Views.Main.Wrap = gui.Config.UserConfig.Gui.WrapMainPanel
	// snapper's diff output and subprocess output can carry carriage returns
	gui.Views.Main.IgnoreCarriageReturns = true
}

func (gui *Gui) setupBottomLine() {
	for _, view := range []*gocui.View{gui.Views.Options, gui.Views.AppStatus, gui.Views.Information, gui.Views.FilterPrefix, gui.Views.Filter} {
		view.Frame = false
	}

	gui.Views.Options.FgColor = gui.GetOptionsPanelTextColor()

	gui.Views.FilterPrefix.BgColor = gocui.ColorDefault
	gui.Views.Filter.BgColor = gocui.ColorDefault
	gui.Views.Filter.Editable = true
	gui.Views.Filter.Editor = gocui.EditorFunc(gui.wrapEditor(gocui.SimpleEditor))
}

func (gui *Gui) setupPopups() {
	gui.Views.Confirmation.Visible = false
	gui.Views.Confirmation.Wrap = true
	gui.Views.Menu.Visible = false

	gui.Views.Limit.Visible = false
	gui.Views.Limit.Title = gui.Tr.NotEnoughSpace
	gui.Views.Limit.Wrap = true
}

// applyThemeColors colours the views that follow the light/dark palette. It
// runs again whenever the theme is toggled.
func (gui *Gui) applyThemeColors() {
	selectedLineBgColor := gocui.ColorBlue
	if !gui.Theme.IsDark() {
		selectedLineBgColor = gocui.ColorCyan
	}
	for _, view := range gui.listViews() {
		view.SelBgColor = selectedLineBgColor
	}

	gui.Views.AppStatus.FgColor = gui.Theme.GocuiColor(theme.Warning)
	gui.Views.Information.FgColor = gui.Theme.GocuiColor(theme.Success)
	gui.Views.FilterPrefix.FgColor = gui.Theme.GocuiColor(theme.Success)
	gui.Views.Filter.FgColor = gui.Theme.GocuiColor(theme.Success)
}

func (gui *Gui) setInitialViewContent() error {
	if err := gui.renderString(gui.g, "information", gui.getInformationContent()); err != nil {
		return err
	}

	return gui.setViewContent(gui.Views.FilterPrefix, gui.filterPrompt())
}

// the current snapper config and the version, bottom right
func (gui *Gui) getInformationContent() string {
	return utils.ColoredString(gui.SnapperCommand.ConfigName(), color.FgMagenta) + " " + gui.Config.Version
}

func (gui *Gui) popupViewNames() []string {
	return viewNamesInLayer(gui.viewSpecs(), layerPopup)
}

func (gui *Gui) autoPositionedViewNames() []string {
	return viewNamesInLayer(gui.viewSpecs(), layerArranged)
}
