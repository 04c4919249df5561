package gui

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
)

const issuesURL = "https://github.com/jesseduffield/lazysnapper/issues"

// the status panel only ever holds the app itself
func (gui *Gui) getStatusPanel() *panels.SideListPanel[string] {
	return &panels.SideListPanel[string]{
		ContextState: &panels.ContextState[string]{
			GetMainTabs: func() []panels.MainTab[string] {
				return []panels.MainTab[string]{
					{
						Key:    "about",
						Title:  gui.Tr.CreditsTitle,
						Render: gui.renderCredits,
					},
					{
						Key:    "config",
						Title:  gui.Tr.ConfigTitle,
						Render: gui.renderUserConfig,
					},
				}
			},
			GetItemContextCacheKey: func(name string) string {
				return "status-" + name + "-" + gui.SnapperCommand.ConfigName()
			},
		},
		ListPanel: panels.ListPanel[string]{
			List: panels.NewFilteredList[string](),
			View: gui.Views.Status,
		},
		NoItemsMessage: "",
		Gui:            gui.intoInterface(),
		GetTableCells: func(name string) []string {
			return []string{
				name,
				utils.ColoredString(ts.Arg(gui.Tr.CurrentConfig, gui.SnapperCommand.ConfigName()), color.FgMagenta),
			}
		},
		DisableFilter: true,
	}
}

func (gui *Gui) initStatusPanel() {
	gui.Panels.Status.SetItems([]string{gui.Config.Name})
}

func (gui *Gui) renderCredits(_ string) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(gui.aboutContent)
}

func (gui *Gui) aboutContent() string {
	return strings.Join(
		[]string{
			lazysnapperTitle(),
			gui.Tr.AboutDescription,
			gui.Tr.AboutLicense,
			ts.Arg(gui.Tr.AboutIssues, issuesURL),
			"Version: " + gui.Config.Version,
		}, "\n\n")
}

func (gui *Gui) renderUserConfig(_ string) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		configBytes, err := utils.MarshalIntoYaml(gui.Config.UserConfig)
		if err != nil {
			return err.Error()
		}
		return utils.ColoredYamlString(string(configBytes))
	})
}

func (gui *Gui) handleAbout(g *gocui.Gui, v *gocui.View) error {
	return gui.createMessagePanel(gui.Tr.AboutTitle, strings.Join(
		[]string{
			gui.Tr.AboutDescription,
			gui.Tr.AboutLicense,
			ts.Arg(gui.Tr.AboutIssues, issuesURL),
		}, "\n\n"))
}

func (gui *Gui) handleOpenConfig(g *gocui.Gui, v *gocui.View) error {
	return gui.openFile(gui.Config.ConfigFilename())
}

func (gui *Gui) handleEditConfig(g *gocui.Gui, v *gocui.View) error {
	return gui.editFile(gui.Config.ConfigFilename())
}

func lazysnapperTitle() string {
	return `
   _                                                        
  | | __ _ _____   _ ___ _ __   __ _ _ __  _ __   ___ _ __ 
  | |/ _` + "`" + ` |_  / | | / __| '_ \ / _` + "`" + ` | '_ \| '_ \ / _ \ '__|
  | | (_| |/ /| |_| \__ \ | | | (_| | |_) | |_) |  __/ |   
  |_|\__,_/___|\__, |___/_| |_|\__,_| .__/| .__/ \___|_|   
                __/ |               | |   | |              
               |___/                |_|   |_|              
`
}
