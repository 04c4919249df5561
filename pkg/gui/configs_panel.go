package gui

import (
	"context"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/jesseduffield/lazysnapper/pkg/gui/presentation"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
)

func (gui *Gui) getConfigsPanel() *panels.SideListPanel[*commands.Config] {
	return &panels.SideListPanel[*commands.Config]{
		ContextState: &panels.ContextState[*commands.Config]{
			GetMainTabs: func() []panels.MainTab[*commands.Config] {
				return []panels.MainTab[*commands.Config]{
					{
						Key:    "info",
						Title:  gui.Tr.InfoTitle,
						Render: gui.renderConfigInfo,
					},
					{
						Key:    "timeline",
						Title:  gui.Tr.TimelineTitle,
						Render: gui.renderConfigTimeline,
					},
				}
			},
			GetItemContextCacheKey: func(cfg *commands.Config) string {
				return "configs-" + cfg.Name + "-" + gui.SnapperCommand.ConfigName()
			},
		},
		ListPanel: panels.ListPanel[*commands.Config]{
			List: panels.NewFilteredList[*commands.Config](),
			View: gui.Views.Configs,
		},
		NoItemsMessage: gui.Tr.NoConfigs,
		Gui:            gui.intoInterface(),
		Sort: func(a *commands.Config, b *commands.Config) bool {
			return a.Name < b.Name
		},
		FilterFields:  configFilterFields,
		GetTableCells: func(cfg *commands.Config) []string {
			return presentation.GetConfigDisplayStrings(cfg, cfg.Name == gui.SnapperCommand.ConfigName())
		},
	}
}

func (gui *Gui) renderConfigInfo(cfg *commands.Config) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		snapshots, rootConfigured := gui.snapperState()
		count := -1
		if cfg.Name == gui.SnapperCommand.ConfigName() {
			count = len(snapshots)
		}
		return presentation.RenderConfigInfo(gui.Tr, cfg, rootConfigured, count)
	})
}

func (gui *Gui) renderConfigTimeline(cfg *commands.Config) tasks.TaskFunc {
	if cfg.Name != gui.SnapperCommand.ConfigName() {
		return gui.NewSimpleRenderStringTask(func() string { return gui.Tr.NothingToDisplay })
	}

	return gui.newRefreshingTask(time.Second*2, func() string {
		snapshots, _ := gui.snapperState()
		width, _ := gui.Views.Main.Size()
		return presentation.RenderTimeline(gui.Tr, snapshots, gui.timelineDays(), time.Now(), width)
	})
}

func (gui *Gui) timelineDays() int {
	if days := gui.Config.UserConfig.Gui.TimelineDays; days > 0 {
		return days
	}
	return 30
}

func (gui *Gui) refreshConfigs(ctx context.Context) error {
	configs, err := gui.SnapperCommand.GetConfigs(ctx)
	if err != nil {
		return err
	}

	rootConfigured, err := gui.SnapperCommand.IsConfigured(ctx, gui.snapperRoot())
	if err != nil {
		// not fatal: the configs themselves loaded fine
		gui.Log.Warn(err)
	}

	gui.Mutexes.SnapshotsMutex.Lock()
	gui.State.RootConfigured = rootConfigured
	gui.Mutexes.SnapshotsMutex.Unlock()

	gui.Panels.Configs.SetItemsKeepingSelection(configs, func(a, b *commands.Config) bool {
		return a.Name == b.Name
	})

	return gui.Panels.Configs.RerenderList()
}

func (gui *Gui) snapperRoot() string {
	if root := gui.Config.UserConfig.Snapper.Root; root != "" {
		return root
	}
	return "/"
}

// snapperState returns the loaded snapshots of the current config and whether
// snapper has a root config
func (gui *Gui) snapperState() ([]*commands.Snapshot, bool) {
	gui.Mutexes.SnapshotsMutex.Lock()
	defer gui.Mutexes.SnapshotsMutex.Unlock()

	return gui.State.Snapshots, gui.State.RootConfigured
}

func (gui *Gui) handleConfigSelect(g *gocui.Gui, v *gocui.View) error {
	cfg, err := gui.Panels.Configs.GetSelectedItem()
	if err != nil {
		return nil
	}

	if cfg.Name == gui.SnapperCommand.ConfigName() {
		return gui.switchFocus(gui.Views.Snapshots)
	}

	gui.SnapperCommand.SetConfigName(cfg.Name)

	gui.Mutexes.SelectionMutex.Lock()
	gui.State.SelectedSnapshots = map[int]bool{}
	gui.Mutexes.SelectionMutex.Unlock()

	gui.Mutexes.SnapshotsMutex.Lock()
	gui.State.Snapshots = nil
	gui.Mutexes.SnapshotsMutex.Unlock()

	gui.clearFiles()
	gui.Panels.Snapshots.SetItems(nil)

	if err := gui.renderString(g, "information", gui.getInformationContent()); err != nil {
		return err
	}

	for _, panel := range []panels.ISideListPanel{gui.Panels.Configs, gui.Panels.Snapshots, gui.Panels.Files, gui.Panels.Status} {
		if err := panel.RerenderList(); err != nil {
			return err
		}
	}

	gui.triggerRefresh()

	return gui.switchFocus(gui.Views.Snapshots)
}
