package gui

import (
	"context"
	"strings"
	"time"

	throttle "github.com/boz/go-throttle"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Gui wraps the gocui Gui object which handles rendering and events
type Gui struct {
	g              *gocui.Gui
	Log            *logrus.Entry
	SnapperCommand *commands.SnapperCommand
	OSCommand      *commands.OSCommand
	State          guiState
	Config         *config.AppConfig
	Tr             *i18n.TranslationSet
	Theme          *theme.Theme
	statusManager  *statusManager
	taskManager    *tasks.TaskManager
	ErrorChan      chan error
	Views          Views

	// if we've suspended the gui (e.g. because we've switched to a subprocess)
	// we pause the background refreshes
	PauseBackgroundThreads bool

	Mutexes

	Panels Panels

	refreshThrottle throttle.ThrottleDriver
	// the last background error we showed, so a failing refresh does not
	// pop up the same error panel every few seconds
	lastBackgroundError string
}

type Panels struct {
	Status    *panels.SideListPanel[string]
	Configs   *panels.SideListPanel[*commands.Config]
	Snapshots *panels.SideListPanel[*commands.Snapshot]
	Files     *panels.SideListPanel[*commands.FileChangeItem]
	Menu      *panels.SideListPanel[*types.MenuItem]
}

type Mutexes struct {
	SubprocessMutex deadlock.Mutex
	ViewStackMutex  deadlock.Mutex
	SelectionMutex  deadlock.Mutex
	RestoreMutex    deadlock.Mutex
	ErrorMutex      deadlock.Mutex
	SnapshotsMutex  deadlock.Mutex
}

type mainPanelState struct {
	// ObjectKey tells us what context we are in. For example, if we are looking
	// at the diff of a file in the files panel this key might be
	// 'files-root-42-/etc/fstab-diff'. If the key changes we re-render the main view.
	ObjectKey string
}

type panelStates struct {
	Main *mainPanelState
}

type filterState struct {
	active bool
	panel  panels.ISideListPanel
	needle string
}

type guiState struct {
	// the names of views in the current focus stack (last item is the current view)
	ViewStack  []string
	Panels     *panelStates
	ScreenMode WindowMaximisation

	Filter filterState

	// numbers of the snapshots marked for bulk deletion
	SelectedSnapshots map[int]bool

	// the snapshot whose changes the files panel shows, nil until one is opened
	FilesSnapshot *commands.Snapshot
	FileTree      *commands.FileChangeTree

	RootConfigured bool
	Snapshots      []*commands.Snapshot

	// cancels the restore in progress, if there is one
	cancelRestore context.CancelFunc
}

// NewGui builds a new gui handler
func NewGui(log *logrus.Entry, snapperCommand *commands.SnapperCommand, oSCommand *commands.OSCommand, tr *i18n.TranslationSet, config *config.AppConfig, th *theme.Theme, errorChan chan error) (*Gui, error) {
	initialState := guiState{
		Panels: &panelStates{
			Main: &mainPanelState{
				ObjectKey: "",
			},
		},
		ViewStack:         []string{},
		ScreenMode:        getScreenMode(config.UserConfig.Gui),
		SelectedSnapshots: map[int]bool{},
	}

	gui := &Gui{
		Log:            log,
		SnapperCommand: snapperCommand,
		OSCommand:      oSCommand,
		State:          initialState,
		Config:         config,
		Tr:             tr,
		Theme:          th,
		statusManager:  &statusManager{statuses: []appStatus{}},
		taskManager:    tasks.NewTaskManager(log, tr),
		ErrorChan:      errorChan,
	}

	return gui, nil
}

func (gui *Gui) renderGlobalOptions() error {
	return gui.renderOptionsMap(map[string]string{
		"PgUp/PgDn": gui.Tr.Scroll,
		"← → ↑ ↓":   gui.Tr.Navigate,
		"q":         gui.Tr.Quit,
		"x":         gui.Tr.Menu,
		"1-4":       gui.Tr.Navigate,
	})
}

func (gui *Gui) goEvery(interval time.Duration, function func() error) {
	_ = function() // time.Tick doesn't run immediately so we'll do that here
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if !gui.PauseBackgroundThreads {
				_ = function()
			}
		}
	}()
}

// Run setup the gui with keybindings and start the mainloop
func (gui *Gui) Run() error {
	// closing our task manager which in turn closes the current task if there is any
	defer gui.taskManager.Close()

	g, err := gocui.NewGui(gocui.NewGuiOpts{
		OutputMode:       gocui.OutputTrue,
		RuneReplacements: map[rune]string{},
	})
	if err != nil {
		return err
	}
	defer g.Close()

	g.Mouse = gui.Config.UserConfig.Gui.MouseEvents

	gui.g = g

	if err := gui.SetColorScheme(); err != nil {
		return err
	}

	throttledRefresh := throttle.ThrottleFunc(time.Millisecond*50, true, gui.refresh)
	defer throttledRefresh.Stop()
	gui.refreshThrottle = throttledRefresh

	go gui.listenForErrors()

	g.SetManager(gocui.ManagerFunc(gui.layout), gocui.ManagerFunc(gui.getFocusLayout()))

	if err := gui.createAllViews(); err != nil {
		return err
	}
	if err := gui.setInitialViewContent(); err != nil {
		return err
	}

	gui.setPanels()

	if err = gui.keybindings(g); err != nil {
		return err
	}

	if gui.g.CurrentView() == nil {
		view, err := gui.g.View(gui.initiallyFocusedViewName())
		if err != nil {
			return err
		}

		if err := gui.switchFocus(view); err != nil {
			return err
		}
	}

	refreshInterval := gui.Config.UserConfig.Snapper.RefreshInterval
	if refreshInterval <= 0 {
		refreshInterval = 10 * time.Second
	}

	go func() {
		throttledRefresh.Trigger()

		gui.goEvery(time.Millisecond*30, gui.reRenderMain)
		gui.goEvery(time.Second, func() error {
			gui.Update(gui.checkForContextChange)
			return nil
		})
		gui.goEvery(refreshInterval, func() error {
			throttledRefresh.Trigger()
			return nil
		})
	}()

	err = g.MainLoop()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

func (gui *Gui) listenForErrors() {
	for err := range gui.ErrorChan {
		if err == nil {
			continue
		}
		_ = gui.createErrorPanel(err.Error())
	}
}

// SetupFakeGui gives the gui blank views so that panels and keybindings can
// be built without a terminal, e.g. for the cheatsheet
func (gui *Gui) SetupFakeGui() {
	for _, spec := range gui.viewSpecs() {
		*spec.view = &gocui.View{}
	}
	gui.setPanels()
}

func (gui *Gui) setPanels() {
	gui.Panels = Panels{
		Status:    gui.getStatusPanel(),
		Configs:   gui.getConfigsPanel(),
		Snapshots: gui.getSnapshotsPanel(),
		Files:     gui.getFilesPanel(),
		Menu:      gui.getMenuPanel(),
	}

	gui.initStatusPanel()
}

func (gui *Gui) allSidePanels() []panels.ISideListPanel {
	return []panels.ISideListPanel{
		gui.Panels.Status,
		gui.Panels.Configs,
		gui.Panels.Snapshots,
		gui.Panels.Files,
	}
}

func (gui *Gui) allListPanels() []panels.ISideListPanel {
	return append(gui.allSidePanels(), gui.Panels.Menu)
}

// refresh reloads the configs and the snapshots of the selected config
func (gui *Gui) refresh() {
	if err := gui.reloadSnapperState(context.Background()); err != nil {
		gui.reportBackgroundError(err)
		return
	}

	gui.clearBackgroundError()
}

func (gui *Gui) reloadSnapperState(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error { return gui.refreshConfigs(ctx) })
	group.Go(func() error { return gui.refreshSnapshots(ctx) })

	if err := group.Wait(); err != nil {
		return err
	}

	return gui.Panels.Status.RerenderList()
}

// triggerRefresh asks for a refresh without blocking the caller. Many requests
// in quick succession only reload once.
func (gui *Gui) triggerRefresh() {
	if gui.refreshThrottle == nil {
		go gui.refresh()
		return
	}
	gui.refreshThrottle.Trigger()
}

func (gui *Gui) reportBackgroundError(err error) {
	gui.Log.Error(err)

	gui.Mutexes.ErrorMutex.Lock()
	message := err.Error()
	repeated := message == gui.lastBackgroundError
	gui.lastBackgroundError = message
	gui.Mutexes.ErrorMutex.Unlock()

	if repeated {
		return
	}

	gui.ErrorChan <- err
}

func (gui *Gui) clearBackgroundError() {
	gui.Mutexes.ErrorMutex.Lock()
	defer gui.Mutexes.ErrorMutex.Unlock()

	gui.lastBackgroundError = ""
}

func (gui *Gui) reRenderMain() error {
	mainView := gui.Views.Main
	if mainView == nil {
		return nil
	}
	if mainView.IsTainted() {
		gui.g.Update(func(g *gocui.Gui) error {
			return nil
		})
	}
	return nil
}

// checkForContextChange re-runs the select handler of the focused panel. If
// the selected item or tab is unchanged the main view is left alone.
func (gui *Gui) checkForContextChange() error {
	return gui.newLineFocused(gui.g.CurrentView())
}

func (gui *Gui) quit(g *gocui.Gui, v *gocui.View) error {
	if gui.isRestoring() {
		return gui.createErrorPanel(gui.Tr.RestoringPleaseWait)
	}

	if gui.Config.UserConfig.ConfirmOnQuit {
		return gui.createConfirmationPanel(gui.Tr.Confirmation, gui.Tr.ConfirmQuit, func() error {
			return gocui.ErrQuit
		})
	}
	return gocui.ErrQuit
}

// this handler is executed when we press escape when there is only one view
// on the stack.
func (gui *Gui) escape() error {
	if gui.isRestoring() {
		return gui.cancelRestore()
	}

	if gui.State.Filter.active {
		return gui.clearFilter()
	}

	return nil
}

func (gui *Gui) handleRefresh(g *gocui.Gui, v *gocui.View) error {
	gui.triggerRefresh()
	return nil
}

func (gui *Gui) openFile(filename string) error {
	if err := gui.OSCommand.OpenFile(filename); err != nil {
		return gui.createErrorPanel(err.Error())
	}
	return nil
}

func (gui *Gui) editFile(filename string) error {
	cmd, err := gui.OSCommand.EditFile(filename)
	if err != nil {
		return gui.createErrorPanel(err.Error())
	}

	return gui.runSubprocess(cmd)
}

func (gui *Gui) ShouldRefresh(key string) bool {
	if gui.State.Panels.Main.ObjectKey == key {
		return false
	}

	gui.State.Panels.Main.ObjectKey = key
	return true
}

func (gui *Gui) initiallyFocusedViewName() string {
	return "snapshots"
}

func (gui *Gui) Update(f func() error) {
	gui.g.Update(func(*gocui.Gui) error { return f() })
}

func (gui *Gui) IsCurrentView(view *gocui.View) bool {
	return view == gui.CurrentView()
}

func (gui *Gui) FilterString(view *gocui.View) string {
	if gui.State.Filter.panel != nil && gui.State.Filter.panel.GetView() != view {
		return ""
	}

	return strings.TrimSpace(gui.State.Filter.needle)
}

// panels only see the subset of the gui that they need
func (gui *Gui) intoInterface() panels.IGui {
	return gui
}
