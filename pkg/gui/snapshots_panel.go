package gui

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/jesseduffield/lazysnapper/pkg/gui/presentation"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
	"github.com/samber/lo"
)

func (gui *Gui) getSnapshotsPanel() *panels.SideListPanel[*commands.Snapshot] {
	return &panels.SideListPanel[*commands.Snapshot]{
		ContextState: &panels.ContextState[*commands.Snapshot]{
			GetMainTabs: func() []panels.MainTab[*commands.Snapshot] {
				return []panels.MainTab[*commands.Snapshot]{
					{
						Key:    "details",
						Title:  gui.Tr.Details,
						Render: gui.renderSnapshotDetails,
					},
					{
						Key:    "changes",
						Title:  gui.Tr.ChangesTitle,
						Render: gui.renderSnapshotChanges,
					},
					{
						Key:    "raw",
						Title:  gui.Tr.RawTitle,
						Render: gui.renderSnapshotRaw,
					},
				}
			},
			GetItemContextCacheKey: func(snapshot *commands.Snapshot) string {
				return fmt.Sprintf("snapshots-%s-%d-%s-%t-%s", gui.SnapperCommand.ConfigName(), snapshot.Number, snapshot.Description, snapshot.Important(), gui.Theme.Mode())
			},
		},
		ListPanel: panels.ListPanel[*commands.Snapshot]{
			List: panels.NewFilteredList[*commands.Snapshot](),
			View: gui.Views.Snapshots,
		},
		NoItemsMessage: gui.Tr.NoSnapshots,
		Gui:            gui.intoInterface(),
		// newest first
		Sort: func(a *commands.Snapshot, b *commands.Snapshot) bool {
			return a.Number > b.Number
		},
		FilterFields:  snapshotFilterFields,
		GetTableCells: func(snapshot *commands.Snapshot) []string {
			return presentation.GetSnapshotDisplayStrings(&gui.Config.UserConfig.Gui, gui.Theme, gui.Tr, snapshot, gui.isSnapshotSelected(snapshot.Number))
		},
	}
}

func (gui *Gui) renderSnapshotDetails(snapshot *commands.Snapshot) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		return presentation.RenderSnapshotDetails(gui.Tr, gui.Theme, gui.Config.UserConfig.Gui.DateFormat, snapshot)
	})
}

func (gui *Gui) renderSnapshotChanges(snapshot *commands.Snapshot) tasks.TaskFunc {
	return gui.NewLoadingTask(func(ctx context.Context) string {
		changes, err := gui.SnapperCommand.GetFileChanges(ctx, snapshot.Number)
		if err != nil {
			return err.Error()
		}
		return presentation.RenderChanges(gui.Tr, gui.Theme, changes)
	})
}

func (gui *Gui) renderSnapshotRaw(snapshot *commands.Snapshot) tasks.TaskFunc {
	return gui.NewSimpleRenderStringTask(func() string {
		output, err := presentation.RenderSnapshotYaml(snapshot)
		if err != nil {
			return err.Error()
		}
		return output
	})
}

// refreshSnapshots reloads the snapshot list. A result for a config the user
// has since switched away from is dropped.
func (gui *Gui) refreshSnapshots(ctx context.Context) error {
	configName := gui.SnapperCommand.ConfigName()
	snapshots, err := gui.SnapperCommand.GetSnapshotsOf(ctx, configName)
	if err != nil {
		return err
	}

	// checked under the lock so a config switch clears the list after us
	gui.Mutexes.SnapshotsMutex.Lock()
	if current := gui.SnapperCommand.ConfigName(); current != configName {
		gui.Mutexes.SnapshotsMutex.Unlock()
		gui.Log.Debugf("dropping snapshots of '%s', config is now '%s'", configName, current)
		return nil
	}
	gui.State.Snapshots = snapshots
	gui.Mutexes.SnapshotsMutex.Unlock()

	gui.pruneSelection(snapshots)

	gui.Panels.Snapshots.SetItemsKeepingSelection(snapshots, func(a, b *commands.Snapshot) bool {
		return a.Number == b.Number
	})

	return gui.Panels.Snapshots.RerenderList()
}

// pruneSelection forgets selected snapshots that no longer exist
func (gui *Gui) pruneSelection(snapshots []*commands.Snapshot) {
	gui.Mutexes.SelectionMutex.Lock()
	defer gui.Mutexes.SelectionMutex.Unlock()

	for number := range gui.State.SelectedSnapshots {
		if !lo.ContainsBy(snapshots, func(s *commands.Snapshot) bool { return s.Number == number }) {
			delete(gui.State.SelectedSnapshots, number)
		}
	}
}

func (gui *Gui) isSnapshotSelected(number int) bool {
	gui.Mutexes.SelectionMutex.Lock()
	defer gui.Mutexes.SelectionMutex.Unlock()

	return gui.State.SelectedSnapshots[number]
}

// selectedSnapshotNumbers returns the marked snapshots, or the one under the
// cursor if none are marked
func (gui *Gui) selectedSnapshotNumbers() []int {
	gui.Mutexes.SelectionMutex.Lock()
	numbers := lo.Keys(gui.State.SelectedSnapshots)
	gui.Mutexes.SelectionMutex.Unlock()

	if len(numbers) > 0 {
		return numbers
	}

	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}
	return []int{snapshot.Number}
}

func (gui *Gui) handleToggleSnapshotSelection(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	gui.Mutexes.SelectionMutex.Lock()
	if gui.State.SelectedSnapshots[snapshot.Number] {
		delete(gui.State.SelectedSnapshots, snapshot.Number)
	} else {
		gui.State.SelectedSnapshots[snapshot.Number] = true
	}
	count := len(gui.State.SelectedSnapshots)
	gui.Mutexes.SelectionMutex.Unlock()

	if count > 0 {
		gui.showToast(ts.Arg(gui.Tr.SelectedCount, count))
	}

	return gui.Panels.Snapshots.RerenderList()
}

func (gui *Gui) handleCreateSnapshot(g *gocui.Gui, v *gocui.View) error {
	return gui.promptForSnapshot(commands.CreateOptions{Type: commands.SnapshotSingle})
}

func (gui *Gui) handleCreatePreSnapshot(g *gocui.Gui, v *gocui.View) error {
	return gui.promptForSnapshot(commands.CreateOptions{Type: commands.SnapshotPre})
}

func (gui *Gui) handleCreateImportantSnapshot(g *gocui.Gui, v *gocui.View) error {
	option := func(label string, snapshotType commands.SnapshotType) *types.MenuItem {
		disabledReason := ""
		if !gui.OSCommand.CreateSnapshotAllowed(snapshotType) {
			disabledReason = gui.Tr.SnapshotsDisabled
		}
		return &types.MenuItem{
			Label:          label,
			DisabledReason: disabledReason,
			OnPress: func() error {
				return gui.promptForSnapshot(commands.CreateOptions{Type: snapshotType, Important: true})
			},
		}
	}

	return gui.Menu(CreateMenuOptions{
		Title: gui.Tr.SnapshotTypeTitle,
		Items: []*types.MenuItem{
			option(gui.Tr.SingleSnapshot, commands.SnapshotSingle),
			option(gui.Tr.PreSnapshot, commands.SnapshotPre),
		},
	})
}

func (gui *Gui) handleCreatePostSnapshot(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	if snapshot.Type != commands.SnapshotPre {
		return gui.createErrorPanel(gui.Tr.PreviousNotFound)
	}

	return gui.createPromptPanel(ts.Arg(gui.Tr.PostSnapshotPrompt, snapshot.Number), func(description string) error {
		return gui.createSnapshot(commands.CreateOptions{
			Type:        commands.SnapshotPost,
			Description: description,
			PreNumber:   snapshot.Number,
			Important:   snapshot.Important(),
		})
	})
}

func (gui *Gui) promptForSnapshot(opts commands.CreateOptions) error {
	title := gui.Tr.EnterDescription
	if opts.Type == commands.SnapshotPre {
		title = gui.Tr.PreSnapshotHint
	}

	return gui.createPromptPanel(title, func(description string) error {
		opts.Description = description
		return gui.createSnapshot(opts)
	})
}

func (gui *Gui) createSnapshot(opts commands.CreateOptions) error {
	opts.Description = strings.TrimSpace(opts.Description)
	if opts.Description == "" {
		return gui.createErrorPanel(gui.Tr.DescriptionRequired)
	}

	return gui.WithWaitingStatus(gui.Tr.CreatingStatus, func() error {
		number, err := gui.SnapperCommand.CreateSnapshot(context.Background(), opts)
		if err != nil {
			return err
		}

		gui.Log.Infof("created %s snapshot #%d", opts.Type, number)
		gui.showToast(gui.Tr.SnapshotCreated)
		gui.triggerRefresh()
		return nil
	})
}

func (gui *Gui) handleRemoveSnapshot(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	prompt := strings.Join([]string{gui.Tr.ConfirmDeleteSnapshot, gui.Tr.CannotBeUndone, gui.Tr.RequiresAdmin}, "\n\n")

	return gui.createConfirmationPanel(gui.Tr.Confirmation, prompt, func() error {
		return gui.WithWaitingStatus(gui.Tr.DeletingStatus, func() error {
			if err := gui.SnapperCommand.DeleteSnapshot(context.Background(), snapshot.Number); err != nil {
				return err
			}

			gui.afterSnapshotsDeleted([]int{snapshot.Number})
			gui.showToast(ts.Arg(gui.Tr.SnapshotDeleted, snapshot.Number))
			return nil
		})
	})
}

func (gui *Gui) handleRemoveSelectedSnapshots(g *gocui.Gui, v *gocui.View) error {
	numbers := gui.selectedSnapshotNumbers()
	if len(numbers) == 0 {
		return gui.createErrorPanel(gui.Tr.NoSnapshotSelected)
	}

	prompt := strings.Join([]string{ts.Arg(gui.Tr.ConfirmDeleteSnapshots, len(numbers)), gui.Tr.CannotBeUndone, gui.Tr.RequiresAdmin}, "\n\n")

	return gui.createConfirmationPanel(gui.Tr.Confirmation, prompt, func() error {
		return gui.WithWaitingStatus(gui.Tr.DeletingStatus, func() error {
			result := gui.SnapperCommand.DeleteSnapshots(context.Background(), numbers)

			gui.afterSnapshotsDeleted(result.Succeeded)

			if len(result.Failed) == 0 {
				gui.showToast(ts.Arg(gui.Tr.DeletedSnapshots, len(result.Succeeded)))
				return nil
			}

			lines := []string{ts.Arg(gui.Tr.DeletionCompleted, len(result.Succeeded), len(result.Failed)), ""}
			for _, number := range result.Failed {
				lines = append(lines, ts.Arg(gui.Tr.DeleteSnapshotFailed, number, result.Errors[number]))
			}

			gui.Update(func() error {
				return gui.createMessagePanel(gui.Tr.ErrorTitle, strings.Join(lines, "\n"))
			})
			return nil
		})
	})
}

// afterSnapshotsDeleted drops deleted snapshots from the selection and from
// the files panel
func (gui *Gui) afterSnapshotsDeleted(numbers []int) {
	gui.Mutexes.SelectionMutex.Lock()
	for _, number := range numbers {
		delete(gui.State.SelectedSnapshots, number)
	}
	gui.Mutexes.SelectionMutex.Unlock()

	for _, number := range numbers {
		gui.SnapperCommand.InvalidateFileChanges(number)
	}

	if filesSnapshot := gui.State.FilesSnapshot; filesSnapshot != nil && lo.Contains(numbers, filesSnapshot.Number) {
		gui.Update(func() error {
			gui.clearFiles()
			return gui.Panels.Files.RerenderList()
		})
	}

	gui.triggerRefresh()
}

func (gui *Gui) handleRollbackSnapshot(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	prompt := strings.Join([]string{ts.Arg(gui.Tr.ConfirmRollback, snapshot.Number), gui.Tr.RollbackExplanation, gui.Tr.RollbackRequiresAdmin}, "\n\n")

	return gui.createConfirmationPanel(gui.Tr.RollbackConfirmation, prompt, func() error {
		return gui.WithWaitingStatus(gui.Tr.RollingBackStatus, func() error {
			if err := gui.SnapperCommand.RollbackSnapshot(context.Background(), snapshot.Number); err != nil {
				gui.Log.Error(err)
				return errors.New(ts.Arg(gui.Tr.RollbackFailed, err.Error()))
			}

			gui.triggerRefresh()
			gui.Update(func() error {
				return gui.createMessagePanel(gui.Tr.RollbackSuccessTitle, gui.Tr.RollbackCompleted)
			})
			return nil
		})
	})
}

func (gui *Gui) handleViewSnapshotFiles(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	return gui.openFiles(snapshot)
}

func (gui *Gui) handleOpenSnapshotShell(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	dir, err := gui.SnapperCommand.SnapshotPath(context.Background(), snapshot.Number)
	if err != nil {
		return gui.createErrorPanel(err.Error())
	}

	return gui.runSubprocess(gui.OSCommand.ShellIn(dir))
}

func (gui *Gui) handleSnapshotCustomCommand(g *gocui.Gui, v *gocui.View) error {
	snapshot, err := gui.Panels.Snapshots.GetSelectedItem()
	if err != nil {
		return nil
	}

	commandObject := gui.SnapperCommand.NewCommandObject(commands.CommandObject{
		Snapshot: snapshot,
	})

	return gui.createCustomCommandMenu(gui.Config.UserConfig.CustomCommands.Snapshots, commandObject)
}
