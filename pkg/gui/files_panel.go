package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/jesseduffield/lazysnapper/pkg/gui/presentation"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
	"golang.org/x/time/rate"
)

// the files panel is the restore preview: the change tree of one snapshot
func (gui *Gui) getFilesPanel() *panels.SideListPanel[*commands.FileChangeItem] {
	return &panels.SideListPanel[*commands.FileChangeItem]{
		ContextState: &panels.ContextState[*commands.FileChangeItem]{
			GetMainTabs: func() []panels.MainTab[*commands.FileChangeItem] {
				return []panels.MainTab[*commands.FileChangeItem]{
					{
						Key:    "diff",
						Title:  gui.Tr.DiffTitle,
						Render: gui.renderFileDiff,
					},
				}
			},
			GetItemContextCacheKey: func(item *commands.FileChangeItem) string {
				number := 0
				if gui.State.FilesSnapshot != nil {
					number = gui.State.FilesSnapshot.Number
				}
				return fmt.Sprintf("files-%s-%d-%s", gui.SnapperCommand.ConfigName(), number, item.Path)
			},
		},
		ListPanel: panels.ListPanel[*commands.FileChangeItem]{
			List: panels.NewFilteredList[*commands.FileChangeItem](),
			View: gui.Views.Files,
		},
		NoItemsMessage: gui.Tr.NoSnapshotSelected,
		Gui:            gui.intoInterface(),
		// the tree is already in display order
		Sort: nil,
		FilterFields:  fileChangeFilterFields,
		GetTableCells: func(item *commands.FileChangeItem) []string {
			return presentation.GetFileChangeDisplayStrings(gui.Theme, item)
		},
		OnRerender: func() error {
			gui.Views.Files.Title = gui.filesTitle()
			return nil
		},
	}
}

func (gui *Gui) filesTitle() string {
	if gui.State.FilesSnapshot == nil {
		return gui.Tr.FilesTitle
	}
	return fmt.Sprintf("%s #%d", gui.Tr.FilesTitle, gui.State.FilesSnapshot.Number)
}

func (gui *Gui) renderFileDiff(item *commands.FileChangeItem) tasks.TaskFunc {
	snapshot := gui.State.FilesSnapshot

	if item.IsDirectory() || snapshot == nil {
		return gui.NewSimpleRenderStringTask(func() string {
			return presentation.RenderChanges(gui.Tr, gui.Theme, presentation.DescendantChanges(item))
		})
	}

	return gui.NewLoadingTask(func(ctx context.Context) string {
		if item.Type == commands.FileCreated || item.Type == commands.FileDeleted {
			return presentation.RenderFileDiff(gui.Tr, gui.Theme, item.Type, "")
		}

		diff, err := gui.SnapperCommand.GetFileDiff(ctx, snapshot.Number, item.Path)
		if err != nil {
			return err.Error()
		}
		return presentation.RenderFileDiff(gui.Tr, gui.Theme, item.Type, diff)
	})
}

// openFiles loads the changes of snapshot into the files panel and focuses it
func (gui *Gui) openFiles(snapshot *commands.Snapshot) error {
	gui.State.FilesSnapshot = snapshot
	gui.State.FileTree = nil
	gui.Panels.Files.NoItemsMessage = gui.Tr.LoadingDiff
	gui.Panels.Files.SetItems(nil)

	if err := gui.Panels.Files.RerenderList(); err != nil {
		return err
	}

	if err := gui.switchFocus(gui.Views.Files); err != nil {
		return err
	}

	return gui.WithWaitingStatus(gui.Tr.LoadingDiff, func() error {
		_, err := gui.reloadFileTree(context.Background(), snapshot)
		return err
	})
}

// reloadFileTree fetches the changes of snapshot again, keeping the collapsed
// directories, and returns the new tree
func (gui *Gui) reloadFileTree(ctx context.Context, snapshot *commands.Snapshot) (*commands.FileChangeTree, error) {
	gui.SnapperCommand.InvalidateFileChanges(snapshot.Number)

	changes, err := gui.SnapperCommand.GetFileChanges(ctx, snapshot.Number)
	if err != nil {
		return nil, err
	}

	tree := commands.BuildFileChangeTree(changes)

	gui.Update(func() error {
		// the user may have moved on to another snapshot in the meantime
		if gui.State.FilesSnapshot == nil || gui.State.FilesSnapshot.Number != snapshot.Number {
			return nil
		}

		if previous := gui.State.FileTree; previous != nil {
			for _, item := range tree.Flatten() {
				if old, ok := previous.Find(item.Path); ok && old.Collapsed && item.IsDirectory() {
					item.Collapsed = true
				}
			}
		}

		gui.State.FileTree = tree
		gui.Panels.Files.NoItemsMessage = gui.Tr.NoFileChanges
		gui.State.Panels.Main.ObjectKey = ""
		gui.setFileItems()
		return gui.Panels.Files.RerenderList()
	})

	return tree, nil
}

func (gui *Gui) setFileItems() {
	if gui.State.FileTree == nil {
		gui.Panels.Files.SetItems(nil)
		return
	}

	gui.Panels.Files.SetItemsKeepingSelection(gui.State.FileTree.Flatten(), func(a, b *commands.FileChangeItem) bool {
		return a.Path == b.Path
	})
}

func (gui *Gui) clearFiles() {
	gui.State.FilesSnapshot = nil
	gui.State.FileTree = nil
	gui.Panels.Files.NoItemsMessage = gui.Tr.NoSnapshotSelected
	gui.Panels.Files.SetItems(nil)
}

func (gui *Gui) handleToggleFileCheck(g *gocui.Gui, v *gocui.View) error {
	item, err := gui.Panels.Files.GetSelectedItem()
	if err != nil || gui.State.FileTree == nil {
		return nil
	}

	gui.State.FileTree.SetChecked(item.Path, !item.Checked)

	return gui.Panels.Files.RerenderList()
}

func (gui *Gui) handleCheckAllFiles(g *gocui.Gui, v *gocui.View) error {
	if gui.State.FileTree == nil {
		return nil
	}

	gui.State.FileTree.CheckAll()

	return gui.Panels.Files.RerenderList()
}

func (gui *Gui) handleUncheckAllFiles(g *gocui.Gui, v *gocui.View) error {
	if gui.State.FileTree == nil {
		return nil
	}

	gui.State.FileTree.UncheckAll()

	return gui.Panels.Files.RerenderList()
}

func (gui *Gui) handleToggleFileCollapse(g *gocui.Gui, v *gocui.View) error {
	item, err := gui.Panels.Files.GetSelectedItem()
	if err != nil || gui.State.FileTree == nil {
		return nil
	}

	if !gui.State.FileTree.ToggleCollapsed(item.Path) {
		return nil
	}

	gui.setFileItems()

	return gui.Panels.Files.RerenderList()
}

func (gui *Gui) handleRestoreFiles(g *gocui.Gui, v *gocui.View) error {
	snapshot := gui.State.FilesSnapshot
	if snapshot == nil || gui.State.FileTree == nil {
		return gui.createErrorPanel(gui.Tr.NoSnapshotSelected)
	}

	if gui.isRestoring() {
		return gui.createErrorPanel(gui.Tr.RestoringPleaseWait)
	}

	paths := gui.State.FileTree.CheckedPaths()
	if len(paths) == 0 {
		return gui.createErrorPanel(gui.Tr.NoFilesSelected)
	}

	prompt := strings.Join([]string{
		gui.Tr.ConfirmRestoreSelected,
		ts.Arg(gui.Tr.RestoreExplanation, snapshot.Number),
		gui.Tr.OverwriteWarning,
	}, "\n\n")

	return gui.createConfirmationPanel(gui.Tr.RestoreConfirmation, prompt, func() error {
		return gui.restoreFiles(snapshot, paths)
	})
}

func (gui *Gui) restoreFiles(snapshot *commands.Snapshot, paths []string) error {
	ctx, cancel := context.WithCancel(context.Background())

	gui.Mutexes.RestoreMutex.Lock()
	gui.State.cancelRestore = cancel
	gui.Mutexes.RestoreMutex.Unlock()

	statusKey := gui.Tr.RestoringStatus

	return gui.WithWaitingStatus(statusKey, func() error {
		defer func() {
			gui.Mutexes.RestoreMutex.Lock()
			gui.State.cancelRestore = nil
			gui.Mutexes.RestoreMutex.Unlock()
			cancel()
		}()

		progress := rate.Sometimes{Interval: 200 * time.Millisecond}
		onProgress := func(processed int, total int, message string) {
			gui.Log.Info(message)
			render := func() {
				gui.statusManager.setStatusText(statusKey, statusKey+" "+ts.Arg(gui.Tr.RestoreProgress, processed, total))
				gui.renderAppStatus()
			}
			// the last batch always shows, however soon it follows the previous one
			if processed >= total {
				render()
				return
			}
			progress.Do(render)
		}

		restoreErr := gui.SnapperCommand.RestoreFiles(ctx, snapshot.Number, paths, onProgress)

		tree, err := gui.reloadFileTree(context.Background(), snapshot)
		if err != nil {
			gui.Log.Error(err)
		}
		gui.triggerRefresh()

		if errors.Is(restoreErr, commands.ErrRestoreCancelled) {
			gui.showToast(gui.Tr.RestoreCancelled)
			return nil
		}
		if restoreErr != nil {
			return restoreErr
		}

		message := gui.Tr.RestoreCompleted
		if tree != nil && tree.Len() == 0 {
			message = gui.Tr.NoMoreDifferences
		}

		gui.Update(func() error {
			return gui.createMessagePanel(gui.Tr.RestoreSuccessTitle, message)
		})
		return nil
	})
}

func (gui *Gui) isRestoring() bool {
	gui.Mutexes.RestoreMutex.Lock()
	defer gui.Mutexes.RestoreMutex.Unlock()

	return gui.State.cancelRestore != nil
}

// cancelRestore stops a running restore after the batch in flight
func (gui *Gui) cancelRestore() error {
	gui.Mutexes.RestoreMutex.Lock()
	cancel := gui.State.cancelRestore
	gui.Mutexes.RestoreMutex.Unlock()

	if cancel != nil {
		cancel()
	}

	return nil
}
