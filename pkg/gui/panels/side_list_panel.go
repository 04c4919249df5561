package panels

import (
	"context"
	"fmt"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
)

type ISideListPanel interface {
	SetMainTabIndex(int)
	HandleSelect() error
	GetView() *gocui.View
	Refocus()
	RerenderList() error
	IsFilterDisabled() bool
	FilterCounts() (int, int)
	IsHidden() bool
	HandleNextLine() error
	HandlePrevLine() error
	HandleGotoTop() error
	HandleGotoBottom() error
	HandleClick() error
	HandlePrevMainTab() error
	HandleNextMainTab() error
}

// SideListPanel is a list at the side of the screen whose selected item is
// rendered into the main view
type SideListPanel[T comparable] struct {
	ContextState *ContextState[T]

	ListPanel[T]

	// rendered in the main view when the panel is focused but empty
	NoItemsMessage string

	Gui IGui

	// applied before the user's filter. Can be nil
	Filter func(T) bool
	Sort   func(a, b T) bool

	OnClick func(T) error

	// cells of the item's row. Rows are padded into a table
	GetTableCells func(T) []string

	// fields that `field:value` filter terms can match on. Can be nil
	FilterFields func(T) map[string]string

	// called after each re-render. Can be nil
	OnRerender func() error

	// disables filtering via '/'
	DisableFilter bool

	// nil means always shown
	Hide func() bool
}

var _ ISideListPanel = &SideListPanel[int]{}

type IGui interface {
	HandleClick(v *gocui.View, itemCount int, selectedLine *int, handleSelect func() error) error
	NewSimpleRenderStringTask(getContent func() string) tasks.TaskFunc
	FocusY(selectedLine int, itemCount int, view *gocui.View)
	ShouldRefresh(contextKey string) bool
	GetMainView() *gocui.View
	IsCurrentView(*gocui.View) bool
	FilterString(view *gocui.View) string
	Update(func() error)

	QueueTask(f func(ctx context.Context)) error
}

func (self *SideListPanel[T]) HandleClick() error {
	if err := self.Gui.HandleClick(self.View, self.List.Len(), &self.SelectedIdx, self.HandleSelect); err != nil {
		return err
	}

	if self.OnClick == nil {
		return nil
	}

	selectedItem, err := self.GetSelectedItem()
	if err != nil {
		return nil
	}
	return self.OnClick(selectedItem)
}

func (self *SideListPanel[T]) GetView() *gocui.View {
	return self.View
}

func (self *SideListPanel[T]) HandleSelect() error {
	item, ok := self.List.TryGet(self.SelectedIdx)
	if !ok {
		if self.NoItemsMessage == "" {
			return nil
		}
		return self.Gui.QueueTask(self.Gui.NewSimpleRenderStringTask(func() string { return self.NoItemsMessage }))
	}

	self.Refocus()

	return self.renderContext(item)
}

func (self *SideListPanel[T]) renderContext(item T) error {
	if self.ContextState == nil {
		return nil
	}

	key := self.ContextState.GetCurrentContextKey(item)
	if !self.Gui.ShouldRefresh(key) {
		return nil
	}

	mainView := self.Gui.GetMainView()
	mainView.Tabs = self.ContextState.GetMainTabTitles()
	mainView.TabIndex = self.ContextState.GetMainTabIndex()

	return self.Gui.QueueTask(self.ContextState.GetCurrentMainTab().Render(item))
}

func (self *SideListPanel[T]) GetSelectedItem() (T, error) {
	var zero T

	item, ok := self.List.TryGet(self.SelectedIdx)
	if !ok {
		return zero, errors.New(self.NoItemsMessage)
	}

	return item, nil
}

func (self *SideListPanel[T]) HandleNextLine() error {
	self.SelectNextLine()

	return self.HandleSelect()
}

func (self *SideListPanel[T]) HandlePrevLine() error {
	self.SelectPrevLine()

	return self.HandleSelect()
}

func (self *SideListPanel[T]) HandleGotoTop() error {
	self.SelectFirst()

	return self.HandleSelect()
}

func (self *SideListPanel[T]) HandleGotoBottom() error {
	self.SelectLast()

	return self.HandleSelect()
}

func (self *SideListPanel[T]) HandleNextMainTab() error {
	if self.ContextState == nil {
		return nil
	}

	self.ContextState.HandleNextMainTab()

	return self.HandleSelect()
}

func (self *SideListPanel[T]) HandlePrevMainTab() error {
	if self.ContextState == nil {
		return nil
	}

	self.ContextState.HandlePrevMainTab()

	return self.HandleSelect()
}

func (self *SideListPanel[T]) Refocus() {
	self.Gui.FocusY(self.SelectedIdx, self.List.Len(), self.View)
}

// SetItems replaces the panel's items, keeping the selection on the item that
// was selected before if it survived
func (self *SideListPanel[T]) SetItems(items []T) {
	self.SetItemsKeepingSelection(items, func(a, b T) bool { return a == b })
}

// SetItemsKeepingSelection is SetItems for item types compared by a key
// rather than by identity, e.g. freshly loaded snapshots compared by number
func (self *SideListPanel[T]) SetItemsKeepingSelection(items []T, sameItem func(a, b T) bool) {
	previous, hadSelection := self.List.TryGet(self.SelectedIdx)

	self.List.SetItems(items)
	self.FilterAndSort()

	if hadSelection {
		self.SelectWhere(func(item T) bool { return sameItem(item, previous) })
	}
}

func (self *SideListPanel[T]) FilterAndSort() {
	query := parseFilterQuery(self.Gui.FilterString(self.View))

	self.List.FilterAndSort(func(item T, index int) bool {
		if self.Filter != nil && !self.Filter(item) {
			return false
		}

		if len(query) == 0 {
			return true
		}

		var fields map[string]string
		if self.FilterFields != nil {
			fields = self.FilterFields(item)
		}
		return query.matches(self.GetTableCells(item), fields)
	}, self.Sort)

	self.clampSelectedLineIdx()
}

// renderRows lays out the visible items as a table, one row per item
func (self *SideListPanel[T]) renderRows() (string, error) {
	return utils.RenderTable(lo.Map(self.List.GetItems(), func(item T, _ int) []string {
		return self.GetTableCells(item)
	}))
}

func (self *SideListPanel[T]) RerenderList() error {
	self.FilterAndSort()

	self.Gui.Update(func() error {
		rows, err := self.renderRows()
		if err != nil {
			return err
		}
		self.View.Clear()
		fmt.Fprint(self.View, rows)

		if self.OnRerender != nil {
			if err := self.OnRerender(); err != nil {
				return err
			}
		}

		if self.Gui.IsCurrentView(self.View) {
			return self.HandleSelect()
		}
		return nil
	})

	return nil
}

func (self *SideListPanel[T]) SetMainTabIndex(index int) {
	if self.ContextState == nil {
		return
	}

	self.ContextState.SetMainTabIndex(index)
}

func (self *SideListPanel[T]) IsFilterDisabled() bool {
	return self.DisableFilter
}

// FilterCounts returns how many items are shown and how many there are
func (self *SideListPanel[T]) FilterCounts() (int, int) {
	return self.List.Len(), self.List.TotalLen()
}

func (self *SideListPanel[T]) IsHidden() bool {
	if self.Hide == nil {
		return false
	}

	return self.Hide()
}
