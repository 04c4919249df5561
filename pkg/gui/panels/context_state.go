package panels

import (
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
	"github.com/samber/lo"
)

// ContextState tracks which main view tab is showing for the selected item of
// a side panel. An item plus a tab makes a context; a new context means the
// main view gets re-rendered.
type ContextState[T any] struct {
	tab int

	// tabs available for an item, rendered as the main view's tab bar
	GetMainTabs func() []MainTab[T]
	// identifies the item for caching. Include anything whose change should
	// force a re-render, e.g. the snapshot's description.
	GetItemContextCacheKey func(item T) string
}

type MainTab[T any] struct {
	// part of the context cache key
	Key   string
	Title string
	// returns the task that renders the tab's content into the main view
	Render func(item T) tasks.TaskFunc
}

func (self *ContextState[T]) GetMainTabTitles() []string {
	return lo.Map(self.GetMainTabs(), func(tab MainTab[T], _ int) string { return tab.Title })
}

func (self *ContextState[T]) GetCurrentContextKey(item T) string {
	return self.GetItemContextCacheKey(item) + "-" + self.GetCurrentMainTab().Key
}

// GetCurrentMainTab falls back to the first tab when the tab list shrank
func (self *ContextState[T]) GetCurrentMainTab() MainTab[T] {
	tabs := self.GetMainTabs()
	if self.tab >= len(tabs) {
		self.tab = 0
	}
	return tabs[self.tab]
}

func (self *ContextState[T]) GetMainTabIndex() int {
	return self.tab
}

func (self *ContextState[T]) HandleNextMainTab() {
	self.shiftTab(1)
}

func (self *ContextState[T]) HandlePrevMainTab() {
	self.shiftTab(-1)
}

func (self *ContextState[T]) shiftTab(offset int) {
	count := len(self.GetMainTabs())
	if count == 0 {
		return
	}
	self.tab = ((self.tab+offset)%count + count) % count
}

func (self *ContextState[T]) SetMainTabIndex(index int) {
	self.tab = index
}
