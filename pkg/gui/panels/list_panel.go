package panels

import (
	"github.com/jesseduffield/gocui"
	lcUtils "github.com/jesseduffield/lazycore/pkg/utils"
)

// ListPanel is a selectable list drawn into View. SelectedIdx always points at
// a visible item, or is 0 when there are none.
type ListPanel[T comparable] struct {
	SelectedIdx int
	List        *FilteredList[T]
	View        *gocui.View
}

func (self *ListPanel[T]) SetSelectedLineIdx(value int) {
	last := self.List.Len() - 1
	if last < 0 {
		self.SelectedIdx = 0
		return
	}
	self.SelectedIdx = lcUtils.Clamp(value, 0, last)
}

// called after the visible items change underneath the selection
func (self *ListPanel[T]) clampSelectedLineIdx() {
	self.SetSelectedLineIdx(self.SelectedIdx)
}

func (self *ListPanel[T]) SelectNextLine() {
	self.SetSelectedLineIdx(self.SelectedIdx + 1)
}

func (self *ListPanel[T]) SelectPrevLine() {
	self.SetSelectedLineIdx(self.SelectedIdx - 1)
}

func (self *ListPanel[T]) SelectFirst() {
	self.SetSelectedLineIdx(0)
}

// SelectLast on an empty list leaves the selection at 0
func (self *ListPanel[T]) SelectLast() {
	self.SetSelectedLineIdx(self.List.Len() - 1)
}

// SelectWhere moves the selection to the first item matching predicate and
// reports whether there was one
func (self *ListPanel[T]) SelectWhere(predicate func(T) bool) bool {
	index := self.List.FindIndex(predicate)
	if index < 0 {
		return false
	}
	self.SelectedIdx = index
	return true
}
