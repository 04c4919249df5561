package panels

import (
	"sort"

	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
)

// FilteredList holds every item of a panel plus the visible subset, as
// positions in the full list. A filtered out item keeps its place, so
// clearing the filter restores the original order.
type FilteredList[T comparable] struct {
	mutex deadlock.RWMutex

	all     []T
	visible []int
}

func NewFilteredList[T comparable]() *FilteredList[T] {
	return &FilteredList[T]{}
}

// SetItems replaces the items and shows all of them, unsorted
func (self *FilteredList[T]) SetItems(items []T) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	self.all = items
	self.visible = make([]int, len(items))
	for position := range items {
		self.visible[position] = position
	}
}

// FilterAndSort recomputes the visible items from scratch. A nil filter keeps
// everything, a nil less keeps the original order.
func (self *FilteredList[T]) FilterAndSort(filter func(T, int) bool, less func(T, T) bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	visible := make([]int, 0, len(self.all))
	for position, item := range self.all {
		if filter == nil || filter(item, position) {
			visible = append(visible, position)
		}
	}

	if less != nil {
		sort.SliceStable(visible, func(i, j int) bool {
			return less(self.all[visible[i]], self.all[visible[j]])
		})
	}

	self.visible = visible
}

// Get panics on an index outside the visible items; see TryGet
func (self *FilteredList[T]) Get(index int) T {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	return self.all[self.visible[index]]
}

func (self *FilteredList[T]) TryGet(index int) (T, bool) {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	if index < 0 || index >= len(self.visible) {
		var zero T
		return zero, false
	}
	return self.all[self.visible[index]], true
}

// Len is the number of visible items
func (self *FilteredList[T]) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	return len(self.visible)
}

// TotalLen counts filtered out items too
func (self *FilteredList[T]) TotalLen() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	return len(self.all)
}

// FindIndex returns the visible position of the first item matching
// predicate, or -1
func (self *FilteredList[T]) FindIndex(predicate func(T) bool) int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	for index, position := range self.visible {
		if predicate(self.all[position]) {
			return index
		}
	}
	return -1
}

// GetItems returns a copy of the visible items in display order
func (self *FilteredList[T]) GetItems() []T {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	return lo.Map(self.visible, func(position int, _ int) T {
		return self.all[position]
	})
}

func (self *FilteredList[T]) GetAllItems() []T {
	self.mutex.RLock()
	defer self.mutex.RUnlock()

	return self.all
}
