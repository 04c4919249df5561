package commands

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// FileChangeItem is a node of the restore tree. Directories that only exist
// to hold changed paths are Modified and have a trailing '/' in Path.
type FileChangeItem struct {
	Path   string
	Name   string
	Type   FileChangeType
	Status string

	Checked bool
	// Explicit is set when the user unchecked this node directly. Checking
	// a parent leaves such a node unchecked.
	Explicit  bool
	Collapsed bool

	Children []*FileChangeItem
	Parent   *FileChangeItem
	Depth    int
}

func (i *FileChangeItem) IsDirectory() bool {
	return strings.HasSuffix(i.Path, "/") || len(i.Children) > 0
}

// FileChangeTree arranges a snapshot's change list by directory
type FileChangeTree struct {
	Roots  []*FileChangeItem
	byPath map[string]*FileChangeItem
}

// normalisePath drops a trailing slash, except from the root itself
func normalisePath(p string) string {
	if len(p) > 1 {
		return strings.TrimSuffix(p, "/")
	}
	return p
}

// BuildFileChangeTree dedupes changes by path, first one wins, and creates
// the directories in between
func BuildFileChangeTree(changes []*FileChange) *FileChangeTree {
	tree := &FileChangeTree{Roots: []*FileChangeItem{}, byPath: map[string]*FileChangeItem{}}

	unique := lo.UniqBy(
		lo.Filter(changes, func(change *FileChange, _ int) bool { return strings.Trim(change.Path, "/") != "" }),
		func(change *FileChange) string { return normalisePath(change.Path) },
	)
	sort.SliceStable(unique, func(i, j int) bool {
		return normalisePath(unique[i].Path) < normalisePath(unique[j].Path)
	})

	for _, change := range unique {
		parts := strings.Split(strings.Trim(change.Path, "/"), "/")
		var parent *FileChangeItem
		current := ""

		for i, part := range parts {
			current += "/" + part
			if existing, ok := tree.byPath[current]; ok {
				parent = existing
				continue
			}

			item := &FileChangeItem{
				Name:   part,
				Type:   FileModified,
				Parent: parent,
				Path:   current + "/",
			}
			if i == len(parts)-1 {
				item.Type = change.Type
				item.Status = change.Status
				item.Path = change.Path
			}
			if parent == nil {
				tree.Roots = append(tree.Roots, item)
			} else {
				item.Depth = parent.Depth + 1
				parent.Children = append(parent.Children, item)
			}
			tree.byPath[current] = item
			parent = item
		}
	}

	sortItems(tree.Roots)
	return tree
}

// sortItems puts directories first, then orders by name
func sortItems(items []*FileChangeItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDirectory() != items[j].IsDirectory() {
			return items[i].IsDirectory()
		}
		return items[i].Name < items[j].Name
	})
	for _, item := range items {
		sortItems(item.Children)
	}
}

// Find returns the node for p, with or without a trailing slash
func (t *FileChangeTree) Find(p string) (*FileChangeItem, bool) {
	item, ok := t.byPath[normalisePath(p)]
	return item, ok
}

func (t *FileChangeTree) Len() int {
	return len(t.byPath)
}

// SetChecked checks or unchecks p and everything below it
func (t *FileChangeTree) SetChecked(p string, checked bool) {
	item, ok := t.Find(p)
	if !ok {
		return
	}
	item.Explicit = !checked
	setCheckedRecursive(item, checked)
}

func setCheckedRecursive(item *FileChangeItem, checked bool) {
	item.Checked = checked
	for _, child := range item.Children {
		if checked && child.Explicit {
			continue
		}
		setCheckedRecursive(child, checked)
	}
}

// CheckAll also forgets which nodes were unchecked by hand
func (t *FileChangeTree) CheckAll() {
	for _, item := range t.byPath {
		item.Checked = true
		item.Explicit = false
	}
}

func (t *FileChangeTree) UncheckAll() {
	for _, item := range t.byPath {
		item.Checked = false
	}
}

// CheckedPaths returns the paths to hand to undochange, files before
// directories and deeper paths before shallower ones, so that a directory is
// restored after its contents.
func (t *FileChangeTree) CheckedPaths() []string {
	paths := []string{}
	collectChecked(t.Roots, &paths)
	paths = lo.Uniq(paths)

	isDir := func(p string) bool {
		return lo.ContainsBy(paths, func(other string) bool {
			return other != p && strings.HasPrefix(other, p+"/")
		})
	}
	dirs := lo.Filter(paths, func(p string, _ int) bool { return isDir(p) })
	files := lo.Filter(paths, func(p string, _ int) bool { return !isDir(p) })

	byDepth := func(s []string) {
		sort.SliceStable(s, func(i, j int) bool {
			di, dj := strings.Count(s[i], "/"), strings.Count(s[j], "/")
			if di != dj {
				return di > dj
			}
			return s[i] > s[j]
		})
	}
	byDepth(files)
	byDepth(dirs)

	result := make([]string, 0, len(paths))
	result = append(result, files...)
	return append(result, dirs...)
}

func collectChecked(items []*FileChangeItem, paths *[]string) {
	for _, item := range items {
		if item.Checked {
			collectSelf(item, paths)
			collectCheckedDescendants(item.Children, paths)
		} else {
			collectChecked(item.Children, paths)
		}
	}
}

// collectCheckedDescendants stops at unchecked nodes
func collectCheckedDescendants(items []*FileChangeItem, paths *[]string) {
	for _, item := range items {
		if !item.Checked {
			continue
		}
		collectSelf(item, paths)
		collectCheckedDescendants(item.Children, paths)
	}
}

// collectSelf adds a leaf always, and a directory only if the directory
// itself changed
func collectSelf(item *FileChangeItem, paths *[]string) {
	p := normalisePath(item.Path)
	if p == "" || p == "/" {
		return
	}
	if len(item.Children) > 0 && item.Type == FileModified {
		return
	}
	*paths = append(*paths, p)
}

// Flatten lists the visible nodes depth first, skipping the children of
// collapsed directories
func (t *FileChangeTree) Flatten() []*FileChangeItem {
	result := []*FileChangeItem{}
	var walk func(items []*FileChangeItem)
	walk = func(items []*FileChangeItem) {
		for _, item := range items {
			result = append(result, item)
			if !item.Collapsed {
				walk(item.Children)
			}
		}
	}
	walk(t.Roots)
	return result
}

// ToggleCollapsed flips a directory open or closed and reports whether it did
func (t *FileChangeTree) ToggleCollapsed(p string) bool {
	item, ok := t.Find(p)
	if !ok || !item.IsDirectory() {
		return false
	}
	item.Collapsed = !item.Collapsed
	return true
}

// Summary counts the changes by type, ignoring the directories added to hold them
func (t *FileChangeTree) Summary() map[FileChangeType]int {
	summary := map[FileChangeType]int{}
	for _, item := range t.byPath {
		if item.Status == "" {
			continue
		}
		summary[item.Type]++
	}
	return summary
}

