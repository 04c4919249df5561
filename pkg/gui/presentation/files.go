package presentation

import (
	"strconv"
	"strings"

	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/i18n/ts"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
)

func FileChangeRole(changeType commands.FileChangeType) theme.Role {
	switch changeType {
	case commands.FileCreated:
		return theme.FileCreated
	case commands.FileDeleted:
		return theme.FileDeleted
	case commands.FileTypeChanged:
		return theme.FileTypeChanged
	default:
		return theme.FileModified
	}
}

// GetFileChangeDisplayStrings renders a node of the change tree as a
// checkbox, snapper's status flags and the indented name
func GetFileChangeDisplayStrings(th *theme.Theme, item *commands.FileChangeItem) []string {
	checkbox := "[ ]"
	if item.Checked {
		checkbox = th.Colorize(theme.Success, "[x]")
	}

	status := item.Status
	if status == "" {
		status = "....."
	}

	name := item.Name
	if item.IsDirectory() {
		arrow := "▼ "
		if item.Collapsed {
			arrow = "▶ "
		}
		name = arrow + strings.TrimSuffix(name, "/") + "/"
	} else {
		name = "  " + name
	}

	role := FileChangeRole(item.Type)
	return []string{
		checkbox,
		th.Colorize(role, status),
		strings.Repeat("  ", item.Depth) + th.Colorize(role, name),
	}
}

// RenderChangeSummary counts the changes of a snapshot by kind
func RenderChangeSummary(tr *i18n.TranslationSet, th *theme.Theme, summary map[commands.FileChangeType]int) string {
	return ts.Arg(tr.ChangeSummary,
		th.Colorize(theme.FileCreated, strconv.Itoa(summary[commands.FileCreated])),
		th.Colorize(theme.FileDeleted, strconv.Itoa(summary[commands.FileDeleted])),
		th.Colorize(theme.FileModified, strconv.Itoa(summary[commands.FileModified])),
		th.Colorize(theme.FileTypeChanged, strconv.Itoa(summary[commands.FileTypeChanged])),
	)
}

// RenderChanges lists every changed path below the summary, as `snapper
// status` would
func RenderChanges(tr *i18n.TranslationSet, th *theme.Theme, changes []*commands.FileChange) string {
	if len(changes) == 0 {
		return tr.NoFileChanges
	}

	tree := commands.BuildFileChangeTree(changes)
	lines := make([]string, 0, len(changes)+2)
	lines = append(lines, RenderChangeSummary(tr, th, tree.Summary()), "")
	for _, change := range changes {
		lines = append(lines, th.Colorize(FileChangeRole(change.Type), change.Status+" "+change.Path))
	}
	return strings.Join(lines, "\n")
}

// RenderFileDiff is the content of the Diff tab for a single path. Created
// and deleted files only get a note since one side of the diff is empty.
func RenderFileDiff(tr *i18n.TranslationSet, th *theme.Theme, changeType commands.FileChangeType, diff string) string {
	switch changeType {
	case commands.FileCreated:
		return th.Colorize(theme.FileCreated, tr.NewFileCreated)
	case commands.FileDeleted:
		return th.Colorize(theme.FileDeleted, tr.FileDeleted)
	}

	if strings.TrimSpace(diff) == "" {
		return tr.NoDiffFound
	}

	return ColorDiff(th, diff)
}

// ColorDiff colours the added and removed lines of a unified diff
func ColorDiff(th *theme.Theme, diff string) string {
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = th.Colorize(theme.SnapshotDefault, line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = th.Colorize(theme.SnapshotPre, line)
		case strings.HasPrefix(line, "+"):
			lines[i] = th.Colorize(theme.FileCreated, line)
		case strings.HasPrefix(line, "-"):
			lines[i] = th.Colorize(theme.FileDeleted, line)
		}
	}
	return strings.Join(lines, "\n")
}

// DescendantChanges collects the changes below a directory of the tree, for
// the Diff tab of a directory
func DescendantChanges(item *commands.FileChangeItem) []*commands.FileChange {
	changes := []*commands.FileChange{}
	var walk func(items []*commands.FileChangeItem)
	walk = func(items []*commands.FileChangeItem) {
		for _, child := range items {
			if child.Status != "" {
				changes = append(changes, &commands.FileChange{Status: child.Status, Path: child.Path, Type: child.Type})
			}
			walk(child.Children)
		}
	}
	walk(item.Children)
	return changes
}
