package commands

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func change(status string, path string) *FileChange {
	return &FileChange{Status: status, Path: path, Type: ParseChangeType(status)}
}

func sampleTree() *FileChangeTree {
	return BuildFileChangeTree([]*FileChange{
		change("c.....", "/etc/hosts"),
		change("+.....", "/etc/app/"),
		change("+.....", "/etc/app/app.conf"),
		change("-.....", "/var/log/old.log"),
		change("c.....", "/etc/hosts"),
		change("+.....", "/etc/app"),
		change("c.....", "/README"),
	})
}

func paths(items []*FileChangeItem) []string {
	return lo.Map(items, func(item *FileChangeItem, _ int) string { return item.Path })
}

func TestBuildFileChangeTree(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, []string{
		"/etc/",
		"/etc/app/",
		"/etc/app/app.conf",
		"/etc/hosts",
		"/var/",
		"/var/log/",
		"/var/log/old.log",
		"/README",
	}, paths(tree.Flatten()))

	etc, ok := tree.Find("/etc")
	require.True(t, ok)
	assert.Equal(t, FileModified, etc.Type)
	assert.Equal(t, "", etc.Status)
	assert.True(t, etc.IsDirectory())

	app, ok := tree.Find("/etc/app/")
	require.True(t, ok)
	assert.Equal(t, FileCreated, app.Type)
	assert.Equal(t, etc, app.Parent)
	assert.Equal(t, 1, app.Depth)

	conf, _ := tree.Find("/etc/app/app.conf")
	assert.False(t, conf.IsDirectory())
	assert.Equal(t, 2, conf.Depth)

	assert.Equal(t, 8, tree.Len())
	assert.Equal(t, map[FileChangeType]int{FileModified: 2, FileCreated: 2, FileDeleted: 1}, tree.Summary())
}

func TestFileGainingChildrenBecomesDirectory(t *testing.T) {
	tree := BuildFileChangeTree([]*FileChange{
		change("t.....", "/opt/tool"),
		change("+.....", "/opt/tool/bin"),
	})

	tool, ok := tree.Find("/opt/tool")
	require.True(t, ok)
	assert.True(t, tool.IsDirectory())
	assert.Equal(t, FileTypeChanged, tool.Type)
	assert.Equal(t, "/opt/tool", tool.Path)
}

func TestCheckedPaths(t *testing.T) {
	type scenario struct {
		name     string
		act      func(*FileChangeTree)
		expected []string
	}

	scenarios := []scenario{
		{
			"nothing checked",
			func(*FileChangeTree) {},
			[]string{},
		},
		{
			"checking everything skips the directories that only hold changes",
			func(tree *FileChangeTree) { tree.CheckAll() },
			[]string{"/var/log/old.log", "/etc/app/app.conf", "/etc/hosts", "/README", "/etc/app"},
		},
		{
			"a single file",
			func(tree *FileChangeTree) { tree.SetChecked("/etc/hosts", true) },
			[]string{"/etc/hosts"},
		},
		{
			"an explicitly unchecked child stays unchecked when its parent is checked",
			func(tree *FileChangeTree) {
				tree.SetChecked("/etc/app/app.conf", false)
				tree.SetChecked("/etc", true)
			},
			[]string{"/etc/hosts", "/etc/app"},
		},
		{
			"unchecking a directory unchecks its contents",
			func(tree *FileChangeTree) {
				tree.CheckAll()
				tree.SetChecked("/etc/", false)
			},
			[]string{"/var/log/old.log", "/README"},
		},
		{
			"checked nodes below an unchecked parent are found",
			func(tree *FileChangeTree) {
				tree.CheckAll()
				tree.SetChecked("/var", false)
				tree.SetChecked("/var/log/old.log", true)
			},
			[]string{"/var/log/old.log", "/etc/app/app.conf", "/etc/hosts", "/README", "/etc/app"},
		},
		{
			"uncheck all",
			func(tree *FileChangeTree) {
				tree.CheckAll()
				tree.UncheckAll()
			},
			[]string{},
		},
		{
			"unknown paths are ignored",
			func(tree *FileChangeTree) { tree.SetChecked("/nope", true) },
			[]string{},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			tree := sampleTree()
			s.act(tree)
			assert.Equal(t, s.expected, tree.CheckedPaths())
		})
	}
}

func TestCheckedPathsOrder(t *testing.T) {
	tree := BuildFileChangeTree([]*FileChange{
		change("+.....", "/a"),
		change("+.....", "/a/b"),
		change("+.....", "/a/b/c"),
		change("+.....", "/a/d"),
		change("+.....", "/z"),
	})
	tree.CheckAll()

	// files deepest first, then directories deepest first
	assert.Equal(t, []string{"/a/b/c", "/a/d", "/z", "/a/b", "/a"}, tree.CheckedPaths())
}

func TestToggleCollapsed(t *testing.T) {
	tree := sampleTree()

	assert.True(t, tree.ToggleCollapsed("/etc"))
	assert.Equal(t, []string{"/etc/", "/var/", "/var/log/", "/var/log/old.log", "/README"}, paths(tree.Flatten()))

	assert.False(t, tree.ToggleCollapsed("/README"))
	assert.False(t, tree.ToggleCollapsed("/nope"))

	assert.True(t, tree.ToggleCollapsed("/etc/"))
	assert.Len(t, tree.Flatten(), 8)
}

func TestBuildFileChangeTreeIgnoresRoot(t *testing.T) {
	tree := BuildFileChangeTree([]*FileChange{change("c.....", "/"), change("c.....", "")})
	assert.Empty(t, tree.Flatten())
}
