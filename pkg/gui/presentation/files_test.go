package presentation

import (
	"testing"

	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/gui/types"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestGetFileChangeDisplayStrings(t *testing.T) {
	_, th, _ := dummyDeps()

	tree := commands.BuildFileChangeTree([]*commands.FileChange{
		{Status: "+....", Path: "/etc/hosts.new", Type: commands.FileCreated},
		{Status: "c....", Path: "/etc/fstab", Type: commands.FileModified},
	})
	tree.SetChecked("/etc/fstab", true)

	rows := [][]string{}
	for _, item := range tree.Flatten() {
		rows = append(rows, decolorise(GetFileChangeDisplayStrings(th, item)))
	}

	assert.Equal(t, [][]string{
		{"[ ]", ".....", "▼ etc/"},
		{"[x]", "c....", "    fstab"},
		{"[ ]", "+....", "    hosts.new"},
	}, rows)

	etc, ok := tree.Find("/etc")
	assert.True(t, ok)
	etc.Collapsed = true
	assert.Equal(t, "▶ etc/", decolorise(GetFileChangeDisplayStrings(th, etc))[2])
}

func TestRenderChanges(t *testing.T) {
	_, th, tr := dummyDeps()

	assert.Equal(t, "No file changes", RenderChanges(tr, th, nil))

	rendered := utils.Decolorise(RenderChanges(tr, th, []*commands.FileChange{
		{Status: "+....", Path: "/a", Type: commands.FileCreated},
		{Status: "-....", Path: "/b", Type: commands.FileDeleted},
		{Status: "c....", Path: "/c", Type: commands.FileModified},
	}))

	assert.Equal(t, "1 created, 1 deleted, 1 modified, 0 type changed\n\n+.... /a\n-.... /b\nc.... /c", rendered)
}

func TestGetMenuItemDisplayStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, GetMenuItemDisplayStrings(&types.MenuItem{LabelColumns: []string{"a", "b"}}))
	assert.Equal(t, []string{"delete"}, GetMenuItemDisplayStrings(&types.MenuItem{Label: "delete"}))
	assert.Equal(t, []string{"theme..."}, decolorise(GetMenuItemDisplayStrings(&types.MenuItem{Label: "theme", OpensMenu: true})))

	disabled := &types.MenuItem{Label: "pre", DisabledReason: "disabled"}
	assert.True(t, disabled.Disabled())
	assert.Equal(t, []string{"pre"}, decolorise(GetMenuItemDisplayStrings(disabled)))
}

func TestRenderFileDiff(t *testing.T) {
	_, th, tr := dummyDeps()

	type scenario struct {
		name       string
		changeType commands.FileChangeType
		diff       string
		expected   string
	}

	scenarios := []scenario{
		{"created", commands.FileCreated, "", "New file created."},
		{"deleted", commands.FileDeleted, "whatever", "File deleted."},
		{"empty diff", commands.FileModified, "\n", "No diff found."},
		{"diff", commands.FileModified, "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n", "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new"},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, s.expected, utils.Decolorise(RenderFileDiff(tr, th, s.changeType, s.diff)))
		})
	}
}

func TestDescendantChanges(t *testing.T) {
	tree := commands.BuildFileChangeTree([]*commands.FileChange{
		{Status: "+....", Path: "/etc/a/new", Type: commands.FileCreated},
		{Status: "c....", Path: "/etc/fstab", Type: commands.FileModified},
		{Status: "c....", Path: "/usr/bin/x", Type: commands.FileModified},
	})

	etc, ok := tree.Find("/etc")
	assert.True(t, ok)

	paths := []string{}
	for _, change := range DescendantChanges(etc) {
		paths = append(paths, change.Path)
	}
	assert.Equal(t, []string{"/etc/a/new", "/etc/fstab"}, paths)
}
