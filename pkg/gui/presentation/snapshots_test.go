package presentation

import (
	"testing"
	"time"

	"github.com/jesseduffield/lazysnapper/pkg/commands"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/jesseduffield/lazysnapper/pkg/theme"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func dummyDeps() (*config.GuiConfig, *theme.Theme, *i18n.TranslationSet) {
	userConfig := config.GetDefaultConfig()
	return &userConfig.Gui,
		theme.New(config.ThemeConfig{Mode: "dark"}),
		i18n.NewTranslationSet(commands.NewDummyLog(), "en")
}

func decolorise(cells []string) []string {
	return lo.Map(cells, func(cell string, _ int) string { return utils.Decolorise(cell) })
}

func TestGetSnapshotDisplayStrings(t *testing.T) {
	guiConfig, th, tr := dummyDeps()
	date := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)

	type scenario struct {
		name     string
		snapshot *commands.Snapshot
		selected bool
		expected []string
	}

	scenarios := []scenario{
		{
			"single snapshot",
			&commands.Snapshot{Number: 12, Type: commands.SnapshotSingle, Date: date, Description: "before upgrade"},
			false,
			[]string{"  ", "12", "Single", "2024-03-09 14:05", "before upgrade"},
		},
		{
			"selected important post snapshot",
			&commands.Snapshot{Number: 13, Type: commands.SnapshotPost, PreNumber: 12, Date: date, Description: "zypp", Userdata: map[string]string{"important": "yes"}},
			true,
			[]string{"●★", "13", "Post", "2024-03-09 14:05", "zypp"},
		},
		{
			"no description and no date",
			&commands.Snapshot{Number: 1, Type: commands.SnapshotPre},
			false,
			[]string{"  ", "1", "Pre", "", "(No description)"},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			cells := GetSnapshotDisplayStrings(guiConfig, th, tr, s.snapshot, s.selected)
			assert.Equal(t, s.expected, decolorise(cells))
		})
	}
}

func TestGetSnapshotDisplayStringsCustomColumns(t *testing.T) {
	guiConfig, th, tr := dummyDeps()
	guiConfig.SnapshotColumns = []config.ColumnConfig{
		{Title: "Pre", Path: "PreNumber"},
		{Title: "User", Path: "User"},
		{Title: "Cleanup", Path: "Cleanup"},
		{Title: "Tool", Path: "Userdata.tool"},
		{Title: "Broken", Path: "NoSuchField"},
	}

	snapshot := &commands.Snapshot{
		Number:    5,
		Type:      commands.SnapshotPost,
		PreNumber: 4,
		User:      "root",
		Cleanup:   commands.CleanupNumber,
		Userdata:  map[string]string{"tool": "zypper"},
	}

	cells := decolorise(GetSnapshotDisplayStrings(guiConfig, th, tr, snapshot, false))
	assert.Equal(t, []string{"  ", "4", "root", "number", "zypper", "?"}, cells)

	snapshot.PreNumber = 0
	cells = decolorise(GetSnapshotDisplayStrings(guiConfig, th, tr, snapshot, false))
	assert.Equal(t, "", cells[1])
}

func TestRenderSnapshotDetails(t *testing.T) {
	_, th, tr := dummyDeps()

	snapshot := &commands.Snapshot{
		Number:    42,
		Type:      commands.SnapshotPost,
		PreNumber: 41,
		Date:      time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local),
		Cleanup:   commands.CleanupTimeline,
		Userdata:  map[string]string{"important": "yes"},
	}

	details := utils.Decolorise(RenderSnapshotDetails(tr, th, "2006-01-02 15:04", snapshot))

	assert.Contains(t, details, "Number: #42")
	assert.Contains(t, details, "Type: Post ★ Important")
	assert.Contains(t, details, "Date/Time: 2024-01-02 03:04")
	assert.Contains(t, details, "User: Unknown")
	assert.Contains(t, details, "Cleanup: timeline")
	assert.Contains(t, details, "Previous Snapshot: #41")
	assert.Contains(t, details, "(No description)")
	assert.Contains(t, details, "important: yes")
}

func TestRenderSnapshotDetailsSkipsPreviousForSingle(t *testing.T) {
	_, th, tr := dummyDeps()

	details := utils.Decolorise(RenderSnapshotDetails(tr, th, "", &commands.Snapshot{Number: 3, Type: commands.SnapshotSingle, Description: "manual"}))

	assert.NotContains(t, details, "Previous Snapshot")
	assert.Contains(t, details, "manual")
	assert.Contains(t, details, "User Data: none")
}

func TestSnapshotTypeRole(t *testing.T) {
	assert.Equal(t, theme.SnapshotSingle, SnapshotTypeRole(commands.SnapshotSingle))
	assert.Equal(t, theme.SnapshotPre, SnapshotTypeRole(commands.SnapshotPre))
	assert.Equal(t, theme.SnapshotPost, SnapshotTypeRole(commands.SnapshotPost))
	assert.Equal(t, theme.SnapshotDefault, SnapshotTypeRole(commands.SnapshotType("bogus")))
}
