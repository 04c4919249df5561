package gui

import (
	"testing"

	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/stretchr/testify/assert"
)

func TestSideBoxes(t *testing.T) {
	names := []string{"status", "configs", "snapshots", "files"}

	type scenario struct {
		testName string
		boxes    []*boxlayout.Box
		expected []*boxlayout.Box
	}

	scenarios := []scenario{
		{
			testName: "roomy",
			boxes:    roomySideBoxes(names, "snapshots", false),
			expected: []*boxlayout.Box{
				{Window: "status", Size: 3},
				{Window: "configs", Weight: 1},
				{Window: "snapshots", Weight: 3},
				{Window: "files", Weight: 2},
			},
		},
		{
			testName: "roomy with the focused panel expanded",
			boxes:    roomySideBoxes(names, "files", true),
			expected: []*boxlayout.Box{
				{Window: "status", Size: 3},
				{Window: "configs", Weight: 1},
				{Window: "snapshots", Weight: 3},
				{Window: "files", Weight: 4},
			},
		},
		{
			testName: "squashed",
			boxes:    squashedSideBoxes(names, "configs", 24),
			expected: []*boxlayout.Box{
				{Window: "status", Size: 3},
				{Window: "configs", Weight: 1},
				{Window: "snapshots", Size: 3},
				{Window: "files", Size: 3},
			},
		},
		{
			testName: "squashed on a short terminal",
			boxes:    squashedSideBoxes(names, "configs", 12),
			expected: []*boxlayout.Box{
				{Window: "status", Size: 1},
				{Window: "configs", Weight: 1},
				{Window: "snapshots", Size: 1},
				{Window: "files", Size: 1},
			},
		},
		{
			testName: "maximised",
			boxes:    maximisedSideBoxes(names, "snapshots"),
			expected: []*boxlayout.Box{
				{Window: "status", Size: 0},
				{Window: "configs", Size: 0},
				{Window: "snapshots", Weight: 1},
				{Window: "files", Size: 0},
			},
		},
		{
			testName: "no panels",
			boxes:    roomySideBoxes(nil, "", false),
			expected: nil,
		},
	}

	for _, s := range scenarios {
		t.Run(s.testName, func(t *testing.T) {
			assert.EqualValues(t, s.expected, s.boxes)
		})
	}
}

func TestMidSectionWeights(t *testing.T) {
	gui := newTestGui(t)
	gui.Config.UserConfig.Gui.SidePanelWidth = 0.25

	gui.State.ScreenMode = SCREEN_NORMAL
	side, main := gui.getMidSectionWeights()
	assert.Equal(t, []int{1, 3}, []int{side, main})

	gui.State.ScreenMode = SCREEN_HALF
	side, main = gui.getMidSectionWeights()
	assert.Equal(t, []int{1, 1}, []int{side, main})

	gui.Config.UserConfig.Gui.SidePanelWidth = 0
	gui.State.ScreenMode = SCREEN_NORMAL
	side, main = gui.getMidSectionWeights()
	assert.Equal(t, []int{1, 2}, []int{side, main})
}
