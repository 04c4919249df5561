package gui

import (
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/jesseduffield/lazysnapper/pkg/gui/panels"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
)

// In this file we use the boxlayout package, along with knowledge about the app's state,
// to arrange the windows (i.e. panels) on the screen.

const INFO_SECTION_PADDING = " "

func (gui *Gui) getWindowDimensions(informationStr string, appStatus string) map[string]boxlayout.Dimensions {
	minimumHeight := 9
	minimumWidth := 10
	width, height := gui.g.Size()
	if width < minimumWidth || height < minimumHeight {
		return boxlayout.ArrangeWindows(&boxlayout.Box{Window: "limit"}, 0, 0, width, height)
	}

	sideSectionWeight, mainSectionWeight := gui.getMidSectionWeights()

	sidePanelsDirection := boxlayout.COLUMN
	portraitMode := width <= 84 && height > 45
	if portraitMode {
		sidePanelsDirection = boxlayout.ROW
	}

	showInfoSection := !gui.Config.UserConfig.Gui.HideBottomLine || gui.State.Filter.active || appStatus != ""
	infoSectionSize := 0
	if showInfoSection {
		infoSectionSize = 1
	}

	root := &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{
				Direction: sidePanelsDirection,
				Weight:    1,
				Children: []*boxlayout.Box{
					{
						Direction:           boxlayout.ROW,
						Weight:              sideSectionWeight,
						ConditionalChildren: gui.sidePanelChildren,
					},
					{
						Window: "main",
						Weight: mainSectionWeight,
					},
				},
			},
			{
				Direction: boxlayout.COLUMN,
				Size:      infoSectionSize,
				Children:  gui.infoSectionChildren(informationStr, appStatus),
			},
		},
	}

	return boxlayout.ArrangeWindows(root, 0, 0, width, height)
}

// side and main section weights. SidePanelWidth is a ratio, so .25 means a
// weight of 1 against 3.
func (gui *Gui) getMidSectionWeights() (int, int) {
	ratio := gui.Config.UserConfig.Gui.SidePanelWidth
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.3333
	}

	switch gui.State.ScreenMode {
	case SCREEN_HALF:
		return 1, 1
	case SCREEN_FULL:
		if gui.currentStaticViewName() == "main" {
			return 0, 1
		}
		return 1, 0
	default:
		return 1, int(1/ratio) - 1
	}
}

func (gui *Gui) infoSectionChildren(informationStr string, appStatus string) []*boxlayout.Box {
	result := []*boxlayout.Box{}

	if len(appStatus) > 0 {
		result = append(result,
			&boxlayout.Box{
				Window: "appStatus",
				Size:   runewidth.StringWidth(appStatus) + runewidth.StringWidth(INFO_SECTION_PADDING),
			},
		)
	}

	if gui.State.Filter.active {
		return append(result, []*boxlayout.Box{
			{
				Window: "filterPrefix",
				Size:   runewidth.StringWidth(gui.filterPrompt()),
			},
			{
				Window: "filter",
				Weight: 1,
			},
		}...)
	}

	result = append(result,
		[]*boxlayout.Box{
			{
				Window: "options",
				Weight: 1,
			},
			{
				Window: "information",
				// unlike appStatus, informationStr has various colors so we need to decolorise before taking the length
				Size: runewidth.StringWidth(INFO_SECTION_PADDING) + runewidth.StringWidth(utils.Decolorise(informationStr)),
			},
		}...,
	)

	return result
}

func (gui *Gui) sideViewNames() []string {
	visibleSidePanels := lo.Filter(gui.allSidePanels(), func(panel panels.ISideListPanel, _ int) bool {
		return !panel.IsHidden()
	})

	return lo.Map(visibleSidePanels, func(panel panels.ISideListPanel, _ int) string {
		return panel.GetView().Name()
	})
}

// the snapshots panel gets the most room, the status panel is a single line
var sidePanelWeights = map[string]int{"configs": 1, "snapshots": 3, "files": 2}

const (
	// below this the unfocused side panels are squashed
	roomySideSectionHeight = 28
	// below this squashed panels are just their frame line
	squashedTitleHeight = 21
)

func (gui *Gui) sidePanelChildren(width int, height int) []*boxlayout.Box {
	focused := gui.currentSideViewName()
	names := gui.sideViewNames()

	switch {
	case gui.State.ScreenMode != SCREEN_NORMAL:
		return maximisedSideBoxes(names, focused)
	case height >= roomySideSectionHeight:
		return roomySideBoxes(names, focused, gui.Config.UserConfig.Gui.ExpandFocusedSidePanel)
	default:
		return squashedSideBoxes(names, focused, height)
	}
}

// only the focused side panel is shown
func maximisedSideBoxes(names []string, focused string) []*boxlayout.Box {
	return lo.Map(names, func(name string, _ int) *boxlayout.Box {
		if name == focused {
			return &boxlayout.Box{Window: name, Weight: 1}
		}
		return &boxlayout.Box{Window: name, Size: 0}
	})
}

func roomySideBoxes(names []string, focused string, expandFocused bool) []*boxlayout.Box {
	if len(names) == 0 {
		return nil
	}

	boxes := []*boxlayout.Box{{Window: names[0], Size: 3}}
	for _, name := range names[1:] {
		weight, ok := sidePanelWeights[name]
		if !ok {
			weight = 1
		}
		if expandFocused && name == focused {
			weight *= 2
		}
		boxes = append(boxes, &boxlayout.Box{Window: name, Weight: weight})
	}
	return boxes
}

func squashedSideBoxes(names []string, focused string, height int) []*boxlayout.Box {
	squashedHeight := 1
	if height >= squashedTitleHeight {
		squashedHeight = 3
	}

	return lo.Map(names, func(name string, _ int) *boxlayout.Box {
		if name == focused {
			return &boxlayout.Box{Window: name, Weight: 1}
		}
		return &boxlayout.Box{Window: name, Size: squashedHeight}
	})
}
