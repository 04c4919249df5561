package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageHeight(t *testing.T) {
	type scenario struct {
		testName string
		message  string
		width    int
		wrap     bool
		expected int
	}

	scenarios := []scenario{
		{"single line", "delete snapshot 12?", 40, true, 1},
		{"wraps long lines", "0123456789012345678901234", 10, true, 3},
		{"no wrapping", "0123456789012345678901234\nsecond", 10, false, 2},
		{"colour codes take no room", "\x1b[31m0123456789\x1b[0m", 11, true, 1},
		{"wide runes take two columns", "スナップショット", 10, true, 2},
		{"zero width", "a\nb", 0, true, 2},
	}

	for _, s := range scenarios {
		t.Run(s.testName, func(t *testing.T) {
			assert.Equal(t, s.expected, messageHeight(s.message, s.width, s.wrap))
		})
	}
}

func TestCenteredPopupDimensions(t *testing.T) {
	x0, y0, x1, y1 := centeredPopupDimensions(100, 40, "restore 3 files?", true)

	assert.Equal(t, 25, x0)
	assert.Equal(t, 75, x1)
	assert.Equal(t, 18, y0)
	assert.Equal(t, 20, y1)
}
