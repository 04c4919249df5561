package theme

import (
	"testing"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func newTestTheme(mode string, colorfgbg string, palette map[string]string) *Theme {
	t := New(config.ThemeConfig{Mode: "light", Palette: palette})
	t.getEnv = func(string) string { return colorfgbg }
	t.SetMode(ParseMode(mode))
	return t
}

func TestParseMode(t *testing.T) {
	type scenario struct {
		value    string
		expected Mode
	}

	scenarios := []scenario{
		{"light", Light},
		{"Dark", Dark},
		{" system ", System},
		{"", System},
		{"solarized", System},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, ParseMode(s.value), s.value)
	}
}

func TestResolveSystemMode(t *testing.T) {
	type scenario struct {
		colorfgbg string
		expected  Mode
	}

	scenarios := []scenario{
		{"15;0", Dark},
		{"0;15", Light},
		{"0;7", Light},
		{"0;default;15", Light},
		{"12;8", Dark},
		{"", Dark},
		{"garbage", Dark},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, ResolveSystemMode(s.colorfgbg), s.colorfgbg)
	}
}

func TestPaletteFollowsMode(t *testing.T) {
	theme := newTestTheme("light", "", nil)
	assert.False(t, theme.IsDark())
	assert.Equal(t, "#F44336", theme.Hex(FileDeleted))
	assert.Equal(t, "#FFC107", theme.Hex(Important))

	assert.True(t, theme.SetMode(Dark))
	assert.Equal(t, "#EF5350", theme.Hex(FileDeleted))
	assert.Equal(t, "#FFCA28", theme.Hex(Important))

	assert.False(t, theme.SetMode(Dark))
}

func TestSystemMode(t *testing.T) {
	assert.False(t, newTestTheme("system", "0;15", nil).IsDark())
	assert.True(t, newTestTheme("system", "15;0", nil).IsDark())
	assert.True(t, newTestTheme("system", "", nil).IsDark())
}

func TestToggleMode(t *testing.T) {
	theme := newTestTheme("dark", "0;15", nil)

	assert.Equal(t, Light, theme.ToggleMode())
	assert.False(t, theme.IsDark())
	assert.Equal(t, System, theme.ToggleMode())
	assert.False(t, theme.IsDark())
	assert.Equal(t, Dark, theme.ToggleMode())
	assert.True(t, theme.IsDark())
}

func TestPaletteOverrides(t *testing.T) {
	theme := newTestTheme("dark", "", map[string]string{"important": "fd0", "error": "#123456"})

	assert.Equal(t, "#FFDD00", theme.Hex(Important))
	assert.Equal(t, "#123456", theme.Hex(Error))
	assert.Equal(t, "#66BB6A", theme.Hex(Success))

	// overrides must not leak into the built-in palettes
	assert.Equal(t, "#FFCA28", DarkPalette()[Important])
}

func TestPalettesCoverEveryRole(t *testing.T) {
	assert.Equal(t, len(LightPalette()), len(DarkPalette()))
	for role := range LightPalette() {
		assert.Contains(t, DarkPalette(), role)
	}
}

func TestColorize(t *testing.T) {
	theme := newTestTheme("dark", "", nil)

	assert.Equal(t, "#1", utils.Decolorise(theme.Colorize(SnapshotPre, "#1")))
	assert.Equal(t, "x", theme.Colorize(Role("nope"), "x"))
}

func TestGocuiColor(t *testing.T) {
	type scenario struct {
		hex      string
		expected gocui.Attribute
	}

	scenarios := []scenario{
		{"#4CAF50", gocui.NewRGBColor(0x4c, 0xaf, 0x50)},
		{"4caf50", gocui.NewRGBColor(0x4c, 0xaf, 0x50)},
		{"#fff", gocui.NewRGBColor(0xff, 0xff, 0xff)},
		{"", gocui.ColorDefault},
		{"#12", gocui.ColorDefault},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, GocuiColor(s.hex), s.hex)
	}
}
