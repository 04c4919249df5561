// Package theme holds the colours lazysnapper paints snapshots and file
// changes with, in a light and a dark variant.
package theme

import (
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/imdario/mergo"
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
)

type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// Modes in the order ToggleMode cycles through them.
var Modes = []Mode{Dark, Light, System}

type Role string

const (
	SnapshotSingle  Role = "single"
	SnapshotPre     Role = "pre"
	SnapshotPost    Role = "post"
	SnapshotDefault Role = "default"
	FileCreated     Role = "created"
	FileModified    Role = "modified"
	FileDeleted     Role = "deleted"
	FileTypeChanged Role = "typeChanged"
	Warning         Role = "warning"
	Error           Role = "error"
	Important       Role = "important"
	Success         Role = "success"
)

// Palette maps every role to a hex colour.
type Palette map[Role]string

func LightPalette() Palette {
	return Palette{
		SnapshotSingle:  "#4CAF50",
		SnapshotPre:     "#2196F3",
		SnapshotPost:    "#FF9800",
		SnapshotDefault: "#9E9E9E",
		FileCreated:     "#4CAF50",
		FileModified:    "#2196F3",
		FileDeleted:     "#F44336",
		FileTypeChanged: "#FF9800",
		Warning:         "#FF5722",
		Error:           "#F44336",
		Important:       "#FFC107",
		Success:         "#4CAF50",
	}
}

func DarkPalette() Palette {
	return Palette{
		SnapshotSingle:  "#66BB6A",
		SnapshotPre:     "#42A5F5",
		SnapshotPost:    "#FFA726",
		SnapshotDefault: "#BDBDBD",
		FileCreated:     "#66BB6A",
		FileModified:    "#42A5F5",
		FileDeleted:     "#EF5350",
		FileTypeChanged: "#FFA726",
		Warning:         "#FF7043",
		Error:           "#EF5350",
		Important:       "#FFCA28",
		Success:         "#66BB6A",
	}
}

// Theme resolves roles to colours for the current mode. It is safe for
// concurrent use since views render from background goroutines.
type Theme struct {
	mutex     deadlock.RWMutex
	mode      Mode
	isDark    bool
	overrides Palette
	getEnv    func(string) string
}

// New builds a theme from the user's theme config. Palette overrides apply
// to both the light and the dark palette.
func New(themeConfig config.ThemeConfig) *Theme {
	t := &Theme{
		overrides: lo.MapKeys(themeConfig.Palette, func(_ string, key string) Role { return Role(key) }),
		getEnv:    os.Getenv,
	}
	t.SetMode(ParseMode(themeConfig.Mode))
	return t
}

// ParseMode falls back to system for anything it does not recognise.
func ParseMode(value string) Mode {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	if lo.Contains(Modes, mode) {
		return mode
	}
	return System
}

// SetMode switches mode and reports whether the effective darkness changed.
func (t *Theme) SetMode(mode Mode) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	wasDark := t.isDark
	t.mode = mode
	if mode == System {
		t.isDark = ResolveSystemMode(t.getEnv("COLORFGBG")) == Dark
	} else {
		t.isDark = mode == Dark
	}
	return wasDark != t.isDark
}

// ToggleMode moves to the next mode and returns it.
func (t *Theme) ToggleMode() Mode {
	current := t.Mode()
	next := Modes[0]
	for i, mode := range Modes {
		if mode == current {
			next = Modes[(i+1)%len(Modes)]
		}
	}
	t.SetMode(next)
	return next
}

func (t *Theme) Mode() Mode {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.mode
}

func (t *Theme) IsDark() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.isDark
}

// Palette returns a copy of the palette in effect.
func (t *Theme) Palette() Palette {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	palette := LightPalette()
	if t.isDark {
		palette = DarkPalette()
	}
	_ = mergo.Merge(&palette, t.overrides, mergo.WithOverride)
	return palette
}

// Hex returns the colour of role, normalised to #RRGGBB.
func (t *Theme) Hex(role Role) string {
	return normaliseHex(t.Palette()[role])
}

// Colorize paints text in the colour of role for the terminal.
func (t *Theme) Colorize(role Role, text string) string {
	hex := t.Hex(role)
	if hex == "" {
		return text
	}
	return color.HEX(hex).Sprint(text)
}

// GocuiColor returns the colour of role as a view attribute.
func (t *Theme) GocuiColor(role Role) gocui.Attribute {
	return GocuiColor(t.Hex(role))
}

// GocuiColor converts a hex colour to a true colour attribute, or the
// default colour when hex does not parse.
func GocuiColor(hex string) gocui.Attribute {
	rgb := color.HexToRgb(normaliseHex(hex))
	if len(rgb) != 3 {
		return gocui.ColorDefault
	}
	return gocui.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2]))
}

// ResolveSystemMode reads a COLORFGBG value such as "15;0". Terminals put the
// background colour index last; 7 and 15 are the light greys.
func ResolveSystemMode(colorfgbg string) Mode {
	parts := strings.Split(colorfgbg, ";")
	background, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return Dark
	}
	if background == 7 || background == 15 {
		return Light
	}
	return Dark
}

// normaliseHex expands #RGB to #RRGGBB and adds a missing '#'.
func normaliseHex(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return ""
	}
	return "#" + strings.ToUpper(hex)
}
