package config

import (
	"strings"
	"unicode/utf8"

	"github.com/jesseduffield/gocui"
	"github.com/samber/lo"
)

// LabelByKey holds the names of the special keys that can be used in the
// keybinding config. Keys that tcell reports identically (<c-h> and
// <backspace>, <c-i> and <tab>, <c-m> and <enter>) only get their common name.
var LabelByKey = map[gocui.Key]string{
	gocui.KeyF1:         "<f1>",
	gocui.KeyF2:         "<f2>",
	gocui.KeyF3:         "<f3>",
	gocui.KeyF4:         "<f4>",
	gocui.KeyF5:         "<f5>",
	gocui.KeyF6:         "<f6>",
	gocui.KeyF7:         "<f7>",
	gocui.KeyF8:         "<f8>",
	gocui.KeyF9:         "<f9>",
	gocui.KeyF10:        "<f10>",
	gocui.KeyF11:        "<f11>",
	gocui.KeyF12:        "<f12>",
	gocui.KeyInsert:     "<insert>",
	gocui.KeyDelete:     "<delete>",
	gocui.KeyHome:       "<home>",
	gocui.KeyEnd:        "<end>",
	gocui.KeyPgup:       "<pgup>",
	gocui.KeyPgdn:       "<pgdown>",
	gocui.KeyArrowUp:    "<up>",
	gocui.KeyArrowDown:  "<down>",
	gocui.KeyArrowLeft:  "<left>",
	gocui.KeyArrowRight: "<right>",
	gocui.KeyTab:        "<tab>",
	gocui.KeyBacktab:    "<backtab>",
	gocui.KeyEnter:      "<enter>",
	gocui.KeyEsc:        "<esc>",
	gocui.KeyBackspace:  "<backspace>",
	gocui.KeyCtrlSpace:  "<c-space>",
	gocui.KeyCtrlA:      "<c-a>",
	gocui.KeyCtrlB:      "<c-b>",
	gocui.KeyCtrlC:      "<c-c>",
	gocui.KeyCtrlD:      "<c-d>",
	gocui.KeyCtrlE:      "<c-e>",
	gocui.KeyCtrlF:      "<c-f>",
	gocui.KeyCtrlG:      "<c-g>",
	gocui.KeyCtrlJ:      "<c-j>",
	gocui.KeyCtrlK:      "<c-k>",
	gocui.KeyCtrlL:      "<c-l>",
	gocui.KeyCtrlN:      "<c-n>",
	gocui.KeyCtrlO:      "<c-o>",
	gocui.KeyCtrlP:      "<c-p>",
	gocui.KeyCtrlQ:      "<c-q>",
	gocui.KeyCtrlR:      "<c-r>",
	gocui.KeyCtrlS:      "<c-s>",
	gocui.KeyCtrlT:      "<c-t>",
	gocui.KeyCtrlU:      "<c-u>",
	gocui.KeyCtrlV:      "<c-v>",
	gocui.KeyCtrlW:      "<c-w>",
	gocui.KeyCtrlX:      "<c-x>",
	gocui.KeyCtrlY:      "<c-y>",
	gocui.KeyCtrlZ:      "<c-z>",
}

// KeyByLabel is the inverse of LabelByKey
var KeyByLabel = lo.Invert(LabelByKey)

// IsValidKeybindingKey reports whether key can be used in the keybinding
// config: a single character, a known special key (case insensitive) or
// <disabled>
func IsValidKeybindingKey(key string) bool {
	if utf8.RuneCountInString(key) == 1 {
		return true
	}
	if key == "<disabled>" {
		return true
	}
	_, ok := KeyByLabel[strings.ToLower(key)]
	return ok
}
