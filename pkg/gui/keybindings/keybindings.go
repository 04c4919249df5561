package keybindings

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/config"
)

// GetKey converts a keybinding from the user config into what gocui expects:
// a rune for single characters or a gocui.Key for the special keys. A nil key
// with a nil error means the binding is disabled.
func GetKey(key string) (interface{}, error) {
	runeCount := utf8.RuneCountInString(key)

	switch {
	case key == "<disabled>":
		return nil, nil
	case runeCount == 1:
		return []rune(key)[0], nil
	case runeCount > 1:
		binding, ok := config.KeyByLabel[strings.ToLower(key)]
		if !ok {
			return nil, fmt.Errorf(
				"unrecognized key '%s' for keybinding. Valid special keys: <esc>, <enter>, <tab>, <c-[a-z]>, <f1>-<f12>, <disabled>",
				key,
			)
		}
		return binding, nil
	}

	return nil, fmt.Errorf("empty string is not a valid keybinding")
}

// LabelFromKey converts a key back to the label shown in the options menu
func LabelFromKey(key interface{}) string {
	switch key := key.(type) {
	case nil:
		return ""
	case rune:
		if key == ' ' {
			return "<space>"
		}
		return string(key)
	case gocui.Key:
		if value, ok := config.LabelByKey[key]; ok {
			return value
		}
		return fmt.Sprintf("%c", int(key))
	}

	return fmt.Sprint(key)
}
