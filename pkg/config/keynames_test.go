package config

import (
	"fmt"
	"testing"

	"github.com/jesseduffield/gocui"
	"github.com/stretchr/testify/assert"
)

func TestIsValidKeybindingKey(t *testing.T) {
	type scenario struct {
		name  string
		key   string
		valid bool
	}

	scenarios := []scenario{
		{"lowercase letter", "n", true},
		{"uppercase letter", "R", true},
		{"digit", "3", true},
		{"space", " ", true},
		{"symbol", "+", true},
		{"wide rune", "削", true},
		{"escape", "<esc>", true},
		{"escape uppercase", "<ESC>", true},
		{"enter", "<enter>", true},
		{"backtab", "<backtab>", true},
		{"ctrl-r", "<c-r>", true},
		{"f12", "<F12>", true},
		{"pgdown", "<pgdown>", true},
		{"ctrl space", "<c-space>", true},
		{"disabled", "<disabled>", true},
		{"empty", "", false},
		{"unknown", "<foo>", false},
		{"ctrl-h alias", "<c-h>", false},
		{"ctrl-i alias", "<c-i>", false},
		{"ctrl-m alias", "<c-m>", false},
		{"alt keys are not supported", "<a-a>", false},
		{"plain word", "enter", false},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, s.valid, IsValidKeybindingKey(s.key))
		})
	}
}

func TestKeyLabelsAreInverse(t *testing.T) {
	assert.Equal(t, len(LabelByKey), len(KeyByLabel))

	for key, label := range LabelByKey {
		assert.Equal(t, key, KeyByLabel[label], label)
	}
}

func TestKeyByLabel(t *testing.T) {
	type scenario struct {
		label    string
		expected gocui.Key
	}

	scenarios := []scenario{
		{"<esc>", gocui.KeyEsc},
		{"<enter>", gocui.KeyEnter},
		{"<tab>", gocui.KeyTab},
		{"<backspace>", gocui.KeyBackspace},
		{"<c-c>", gocui.KeyCtrlC},
		{"<c-r>", gocui.KeyCtrlR},
		{"<pgup>", gocui.KeyPgup},
		{"<pgdown>", gocui.KeyPgdn},
		{"<home>", gocui.KeyHome},
		{"<up>", gocui.KeyArrowUp},
	}

	for _, s := range scenarios {
		key, ok := KeyByLabel[s.label]
		assert.True(t, ok, s.label)
		assert.Equal(t, s.expected, key, s.label)
	}
}

func TestFunctionKeys(t *testing.T) {
	functionKeys := []gocui.Key{
		gocui.KeyF1, gocui.KeyF2, gocui.KeyF3, gocui.KeyF4,
		gocui.KeyF5, gocui.KeyF6, gocui.KeyF7, gocui.KeyF8,
		gocui.KeyF9, gocui.KeyF10, gocui.KeyF11, gocui.KeyF12,
	}

	for i, key := range functionKeys {
		label := fmt.Sprintf("<f%d>", i+1)
		assert.Equal(t, key, KeyByLabel[label], label)
		assert.Equal(t, label, LabelByKey[key])
	}
}

func TestDefaultKeybindingsAreValid(t *testing.T) {
	assert.NoError(t, validateKeybindings("", GetDefaultKeybindings()))
}
