package types

import (
	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/config"
)

type KeybindingHandler func(*gocui.Gui, *gocui.View) error

// KeybindingGuards wrap handlers that must not run in certain states
type KeybindingGuards struct {
	// NotRestoring turns the handler into a no-op, with a notice, while
	// files are being restored from a snapshot
	NotRestoring func(KeybindingHandler) KeybindingHandler
}

type KeybindingsOpts struct {
	// GetKey parses key labels from the config, e.g. "<c-r>"
	GetKey func(string) (interface{}, error)

	Config config.KeybindingConfig
	Guards KeybindingGuards
}
