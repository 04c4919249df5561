package commands

import (
	"context"
	"io"
	"os/exec"

	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/sirupsen/logrus"
)

// Dummy constructors and a fake snapper for tests in this and other packages

// NewDummyOSCommand creates a new dummy OSCommand for testing
func NewDummyOSCommand() *OSCommand {
	return NewOSCommand(NewDummyLog(), NewDummyAppConfig())
}

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	userConfig.Gui.Language = "en"
	appConfig := &config.AppConfig{
		Name:        "lazysnapper",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
	return appConfig
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummySnapperCommand creates a new dummy SnapperCommand for testing
func NewDummySnapperCommand() *SnapperCommand {
	return NewDummySnapperCommandWithOSCommand(NewDummyOSCommand())
}

// NewDummySnapperCommandWithOSCommand creates a new dummy SnapperCommand for testing
func NewDummySnapperCommandWithOSCommand(osCommand *OSCommand) *SnapperCommand {
	appConfig := osCommand.Config
	tr := i18n.NewTranslationSet(NewDummyLog(), appConfig.UserConfig.Gui.Language)
	return NewSnapperCommand(NewDummyLog(), osCommand, tr, appConfig, "root")
}

// SnapperResponder decides what the fake snapper prints for the given
// arguments. A non-empty stderr makes it exit with status 1.
type SnapperResponder func(args []string) (stdout string, stderr string)

// FakeSnapper makes osCommand answer every process it starts with respond
// instead of running it. The arguments of each call are recorded in order.
func FakeSnapper(osCommand *OSCommand, respond SnapperResponder) *[][]string {
	calls := [][]string{}
	osCommand.SetCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		calls = append(calls, args)
		stdout, stderr := respond(args)
		if stderr != "" {
			return exec.CommandContext(ctx, "sh", "-c", `printf '%s' "$1" >&2; exit 1`, "sh", stderr)
		}
		return exec.CommandContext(ctx, "printf", "%s", stdout)
	})
	return &calls
}
