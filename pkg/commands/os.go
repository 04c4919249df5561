package commands

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-errors/errors"

	"github.com/jesseduffield/kill"
	"github.com/jesseduffield/lazysnapper/pkg/config"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/mgutz/str"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Platform holds the commands we fall back to when the user config has none.
// snapper only exists on linux so there is a single platform.
type Platform struct {
	shell       string
	shellArg    string
	openCommand string
}

func getPlatform() *Platform {
	return &Platform{
		shell:       "bash",
		shellArg:    "-c",
		openCommand: "xdg-open {{filename}}",
	}
}

// OSCommand runs processes: snapper itself, editors, shells and the user's
// custom commands
type OSCommand struct {
	Log      *logrus.Entry
	Platform *Platform
	Config   *config.AppConfig
	command  func(context.Context, string, ...string) *exec.Cmd
	getenv   func(string) string
}

// NewOSCommand os command runner
func NewOSCommand(log *logrus.Entry, config *config.AppConfig) *OSCommand {
	return &OSCommand{
		Log:      log,
		Platform: getPlatform(),
		Config:   config,
		command:  exec.CommandContext,
		getenv:   os.Getenv,
	}
}

// SetCommand replaces how processes are started. Tests use it to stand in
// for snapper.
func (c *OSCommand) SetCommand(cmd func(context.Context, string, ...string) *exec.Cmd) {
	c.command = cmd
}

// Getenv reads an environment variable through the injectable lookup
func (c *OSCommand) Getenv(key string) string {
	return c.getenv(key)
}

// RunCommandWithOutput splits command like a shell would and runs it
func (c *OSCommand) RunCommandWithOutput(command string) (string, error) {
	return c.RunCommandWithOutputContext(context.Background(), command)
}

// RunCommandWithOutputContext is RunCommandWithOutput, cancellable via a context
func (c *OSCommand) RunCommandWithOutputContext(ctx context.Context, command string) (string, error) {
	argv := str.ToArgv(command)
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}
	return c.RunArgsWithOutput(ctx, argv[0], argv[1:]...)
}

// RunArgsWithOutput runs name with args as given, without any shell or
// argv splitting in between, so arguments may hold spaces and quotes.
func (c *OSCommand) RunArgsWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	cmd := c.NewCmdContext(ctx, name, args...)
	before := time.Now()
	output, err := sanitisedCommandOutput(cmd.Output())
	c.Log.WithField("duration", time.Since(before).String()).Debugf("ran %s", strings.Join(append([]string{name}, args...), " "))
	return output, err
}

// RunCommand runs a command and just returns the error
func (c *OSCommand) RunCommand(command string) error {
	_, err := c.RunCommandWithOutput(command)
	return err
}

// RunExecutableWithOutput runs a prepared command, stdout and stderr combined
func (c *OSCommand) RunExecutableWithOutput(cmd *exec.Cmd) (string, error) {
	return sanitisedCommandOutput(cmd.CombinedOutput())
}

func (c *OSCommand) NewCmd(cmdName string, commandArgs ...string) *exec.Cmd {
	return c.NewCmdContext(context.Background(), cmdName, commandArgs...)
}

func (c *OSCommand) NewCmdContext(ctx context.Context, cmdName string, commandArgs ...string) *exec.Cmd {
	cmd := c.command(ctx, cmdName, commandArgs...)
	cmd.Env = os.Environ()
	return cmd
}

// sanitisedCommandOutput turns a bare 'exit status 1' into whatever the
// process said on stderr, which for snapper is a readable message.
func sanitisedCommandOutput(output []byte, err error) (string, error) {
	if err == nil {
		return string(output), nil
	}

	var exitError *exec.ExitError
	if !errors.As(err, &exitError) {
		return "", WrapError(err)
	}

	message := strings.TrimSpace(string(exitError.Stderr))
	if message == "" {
		message = exitError.Error()
	}
	return string(output), errors.New(message)
}

// OpenFile opens a file with the configured open command, e.g. xdg-open
func (c *OSCommand) OpenFile(filename string) error {
	commandTemplate := firstNonEmpty(c.Config.UserConfig.OS.OpenCommand, c.Platform.openCommand)
	return c.RunCommand(utils.ResolvePlaceholderString(commandTemplate, map[string]string{
		"filename": c.Quote(filename),
	}))
}

// EditFile returns an editor process for filename, trying $VISUAL, $EDITOR
// and then vi
func (c *OSCommand) EditFile(filename string) (*exec.Cmd, error) {
	editor := firstNonEmpty(c.getenv("VISUAL"), c.getenv("EDITOR"))
	if editor == "" && c.RunCommand("which vi") == nil {
		editor = "vi"
	}
	if editor == "" {
		return nil, errors.New("No editor defined in $VISUAL or $EDITOR")
	}

	return c.NewCmd(editor, filename), nil
}

// Quote wraps a message in double quotes, escaping what the shell would expand
func (c *OSCommand) Quote(message string) string {
	message = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		`$`, `\$`,
		"`", "\\`",
	).Replace(message)
	return `"` + message + `"`
}

// RunCustomCommand runs a user's custom command through the shell
func (c *OSCommand) RunCustomCommand(command string) *exec.Cmd {
	return c.NewCmd(c.Platform.shell, c.Platform.shellArg, command)
}

// ShellIn returns a login shell whose working directory is dir. The shell is
// taken from the config, then $SHELL, then the platform default.
func (c *OSCommand) ShellIn(dir string) *exec.Cmd {
	shell := firstNonEmpty(c.Config.UserConfig.OS.Shell, c.getenv("SHELL"), c.Platform.shell)
	cmd := c.NewCmd(shell)
	cmd.Dir = dir
	return cmd
}

func firstNonEmpty(values ...string) string {
	value, _ := lo.Find(values, func(v string) bool { return v != "" })
	return value
}

// Kill stops a subprocess. Processes prepared with PrepareForChildren are
// killed along with their process group.
func (c *OSCommand) Kill(cmd *exec.Cmd) error {
	return kill.Kill(cmd)
}

// PrepareForChildren puts cmd in its own process group so Kill can take its
// children down with it
func (c *OSCommand) PrepareForChildren(cmd *exec.Cmd) {
	kill.PrepareForChildren(cmd)
}
