package commands

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSCommandRunCommandWithOutput(t *testing.T) {
	type scenario struct {
		command string
		test    func(string, error)
	}

	scenarios := []scenario{
		{
			"echo -n '123'",
			func(output string, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "123", output)
			},
		},
		{
			"rmdir unexisting-folder",
			func(output string, err error) {
				assert.Regexp(t, "rmdir.*unexisting-folder.*", err.Error())
			},
		},
		{
			"",
			func(output string, err error) {
				assert.EqualError(t, err, "empty command")
			},
		},
	}

	for _, s := range scenarios {
		s.test(NewDummyOSCommand().RunCommandWithOutput(s.command))
	}
}

func TestOSCommandRunCommand(t *testing.T) {
	type scenario struct {
		command string
		test    func(error)
	}

	scenarios := []scenario{
		{
			"rmdir unexisting-folder",
			func(err error) {
				assert.Regexp(t, "rmdir.*unexisting-folder.*", err.Error())
			},
		},
	}

	for _, s := range scenarios {
		s.test(NewDummyOSCommand().RunCommand(s.command))
	}
}

func TestOSCommandRunArgsWithOutput(t *testing.T) {
	type scenario struct {
		name string
		args []string
		test func(string, error)
	}

	scenarios := []scenario{
		{
			"arguments are passed verbatim",
			[]string{"%s|", "a description with spaces", `and "quotes"`},
			func(output string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, `a description with spaces|and "quotes"|`, output)
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			s.test(NewDummyOSCommand().RunArgsWithOutput(context.Background(), "printf", s.args...))
		})
	}
}

func TestOSCommandStderrBecomesError(t *testing.T) {
	osCommand := NewDummyOSCommand()
	osCommand.SetCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "echo 'Unknown config.' >&2; exit 1")
	})

	_, err := osCommand.RunArgsWithOutput(context.Background(), "snapper", "-c", "nope", "list")
	assert.EqualError(t, err, "Unknown config.")
}

func TestOSCommandSilentFailure(t *testing.T) {
	osCommand := NewDummyOSCommand()
	osCommand.SetCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", "exit 3")
	})

	_, err := osCommand.RunArgsWithOutput(context.Background(), "snapper")
	assert.EqualError(t, err, "exit status 3")
}

func TestOSCommandEditFile(t *testing.T) {
	type scenario struct {
		filename string
		command  func(context.Context, string, ...string) *exec.Cmd
		getenv   func(string) string
		test     func(*exec.Cmd, error)
	}

	scenarios := []scenario{
		{
			"test",
			func(ctx context.Context, name string, arg ...string) *exec.Cmd {
				return exec.Command("exit", "1")
			},
			func(env string) string {
				return ""
			},
			func(cmd *exec.Cmd, err error) {
				assert.EqualError(t, err, "No editor defined in $VISUAL or $EDITOR")
			},
		},
		{
			"test",
			func(ctx context.Context, name string, arg ...string) *exec.Cmd {
				if name == "which" {
					return exec.Command("exit", "1")
				}

				assert.EqualValues(t, "nano", name)

				return exec.Command("exit", "0")
			},
			func(env string) string {
				if env == "VISUAL" {
					return "nano"
				}

				return ""
			},
			func(cmd *exec.Cmd, err error) {
				assert.NoError(t, err)
			},
		},
		{
			"test",
			func(ctx context.Context, name string, arg ...string) *exec.Cmd {
				if name == "which" {
					return exec.Command("exit", "1")
				}

				assert.EqualValues(t, "emacs", name)

				return exec.Command("exit", "0")
			},
			func(env string) string {
				if env == "EDITOR" {
					return "emacs"
				}

				return ""
			},
			func(cmd *exec.Cmd, err error) {
				assert.NoError(t, err)
			},
		},
		{
			"test",
			func(ctx context.Context, name string, arg ...string) *exec.Cmd {
				if name == "which" {
					return exec.Command("echo")
				}

				assert.EqualValues(t, "vi", name)

				return exec.Command("exit", "0")
			},
			func(env string) string {
				return ""
			},
			func(cmd *exec.Cmd, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, s := range scenarios {
		OSCmd := NewDummyOSCommand()
		OSCmd.command = s.command
		OSCmd.getenv = s.getenv

		s.test(OSCmd.EditFile(s.filename))
	}
}

func TestOSCommandQuote(t *testing.T) {
	type scenario struct {
		input    string
		expected string
	}

	scenarios := []scenario{
		{"hello `test`", "\"hello \\`test\\`\""},
		{"hello 'test'", `"hello 'test'"`},
		{`hello "test"`, `"hello \"test\""`},
		{`$HOME\x`, `"\$HOME\\x"`},
	}

	osCommand := NewDummyOSCommand()
	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, osCommand.Quote(s.input))
	}
}




func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmpty("", "vim", "nano"))
	assert.Equal(t, "", firstNonEmpty("", ""))
	assert.Equal(t, "", firstNonEmpty())
}

func TestOSCommandOpenFile(t *testing.T) {
	osCommand := NewDummyOSCommand()
	osCommand.Config.UserConfig.OS.OpenCommand = "printf %s {{filename}}"

	var ran []string
	osCommand.SetCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
		ran = append([]string{name}, args...)
		return exec.CommandContext(ctx, "true")
	})

	assert.NoError(t, osCommand.OpenFile("/etc/snapper/configs/root"))
	assert.Equal(t, []string{"printf", "%s", "/etc/snapper/configs/root"}, ran)
}

func TestOSCommandShellIn(t *testing.T) {
	type scenario struct {
		name       string
		configured string
		env        string
		expected   string
	}

	scenarios := []scenario{
		{"configured shell wins", "/bin/zsh", "/bin/fish", "/bin/zsh"},
		{"falls back to $SHELL", "", "/bin/fish", "/bin/fish"},
		{"falls back to the platform shell", "", "", "bash"},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			osCommand := NewDummyOSCommand()
			osCommand.Config.UserConfig.OS.Shell = s.configured
			osCommand.getenv = func(string) string { return s.env }
			osCommand.SetCommand(func(ctx context.Context, name string, args ...string) *exec.Cmd {
				assert.Equal(t, s.expected, name)
				return exec.CommandContext(ctx, name, args...)
			})

			cmd := osCommand.ShellIn("/.snapshots/3/snapshot")
			assert.Equal(t, "/.snapshots/3/snapshot", cmd.Dir)
		})
	}
}
