package gui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
)

// runSubprocess hands the terminal over to cmd, e.g. an editor or a shell
// inside a snapshot, and takes it back once cmd exits
func (gui *Gui) runSubprocess(cmd *exec.Cmd) error {
	gui.Mutexes.SubprocessMutex.Lock()
	defer gui.Mutexes.SubprocessMutex.Unlock()

	if err := gui.g.Suspend(); err != nil {
		return gui.createErrorPanel(err.Error())
	}
	gui.PauseBackgroundThreads = true

	gui.runCommand(cmd)
	gui.promptToReturn()

	gui.PauseBackgroundThreads = false
	if err := gui.g.Resume(); err != nil {
		return gui.createErrorPanel(err.Error())
	}

	// the subprocess may have changed anything, e.g. created a snapshot
	gui.State.Panels.Main.ObjectKey = ""
	gui.triggerRefresh()

	return nil
}

// runCommand runs cmd on the real terminal. Ctrl+C kills cmd, not us.
func (gui *Gui) runCommand(cmd *exec.Cmd) {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stdout

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	finished := make(chan struct{})

	go func() {
		select {
		case <-finished:
		case <-interrupts:
			if err := gui.OSCommand.Kill(cmd); err != nil {
				gui.Log.Error(err)
			}
		}
	}()

	fmt.Fprintf(os.Stdout, "\n%s\n\n", utils.ColoredString("+ "+strings.Join(cmd.Args, " "), color.FgBlue))

	// the error is already on screen in the command's own output
	if err := cmd.Run(); err != nil {
		gui.Log.Error(err)
	}

	signal.Stop(interrupts)
	close(finished)

	cmd.Stdin = nil
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
}

func (gui *Gui) promptToReturn() {
	fmt.Fprintf(os.Stdout, "\n\n%s", utils.ColoredString(gui.Tr.PressEnterToReturn, color.FgGreen))

	if _, err := fmt.Scanln(); err != nil {
		gui.Log.Error(err)
	}
}
