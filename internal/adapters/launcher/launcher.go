// Package launcher starts programs through the operating system shell.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"

	"launchdex/internal/ports"
)

// Launcher implements ports.Launcher
type Launcher struct {
	goos string
}

// Ensure Launcher implements Launcher
var _ ports.Launcher = (*Launcher)(nil)

// New creates a launcher for the running operating system
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// Launch starts path and returns without waiting for it. The child is
// reaped in the background so a long-running caller collects no zombies.
func (l *Launcher) Launch(path string, args []string) error {
	cmd, err := l.Command(path, args)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command returns the exec.Cmd that starts path with args.
// On Windows the shell's start verb is used so shortcuts and scripts open
// the same way they would from Explorer.
func (l *Launcher) Command(path string, args []string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("no program to launch")
	}

	switch l.goos {
	case "windows":
		// The empty string is the window title; start treats a first quoted
		// argument as the title.
		cmdArgs := append([]string{"/c", "start", "", path}, args...)
		return exec.Command("cmd", cmdArgs...), nil
	default:
		return exec.Command(path, args...), nil
	}
}
