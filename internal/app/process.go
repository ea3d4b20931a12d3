package app

import (
	"os"
	"os/exec"
	"runtime"
)

// ProcessRunner runs an interactive child process in dir and waits for it.
type ProcessRunner interface {
	RunInteractive(dir string, args []string) error
}

// TTYRunner attaches children to the controlling terminal, falling back to
// the process's own stdio when there is none.
type TTYRunner struct{}

func (TTYRunner) RunInteractive(dir string, args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir

	if runtime.GOOS != "windows" {
		if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			defer func() {
				_ = tty.Close()
			}()
			cmd.Stdin = tty
			cmd.Stdout = tty
			cmd.Stderr = tty
			return cmd.Run()
		}
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
