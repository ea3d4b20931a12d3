//go:build windows

package app

import "golang.org/x/sys/windows"

// flushConsoleInput drops keystrokes typed while a child process owned the
// console.
func flushConsoleInput() error {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	return windows.FlushConsoleInputBuffer(handle)
}
