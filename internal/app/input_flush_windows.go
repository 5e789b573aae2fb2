//go:build windows

package app

import "golang.org/x/sys/windows"

// flushPendingInput drops keys typed into the console while a spawned
// program ran, so they do not reach the browser.
func flushPendingInput() error {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	return windows.FlushConsoleInputBuffer(handle)
}
