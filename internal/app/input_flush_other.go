//go:build !windows

package app

// tcell drains the tty itself on Resume.
func flushPendingInput() error {
	return nil
}
