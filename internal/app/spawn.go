package app

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	statepkg "github.com/kk-code-lab/rover/internal/state"
)

var commandBuilder = exec.Command

// spawnArgs splits the configured program and appends the target file.
func spawnArgs(req *statepkg.SpawnRequest) []string {
	args := parseCommandLine(req.Program)
	if len(args) == 0 {
		return nil
	}
	if req.File != "" {
		args = append(args, req.File)
	}
	return args
}

// runSpawn hands the terminal to an external program and re-lists the
// active tab once it exits. Failures are reported, never fatal.
func (app *Application) runSpawn(req *statepkg.SpawnRequest) {
	args := spawnArgs(req)
	if len(args) == 0 {
		app.logger.Debug("spawn skipped", "kind", req.Kind.String(), "program", req.Program)
		return
	}

	app.logger.Info("spawn", "kind", req.Kind.String(), "args", args, "dir", req.Dir)
	runErr := app.runInTerminal(req.Dir, args)

	app.refreshActive()
	if runErr != nil {
		app.logger.Warn("spawn failed", "kind", req.Kind.String(), "err", runErr)
		app.state.StatusMessage = fmt.Sprintf("%s: %v", req.Kind, runErr)
	}
}

// runInTerminal suspends the screen and runs args in dir on the
// controlling terminal, falling back to the process's own streams.
func (app *Application) runInTerminal(dir string, args []string) error {
	var tty *os.File
	if runtime.GOOS != "windows" {
		if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			tty = f
			defer func() {
				_ = tty.Close()
			}()
		}
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Dir = dir
	if tty != nil {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	runErr := cmd.Run()

	if err := flushPendingInput(); err != nil {
		app.logger.Debug("input flush failed", "err", err)
	}
	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()

	if runErr != nil {
		return fmt.Errorf("%s: %w", args[0], runErr)
	}
	return nil
}
