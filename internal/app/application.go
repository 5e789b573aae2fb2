package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rover/internal/config"
	fsutil "github.com/kk-code-lab/rover/internal/fs"
	statepkg "github.com/kk-code-lab/rover/internal/state"
	inputui "github.com/kk-code-lab/rover/internal/ui/input"
	renderui "github.com/kk-code-lab/rover/internal/ui/render"
)

// Options configure a new Application.
type Options struct {
	Args   []string // directories for tabs 1..9
	Config config.Config
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	watcher    *dirWatcher
	logger     *slog.Logger
	logFile    io.Closer
	shouldQuit bool
}

// NewApplication initialises the terminal and builds the browser state.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(screen, opts, os.Getenv)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, opts Options, getenv func(string) string) (*Application, error) {
	cfg := opts.Config

	keymap := inputui.DefaultKeymap()
	commands := make([]string, 0, len(cfg.Keys))
	for command := range cfg.Keys {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	for _, command := range commands {
		if err := keymap.Bind(command, cfg.Keys[command]); err != nil {
			return nil, fmt.Errorf("config keys: %w", err)
		}
	}

	theme := renderui.GetColorTheme()
	if err := theme.Apply(cfg.Colors); err != nil {
		return nil, fmt.Errorf("config colors: %w", err)
	}

	logger, logFile, err := newLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = string(os.PathSeparator)
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = home
	}

	w, h := screen.Size()
	state := statepkg.NewAppState(
		statepkg.InitialTabPaths(opts.Args, home, cwd),
		fsutil.NewListerFromEnv(getenv),
		w, h,
	)
	if cfg.Jump > 0 {
		state.JumpSize = cfg.Jump
	}
	if state.LastError != nil {
		logger.Warn("initial listing failed", "err", state.LastError)
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh, keymap)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen, theme),
		input:    inputHandler,
		actionCh: actionCh,
		logger:   logger,
		logFile:  logFile,
	}

	watcher, err := newDirWatcher(logger)
	if err != nil {
		logger.Warn("directory watching disabled", "err", err)
	} else {
		app.watcher = watcher
		watcher.Watch(state.ActiveTab().Path)
	}

	logger.Info("started", "tab", state.Active, "path", state.ActiveTab().Path)
	return app, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.screen.Fini()
	if app.logFile != nil {
		return app.logFile.Close()
	}
	return nil
}
