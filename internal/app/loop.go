package app

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rover/internal/state"
)

// Run drives the event loop until the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var watchCh <-chan statepkg.Action
	if app.watcher != nil {
		watchCh = app.watcher.Events()
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev, ok := <-eventChan:
			if !ok {
				app.shouldQuit = true
				break
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case action := <-watchCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
	app.logger.Info("quit")
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	before := app.state.ActiveTab().Path
	_, err := app.reducer.Reduce(app.state, action)
	app.logReduceError(action, err)

	if req := app.state.TakeSpawnRequest(); req != nil {
		app.runSpawn(req)
	}
	if op := app.state.TakeOperation(); op != nil {
		app.reportOperation(op)
	}

	if after := app.state.ActiveTab().Path; after != before && app.watcher != nil {
		app.watcher.Watch(after)
	}
	return true
}

func (app *Application) logReduceError(action statepkg.Action, err error) {
	switch {
	case err == nil:
	case errors.Is(err, statepkg.ErrSpawnUnavailable):
		app.logger.Debug("spawn skipped", "err", err)
	default:
		app.logger.Warn("action failed", "action", fmt.Sprintf("%T", action), "err", err)
	}
}

// reportOperation surfaces a batch request. Executing deletes and copies
// is left to external tools.
func (app *Application) reportOperation(op *statepkg.OperationRequest) {
	app.logger.Info("operation requested",
		"kind", op.Kind.String(),
		"dir", op.Dir,
		"names", strings.Join(op.Names, ","),
	)
	noun := "entries"
	if len(op.Names) == 1 {
		noun = "entry"
	}
	app.state.StatusMessage = fmt.Sprintf("%s requested for %d marked %s", op.Kind, len(op.Names), noun)
}

// refreshActive re-lists the active tab after something outside the
// browser may have changed it.
func (app *Application) refreshActive() {
	path := app.state.ActiveTab().Path
	_, err := app.reducer.Reduce(app.state, statepkg.RefreshAction{Path: path})
	app.logReduceError(statepkg.RefreshAction{Path: path}, err)
}
