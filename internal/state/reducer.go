package state

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrSpawnUnavailable reports that the environment names no program for a
// spawn request.
var ErrSpawnUnavailable = errors.New("no program configured")

var (
	userHomeDirFn = os.UserHomeDir
	getenvFn      = os.Getenv
)

// StateReducer applies actions to AppState.
type StateReducer struct{}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state. The returned error is informational:
// state is always left consistent.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	if state.Search != nil {
		if handled, err := r.reduceSearch(state, action); handled {
			return state, err
		}
	}

	tab := state.ActiveTab()
	height := state.ViewportHeight()

	switch a := action.(type) {

	// ===== TABS =====

	case SwitchTabAction:
		if a.Tab < 0 || a.Tab >= TabCount {
			return state, nil
		}
		state.Active = a.Tab
		tab = state.ActiveTab()
		return state, r.record(state, tab.SetPath(state.Lister, tab.Path, false, height))

	// ===== NAVIGATION =====

	case MoveCursorAction:
		tab.MoveCursor(a.Delta, height)
		return state, nil

	case JumpAction:
		tab.Jump(a.Direction*state.jumpSize(), height)
		return state, nil

	case DescendAction:
		moved, err := tab.Descend(state.Lister, height)
		if !moved {
			return state, nil
		}
		return state, r.record(state, err)

	case AscendAction:
		moved, err := tab.Ascend(state.Lister, height)
		if !moved {
			return state, nil
		}
		return state, r.record(state, err)

	case GoHomeAction:
		home, err := userHomeDirFn()
		if err != nil {
			return state, r.record(state, fmt.Errorf("cannot resolve home directory: %w", err))
		}
		return state, r.record(state, tab.SetPath(state.Lister, home, true, height))

	// ===== SEARCH =====

	case SearchStartAction:
		if len(tab.Entries) == 0 {
			return state, nil
		}
		state.Search = newSearchSession(tab)
		return state, nil

	// ===== FILTERS =====

	case ToggleFilterAction:
		return state, r.record(state, tab.ToggleFilter(state.Lister, a.Bit, height))

	// ===== MARKS =====

	case ToggleMarkAction:
		if cur := tab.Current(); cur != nil {
			tab.ToggleMark(cur.Name)
		}
		return state, nil

	case InvertMarksAction:
		tab.InvertMarks()
		return state, nil

	case MarkAllAction:
		tab.MarkAll()
		return state, nil

	case OperationAction:
		names := tab.MarkedNames()
		if len(names) == 0 {
			return state, nil
		}
		state.pendingOperation = &OperationRequest{Kind: a.Kind, Dir: tab.Path, Names: names}
		return state, nil

	// ===== EXTERNAL PROGRAMS =====

	case SpawnAction:
		return state, r.requestSpawn(state, tab, a.Kind)

	// ===== VIEW =====

	case ResizeAction:
		r.resize(state, a)
		return state, nil

	case RefreshAction:
		return state, r.refresh(state, a.Path)
	}

	return state, nil
}

func (r *StateReducer) reduceSearch(state *AppState, action Action) (bool, error) {
	tab := state.ActiveTab()
	height := state.ViewportHeight()
	session := state.Search

	switch a := action.(type) {
	case SearchCharAction:
		session.Insert(a.Char, tab, height)
	case SearchBackspaceAction:
		session.Backspace(tab, height)
	case SearchKillAction:
		session.Kill(tab, height)
	case SearchAcceptAction:
		return true, r.endSearch(state)
	case SearchCancelAction:
		session.restore(tab, height)
		return true, r.endSearch(state)
	case ResizeAction:
		r.resize(state, a)
	case RefreshAction:
		r.markStale(state, a.Path)
	case QuitAction, SuspendAction:
		return false, nil
	}
	// Anything else is swallowed while the prompt is open.
	return true, nil
}

func (r *StateReducer) endSearch(state *AppState) error {
	state.Search = nil
	tab := state.ActiveTab()
	if !tab.stale {
		return nil
	}
	return r.record(state, tab.Refresh(state.Lister, state.ViewportHeight()))
}

func (r *StateReducer) resize(state *AppState, a ResizeAction) {
	state.ScreenWidth = a.Width
	state.ScreenHeight = a.Height
	height := state.ViewportHeight()
	for _, tab := range state.Tabs {
		if tab != nil {
			tab.Clamp(height)
		}
	}
}

func (r *StateReducer) markStale(state *AppState, path string) {
	for _, tab := range state.Tabs {
		if tab != nil && tab.Path == path {
			tab.stale = true
		}
	}
}

// refresh re-lists the active tab when it shows path. Other tabs re-list
// when they are switched to.
func (r *StateReducer) refresh(state *AppState, path string) error {
	tab := state.ActiveTab()
	if tab.Path != path {
		return nil
	}
	return r.record(state, tab.Refresh(state.Lister, state.ViewportHeight()))
}

func (r *StateReducer) requestSpawn(state *AppState, tab *Tab, kind SpawnKind) error {
	req := SpawnRequest{Kind: kind, Dir: tab.Path}
	if kind != SpawnShell {
		cur := tab.Current()
		if cur == nil || cur.IsDir {
			return nil
		}
		req.File = cur.Name
	}
	program := strings.TrimSpace(getenvFn(kind.EnvVar()))
	if program == "" {
		return fmt.Errorf("%w: $%s is not set", ErrSpawnUnavailable, kind.EnvVar())
	}
	req.Program = program
	state.pendingSpawn = &req
	return nil
}

// record keeps the latest listing outcome for the status line.
func (r *StateReducer) record(state *AppState, err error) error {
	state.LastError = err
	if err == nil {
		state.StatusMessage = ""
	}
	return err
}
