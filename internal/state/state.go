package state

import (
	fsutil "github.com/kk-code-lab/rover/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Filter mirrors fs.Filter.
type Filter = fsutil.Filter

const (
	// TabCount is the fixed number of tabs held for the whole run.
	TabCount = 10
	// DefaultJumpSize is how many rows a jump moves.
	DefaultJumpSize = 10
	// chromeRows covers the header, the two listing borders and the status line.
	chromeRows = 4
)

// DirectoryLister produces the ordered, filtered entries of one directory.
type DirectoryLister interface {
	List(path string, filter Filter) ([]FileEntry, error)
}

// ===== STATE DEFINITIONS =====

// Tab is one independent navigation context.
type Tab struct {
	Path      string // absolute, always separator-terminated
	Entries   []FileEntry
	Selected  int
	ScrollTop int
	Filter    Filter

	// Marks holds entry names flagged for a batch operation. They belong to
	// MarkDir; marking anywhere else starts a new set.
	Marks   map[string]struct{}
	MarkDir string

	stale bool // changed on disk during a search session
}

// SpawnKind names the external program a spawn request runs.
type SpawnKind int

const (
	SpawnShell SpawnKind = iota
	SpawnPager
	SpawnEditor
)

// EnvVar is the environment variable holding the program for k.
func (k SpawnKind) EnvVar() string {
	switch k {
	case SpawnPager:
		return "PAGER"
	case SpawnEditor:
		return "EDITOR"
	default:
		return "SHELL"
	}
}

func (k SpawnKind) String() string {
	switch k {
	case SpawnPager:
		return "pager"
	case SpawnEditor:
		return "editor"
	default:
		return "shell"
	}
}

// SpawnRequest asks the application to run an external program in Dir,
// optionally on a single file, and return to browsing when it exits.
type SpawnRequest struct {
	Kind    SpawnKind
	Program string // raw environment value, may carry arguments
	File    string // entry name relative to Dir; empty for the shell
	Dir     string
}

// OperationKind is a batch operation over marked entries.
type OperationKind int

const (
	OperationDelete OperationKind = iota
	OperationCopy
)

func (k OperationKind) String() string {
	if k == OperationCopy {
		return "copy"
	}
	return "delete"
}

// OperationRequest is emitted for marked entries; executing it is left to
// the caller.
type OperationRequest struct {
	Kind  OperationKind
	Dir   string
	Names []string
}

// AppState is the single source of truth
type AppState struct {
	Tabs   [TabCount]*Tab
	Active int

	// Search is non-nil while an incremental search session runs.
	Search *SearchSession

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	JumpSize int
	Lister   DirectoryLister

	// Status line
	LastError     error
	StatusMessage string

	pendingSpawn     *SpawnRequest
	pendingOperation *OperationRequest
}

// NewAppState creates all tabs at their initial paths and lists the active
// one. A listing failure is recorded in LastError and is not fatal.
func NewAppState(paths [TabCount]string, lister DirectoryLister, width, height int) *AppState {
	s := &AppState{
		Active:       1,
		ScreenWidth:  width,
		ScreenHeight: height,
		JumpSize:     DefaultJumpSize,
		Lister:       lister,
	}
	for i := range s.Tabs {
		s.Tabs[i] = &Tab{
			Path:   withSeparator(paths[i]),
			Filter: fsutil.DefaultFilter,
		}
	}
	tab := s.ActiveTab()
	s.LastError = tab.SetPath(lister, tab.Path, true, s.ViewportHeight())
	return s
}

// ActiveTab returns the tab receiving key events.
func (s *AppState) ActiveTab() *Tab {
	if s.Active < 0 || s.Active >= TabCount || s.Tabs[s.Active] == nil {
		return &Tab{}
	}
	return s.Tabs[s.Active]
}

// ViewportHeight is the number of listing rows on screen.
func (s *AppState) ViewportHeight() int {
	h := s.ScreenHeight - chromeRows
	if h < 1 {
		return 1
	}
	return h
}

func (s *AppState) jumpSize() int {
	if s.JumpSize <= 0 {
		return DefaultJumpSize
	}
	return s.JumpSize
}

// TakeSpawnRequest returns and clears the pending spawn request.
func (s *AppState) TakeSpawnRequest() *SpawnRequest {
	req := s.pendingSpawn
	s.pendingSpawn = nil
	return req
}

// TakeOperation returns and clears the pending batch operation.
func (s *AppState) TakeOperation() *OperationRequest {
	op := s.pendingOperation
	s.pendingOperation = nil
	return op
}
