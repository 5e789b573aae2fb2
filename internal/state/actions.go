package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== TAB ACTIONS =====

type SwitchTabAction struct {
	Tab int
}

// ===== NAVIGATION ACTIONS =====

type MoveCursorAction struct {
	Delta int // -1 or +1, wraps at the ends
}
type JumpAction struct {
	Direction int // -1 or +1, scaled by the jump size
}
type DescendAction struct{}
type AscendAction struct{}
type GoHomeAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchKillAction struct{}
type SearchAcceptAction struct{}
type SearchCancelAction struct{}

// ===== FILTER ACTIONS =====

type ToggleFilterAction struct {
	Bit Filter
}

// ===== MARK ACTIONS =====

type ToggleMarkAction struct{}
type InvertMarksAction struct{}
type MarkAllAction struct{}
type OperationAction struct {
	Kind OperationKind
}

// ===== EXTERNAL PROGRAMS =====

type SpawnAction struct {
	Kind SpawnKind
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// RefreshAction reports that Path (separator-terminated) changed on disk.
type RefreshAction struct {
	Path string
}

// ===== APP ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
