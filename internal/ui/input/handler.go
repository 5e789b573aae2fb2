package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rover/internal/fs"
	statepkg "github.com/kk-code-lab/rover/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
	keymap     Keymap
}

// NewInputHandler creates a new input handler. A nil keymap selects the
// default bindings.
func NewInputHandler(actionChan chan statepkg.Action, keymap Keymap) *InputHandler {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &InputHandler{
		actionChan: actionChan,
		keymap:     keymap,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked the program to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil && ih.state.Search != nil {
		ih.processSearchKey(ev)
		return true
	}

	name := KeyName(ev)
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		ih.actionChan <- statepkg.SwitchTabAction{Tab: int(name[0] - '0')}
		return true
	}

	cmd, ok := ih.keymap[name]
	if !ok {
		return true
	}
	action := commandAction(cmd)
	if action == nil {
		return true
	}
	ih.actionChan <- action
	_, quit := action.(statepkg.QuitAction)
	return !quit
}

// processSearchKey feeds the incremental search prompt. Keys without a
// prompt meaning are ignored.
func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) {
	switch KeyName(ev) {
	case "^M", "KEY_DOWN":
		ih.actionChan <- statepkg.SearchAcceptAction{}
	case "^[":
		ih.actionChan <- statepkg.SearchCancelAction{}
	case "KEY_BACKSPACE", "KEY_LEFT", "KEY_DC":
		ih.actionChan <- statepkg.SearchBackspaceAction{}
	case "^U":
		ih.actionChan <- statepkg.SearchKillAction{}
	default:
		if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return
		}
		if r := ev.Rune(); unicode.IsPrint(r) {
			ih.actionChan <- statepkg.SearchCharAction{Char: r}
		}
	}
}

func commandAction(cmd Command) statepkg.Action {
	switch cmd {
	case CmdQuit:
		return statepkg.QuitAction{}
	case CmdDown:
		return statepkg.MoveCursorAction{Delta: 1}
	case CmdUp:
		return statepkg.MoveCursorAction{Delta: -1}
	case CmdJumpDown:
		return statepkg.JumpAction{Direction: 1}
	case CmdJumpUp:
		return statepkg.JumpAction{Direction: -1}
	case CmdCdDown:
		return statepkg.DescendAction{}
	case CmdCdUp:
		return statepkg.AscendAction{}
	case CmdHome:
		return statepkg.GoHomeAction{}
	case CmdShell:
		return statepkg.SpawnAction{Kind: statepkg.SpawnShell}
	case CmdPager:
		return statepkg.SpawnAction{Kind: statepkg.SpawnPager}
	case CmdEditor:
		return statepkg.SpawnAction{Kind: statepkg.SpawnEditor}
	case CmdSearch:
		return statepkg.SearchStartAction{}
	case CmdToggleFiles:
		return statepkg.ToggleFilterAction{Bit: fsutil.ShowFiles}
	case CmdToggleDirs:
		return statepkg.ToggleFilterAction{Bit: fsutil.ShowDirs}
	case CmdToggleHidden:
		return statepkg.ToggleFilterAction{Bit: fsutil.ShowHidden}
	case CmdToggleMark:
		return statepkg.ToggleMarkAction{}
	case CmdInvertMarks:
		return statepkg.InvertMarksAction{}
	case CmdMarkAll:
		return statepkg.MarkAllAction{}
	case CmdDelete:
		return statepkg.OperationAction{Kind: statepkg.OperationDelete}
	case CmdCopy:
		return statepkg.OperationAction{Kind: statepkg.OperationCopy}
	case CmdSuspend:
		return statepkg.SuspendAction{}
	}
	return nil
}
