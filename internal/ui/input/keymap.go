package input

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Command is a bindable browser operation.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdDown
	CmdUp
	CmdJumpDown
	CmdJumpUp
	CmdCdDown
	CmdCdUp
	CmdHome
	CmdShell
	CmdPager
	CmdEditor
	CmdSearch
	CmdToggleFiles
	CmdToggleDirs
	CmdToggleHidden
	CmdToggleMark
	CmdInvertMarks
	CmdMarkAll
	CmdDelete
	CmdCopy
	CmdSuspend
)

var commandNames = map[Command]string{
	CmdQuit:         "quit",
	CmdDown:         "down",
	CmdUp:           "up",
	CmdJumpDown:     "jump_down",
	CmdJumpUp:       "jump_up",
	CmdCdDown:       "cd_down",
	CmdCdUp:         "cd_up",
	CmdHome:         "home",
	CmdShell:        "shell",
	CmdPager:        "pager",
	CmdEditor:       "editor",
	CmdSearch:       "search",
	CmdToggleFiles:  "toggle_files",
	CmdToggleDirs:   "toggle_dirs",
	CmdToggleHidden: "toggle_hidden",
	CmdToggleMark:   "toggle_mark",
	CmdInvertMarks:  "invert_marks",
	CmdMarkAll:      "mark_all",
	CmdDelete:       "delete",
	CmdCopy:         "copy",
	CmdSuspend:      "suspend",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "none"
}

// ParseCommand looks up a command by its configuration name.
func ParseCommand(name string) (Command, bool) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, true
		}
	}
	return CmdNone, false
}

// Keymap maps curses-style key names ("j", "^M", "KEY_DOWN") to commands.
type Keymap map[string]Command

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"q":         CmdQuit,
		"j":         CmdDown,
		"KEY_DOWN":  CmdDown,
		"k":         CmdUp,
		"KEY_UP":    CmdUp,
		"J":         CmdJumpDown,
		"KEY_NPAGE": CmdJumpDown,
		"K":         CmdJumpUp,
		"KEY_PPAGE": CmdJumpUp,
		"l":         CmdCdDown,
		"KEY_RIGHT": CmdCdDown,
		"h":         CmdCdUp,
		"KEY_LEFT":  CmdCdUp,
		"H":         CmdHome,
		"^M":        CmdShell,
		" ":         CmdPager,
		"e":         CmdEditor,
		"/":         CmdSearch,
		"f":         CmdToggleFiles,
		"d":         CmdToggleDirs,
		"s":         CmdToggleHidden,
		"m":         CmdToggleMark,
		"M":         CmdInvertMarks,
		"a":         CmdMarkAll,
		"X":         CmdDelete,
		"C":         CmdCopy,
		"^Z":        CmdSuspend,
	}
}

// Bind replaces every key of the named command with keys.
func (k Keymap) Bind(command string, keys []string) error {
	cmd, ok := ParseCommand(command)
	if !ok {
		return fmt.Errorf("unknown command %q", command)
	}
	for _, key := range keys {
		if !ValidKeyName(key) {
			return fmt.Errorf("command %s: invalid key %q", command, key)
		}
		if key >= "0" && key <= "9" && len(key) == 1 {
			return fmt.Errorf("command %s: digit %q is reserved for tabs", command, key)
		}
	}
	for name, c := range k {
		if c == cmd {
			delete(k, name)
		}
	}
	for _, key := range keys {
		k[key] = cmd
	}
	return nil
}

// Keys lists the keys bound to cmd in sorted order.
func (k Keymap) Keys(cmd Command) []string {
	var keys []string
	for name, c := range k {
		if c == cmd {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

var specialKeyNames = map[tcell.Key]string{
	tcell.KeyUp:         "KEY_UP",
	tcell.KeyDown:       "KEY_DOWN",
	tcell.KeyLeft:       "KEY_LEFT",
	tcell.KeyRight:      "KEY_RIGHT",
	tcell.KeyPgUp:       "KEY_PPAGE",
	tcell.KeyPgDn:       "KEY_NPAGE",
	tcell.KeyHome:       "KEY_HOME",
	tcell.KeyEnd:        "KEY_END",
	tcell.KeyInsert:     "KEY_IC",
	tcell.KeyDelete:     "KEY_DC",
	tcell.KeyBackspace:  "KEY_BACKSPACE",
	tcell.KeyBackspace2: "KEY_BACKSPACE",
	tcell.KeyEscape:     "^[",
}

// ValidKeyName reports whether name is something KeyName can produce.
func ValidKeyName(name string) bool {
	if utf8.RuneCountInString(name) == 1 {
		return true
	}
	if len(name) == 2 && name[0] == '^' && name[1] >= '@' && name[1] <= '_' {
		return true
	}
	for _, special := range specialKeyNames {
		if special == name {
			return true
		}
	}
	return false
}

// KeyName renders ev the way curses names keys: printable runes as
// themselves, control keys as "^X", function keys as "KEY_*".
func KeyName(ev *tcell.EventKey) string {
	key := ev.Key()
	if name, ok := specialKeyNames[key]; ok {
		return name
	}
	if key == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			return "^" + string(r-'a'+'A')
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			// Shift+j arrives as 'j' on some terminals.
			r = unicode.ToUpper(r)
		}
		return string(r)
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "^" + string(rune('A'+key-tcell.KeyCtrlA))
	}
	return ""
}
