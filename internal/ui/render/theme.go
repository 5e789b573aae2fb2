package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	CwdFg       tcell.Color
	TabFg       tcell.Color
	BorderFg    tcell.Color
	ScrollbarFg tcell.Color
	StatusFg    tcell.Color
	FileFg      tcell.Color
	DirectoryFg tcell.Color
	HiddenFg    tcell.Color
	MarkFg      tcell.Color
	PromptFg    tcell.Color
	NoMatchFg   tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme, built from the eight
// basic terminal colors.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		CwdFg:       tcell.ColorGreen,
		TabFg:       tcell.ColorDefault,
		BorderFg:    tcell.ColorTeal,
		ScrollbarFg: tcell.ColorNavy,
		StatusFg:    tcell.ColorNavy,
		FileFg:      tcell.ColorDefault,
		DirectoryFg: tcell.ColorDefault,
		HiddenFg:    tcell.ColorOlive,
		MarkFg:      tcell.ColorPurple,
		PromptFg:    tcell.ColorDefault,
		NoMatchFg:   tcell.ColorMaroon,
		ErrorFg:     tcell.ColorMaroon,
	}
}

func (t *ColorTheme) role(name string) *tcell.Color {
	switch name {
	case "cwd":
		return &t.CwdFg
	case "tab":
		return &t.TabFg
	case "border":
		return &t.BorderFg
	case "scrollbar":
		return &t.ScrollbarFg
	case "status":
		return &t.StatusFg
	case "file":
		return &t.FileFg
	case "directory":
		return &t.DirectoryFg
	case "hidden":
		return &t.HiddenFg
	case "mark":
		return &t.MarkFg
	case "prompt":
		return &t.PromptFg
	case "no_match":
		return &t.NoMatchFg
	case "error":
		return &t.ErrorFg
	}
	return nil
}

// Apply overrides colors by role name ("cwd", "hidden", ...). Values are
// tcell color names or #rrggbb.
func (t *ColorTheme) Apply(colors map[string]string) error {
	roles := make([]string, 0, len(colors))
	for role := range colors {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		target := t.role(role)
		if target == nil {
			return fmt.Errorf("unknown color role %q", role)
		}
		name := strings.ToLower(strings.TrimSpace(colors[role]))
		color := tcell.GetColor(name)
		if color == tcell.ColorDefault && name != "default" {
			return fmt.Errorf("color %s: unknown color %q", role, colors[role])
		}
		*target = color
	}
	return nil
}
