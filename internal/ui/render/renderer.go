package render

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rover/internal/state"
	textutil "github.com/kk-code-lab/rover/internal/textutil"
)

const (
	searchPrompt = "search: "
	// statusWidth covers the "FDH" flags and the right-aligned position.
	statusWidth = 15
	markRune    = '*'
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	view := state.View()

	r.drawHeader(view, w)
	r.drawListing(view, w, h)
	r.drawStatusLine(view, w, h)

	r.screen.Show()
}

// drawHeader renders the working directory and the tab digit.
func (r *Renderer) drawHeader(view statepkg.View, w int) {
	cwdStyle := tcell.StyleDefault.Foreground(r.theme.CwdFg)
	tabStyle := tcell.StyleDefault.Foreground(r.theme.TabFg)

	pathWidth := w - 6
	path := textutil.FitLeft(textutil.Printable(view.Path), pathWidth)
	r.drawText(1, 0, 1+pathWidth, path, cwdStyle)

	if w >= 5 {
		r.screen.SetContent(w-4, 0, rune('0'+view.Tab), nil, tabStyle)
	}
}

// drawListing renders the bordered window with one entry per row.
func (r *Renderer) drawListing(view statepkg.View, w, h int) {
	top, bottom := 1, h-2
	if bottom <= top || w < 3 {
		return
	}
	r.drawBorder(top, bottom, w)

	for i, entry := range view.Rows {
		y := top + 1 + i
		if y >= bottom {
			break
		}
		r.drawEntry(entry, view.Marked[i], view.Top+i == view.Selected, y, w)
	}

	if view.Total > view.Height {
		r.drawScrollbar(view, top, bottom, w)
	}
}

func (r *Renderer) drawBorder(top, bottom, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.BorderFg)
	r.screen.SetContent(0, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(w-1, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(w-1, bottom, tcell.RuneLRCorner, nil, style)
	r.fill(1, top, w-1, tcell.RuneHLine, style)
	r.fill(1, bottom, w-1, tcell.RuneHLine, style)
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, style)
	}
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry, selected bool) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case entry.Hidden:
		style = style.Foreground(r.theme.HiddenFg)
	case entry.IsDir:
		style = style.Foreground(r.theme.DirectoryFg)
	default:
		style = style.Foreground(r.theme.FileFg)
	}
	return style.Reverse(selected)
}

// drawEntry lays a row out as: mark, name, then the size of files flush
// against the right border.
func (r *Renderer) drawEntry(entry statepkg.FileEntry, marked, selected bool, y, w int) {
	style := r.entryStyle(entry, selected)
	left, right := 1, w-1
	r.fill(left, y, right, ' ', style)

	if marked {
		r.screen.SetContent(left, y, markRune, nil, style.Foreground(r.theme.MarkFg))
	}

	nameRight := right
	if !entry.IsDir {
		size := humanize.IBytes(uint64(entry.Size))
		sizeX := right - textutil.Width(size)
		if sizeX > left+2 {
			r.drawText(sizeX, y, right, size, style)
			nameRight = sizeX - 1
		}
	}

	name := textutil.Printable(entry.DisplayName())
	r.drawText(left+1, y, nameRight, textutil.Fit(name, nameRight-left-1), style)
}

// drawScrollbar marks the visible share of the listing on the right border.
func (r *Renderer) drawScrollbar(view statepkg.View, top, bottom, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.ScrollbarFg)
	height := view.Height
	center := (view.Top + height/2) * height / view.Total
	size := (height - 1) * height / view.Total
	if size < 1 {
		size = 1
	}
	start := top + 1 + center - size/2
	for y := start; y < start+size; y++ {
		if y > top && y < bottom {
			r.screen.SetContent(w-1, y, tcell.RuneCkBoard, nil, style)
		}
	}
}

// drawStatusLine renders the search prompt or the latest message on the
// left, and the filter flags with the cursor position on the right.
func (r *Renderer) drawStatusLine(view statepkg.View, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	statusX := w - statusWidth
	if statusX < 0 {
		statusX = 0
	}

	r.screen.HideCursor()
	switch {
	case view.Search != nil:
		promptStyle := tcell.StyleDefault.Foreground(r.theme.PromptFg)
		queryStyle := promptStyle
		if view.Search.NoMatch {
			queryStyle = tcell.StyleDefault.Foreground(r.theme.NoMatchFg)
		}
		x := r.drawText(0, y, statusX, searchPrompt, promptStyle)
		query := textutil.Printable(view.Search.Query)
		x = r.drawText(x, y, statusX, textutil.FitLeft(query, statusX-x-1), queryStyle)
		r.screen.ShowCursor(x, y)
	case view.Status != "":
		style := tcell.StyleDefault.Foreground(r.theme.StatusFg)
		if view.IsError {
			style = tcell.StyleDefault.Foreground(r.theme.ErrorFg)
		}
		r.drawText(0, y, statusX-1, textutil.Fit(textutil.Printable(view.Status), statusX-1), style)
	}

	r.drawText(statusX, y, w, formatStatus(view), tcell.StyleDefault.Foreground(r.theme.StatusFg))
}

// formatStatus renders "FDH" followed by the 1-based position, right
// aligned in twelve columns.
func formatStatus(view statepkg.View) string {
	position := "0/0"
	if view.Total > 0 {
		position = strconv.Itoa(view.Selected+1) + "/" + strconv.Itoa(view.Total)
	}
	return fmt.Sprintf("%s%12s", view.Flags, position)
}
