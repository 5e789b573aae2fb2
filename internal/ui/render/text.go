package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText draws text from x, clipped at maxX, keeping combining runes in
// the cell of their base rune. It returns the column after the last cell.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	runes := []rune(text)
	i := 0
	for i < len(runes) && x < maxX {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runewidth.RuneWidth(mainc)
		if w < 1 {
			w = 1
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}
	return x
}

func (r *Renderer) fill(x, y, maxX int, ru rune, style tcell.Style) {
	for ; x < maxX; x++ {
		r.screen.SetContent(x, y, ru, nil, style)
	}
}
