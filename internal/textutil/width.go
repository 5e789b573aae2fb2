package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut by Fit.
const Ellipsis = "…"

// Width reports how many terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Fit cuts text to at most width cells, ending it with an ellipsis when
// anything was dropped.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return Ellipsis
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// FitLeft keeps the tail of text, for paths whose last component matters.
func FitLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	budget := width - runewidth.StringWidth(Ellipsis)
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if w > budget {
			break
		}
		budget -= w
		start--
	}
	return Ellipsis + string(runes[start:])
}
