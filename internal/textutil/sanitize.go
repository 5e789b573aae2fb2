package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// Printable rewrites text so drawing it cannot move the cursor or switch
// terminal modes. C0 controls and DEL use caret notation (ESC becomes
// "^["), C1 controls and invisible format runes (bidi overrides,
// zero-width joiners, BOM) become "<U+XXXX>".
func Printable(text string) string {
	if !needsRewrite(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r < 0x20:
			b.WriteByte('^')
			b.WriteByte(byte(r) + '@')
		case r == 0x7f:
			b.WriteString("^?")
		case isHiddenRune(r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(text string) bool {
	for _, r := range text {
		if r < 0x20 || r == 0x7f || isHiddenRune(r) {
			return true
		}
	}
	return false
}

func isHiddenRune(r rune) bool {
	if r >= 0x80 && r <= 0x9f {
		return true
	}
	return unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp)
}
