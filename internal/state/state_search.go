package state

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// searchContext is how many rows are kept above a search match.
const searchContext = 3

// SearchSession is an incremental prefix search over the active tab.
// Names are snapshotted when the session starts; the tab is not re-listed
// until it ends.
type SearchSession struct {
	Query   string
	NoMatch bool

	names         []string
	savedSelected int
	savedTop      int
}

func newSearchSession(t *Tab) *SearchSession {
	names := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		names[i] = norm.NFC.String(e.DisplayName())
	}
	return &SearchSession{
		names:         names,
		savedSelected: t.Selected,
		savedTop:      t.ScrollTop,
	}
}

// Insert appends r to the query and re-runs the match.
func (s *SearchSession) Insert(r rune, t *Tab, height int) {
	s.Query += string(r)
	s.apply(t, height)
}

// Backspace drops the last rune of the query.
func (s *SearchSession) Backspace(t *Tab, height int) {
	if s.Query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	s.apply(t, height)
}

// Kill clears the whole query.
func (s *SearchSession) Kill(t *Tab, height int) {
	s.Query = ""
	s.apply(t, height)
}

func (s *SearchSession) restore(t *Tab, height int) {
	t.Selected = s.savedSelected
	t.ScrollTop = s.savedTop
	t.Clamp(height)
}

func (s *SearchSession) apply(t *Tab, height int) {
	if s.Query == "" {
		s.NoMatch = false
		s.restore(t, height)
		return
	}
	idx := s.match(norm.NFC.String(s.Query))
	if idx < 0 {
		s.NoMatch = true
		return
	}
	s.NoMatch = false
	t.Selected = idx
	if n := len(s.names); n > height {
		switch {
		case idx < searchContext:
			t.ScrollTop = 0
		case idx-searchContext > n-height:
			t.ScrollTop = n - height
		default:
			t.ScrollTop = idx - searchContext
		}
	}
	t.Clamp(height)
}

func (s *SearchSession) match(query string) int {
	for i, name := range s.names {
		if strings.HasPrefix(name, query) {
			return i
		}
	}
	return -1
}
