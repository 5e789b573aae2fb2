package state

// ===== VIEW =====

// View is the read-only snapshot the renderer draws from.
type View struct {
	Tab      int
	Path     string
	Rows     []FileEntry // visible window of the listing
	Marked   []bool      // parallel to Rows
	Top      int
	Selected int // absolute index, -1 when the listing is empty
	Total    int
	Height   int
	Flags    string
	Search   *SearchView
	Status   string
	IsError  bool // Status carries LastError
}

// SearchView is the prompt shown while searching.
type SearchView struct {
	Query   string
	NoMatch bool
}

// View builds the snapshot for the active tab.
func (s *AppState) View() View {
	tab := s.ActiveTab()
	height := s.ViewportHeight()

	start := tab.ScrollTop
	if start > len(tab.Entries) {
		start = len(tab.Entries)
	}
	end := start + height
	if end > len(tab.Entries) {
		end = len(tab.Entries)
	}
	rows := tab.Entries[start:end]
	marked := make([]bool, len(rows))
	for i, e := range rows {
		marked[i] = tab.IsMarked(e.Name)
	}

	v := View{
		Tab:      s.Active,
		Path:     tab.Path,
		Rows:     rows,
		Marked:   marked,
		Top:      start,
		Selected: -1,
		Total:    len(tab.Entries),
		Height:   height,
		Flags:    tab.Filter.Flags(),
		Status:   s.status(),
		IsError:  s.LastError != nil,
	}
	if len(tab.Entries) > 0 {
		v.Selected = tab.Selected
	}
	if s.Search != nil {
		v.Search = &SearchView{Query: s.Search.Query, NoMatch: s.Search.NoMatch}
	}
	return v
}

func (s *AppState) status() string {
	if s.LastError != nil {
		return s.LastError.Error()
	}
	return s.StatusMessage
}
