package state

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	fsutil "github.com/kk-code-lab/rover/internal/fs"
)

// fakeLister serves listings from memory. Keys are separator-terminated
// paths; a name ending in the separator is a directory.
type fakeLister struct {
	dirs  map[string][]string
	calls int
}

func (f *fakeLister) List(path string, filter Filter) ([]FileEntry, error) {
	f.calls++
	names, ok := f.dirs[path]
	if !ok {
		return nil, &fsutil.DirectoryUnreadableError{Path: path, Err: fmt.Errorf("missing")}
	}
	var dirs, files []FileEntry
	for _, n := range names {
		e := FileEntry{Name: strings.TrimSuffix(n, sep), Hidden: strings.HasPrefix(n, ".")}
		e.IsDir = strings.HasSuffix(n, sep)
		if !filter.Allows(e) {
			continue
		}
		if e.IsDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	return append(dirs, files...), nil
}

var sep = string(filepath.Separator)

func dirPath(parts ...string) string {
	return sep + strings.Join(parts, sep) + sep
}

func numbered(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	return names
}

// newTestState builds a state with every tab at path and the active tab
// listed. Screen height 14 gives a 10 row viewport.
func newTestState(t *testing.T, lister *fakeLister, path string) *AppState {
	t.Helper()
	var paths [TabCount]string
	for i := range paths {
		paths[i] = path
	}
	s := NewAppState(paths, lister, 80, 14)
	if s.LastError != nil {
		t.Fatalf("initial listing failed: %v", s.LastError)
	}
	return s
}

func reduce(t *testing.T, s *AppState, actions ...Action) {
	t.Helper()
	r := NewStateReducer()
	for _, a := range actions {
		if _, err := r.Reduce(s, a); err != nil {
			t.Fatalf("Reduce(%T) error: %v", a, err)
		}
	}
}

func selectedName(s *AppState) string {
	if cur := s.ActiveTab().Current(); cur != nil {
		return cur.Name
	}
	return ""
}

func assertWindow(t *testing.T, tab *Tab, height int) {
	t.Helper()
	n := len(tab.Entries)
	if n == 0 {
		if tab.Selected != 0 || tab.ScrollTop != 0 {
			t.Fatalf("empty tab has selected=%d top=%d", tab.Selected, tab.ScrollTop)
		}
		return
	}
	maxTop := n - height
	if maxTop < 0 {
		maxTop = 0
	}
	if tab.Selected < 0 || tab.Selected >= n {
		t.Fatalf("selected %d out of range [0,%d)", tab.Selected, n)
	}
	if tab.ScrollTop < 0 || tab.ScrollTop > maxTop {
		t.Fatalf("scrollTop %d out of range [0,%d]", tab.ScrollTop, maxTop)
	}
	if tab.Selected < tab.ScrollTop || tab.Selected >= tab.ScrollTop+height {
		t.Fatalf("selected %d outside window [%d,%d)", tab.Selected, tab.ScrollTop, tab.ScrollTop+height)
	}
}
