package state

import (
	"path/filepath"
	"sort"
	"strings"

	fsutil "github.com/kk-code-lab/rover/internal/fs"
)

func withSeparator(path string) string {
	sep := string(filepath.Separator)
	if path == "" || strings.HasSuffix(path, sep) {
		return path
	}
	return path + sep
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Current returns the selected entry or nil when the listing is empty.
func (t *Tab) Current() *FileEntry {
	if t.Selected < 0 || t.Selected >= len(t.Entries) {
		return nil
	}
	return &t.Entries[t.Selected]
}

func (t *Tab) indexOf(name string, dirOnly bool) int {
	for i, e := range t.Entries {
		if e.Name == name && (!dirOnly || e.IsDir) {
			return i
		}
	}
	return -1
}

// SetPath points the tab at path and re-lists it. With reset the cursor
// and scroll return to the top. On a listing error the tab shows nothing
// and the error is returned.
func (t *Tab) SetPath(l DirectoryLister, path string, reset bool, height int) error {
	t.Path = withSeparator(path)
	err := t.load(l)
	if reset {
		t.Selected, t.ScrollTop = 0, 0
	}
	t.Clamp(height)
	return err
}

func (t *Tab) load(l DirectoryLister) error {
	t.stale = false
	if l == nil {
		t.Entries = nil
		return nil
	}
	entries, err := l.List(t.Path, t.Filter)
	if err != nil {
		t.Entries = nil
		return err
	}
	t.Entries = entries
	t.pruneMarks(l)
	return nil
}

// Refresh re-lists the current path, keeping the selection on the same
// name when it still exists.
func (t *Tab) Refresh(l DirectoryLister, height int) error {
	name := ""
	if cur := t.Current(); cur != nil {
		name = cur.Name
	}
	err := t.load(l)
	if idx := t.indexOf(name, false); name != "" && idx >= 0 {
		t.Selected = idx
	}
	t.Clamp(height)
	return err
}

// ToggleFilter flips one filter bit and re-lists from the top.
func (t *Tab) ToggleFilter(l DirectoryLister, bit Filter, height int) error {
	t.Filter = t.Filter.Toggle(bit)
	return t.SetPath(l, t.Path, true, height)
}

// Clamp restores 0 <= Selected < len(Entries) and keeps the selection
// inside [ScrollTop, ScrollTop+height).
func (t *Tab) Clamp(height int) {
	if height < 1 {
		height = 1
	}
	n := len(t.Entries)
	if n == 0 {
		t.Selected, t.ScrollTop = 0, 0
		return
	}
	t.Selected = clampInt(t.Selected, 0, n-1)
	if t.Selected < t.ScrollTop {
		t.ScrollTop = t.Selected
	}
	if t.Selected >= t.ScrollTop+height {
		t.ScrollTop = t.Selected - height + 1
	}
	maxTop := n - height
	if maxTop < 0 {
		maxTop = 0
	}
	t.ScrollTop = clampInt(t.ScrollTop, 0, maxTop)
}

// MoveCursor steps the selection by one row, wrapping at either end.
func (t *Tab) MoveCursor(delta, height int) {
	n := len(t.Entries)
	if n == 0 {
		return
	}
	switch {
	case delta < 0 && t.Selected == 0:
		t.Selected = n - 1
		t.ScrollTop = n - height
	case delta > 0 && t.Selected == n-1:
		t.Selected, t.ScrollTop = 0, 0
	default:
		t.Selected += delta
	}
	t.Clamp(height)
}

// Jump moves the selection by delta rows without wrapping and shifts the
// scroll window by the same amount.
func (t *Tab) Jump(delta, height int) {
	n := len(t.Entries)
	if n == 0 {
		return
	}
	t.Selected = clampInt(t.Selected+delta, 0, n-1)
	if n > height {
		t.ScrollTop += delta
	}
	t.Clamp(height)
}

// Descend enters the selected directory. It reports false when the
// selection is not a directory.
func (t *Tab) Descend(l DirectoryLister, height int) (bool, error) {
	cur := t.Current()
	if cur == nil || !cur.IsDir {
		return false, nil
	}
	return true, t.SetPath(l, t.Path+cur.Name, true, height)
}

// Ascend moves to the parent directory and selects the directory just
// left, centring it when the listing overflows. At the root it does nothing.
func (t *Tab) Ascend(l DirectoryLister, height int) (bool, error) {
	clean := filepath.Clean(t.Path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return false, nil
	}
	child := filepath.Base(clean)
	if err := t.SetPath(l, parent, true, height); err != nil {
		return true, err
	}
	idx := t.indexOf(child, true)
	if idx < 0 {
		return true, nil
	}
	t.Selected = idx
	if len(t.Entries) > height {
		t.ScrollTop = idx - height/2
	}
	t.Clamp(height)
	return true, nil
}

// ===== MARKS =====

func (t *Tab) claimMarks() {
	if t.Marks == nil || t.MarkDir != t.Path {
		t.Marks = make(map[string]struct{})
		t.MarkDir = t.Path
	}
}

// IsMarked reports whether name is marked in the tab's current directory.
func (t *Tab) IsMarked(name string) bool {
	if t.MarkDir != t.Path {
		return false
	}
	_, ok := t.Marks[name]
	return ok
}

// ToggleMark flips the mark on name.
func (t *Tab) ToggleMark(name string) {
	t.claimMarks()
	if _, ok := t.Marks[name]; ok {
		delete(t.Marks, name)
		return
	}
	t.Marks[name] = struct{}{}
}

// InvertMarks flips the mark on every listed entry.
func (t *Tab) InvertMarks() {
	t.claimMarks()
	for _, e := range t.Entries {
		t.ToggleMark(e.Name)
	}
}

// MarkAll marks every listed entry.
func (t *Tab) MarkAll() {
	t.claimMarks()
	for _, e := range t.Entries {
		t.Marks[e.Name] = struct{}{}
	}
}

// ClearMarks drops all marks.
func (t *Tab) ClearMarks() {
	t.Marks = nil
	t.MarkDir = ""
}

// pruneMarks drops marks on names that left the directory. Entries the
// filter hides still exist, so they are checked against a full listing.
func (t *Tab) pruneMarks(l DirectoryLister) {
	if t.MarkDir != t.Path || len(t.Marks) == 0 {
		return
	}
	existing := t.Entries
	if all := fsutil.ShowFiles | fsutil.ShowDirs | fsutil.ShowHidden; t.Filter != all {
		full, err := l.List(t.Path, all)
		if err != nil {
			return
		}
		existing = full
	}
	present := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		present[e.Name] = struct{}{}
	}
	for name := range t.Marks {
		if _, ok := present[name]; !ok {
			delete(t.Marks, name)
		}
	}
}

// MarkedNames returns the marked names in byte order.
func (t *Tab) MarkedNames() []string {
	if t.MarkDir != t.Path || len(t.Marks) == 0 {
		return nil
	}
	names := make([]string, 0, len(t.Marks))
	for name := range t.Marks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
