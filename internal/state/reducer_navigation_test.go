package state

import (
	"testing"
)

func TestMoveCursorWrapsBothWays(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): numbered("f", 25)}}
	s := newTestState(t, lister, dirPath("w"))
	tab := s.ActiveTab()

	reduce(t, s, MoveCursorAction{Delta: -1})
	if tab.Selected != 24 || tab.ScrollTop != 15 {
		t.Fatalf("wrap up: selected=%d top=%d, want 24/15", tab.Selected, tab.ScrollTop)
	}

	reduce(t, s, MoveCursorAction{Delta: 1})
	if tab.Selected != 0 || tab.ScrollTop != 0 {
		t.Fatalf("wrap down: selected=%d top=%d, want 0/0", tab.Selected, tab.ScrollTop)
	}
}

func TestMoveCursorScrollsMinimally(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): numbered("f", 25)}}
	s := newTestState(t, lister, dirPath("w"))
	tab := s.ActiveTab()

	for i := 0; i < 10; i++ {
		reduce(t, s, MoveCursorAction{Delta: 1})
	}
	if tab.Selected != 10 || tab.ScrollTop != 1 {
		t.Fatalf("selected=%d top=%d, want 10/1", tab.Selected, tab.ScrollTop)
	}
	for i := 0; i < 10; i++ {
		reduce(t, s, MoveCursorAction{Delta: -1})
	}
	if tab.Selected != 0 || tab.ScrollTop != 0 {
		t.Fatalf("selected=%d top=%d, want 0/0", tab.Selected, tab.ScrollTop)
	}
}

func TestJumpClampsWithoutWrapping(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): numbered("f", 5)}}
	s := newTestState(t, lister, dirPath("w"))
	tab := s.ActiveTab()

	reduce(t, s, JumpAction{Direction: 1})
	if tab.Selected != 4 {
		t.Fatalf("jump down selected=%d, want 4", tab.Selected)
	}
	reduce(t, s, JumpAction{Direction: 1})
	if tab.Selected != 4 {
		t.Fatalf("second jump moved to %d", tab.Selected)
	}
	reduce(t, s, JumpAction{Direction: -1})
	if tab.Selected != 0 || tab.ScrollTop != 0 {
		t.Fatalf("jump up selected=%d top=%d", tab.Selected, tab.ScrollTop)
	}
}

func TestJumpShiftsScrollWindow(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): numbered("f", 100)}}
	s := newTestState(t, lister, dirPath("w"))
	tab := s.ActiveTab()

	reduce(t, s, MoveCursorAction{Delta: 1}, MoveCursorAction{Delta: 1}, JumpAction{Direction: 1})
	if tab.Selected != 12 || tab.ScrollTop != 10 {
		t.Fatalf("selected=%d top=%d, want 12/10", tab.Selected, tab.ScrollTop)
	}

	s.JumpSize = 3
	reduce(t, s, JumpAction{Direction: -1})
	if tab.Selected != 9 || tab.ScrollTop != 7 {
		t.Fatalf("selected=%d top=%d, want 9/7", tab.Selected, tab.ScrollTop)
	}
}

func TestDescendThenAscendReturnsToChild(t *testing.T) {
	root := dirPath("r")
	names := append([]string{"a/", "b/", "c/", "d/", "e/", "f/", "g/", "h/", "i/", "j/", "k/", "l/", "target/"}, numbered("z", 20)...)
	lister := &fakeLister{dirs: map[string][]string{
		root:                   names,
		dirPath("r", "target"): {"inner.txt"},
	}}
	s := newTestState(t, lister, root)
	tab := s.ActiveTab()

	for selectedName(s) != "target" {
		reduce(t, s, MoveCursorAction{Delta: 1})
	}
	reduce(t, s, DescendAction{})
	if tab.Path != dirPath("r", "target") {
		t.Fatalf("path after descend = %q", tab.Path)
	}
	if tab.Selected != 0 || tab.ScrollTop != 0 || selectedName(s) != "inner.txt" {
		t.Fatalf("descend did not reset cursor: %d/%d %q", tab.Selected, tab.ScrollTop, selectedName(s))
	}

	reduce(t, s, AscendAction{})
	if tab.Path != root {
		t.Fatalf("path after ascend = %q, want %q", tab.Path, root)
	}
	if selectedName(s) != "target" {
		t.Fatalf("selected %q after ascend, want target", selectedName(s))
	}
	// idx 12 centred in a 10 row window.
	if tab.ScrollTop != 7 {
		t.Fatalf("scrollTop = %d, want 7", tab.ScrollTop)
	}
	assertWindow(t, tab, s.ViewportHeight())
}

func TestDescendIgnoresFiles(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"file.txt"}}}
	s := newTestState(t, lister, dirPath("w"))
	calls := lister.calls

	reduce(t, s, DescendAction{})
	if s.ActiveTab().Path != dirPath("w") || lister.calls != calls {
		t.Fatalf("descend on a file changed state: path=%q calls=%d", s.ActiveTab().Path, lister.calls)
	}
}

func TestAscendAtRootIsNoop(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{sep: {"usr/", "etc/"}}}
	s := newTestState(t, lister, sep)
	reduce(t, s, MoveCursorAction{Delta: 1}, AscendAction{})
	if s.ActiveTab().Path != sep || s.ActiveTab().Selected != 1 {
		t.Fatalf("ascend at root changed state: %q %d", s.ActiveTab().Path, s.ActiveTab().Selected)
	}
}

func TestAscendIntoHiddenChildWithoutHiddenFilter(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{
		dirPath("h"):           {".cache/", "docs/", "notes.txt"},
		dirPath("h", ".cache"): {"x"},
	}}
	s := newTestState(t, lister, dirPath("h", ".cache"))
	reduce(t, s, AscendAction{})
	if s.ActiveTab().Selected != 0 || selectedName(s) != "docs" {
		t.Fatalf("selected %q, want first entry docs", selectedName(s))
	}
}

func TestSwitchTabKeepsPerTabState(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): numbered("f", 30)}}
	s := newTestState(t, lister, dirPath("w"))
	if s.Active != 1 {
		t.Fatalf("initial active tab = %d, want 1", s.Active)
	}

	reduce(t, s, MoveCursorAction{Delta: 1}, MoveCursorAction{Delta: 1})
	reduce(t, s, SwitchTabAction{Tab: 4})
	if s.Active != 4 || s.ActiveTab().Selected != 0 {
		t.Fatalf("tab 4: active=%d selected=%d", s.Active, s.ActiveTab().Selected)
	}
	reduce(t, s, JumpAction{Direction: 1})
	reduce(t, s, SwitchTabAction{Tab: 1})
	if s.ActiveTab().Selected != 2 {
		t.Fatalf("tab 1 selection lost: %d", s.ActiveTab().Selected)
	}
	reduce(t, s, SwitchTabAction{Tab: 4})
	if s.ActiveTab().Selected != 10 {
		t.Fatalf("tab 4 selection lost: %d", s.ActiveTab().Selected)
	}

	reduce(t, s, SwitchTabAction{Tab: TabCount})
	if s.Active != 4 {
		t.Fatalf("out of range tab switched to %d", s.Active)
	}
}

func TestSwitchTabRelistsWithoutReset(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"a", "b", "c"}}}
	s := newTestState(t, lister, dirPath("w"))
	reduce(t, s, MoveCursorAction{Delta: 1}, SwitchTabAction{Tab: 2})

	lister.dirs[dirPath("w")] = []string{"a", "b", "c", "d"}
	reduce(t, s, SwitchTabAction{Tab: 1})
	if len(s.ActiveTab().Entries) != 4 || s.ActiveTab().Selected != 1 {
		t.Fatalf("entries=%d selected=%d", len(s.ActiveTab().Entries), s.ActiveTab().Selected)
	}
}

func TestGoHome(t *testing.T) {
	home := dirPath("home", "me")
	lister := &fakeLister{dirs: map[string][]string{
		dirPath("w"): {"a", "b"},
		home:         {"x"},
	}}
	orig := userHomeDirFn
	userHomeDirFn = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDirFn = orig })

	s := newTestState(t, lister, dirPath("w"))
	reduce(t, s, MoveCursorAction{Delta: 1}, GoHomeAction{})
	if s.ActiveTab().Path != home || s.ActiveTab().Selected != 0 {
		t.Fatalf("path=%q selected=%d", s.ActiveTab().Path, s.ActiveTab().Selected)
	}
}

func TestResizePreservesCursorsAndReclamps(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): numbered("f", 40)}}
	s := newTestState(t, lister, dirPath("w"))

	reduce(t, s, SwitchTabAction{Tab: 3})
	for i := 0; i < 25; i++ {
		reduce(t, s, MoveCursorAction{Delta: 1})
	}
	reduce(t, s, SwitchTabAction{Tab: 1}, JumpAction{Direction: 1}, JumpAction{Direction: 1})

	reduce(t, s, ResizeAction{Width: 80, Height: 8})
	for _, idx := range []int{1, 3} {
		tab := s.Tabs[idx]
		assertWindow(t, tab, s.ViewportHeight())
	}
	if s.Tabs[1].Selected != 20 || s.Tabs[3].Selected != 25 {
		t.Fatalf("cursors moved: %d %d", s.Tabs[1].Selected, s.Tabs[3].Selected)
	}

	reduce(t, s, ResizeAction{Width: 80, Height: 2})
	if s.ViewportHeight() != 1 {
		t.Fatalf("viewport height = %d, want 1", s.ViewportHeight())
	}
	assertWindow(t, s.Tabs[3], 1)
}

func TestListingErrorDegradesToEmptyTab(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"gone/"}}}
	s := newTestState(t, lister, dirPath("w"))

	_, err := NewStateReducer().Reduce(s, DescendAction{})
	if err == nil {
		t.Fatalf("expected listing error")
	}
	tab := s.ActiveTab()
	if len(tab.Entries) != 0 || tab.Selected != 0 || tab.ScrollTop != 0 {
		t.Fatalf("tab not empty after failure: %+v", tab)
	}
	if got := s.View().Status; got == "" {
		t.Fatalf("status line should carry the error")
	}

	reduce(t, s, MoveCursorAction{Delta: 1}, JumpAction{Direction: 1}, SearchStartAction{})
	if s.Search != nil {
		t.Fatalf("search started on an empty listing")
	}
}
