package state

import (
	"errors"
	"testing"
)

func stubEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := getenvFn
	getenvFn = func(key string) string { return env[key] }
	t.Cleanup(func() { getenvFn = orig })
}

func TestSpawnPagerOnFile(t *testing.T) {
	stubEnv(t, map[string]string{"PAGER": "less -R"})
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"sub/", "notes.txt"}}}
	s := newTestState(t, lister, dirPath("w"))

	reduce(t, s, MoveCursorAction{Delta: 1}, SpawnAction{Kind: SpawnPager})
	req := s.TakeSpawnRequest()
	if req == nil {
		t.Fatalf("expected spawn request")
	}
	if req.Program != "less -R" || req.File != "notes.txt" || req.Dir != dirPath("w") || req.Kind != SpawnPager {
		t.Fatalf("unexpected request %+v", *req)
	}
	if s.TakeSpawnRequest() != nil {
		t.Fatalf("request not cleared")
	}
}

func TestSpawnRejectsDirectories(t *testing.T) {
	stubEnv(t, map[string]string{"PAGER": "less", "EDITOR": "vi"})
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"sub/", "notes.txt"}}}
	s := newTestState(t, lister, dirPath("w"))

	reduce(t, s, SpawnAction{Kind: SpawnPager}, SpawnAction{Kind: SpawnEditor})
	if req := s.TakeSpawnRequest(); req != nil {
		t.Fatalf("spawned on a directory: %+v", *req)
	}
}

func TestSpawnShellIgnoresSelection(t *testing.T) {
	stubEnv(t, map[string]string{"SHELL": "/bin/sh"})
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"sub/"}}}
	s := newTestState(t, lister, dirPath("w"))

	reduce(t, s, SpawnAction{Kind: SpawnShell})
	req := s.TakeSpawnRequest()
	if req == nil || req.File != "" || req.Program != "/bin/sh" || req.Dir != dirPath("w") {
		t.Fatalf("unexpected shell request %+v", req)
	}
}

func TestSpawnWithoutProgram(t *testing.T) {
	stubEnv(t, map[string]string{"EDITOR": "  "})
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"a.txt"}}}
	s := newTestState(t, lister, dirPath("w"))

	_, err := NewStateReducer().Reduce(s, SpawnAction{Kind: SpawnEditor})
	if !errors.Is(err, ErrSpawnUnavailable) {
		t.Fatalf("error = %v, want ErrSpawnUnavailable", err)
	}
	if s.TakeSpawnRequest() != nil {
		t.Fatalf("request emitted without a program")
	}
	if s.View().Status != "" {
		t.Fatalf("missing program should not reach the status line")
	}
}

func TestSpawnKindEnvVars(t *testing.T) {
	tests := map[SpawnKind]string{SpawnShell: "SHELL", SpawnPager: "PAGER", SpawnEditor: "EDITOR"}
	for kind, want := range tests {
		if got := kind.EnvVar(); got != want {
			t.Fatalf("%v.EnvVar() = %q, want %q", kind, got, want)
		}
	}
}

func TestRefreshKeepsSelectionByName(t *testing.T) {
	lister := &fakeLister{dirs: map[string][]string{dirPath("w"): {"b", "c", "d"}}}
	s := newTestState(t, lister, dirPath("w"))
	reduce(t, s, MoveCursorAction{Delta: 1})

	lister.dirs[dirPath("w")] = []string{"a", "b", "c", "d"}
	reduce(t, s, RefreshAction{Path: dirPath("w")})
	if selectedName(s) != "c" {
		t.Fatalf("selected %q, want c", selectedName(s))
	}

	lister.dirs[dirPath("w")] = []string{"a", "b"}
	reduce(t, s, RefreshAction{Path: dirPath("w")})
	if s.ActiveTab().Selected != 1 {
		t.Fatalf("selected %d after removal, want clamp to 1", s.ActiveTab().Selected)
	}

	reduce(t, s, RefreshAction{Path: dirPath("elsewhere")})
	if len(s.ActiveTab().Entries) != 2 {
		t.Fatalf("unrelated refresh changed the listing")
	}
}
