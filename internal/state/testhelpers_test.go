package state

import (
	"errors"
	"testing"

	fsutil "github.com/kk-code-lab/mfm/internal/fs"
)

// newTestSession loads dir from a fresh in-memory filesystem holding files.
// Paths ending in "/" become directories.
func newTestSession(t *testing.T, dir string, files ...string) (*AppState, *StateReducer, *fsutil.MemService) {
	t.Helper()
	mem := fsutil.NewMemService().AddDir(dir)
	for _, f := range files {
		if f[len(f)-1] == '/' {
			mem.AddDir(f)
		} else {
			mem.AddFile(f, false)
		}
	}

	state := NewAppState(dir, false)
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	if err := LoadDirectory(state, mem); err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	return state, NewStateReducer(mem), mem
}

func mustReduce(t *testing.T, r *StateReducer, state *AppState, actions ...Action) Effect {
	t.Helper()
	var effect Effect
	for _, a := range actions {
		var err error
		effect, err = r.Reduce(state, a)
		if err != nil {
			t.Fatalf("Reduce(%T): %v", a, err)
		}
	}
	return effect
}

func typeText(text string) []Action {
	actions := make([]Action, 0, len(text))
	for _, r := range text {
		actions = append(actions, InputCharAction{Char: r})
	}
	return actions
}

func fileNames(state *AppState) []string {
	out := make([]string, len(state.Files))
	for i, f := range state.Files {
		out[i] = f.Name
	}
	return out
}

func entries(names ...string) []FileEntry {
	out := make([]FileEntry, len(names))
	for i, n := range names {
		out[i] = FileEntry{Name: n, Path: "/test"}
	}
	return out
}

var errPermission = errors.New("permission denied")
