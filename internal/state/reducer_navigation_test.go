package state

import (
	"testing"
)

// ===== NAVIGATION TESTS =====

func TestNavigateScenario(t *testing.T) {
	state, reducer, _ := newTestSession(t, "/test", "/test/a.txt", "/test/b.txt", "/test/c.txt")

	mustReduce(t, reducer, state, NavigateDownAction{})
	if state.Cursor.Position != 1 {
		t.Fatalf("after down: %d, want 1", state.Cursor.Position)
	}
	mustReduce(t, reducer, state, NavigateUpAction{}, NavigateUpAction{})
	if state.Cursor.Position != 2 {
		t.Fatalf("after up twice: %d, want 2", state.Cursor.Position)
	}

	mustReduce(t, reducer, state, NavigateHomeAction{})
	if state.Cursor.Position != 0 {
		t.Fatalf("home: %d", state.Cursor.Position)
	}
	mustReduce(t, reducer, state, NavigateEndAction{})
	if state.Cursor.Position != 2 {
		t.Fatalf("end: %d", state.Cursor.Position)
	}
}

func TestNavigateEmptyDirectory(t *testing.T) {
	state, reducer, _ := newTestSession(t, "/empty")

	mustReduce(t, reducer, state, NavigateDownAction{}, NavigateUpAction{}, NavigateEndAction{})
	if state.Cursor != (Cursor{}) {
		t.Fatalf("cursor moved in empty directory: %+v", state.Cursor)
	}
	if state.CurrentFile() != nil {
		t.Fatalf("CurrentFile should be nil for empty directory")
	}
}

func TestEnterDirectoryAndGoUp(t *testing.T) {
	state, reducer, _ := newTestSession(t, "/home",
		"/home/alpha/", "/home/beta/", "/home/beta/inner.txt", "/home/zeta.txt")

	mustReduce(t, reducer, state, NavigateDownAction{}, EnterDirectoryAction{})
	if state.CurrentPath != "/home/beta" {
		t.Fatalf("CurrentPath = %q, want /home/beta", state.CurrentPath)
	}
	if state.Cursor != (Cursor{}) {
		t.Fatalf("cursor not reset on descend: %+v", state.Cursor)
	}
	if got := fileNames(state); len(got) != 1 || got[0] != "inner.txt" {
		t.Fatalf("files = %v", got)
	}

	mustReduce(t, reducer, state, GoUpAction{})
	if state.CurrentPath != "/home" {
		t.Fatalf("CurrentPath = %q, want /home", state.CurrentPath)
	}
	if state.Cursor.Position != 1 {
		t.Fatalf("expected departed directory to be re-selected, got %d", state.Cursor.Position)
	}
}

func TestEnterDirectoryOnFileIsNoop(t *testing.T) {
	state, reducer, _ := newTestSession(t, "/home", "/home/file.txt")

	mustReduce(t, reducer, state, EnterDirectoryAction{})
	if state.CurrentPath != "/home" {
		t.Fatalf("descended into a file: %q", state.CurrentPath)
	}
}

func TestGoUpAtRootIsNoop(t *testing.T) {
	state, reducer, _ := newTestSession(t, "/", "/etc/", "/usr/")
	state.Cursor.Position = 1

	mustReduce(t, reducer, state, GoUpAction{})
	if state.CurrentPath != "/" || state.Cursor.Position != 1 {
		t.Fatalf("root ascend changed state: %q %+v", state.CurrentPath, state.Cursor)
	}
}

func TestGoUpReselectFallsBackToTop(t *testing.T) {
	state, reducer, mem := newTestSession(t, "/a", "/a/b/", "/a/c/")
	mustReduce(t, reducer, state, NavigateDownAction{}, EnterDirectoryAction{})
	if state.CurrentPath != "/a/c" {
		t.Fatalf("CurrentPath = %q", state.CurrentPath)
	}

	// The departed directory disappears while we are inside it.
	if err := mem.Rename("/a", "c", "d"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	mustReduce(t, reducer, state, GoUpAction{})
	if state.Cursor != (Cursor{}) {
		t.Fatalf("expected cursor reset, got %+v", state.Cursor)
	}
}

func TestEnterDirectoryFailureKeepsState(t *testing.T) {
	state, reducer, mem := newTestSession(t, "/a", "/a/locked/", "/a/file")
	mem.FailOn("list", "/a/locked", errPermission)

	_, err := reducer.Reduce(state, EnterDirectoryAction{})
	if err == nil {
		t.Fatalf("expected listing error")
	}
	if state.CurrentPath != "/a" || len(state.Files) != 2 {
		t.Fatalf("failed descend changed state: %q %v", state.CurrentPath, fileNames(state))
	}
}

func TestToggleHiddenFilesResetsCursor(t *testing.T) {
	state, reducer, _ := newTestSession(t, "/h", "/h/.dot", "/h/a", "/h/b")
	mustReduce(t, reducer, state, NavigateDownAction{})

	mustReduce(t, reducer, state, ToggleHiddenFilesAction{})
	if !state.ShowHidden {
		t.Fatalf("ShowHidden not toggled")
	}
	if got := fileNames(state); len(got) != 3 || got[0] != ".dot" {
		t.Fatalf("files = %v", got)
	}
	if state.Cursor != (Cursor{}) {
		t.Fatalf("cursor = %+v, want reset", state.Cursor)
	}

	mustReduce(t, reducer, state, ToggleHiddenFilesAction{})
	if got := fileNames(state); len(got) != 2 {
		t.Fatalf("hidden entries still listed: %v", got)
	}
}

func TestRefreshClampsCursor(t *testing.T) {
	state, reducer, mem := newTestSession(t, "/r", "/r/a", "/r/b", "/r/c")
	mustReduce(t, reducer, state, NavigateEndAction{})

	if err := mem.Delete("/r", "c"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	mustReduce(t, reducer, state, RefreshAction{})
	if state.Cursor.Position != 1 {
		t.Fatalf("cursor = %d, want 1", state.Cursor.Position)
	}
}

func TestRefreshListingFailureEmptiesFiles(t *testing.T) {
	state, reducer, mem := newTestSession(t, "/r", "/r/a")
	mem.FailOn("list", "/r", errPermission)

	if _, err := reducer.Reduce(state, RefreshAction{}); err == nil {
		t.Fatalf("expected error")
	}
	if len(state.Files) != 0 || state.Cursor != (Cursor{}) {
		t.Fatalf("expected empty listing, got %v %+v", fileNames(state), state.Cursor)
	}
}

func TestResizeKeepsCursorVisible(t *testing.T) {
	state := NewAppState("/t", false)
	state.Files = entries("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	state.ScreenHeight = 24
	state.Cursor = Cursor{Position: 9, Offset: 0}

	reducer := NewStateReducer(nil)
	mustReduce(t, reducer, state, ResizeAction{Width: 40, Height: 6})
	if state.ScreenWidth != 40 || state.ScreenHeight != 6 {
		t.Fatalf("size not stored")
	}
	start, end := state.VisibleRange()
	if state.Cursor.Position < start || state.Cursor.Position >= end {
		t.Fatalf("cursor %d outside visible range [%d,%d)", state.Cursor.Position, start, end)
	}
}
