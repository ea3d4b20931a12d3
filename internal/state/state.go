package state

import (
	fsutil "github.com/kk-code-lab/mfm/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// AppState is the single source of truth for one browsing session. It is
// created once at startup and mutated in place by the StateReducer.
type AppState struct {
	// Directory snapshot
	CurrentPath string
	Files       []FileEntry // sorted directories-first by the directory service
	ShowHidden  bool

	// Viewport
	Cursor       Cursor
	ScreenWidth  int
	ScreenHeight int

	Selection Selection
	Input     InputBuffer

	Mode      Mode
	LastMode  Mode
	LastQuery string // last committed search query, repeated by n/N

	// Status is shown in the status bar while in normal mode.
	Status string

	// Error state
	LastError error
}

// NewAppState returns a session rooted at path. Files stay empty until the
// first LoadDirectory.
func NewAppState(path string, showHidden bool) *AppState {
	return &AppState{
		CurrentPath: path,
		ShowHidden:  showHidden,
		Mode:        ModeNormal,
		LastMode:    ModeNormal,
	}
}

// CurrentFile returns the entry under the cursor, or nil when the list is
// empty or the cursor was left past the end by a shrinking refresh.
func (s *AppState) CurrentFile() *FileEntry {
	pos := s.Cursor.Position
	if pos < 0 || pos >= len(s.Files) {
		return nil
	}
	return &s.Files[pos]
}

// VisibleRange returns the half-open index range of entries on screen.
func (s *AppState) VisibleRange() (start, end int) {
	start = s.Cursor.Offset
	if start < 0 {
		start = 0
	}
	end = start + ListRows(s.ScreenHeight)
	if end > len(s.Files) {
		end = len(s.Files)
	}
	if start > end {
		start = end
	}
	return start, end
}

// IsSelected reports whether entry is in the selection set.
func (s *AppState) IsSelected(entry FileEntry) bool {
	return s.Selection.Contains(entry)
}
