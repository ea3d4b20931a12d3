package state

import (
	"errors"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/mfm/internal/fs"
	"github.com/kk-code-lab/mfm/internal/search"
)

// ErrEmptyInput is returned when rename or create is committed with an empty
// buffer. The prompt stays open.
var ErrEmptyInput = errors.New("input is empty")

// NotFoundPrefix starts the status message shown after a failed search.
const NotFoundPrefix = "couldn't find "

// Effect is work a reduced action asks the application to perform outside
// the state machine.
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectOpenShell
	EffectOpenEditor
	EffectYankPath
)

func (e Effect) String() string {
	switch e {
	case EffectQuit:
		return "quit"
	case EffectOpenShell:
		return "shell"
	case EffectOpenEditor:
		return "editor"
	case EffectYankPath:
		return "yank"
	default:
		return "none"
	}
}

// StateReducer applies actions to an AppState.
type StateReducer struct {
	fs fsutil.DirectoryService
}

// NewStateReducer creates a reducer that performs filesystem work through svc.
func NewStateReducer(svc fsutil.DirectoryService) *StateReducer {
	return &StateReducer{fs: svc}
}

// Reduce applies action to state in place. Directory service failures never
// abort an action: the listing is refreshed regardless and the failures are
// returned joined for logging.
func (r *StateReducer) Reduce(state *AppState, action Action) (Effect, error) {
	if !acceptsAction(state.Mode, action) {
		return EffectNone, nil
	}

	mode := state.Mode
	next := nextMode(mode, action, contextFor(state))

	if mode == ModeNormal && next != ModeNormal {
		r.enterMode(state, next)
		return EffectNone, nil
	}

	switch a := action.(type) {

	// ===== PROMPTS =====

	case CommitAction:
		if next == mode {
			return EffectNone, ErrEmptyInput
		}
		state.Mode = next
		return EffectNone, r.commit(state, mode)

	case CancelAction:
		state.Mode = next
		if mode == ModeDelete {
			state.LastMode = ModeDelete
		}
		return EffectNone, nil

	case InputCharAction:
		state.Input.Insert(a.Char)
		return EffectNone, nil

	case InputBackspaceAction:
		state.Input.Backspace()
		return EffectNone, nil

	case InputDeleteAction:
		state.Input.Delete()
		return EffectNone, nil

	case InputClearAction:
		state.Input.Clear()
		return EffectNone, nil

	case InputMoveCursorAction:
		state.Input.MoveCursor(a.Direction)
		return EffectNone, nil

	// ===== NAVIGATION =====

	case NavigateUpAction:
		state.Cursor.MoveUp(len(state.Files), state.ScreenHeight)
		return EffectNone, nil

	case NavigateDownAction:
		state.Cursor.MoveDown(len(state.Files), state.ScreenHeight)
		return EffectNone, nil

	case NavigateHomeAction:
		state.Cursor.Home(len(state.Files), state.ScreenHeight)
		return EffectNone, nil

	case NavigateEndAction:
		state.Cursor.End(len(state.Files), state.ScreenHeight)
		return EffectNone, nil

	case EnterDirectoryAction:
		return EffectNone, r.descend(state)

	case GoUpAction:
		return EffectNone, r.ascend(state)

	case SearchNextAction:
		r.repeatSearch(state, search.Forward)
		return EffectNone, nil

	case SearchPrevAction:
		r.repeatSearch(state, search.Backward)
		return EffectNone, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.Cursor.keepVisible(state.ScreenHeight)
		return EffectNone, nil

	case ToggleHiddenFilesAction:
		state.ShowHidden = !state.ShowHidden
		state.Cursor.Reset()
		return EffectNone, r.refresh(state)

	case RefreshAction:
		err := r.refresh(state)
		state.Cursor.ClampUp(len(state.Files), state.ScreenHeight)
		return EffectNone, err

	// ===== SELECTION =====

	case ToggleSelectAction:
		file := state.CurrentFile()
		if file == nil {
			return EffectNone, nil
		}
		state.Selection.Toggle(*file)
		if state.Cursor.Position+1 < len(state.Files) {
			state.Cursor.MoveDown(len(state.Files), state.ScreenHeight)
		}
		return EffectNone, nil

	case MoveSelectionAction:
		return EffectNone, r.applyToSelection(state, r.fs.Move)

	case CopySelectionAction:
		return EffectNone, r.applyToSelection(state, r.fs.Copy)

	case ClearSelectionAction:
		state.Selection.Clear()
		return EffectNone, nil

	// ===== APPLICATION =====

	case OpenShellAction:
		return EffectOpenShell, nil

	case OpenEditorAction:
		if state.CurrentFile() == nil {
			return EffectNone, nil
		}
		return EffectOpenEditor, nil

	case YankPathAction:
		return EffectYankPath, nil

	case QuitAction:
		return EffectQuit, nil
	}

	return EffectNone, nil
}

func (r *StateReducer) enterMode(state *AppState, mode Mode) {
	state.Mode = mode
	state.LastMode = ModeNormal
	state.Input.Reset()

	switch mode {
	case ModeSearch:
		state.Status = ""
	case ModeRename:
		if file := state.CurrentFile(); file != nil {
			state.Input.Seed(file.Name)
		}
	}
}

func (r *StateReducer) commit(state *AppState, mode Mode) error {
	state.LastMode = mode
	text := state.Input.String()

	switch mode {
	case ModeSearch:
		state.LastQuery = text
		r.runSearch(state, text, search.Forward)
		return nil

	case ModeRename:
		var opErr error
		if file := state.CurrentFile(); file != nil {
			opErr = r.fs.Rename(state.CurrentPath, file.DiskName(), text)
		}
		return r.refreshKeepingCursor(state, opErr)

	case ModeCreate:
		var opErr error
		if name, isDir := splitCreateName(text); name == "" {
			opErr = ErrEmptyInput
		} else if isDir {
			opErr = r.fs.CreateDirectory(state.CurrentPath, name)
		} else {
			opErr = r.fs.CreateFile(state.CurrentPath, name)
		}
		return r.refreshKeepingCursor(state, opErr)

	case ModeDelete:
		var errs []error
		if state.Selection.Len() > 0 {
			for _, entry := range state.Selection.Entries() {
				errs = append(errs, r.fs.Delete(entry.Path, entry.DiskName()))
			}
			state.Selection.Clear()
		} else if file := state.CurrentFile(); file != nil {
			errs = append(errs, r.fs.Delete(state.CurrentPath, file.DiskName()))
		}
		saved := state.Cursor
		errs = append(errs, r.refresh(state))
		state.Cursor = saved
		state.Cursor.ClampUp(len(state.Files), state.ScreenHeight)
		return errors.Join(errs...)
	}
	return nil
}

// splitCreateName trims trailing separators; their presence asks for a directory.
func splitCreateName(text string) (string, bool) {
	name := strings.TrimRight(text, "/"+string(filepath.Separator))
	return name, name != text
}

// refreshKeepingCursor reloads the listing and restores the cursor exactly as
// it was, even if the entry under it moved.
func (r *StateReducer) refreshKeepingCursor(state *AppState, opErr error) error {
	saved := state.Cursor
	err := r.refresh(state)
	state.Cursor = saved
	return errors.Join(opErr, err)
}

func (r *StateReducer) runSearch(state *AppState, query string, dir search.Direction) {
	idx, ok := search.Find(state.Files, query, dir, state.Cursor.Position)
	if ok {
		state.Cursor.SetPosition(idx, len(state.Files), state.ScreenHeight)
		state.Status = ""
		return
	}
	if query != "" {
		state.Status = NotFoundPrefix + query
	}
}

func (r *StateReducer) repeatSearch(state *AppState, dir search.Direction) {
	if state.LastMode != ModeSearch {
		return
	}
	r.runSearch(state, state.LastQuery, dir)
}

func (r *StateReducer) applyToSelection(state *AppState, op func(FileEntry, string) error) error {
	if state.Selection.Len() == 0 {
		return nil
	}
	var errs []error
	for _, entry := range state.Selection.Entries() {
		errs = append(errs, op(entry, state.CurrentPath))
	}
	state.Selection.Clear()
	errs = append(errs, r.refresh(state))
	state.Cursor.ClampUp(len(state.Files), state.ScreenHeight)
	return errors.Join(errs...)
}

// refresh reloads the current directory. A failed listing leaves it empty.
func (r *StateReducer) refresh(state *AppState) error {
	if err := LoadDirectory(state, r.fs); err != nil {
		state.Files = nil
		return err
	}
	return nil
}

func (r *StateReducer) descend(state *AppState) error {
	file := state.CurrentFile()
	if file == nil || !file.IsDir {
		return nil
	}
	target, err := r.fs.ResolveAbsolute(filepath.Join(state.CurrentPath, file.DiskName()))
	if err != nil {
		return err
	}
	if err := LoadDirectory(state, r.fs, target); err != nil {
		return err
	}
	state.Cursor.Reset()
	return nil
}

func (r *StateReducer) ascend(state *AppState) error {
	parent := filepath.Dir(state.CurrentPath)
	if parent == state.CurrentPath {
		return nil
	}
	departed := filepath.Base(state.CurrentPath)
	if err := LoadDirectory(state, r.fs, parent); err != nil {
		return err
	}

	state.Cursor.Reset()
	for i, entry := range state.Files {
		if entry.HasName(departed) {
			state.Cursor.SetPosition(i, len(state.Files), state.ScreenHeight)
			break
		}
	}
	return nil
}
