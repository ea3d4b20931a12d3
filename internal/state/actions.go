package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type NavigateHomeAction struct{}
type NavigateEndAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}
type RefreshAction struct{}

// ===== MODE ACTIONS =====

type SearchStartAction struct{}
type RenameStartAction struct{}
type CreateStartAction struct{}
type DeleteStartAction struct{}

// CommitAction confirms the active prompt (Enter, or y/d in delete mode).
type CommitAction struct{}

// CancelAction leaves the active prompt without applying it.
type CancelAction struct{}

type SearchNextAction struct{}
type SearchPrevAction struct{}

// ===== INPUT BUFFER ACTIONS =====

type InputCharAction struct {
	Char rune
}
type InputBackspaceAction struct{}
type InputDeleteAction struct{}
type InputClearAction struct{}
type InputMoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}

// ===== SELECTION ACTIONS =====

type ToggleSelectAction struct{}
type MoveSelectionAction struct{}
type CopySelectionAction struct{}
type ClearSelectionAction struct{}

// ===== APPLICATION ACTIONS =====

type OpenShellAction struct{}
type OpenEditorAction struct{}
type YankPathAction struct{}
type QuitAction struct{}
