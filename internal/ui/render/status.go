package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/mfm/internal/state"
)

const emptyPlaceholder = " empty "

// formatPosition renders the right-hand side of the status bar.
func formatPosition(state *statepkg.AppState) string {
	return fmt.Sprintf(" %d:%d [%d] ", state.Cursor.Position+1, len(state.Files), state.Selection.Len())
}

// formatHeader renders the current directory line.
func formatHeader(path string) string {
	return path + " =>"
}

// promptFor returns the prompt text shown before the input buffer, or false
// when the mode has no prompt.
func promptFor(state *statepkg.AppState) (string, bool) {
	switch state.Mode {
	case statepkg.ModeSearch:
		return "search: ", true
	case statepkg.ModeRename:
		return "rename: ", true
	case statepkg.ModeCreate:
		return "create: ", true
	case statepkg.ModeDelete:
		if state.Selection.Len() > 0 {
			return "delete selection? [y/n] ", true
		}
		name := ""
		if file := state.CurrentFile(); file != nil {
			name = file.Name
		}
		return fmt.Sprintf("delete %s? [y/n] ", name), true
	default:
		return "", false
	}
}
