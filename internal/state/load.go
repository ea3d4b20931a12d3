package state

import (
	"fmt"

	fsutil "github.com/kk-code-lab/mfm/internal/fs"
)

// LoadDirectory lists a directory into the provided AppState. Without a path
// argument the current directory is reloaded. On failure the state is left
// untouched.
func LoadDirectory(state *AppState, svc fsutil.DirectoryService, path ...string) error {
	dirPath := state.CurrentPath
	if len(path) > 0 {
		dirPath = path[0]
	}

	entries, err := svc.List(dirPath, state.ShowHidden)
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	state.CurrentPath = dirPath
	state.Files = entries
	return nil
}
