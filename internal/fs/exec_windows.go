//go:build windows

package fs

import (
	"path/filepath"
	"strings"
)

var executableExtensions = map[string]struct{}{
	".bat": {},
	".cmd": {},
	".com": {},
	".exe": {},
	".ps1": {},
}

// isExecutable uses the file extension since Windows has no execute bit.
func isExecutable(path string) bool {
	_, ok := executableExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
