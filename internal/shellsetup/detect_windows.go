//go:build windows

package shellsetup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// DetectParentShellName returns the lower-cased image name of the parent
// process without its .exe suffix, or "" when it cannot be queried.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(ppid))
	if err != nil {
		return ""
	}
	defer func() {
		_ = windows.CloseHandle(handle)
	}()

	image := ""
	for capacity := uint32(windows.MAX_PATH); capacity <= 32*1024; capacity *= 2 {
		buf := make([]uint16, capacity)
		n := capacity
		err := windows.QueryFullProcessImageName(handle, 0, &buf[0], &n)
		if err == nil {
			image = windows.UTF16ToString(buf[:n])
			break
		}
		if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
			return ""
		}
	}
	if image == "" {
		return ""
	}

	return strings.TrimSuffix(strings.ToLower(filepath.Base(image)), ".exe")
}
