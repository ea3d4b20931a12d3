//go:build !windows

package shellsetup

import (
	"os"
	"strconv"
	"strings"
)

// DetectParentShellName reads the parent's command name from procfs. It
// returns "" where procfs is unavailable.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	comm, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm")
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(string(comm)), "-")
}
