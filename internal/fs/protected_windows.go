//go:build windows

package fs

import "syscall"

const (
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// isProtectedEntry hides system junctions such as "Application Data" that
// cannot be listed even by their owner.
func isProtectedEntry(fullPath string) bool {
	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	const mask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&mask == mask
}
