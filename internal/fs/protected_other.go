//go:build !windows

package fs

func isProtectedEntry(string) bool {
	return false
}
