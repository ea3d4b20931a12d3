package fs

import (
	"fmt"
	"sort"
)

// DirectoryService lists and mutates directories on behalf of the browser.
// Every mutating call is best-effort: callers refresh afterwards whatever the
// outcome, so the returned error is only informational.
type DirectoryService interface {
	List(path string, includeHidden bool) ([]Entry, error)
	ResolveAbsolute(path string) (string, error)
	Rename(path, oldName, newName string) error
	Delete(path, name string) error
	CreateFile(path, name string) error
	CreateDirectory(path, name string) error
	Move(entry Entry, destination string) error
	Copy(entry Entry, destination string) error
	IsExecutable(entry Entry) bool
}

// IOError is returned by DirectoryService implementations for any failed
// listing or mutation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// SortEntries orders entries directories-first, then by name.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
}
