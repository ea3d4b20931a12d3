package fs

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry represents a single file or directory shown in a listing.
type Entry struct {
	Name    string // display name (NFC), no trailing separator
	RawName string // name as stored on disk; empty when identical to Name
	Path    string // absolute path of the containing directory
	IsDir   bool
}

// EntryKey identifies an entry independently of the listing it came from.
type EntryKey struct {
	Path string
	Name string
}

// DiskName returns the name every filesystem call must use.
func (e Entry) DiskName() string {
	if e.RawName != "" {
		return e.RawName
	}
	return e.Name
}

// Key returns the (containing path, on-disk name) identity of the entry.
func (e Entry) Key() EntryKey {
	return EntryKey{Path: e.Path, Name: e.DiskName()}
}

// FullPath joins the containing directory and the on-disk name.
func (e Entry) FullPath() string {
	return filepath.Join(e.Path, e.DiskName())
}

// HasName reports whether name refers to this entry, comparing both sides
// in NFC so composed and decomposed spellings agree.
func (e Entry) HasName(name string) bool {
	return e.DiskName() == name || e.Name == norm.NFC.String(name)
}

// IsHidden reports whether the entry is a dotfile.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// IsHidden reports whether name should be hidden unless hidden files are shown.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
