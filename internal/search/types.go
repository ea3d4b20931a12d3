package search

import (
	fsutil "github.com/kk-code-lab/mfm/internal/fs"
)

type FileEntry = fsutil.Entry

// Direction selects which way Find scans from the starting row.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
