package state

import fsutil "github.com/kk-code-lab/mfm/internal/fs"

// Selection is an insertion-ordered set of entries keyed by (path, name). It
// may hold entries from several directories at once. The zero value is empty
// and ready to use.
type Selection struct {
	entries []FileEntry
	keys    map[fsutil.EntryKey]struct{}
}

// Toggle removes entry if present, otherwise appends it. It reports whether
// the entry is selected afterwards.
func (s *Selection) Toggle(entry FileEntry) bool {
	key := entry.Key()
	if _, ok := s.keys[key]; ok {
		delete(s.keys, key)
		for i, e := range s.entries {
			if e.Key() == key {
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
				break
			}
		}
		return false
	}
	if s.keys == nil {
		s.keys = make(map[fsutil.EntryKey]struct{})
	}
	s.keys[key] = struct{}{}
	s.entries = append(s.entries, entry)
	return true
}

func (s *Selection) Contains(entry FileEntry) bool {
	_, ok := s.keys[entry.Key()]
	return ok
}

func (s *Selection) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the selection in insertion order.
func (s *Selection) Entries() []FileEntry {
	return append([]FileEntry(nil), s.entries...)
}

func (s *Selection) Clear() {
	s.entries = nil
	s.keys = nil
}
