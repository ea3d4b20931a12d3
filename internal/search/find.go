// Package search implements the wrap-around name search used by the browser.
package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Matches reports whether name contains query. Matching is case-sensitive and
// an empty query matches nothing.
func Matches(name, query string) bool {
	return query != "" && strings.Contains(name, query)
}

// Find returns the index of the first entry whose name contains query,
// scanning from start in direction dir and wrapping around the list once.
//
// Forward scans start+1..N-1 and then 0..start. Backward scans start-1..0 and
// then N-1..start. The entry at start is therefore examined last, so repeating
// a search advances to the next hit. A start outside the list is clamped.
func Find(entries []FileEntry, query string, dir Direction, start int) (int, bool) {
	n := len(entries)
	if n == 0 || query == "" {
		return 0, false
	}
	query = norm.NFC.String(query)

	if start < 0 {
		start = 0
	}
	if start >= n {
		start = n - 1
	}

	for step := 1; step <= n; step++ {
		var idx int
		if dir == Backward {
			idx = (start - step + n) % n
		} else {
			idx = (start + step) % n
		}
		if Matches(entries[idx].Name, query) {
			return idx, true
		}
	}
	return 0, false
}
