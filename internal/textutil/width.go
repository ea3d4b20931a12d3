package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks text cut short by TruncateToWidth.
const Ellipsis = "…"

// DisplayWidth reports the printable width of text accounting for wide runes
// and grapheme clusters.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text to at most width columns, ending it with an
// ellipsis when anything was cut.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// TruncateLeft keeps the rightmost columns of text, prefixing an ellipsis when
// anything was cut. Used for paths where the tail matters most.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	budget := width - runewidth.StringWidth(Ellipsis)
	runes := []rune(text)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > budget {
			break
		}
		used += w
		start--
	}
	return Ellipsis + string(runes[start:])
}
