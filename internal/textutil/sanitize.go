// Package textutil prepares untrusted text, such as file names, for drawing
// in a terminal cell grid.
package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// formatLabels names the invisible formatting runes most likely to be used to
// disguise a file name. Other format runes are shown by code point.
var formatLabels = map[rune]string{
	'\u00ad': "SHY",
	'\u061c': "ALM",
	'\u180e': "MVS",
	'\u200b': "ZWSP",
	'\u200c': "ZWNJ",
	'\u200d': "ZWJ",
	'\u200e': "LRM",
	'\u200f': "RLM",
	'\u2028': "LSEP",
	'\u2029': "PSEP",
	'\u202a': "LRE",
	'\u202b': "RLE",
	'\u202c': "PDF",
	'\u202d': "LRO",
	'\u202e': "RLO",
	'\u2060': "WJ",
	'\u2066': "LRI",
	'\u2067': "RLI",
	'\u2068': "FSI",
	'\u2069': "PDI",
	'\ufeff': "BOM",
}

// SanitizeTerminalText replaces control characters so user-controlled text cannot
// inject terminal escape sequences when rendered. Tabs and line breaks become a
// single space so a name always occupies one row, and formatting runes are made
// visible as ⟪LABEL⟫.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, needsRewrite) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case isFormat(r):
			b.WriteString("⟪")
			b.WriteString(formatLabel(r))
			b.WriteString("⟫")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(r rune) bool {
	return unicode.IsControl(r) || isFormat(r)
}

func isFormat(r rune) bool {
	if _, ok := formatLabels[r]; ok {
		return true
	}
	return unicode.Is(unicode.Cf, r)
}

func formatLabel(r rune) string {
	if label, ok := formatLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("U+%04X", r)
}
