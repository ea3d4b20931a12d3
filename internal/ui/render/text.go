package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// runeWidth returns the column width of ru, 0 for combining marks. Widths are
// memoised per renderer; rendering happens on one goroutine.
func (r *Renderer) runeWidth(ru rune) int {
	if w, ok := r.widths[ru]; ok {
		return w
	}
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	if r.widths == nil {
		r.widths = make(map[rune]int, 128)
	}
	r.widths[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.runeWidth(ru)
	}
	return width
}

// drawTextLine draws text from startX, keeping combining runes with their
// base rune, and returns the column after the last cell written.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && r.runeWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := r.runeWidth(mainc)
		if w == 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (r *Renderer) fillRow(fromX, y, toX int, style tcell.Style) {
	for x := fromX; x < toX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
