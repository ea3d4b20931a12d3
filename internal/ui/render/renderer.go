package render

import (
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/mfm/internal/fs"
	statepkg "github.com/kk-code-lab/mfm/internal/state"
	"github.com/kk-code-lab/mfm/internal/textutil"
)

// ExecutableChecker decides whether an entry gets the executable marker.
type ExecutableChecker interface {
	IsExecutable(entry fsutil.Entry) bool
}

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	exec   ExecutableChecker
	widths map[rune]int
}

// NewRenderer creates a new renderer. exec may be nil, in which case no entry
// is marked executable.
func NewRenderer(screen tcell.Screen, exec ExecutableChecker) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		exec:   exec,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	if state == nil {
		r.screen.Show()
		return
	}

	w, h := r.screen.Size()
	r.drawHeader(state, w)
	r.drawFileList(state, w, h)
	r.drawStatusLine(state, w, h)
	if prompt, ok := promptFor(state); ok {
		r.drawPrompt(state, prompt, w, h)
	}

	r.screen.Show()
}

// drawHeader shows the current directory, keeping the tail of long paths.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	text := formatHeader(textutil.SanitizeTerminalText(state.CurrentPath))
	text = textutil.TruncateLeft(text, w)
	r.drawTextLine(0, 0, w, text, r.theme.header())
}

func (r *Renderer) drawFileList(state *statepkg.AppState, w, h int) {
	if len(state.Files) == 0 {
		r.drawTextLine(0, statepkg.ListTop, w, emptyPlaceholder, r.theme.entry(false, true))
		return
	}

	start, end := state.VisibleRange()
	lastRow := h - 1
	for i := start; i < end; i++ {
		y := statepkg.ListTop + i - start
		if y >= lastRow {
			break
		}
		entry := state.Files[i]
		style := r.theme.entry(entry.IsDir, i == state.Cursor.Position)

		marker := " "
		if state.IsSelected(entry) {
			marker = "+"
		}
		suffix := ""
		if r.exec != nil && !entry.IsDir && r.exec.IsExecutable(entry) {
			suffix = "*"
		}

		name := textutil.SanitizeTerminalText(entry.Name)
		nameWidth := w - r.measureTextWidth(marker) - r.measureTextWidth(suffix)
		name = textutil.TruncateToWidth(name, nameWidth)

		r.drawTextLine(0, y, w, marker+name+suffix, style)
	}
}

// drawStatusLine draws the status message on the left and the position
// counter on the right. The status message is only shown in normal mode.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 0 {
		return
	}
	style := r.theme.header()
	r.fillRow(0, y, w, style)

	pos := formatPosition(state)
	posWidth := r.measureTextWidth(pos)

	if state.Mode == statepkg.ModeNormal && state.Status != "" {
		status := textutil.SanitizeTerminalText(state.Status)
		status = textutil.TruncateToWidth(status, w-posWidth)
		r.drawTextLine(0, y, w, status, style)
	}

	x := w - posWidth
	if x < 0 {
		x = 0
	}
	r.drawTextLine(x, y, w-x, pos, style)
}

// drawPrompt draws the mode prompt followed by the input buffer, with the
// cell under the input cursor highlighted.
func (r *Renderer) drawPrompt(state *statepkg.AppState, prompt string, w, h int) {
	y := h - 1
	if y < 0 {
		return
	}
	prompt = textutil.SanitizeTerminalText(prompt)
	input := []rune(state.Input.String())
	cursor := state.Input.Cursor()

	x := r.drawTextLine(0, y, w, prompt, r.theme.input())
	before := textutil.SanitizeTerminalText(string(input[:cursor]))
	x = r.drawTextLine(x, y, w-x, before, r.theme.input())

	under := " "
	var after string
	if cursor < len(input) {
		under = textutil.SanitizeTerminalText(string(input[cursor]))
		after = textutil.SanitizeTerminalText(string(input[cursor+1:]))
	}
	if x < w {
		x = r.drawTextLine(x, y, w-x, under, r.theme.inputCursor())
	}
	if x < w && after != "" {
		x = r.drawTextLine(x, y, w-x, after, r.theme.input())
	}
	r.fillRow(x, y, w-r.measureTextWidth(formatPosition(state)), r.theme.input())
}
