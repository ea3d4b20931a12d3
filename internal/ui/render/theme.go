package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FileFg      tcell.Color
	DirectoryFg tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	CursorDirBg tcell.Color
	InputBg     tcell.Color
	InputFg     tcell.Color
	InputCurBg  tcell.Color
	InputCurFg  tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorYellow,
		FileFg:      tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		CursorBg:    tcell.ColorWhite,
		CursorFg:    tcell.ColorBlack,
		CursorDirBg: tcell.Color33,
		InputBg:     tcell.ColorDefault,
		InputFg:     tcell.ColorDefault,
		InputCurBg:  tcell.ColorWhite,
		InputCurFg:  tcell.ColorBlack,
	}
}

func (t ColorTheme) header() tcell.Style {
	return tcell.StyleDefault.Background(t.HeaderBg).Foreground(t.HeaderFg)
}

// entry returns the row style for a list entry. The row under the cursor is
// drawn inverted, directories keep their colour as the background.
func (t ColorTheme) entry(isDir, underCursor bool) tcell.Style {
	switch {
	case underCursor && isDir:
		return tcell.StyleDefault.Background(t.CursorDirBg).Foreground(tcell.ColorWhite)
	case underCursor:
		return tcell.StyleDefault.Background(t.CursorBg).Foreground(t.CursorFg)
	case isDir:
		return tcell.StyleDefault.Foreground(t.DirectoryFg)
	default:
		return tcell.StyleDefault.Foreground(t.FileFg)
	}
}

func (t ColorTheme) input() tcell.Style {
	return tcell.StyleDefault.Background(t.InputBg).Foreground(t.InputFg)
}

func (t ColorTheme) inputCursor() tcell.Style {
	return tcell.StyleDefault.Background(t.InputCurBg).Foreground(t.InputCurFg)
}
