package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/mfm/internal/fs"
	statepkg "github.com/kk-code-lab/mfm/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 40
	testHeight = 10
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(testWidth, testHeight)
	t.Cleanup(screen.Fini)
	return screen
}

func loadState(t *testing.T, svc *fsutil.MemService, dir string) *statepkg.AppState {
	t.Helper()
	st := statepkg.NewAppState(dir, false)
	st.ScreenWidth = testWidth
	st.ScreenHeight = testHeight
	require.NoError(t, statepkg.LoadDirectory(st, svc))
	return st
}

func homeService() *fsutil.MemService {
	return fsutil.NewMemService().
		AddDir("/home/docs").
		AddFile("/home/notes.txt", false).
		AddFile("/home/run.sh", true)
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, combc, _, width := screen.GetContent(x, y)
		b.WriteRune(mainc)
		for _, c := range combc {
			b.WriteRune(c)
		}
		if width > 1 {
			x += width - 1
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func cellBackground(screen tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestRenderDrawsHeaderListAndPosition(t *testing.T) {
	screen := newTestScreen(t)
	svc := homeService()
	st := loadState(t, svc, "/home")

	NewRenderer(screen, svc).Render(st)

	assert.Equal(t, "/home =>", rowText(screen, 0))
	assert.Equal(t, "", rowText(screen, 1))
	assert.Equal(t, " docs", rowText(screen, 2))
	assert.Equal(t, " notes.txt", rowText(screen, 3))
	assert.Equal(t, " run.sh*", rowText(screen, 4))

	status := rowText(screen, testHeight-1)
	assert.True(t, strings.HasSuffix(status, " 1:3 [0]"), "status bar %q", status)
	mainc, _, _, _ := screen.GetContent(testWidth-len(" 1:3 [0] "), testHeight-1)
	assert.Equal(t, ' ', mainc)
	mainc, _, _, _ = screen.GetContent(testWidth-len(" 1:3 [0] ")+1, testHeight-1)
	assert.Equal(t, '1', mainc)
}

func TestRenderHighlightsCursorRow(t *testing.T) {
	screen := newTestScreen(t)
	svc := homeService()
	st := loadState(t, svc, "/home")
	st.Cursor.Position = 1
	theme := GetColorTheme()

	NewRenderer(screen, svc).Render(st)

	assert.Equal(t, theme.CursorBg, cellBackground(screen, 1, 3))
	assert.NotEqual(t, theme.CursorBg, cellBackground(screen, 1, 2))

	_, _, style, _ := screen.GetContent(1, 2)
	fg, _, _ := style.Decompose()
	assert.Equal(t, theme.DirectoryFg, fg)
}

func TestRenderMarksSelectedEntries(t *testing.T) {
	screen := newTestScreen(t)
	svc := homeService()
	st := loadState(t, svc, "/home")
	st.Selection.Toggle(st.Files[1])

	NewRenderer(screen, svc).Render(st)

	assert.Equal(t, "+notes.txt", rowText(screen, 3))
	assert.True(t, strings.HasSuffix(rowText(screen, testHeight-1), "[1]"))
}

func TestRenderWithoutExecutableChecker(t *testing.T) {
	screen := newTestScreen(t)
	st := loadState(t, homeService(), "/home")

	NewRenderer(screen, nil).Render(st)

	assert.Equal(t, " run.sh", rowText(screen, 4))
}

func TestRenderEmptyDirectoryPlaceholder(t *testing.T) {
	screen := newTestScreen(t)
	svc := fsutil.NewMemService().AddDir("/empty")
	st := loadState(t, svc, "/empty")

	NewRenderer(screen, svc).Render(st)

	assert.Equal(t, " empty", rowText(screen, 2))
	assert.Equal(t, GetColorTheme().CursorBg, cellBackground(screen, 1, 2))
	assert.True(t, strings.HasSuffix(rowText(screen, testHeight-1), " 1:0 [0]"))
}

func TestRenderStatusOnlyInNormalMode(t *testing.T) {
	screen := newTestScreen(t)
	svc := homeService()
	st := loadState(t, svc, "/home")
	st.Status = "couldn't find zzz"
	r := NewRenderer(screen, svc)

	r.Render(st)
	assert.True(t, strings.HasPrefix(rowText(screen, testHeight-1), "couldn't find zzz"))

	st.Mode = statepkg.ModeSearch
	r.Render(st)
	assert.False(t, strings.Contains(rowText(screen, testHeight-1), "couldn't find"))
}

func TestRenderPromptHighlightsInputCursor(t *testing.T) {
	screen := newTestScreen(t)
	svc := homeService()
	st := loadState(t, svc, "/home")
	st.Mode = statepkg.ModeSearch
	st.Input.Insert('a')
	st.Input.Insert('b')
	r := NewRenderer(screen, svc)
	theme := GetColorTheme()

	r.Render(st)
	row := rowText(screen, testHeight-1)
	assert.True(t, strings.HasPrefix(row, "search: ab"), "prompt row %q", row)
	promptLen := len("search: ")
	assert.Equal(t, theme.InputCurBg, cellBackground(screen, promptLen+2, testHeight-1))
	assert.NotEqual(t, theme.InputCurBg, cellBackground(screen, promptLen, testHeight-1))

	st.Input.MoveCursor("home")
	r.Render(st)
	assert.Equal(t, theme.InputCurBg, cellBackground(screen, promptLen, testHeight-1))
	mainc, _, _, _ := screen.GetContent(promptLen, testHeight-1)
	assert.Equal(t, 'a', mainc)
}

func TestRenderPrompts(t *testing.T) {
	tests := []struct {
		name          string
		mode          statepkg.Mode
		seed          string
		withSelection bool
		want          string
	}{
		{name: "rename", mode: statepkg.ModeRename, seed: "docs", want: "rename: docs"},
		{name: "create", mode: statepkg.ModeCreate, want: "create:"},
		{name: "delete current", mode: statepkg.ModeDelete, want: "delete docs? [y/n]"},
		{name: "delete selection", mode: statepkg.ModeDelete, withSelection: true, want: "delete selection? [y/n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			svc := homeService()
			st := loadState(t, svc, "/home")
			st.Mode = tt.mode
			st.Input.Seed(tt.seed)
			if tt.withSelection {
				st.Selection.Toggle(st.Files[2])
			}

			NewRenderer(screen, svc).Render(st)

			row := rowText(screen, testHeight-1)
			assert.True(t, strings.HasPrefix(row, tt.want), "prompt row %q", row)
		})
	}
}

func TestRenderScrolledViewport(t *testing.T) {
	screen := newTestScreen(t)
	svc := fsutil.NewMemService()
	for _, name := range []string{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9"} {
		svc.AddFile("/many/"+name, false)
	}
	st := loadState(t, svc, "/many")
	st.Cursor.Position = 8
	st.Cursor.Offset = 3

	NewRenderer(screen, svc).Render(st)

	assert.Equal(t, " a3", rowText(screen, 2))
	assert.Equal(t, " a9", rowText(screen, 8))
	assert.Equal(t, GetColorTheme().CursorBg, cellBackground(screen, 1, 7))
	assert.True(t, strings.HasSuffix(rowText(screen, testHeight-1), " 9:10 [0]"))
}

func TestRenderTruncatesAndSanitizesNames(t *testing.T) {
	screen := newTestScreen(t)
	long := strings.Repeat("x", testWidth+10)
	svc := fsutil.NewMemService().
		AddFile("/odd/"+long, false).
		AddFile("/odd/bad\x1b[31m", false)
	st := loadState(t, svc, "/odd")

	NewRenderer(screen, svc).Render(st)

	assert.Equal(t, " bad?[31m", rowText(screen, 2))
	assert.Equal(t, " "+strings.Repeat("x", testWidth-2)+"…", rowText(screen, 3))
}

func TestRenderKeepsTailOfLongPath(t *testing.T) {
	screen := newTestScreen(t)
	dir := "/" + strings.Repeat("d", testWidth) + "/project"
	svc := fsutil.NewMemService().AddDir(dir)
	st := loadState(t, svc, dir)

	NewRenderer(screen, svc).Render(st)

	header := rowText(screen, 0)
	assert.True(t, strings.HasPrefix(header, "…"), "header %q", header)
	assert.True(t, strings.HasSuffix(header, "/project =>"), "header %q", header)
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil, nil)
	assert.Equal(t, 8, r.measureTextWidth("file.txt"))
	assert.Equal(t, 4, r.measureTextWidth("你好"))
}
