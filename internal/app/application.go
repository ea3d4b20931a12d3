package app

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/mfm/internal/fs"
	"github.com/kk-code-lab/mfm/internal/logging"
	statepkg "github.com/kk-code-lab/mfm/internal/state"
	inputui "github.com/kk-code-lab/mfm/internal/ui/input"
	renderui "github.com/kk-code-lab/mfm/internal/ui/render"
)

// Options configures a browsing session.
type Options struct {
	StartDir    string
	ShowHidden  bool
	Editor      string // overrides $VISUAL/$EDITOR when set
	Shell       string // overrides $SHELL when set
	LastDirFile string // where the final directory is written on quit; empty disables it

	// Runner starts the shell and editor. Defaults to a TTYRunner.
	Runner ProcessRunner
	// CopyText writes yanked paths. Defaults to the system clipboard.
	CopyText func(text string) error
}

// Application represents the running app.
type Application struct {
	screen      tcell.Screen
	state       *statepkg.AppState
	reducer     *statepkg.StateReducer
	renderer    *renderui.Renderer
	input       *inputui.InputHandler
	actionCh    chan statepkg.Action
	shouldQuit  bool
	runner      ProcessRunner
	copyText    func(string) error
	editorCmd   []string
	shellCmd    []string
	lastDirFile string
}

// NewApplication initialises screen and loads the start directory. The
// screen is finalised again when the directory cannot be read.
func NewApplication(screen tcell.Screen, svc fsutil.DirectoryService, opts Options) (*Application, error) {
	startDir, err := svc.ResolveAbsolute(opts.StartDir)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", opts.StartDir, err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialise terminal: %w", err)
	}

	state := statepkg.NewAppState(startDir, opts.ShowHidden)
	state.ScreenWidth, state.ScreenHeight = screen.Size()
	if err := statepkg.LoadDirectory(state, svc); err != nil {
		screen.Fini()
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = TTYRunner{}
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	editorCmd, ok := detectEditorCommand(opts.Editor)
	if !ok {
		logging.Warn("no editor found")
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:      screen,
		state:       state,
		reducer:     statepkg.NewStateReducer(svc),
		renderer:    renderui.NewRenderer(screen, svc),
		input:       inputHandler,
		actionCh:    actionCh,
		runner:      runner,
		copyText:    copyText,
		editorCmd:   editorCmd,
		shellCmd:    detectShellCommand(opts.Shell),
		lastDirFile: opts.LastDirFile,
	}

	logging.Info("session started",
		logging.String("dir", startDir),
		logging.Int("entries", len(state.Files)))
	return app, nil
}

// State exposes the session state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// CurrentPath returns the directory the session is showing.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
