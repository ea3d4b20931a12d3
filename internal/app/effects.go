package app

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kk-code-lab/mfm/internal/logging"
	statepkg "github.com/kk-code-lab/mfm/internal/state"
)

var errNoEditor = errors.New("no editor configured")

func (app *Application) runEffect(effect statepkg.Effect) {
	switch effect {
	case statepkg.EffectQuit:
		app.shouldQuit = true
	case statepkg.EffectYankPath:
		app.handleClipboard()
	case statepkg.EffectOpenShell:
		app.runAndRefresh(app.shellCmd)
	case statepkg.EffectOpenEditor:
		file := app.state.CurrentFile()
		if file == nil {
			return
		}
		if len(app.editorCmd) == 0 {
			app.state.LastError = errNoEditor
			logging.Warn("cannot open editor", logging.Err(errNoEditor))
			return
		}
		app.runAndRefresh(commandWithArg(app.editorCmd, file.FullPath()))
	}
}

// handleClipboard copies the path of the entry under the cursor, or the
// current directory when it is empty.
func (app *Application) handleClipboard() {
	target := app.state.CurrentPath
	if file := app.state.CurrentFile(); file != nil {
		target = file.FullPath()
	}
	text := normalizeClipboardPath(target, runtime.GOOS)
	if err := app.copyText(text); err != nil {
		app.state.LastError = fmt.Errorf("clipboard: %w", err)
		logging.Warn("cannot copy path", logging.String("path", text), logging.Err(err))
	}
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

// runAndRefresh hands the terminal to args and reloads the listing once it
// exits, whether it succeeded or not.
func (app *Application) runAndRefresh(args []string) {
	if err := app.runInteractive(args); err != nil {
		app.state.LastError = err
		logging.Warn("external command failed",
			logging.String("command", strings.Join(args, " ")), logging.Err(err))
	}
	app.dispatch(statepkg.RefreshAction{})
}

func (app *Application) runInteractive(args []string) (err error) {
	if len(args) == 0 {
		return errors.New("no command to run")
	}
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		if resumeErr := app.screen.Resume(); resumeErr != nil && err == nil {
			err = fmt.Errorf("failed to resume screen: %w", resumeErr)
		}
		if flushErr := flushConsoleInput(); flushErr != nil {
			logging.Debug("cannot flush console input", logging.Err(flushErr))
		}
		app.screen.Sync()
		app.state.ScreenWidth, app.state.ScreenHeight = app.screen.Size()
	}()

	return app.runner.RunInteractive(app.state.CurrentPath, args)
}

func commandWithArg(base []string, arg string) []string {
	args := make([]string, len(base)+1)
	copy(args, base)
	args[len(base)] = arg
	return args
}
