package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mfm/internal/lastdir"
	"github.com/kk-code-lab/mfm/internal/logging"
	statepkg "github.com/kk-code-lab/mfm/internal/state"
)

// Run processes terminal events until the user quits or the screen is
// finalised. Everything happens on the calling goroutine.
func (app *Application) Run() error {
	app.renderer.Render(app.state)

	for !app.shouldQuit {
		ev := app.screen.PollEvent()
		if ev == nil {
			break
		}
		if app.handleEvent(ev) {
			app.processActions()
			app.renderer.Render(app.state)
		}
	}

	if !app.shouldQuit {
		return nil
	}
	return app.saveLastDir()
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		app.input.ProcessEvent(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// processActions drains every queued action in order.
func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.dispatch(action)
		default:
			return
		}
	}
}

// dispatch reduces action and runs the resulting effect. Reducer errors are
// informational: they are logged and kept in LastError.
func (app *Application) dispatch(action statepkg.Action) {
	effect, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		app.state.LastError = err
		logging.Debug("action failed",
			logging.Any("action", action),
			logging.String("mode", app.state.Mode.String()),
			logging.Err(err))
	}
	if effect == statepkg.EffectNone {
		return
	}
	logging.Debug("running effect", logging.String("effect", effect.String()))
	app.runEffect(effect)
}

func (app *Application) saveLastDir() error {
	if app.lastDirFile == "" {
		return nil
	}
	if err := lastdir.Save(app.lastDirFile, app.state.CurrentPath); err != nil {
		logging.Warn("cannot save last directory",
			logging.String("file", app.lastDirFile), logging.Err(err))
		return err
	}
	return nil
}
