package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mfm/internal/state"
)

// InputHandler converts tcell events to Actions according to the current mode.
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into at most one Action. It returns
// false once the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() statepkg.Mode {
	if ih.state == nil {
		return statepkg.ModeNormal
	}
	return ih.state.Mode
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch mode := ih.mode(); {
	case mode == statepkg.ModeDelete:
		ih.processDeleteKey(ev)
		return true
	case mode.EditsText():
		ih.processTextKey(ev)
		return true
	}

	action := normalModeAction(ev)
	if action == nil {
		return true
	}
	ih.actionChan <- action
	_, quit := action.(statepkg.QuitAction)
	return !quit
}

func normalModeAction(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return statepkg.QuitAction{}
	case tcell.KeyCtrlF:
		return statepkg.SearchStartAction{}
	case tcell.KeyCtrlR:
		return statepkg.RefreshAction{}
	case tcell.KeyUp:
		return statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		return statepkg.NavigateDownAction{}
	case tcell.KeyHome:
		return statepkg.NavigateHomeAction{}
	case tcell.KeyEnd:
		return statepkg.NavigateEndAction{}
	case tcell.KeyLeft:
		return statepkg.GoUpAction{}
	case tcell.KeyRight, tcell.KeyEnter:
		return statepkg.EnterDirectoryAction{}
	case tcell.KeyRune:
		return normalModeRune(ev.Rune())
	}
	return nil
}

func normalModeRune(r rune) statepkg.Action {
	switch r {
	case 'q', 'Q':
		return statepkg.QuitAction{}
	case '.':
		return statepkg.ToggleHiddenFilesAction{}
	case '/':
		return statepkg.SearchStartAction{}
	case 'n':
		return statepkg.SearchNextAction{}
	case 'N':
		return statepkg.SearchPrevAction{}
	case 'R':
		return statepkg.RefreshAction{}
	case 'r':
		return statepkg.RenameStartAction{}
	case 'd', 'D':
		return statepkg.DeleteStartAction{}
	case 'f', 'F':
		return statepkg.CreateStartAction{}
	case ' ':
		return statepkg.ToggleSelectAction{}
	case 'v':
		return statepkg.MoveSelectionAction{}
	case 'p':
		return statepkg.CopySelectionAction{}
	case 'u', 'U':
		return statepkg.ClearSelectionAction{}
	case 's', 'S':
		return statepkg.OpenShellAction{}
	case 'e':
		return statepkg.OpenEditorAction{}
	case 'y':
		return statepkg.YankPathAction{}
	case 'j':
		return statepkg.NavigateDownAction{}
	case 'k':
		return statepkg.NavigateUpAction{}
	}
	return nil
}

// processTextKey edits the prompt buffer in search, rename and create modes.
func (ih *InputHandler) processTextKey(ev *tcell.EventKey) {
	var action statepkg.Action
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		action = statepkg.CancelAction{}
	case tcell.KeyEnter:
		action = statepkg.CommitAction{}
	case tcell.KeyCtrlX:
		action = statepkg.InputClearAction{}
	case tcell.KeyDelete:
		action = statepkg.InputDeleteAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		action = statepkg.InputBackspaceAction{}
	case tcell.KeyHome, tcell.KeyUp, tcell.KeyCtrlA:
		action = statepkg.InputMoveCursorAction{Direction: "home"}
	case tcell.KeyEnd, tcell.KeyDown, tcell.KeyCtrlE:
		action = statepkg.InputMoveCursorAction{Direction: "end"}
	case tcell.KeyLeft:
		action = statepkg.InputMoveCursorAction{Direction: "left"}
	case tcell.KeyRight:
		action = statepkg.InputMoveCursorAction{Direction: "right"}
	case tcell.KeyRune:
		if r := ev.Rune(); unicode.IsPrint(r) {
			action = statepkg.InputCharAction{Char: r}
		}
	}
	if action != nil {
		ih.actionChan <- action
	}
}

// processDeleteKey answers the delete confirmation: y, d or Enter confirm,
// any other key cancels.
func (ih *InputHandler) processDeleteKey(ev *tcell.EventKey) {
	confirm := ev.Key() == tcell.KeyEnter
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'y', 'Y', 'd', 'D':
			confirm = true
		}
	}
	if confirm {
		ih.actionChan <- statepkg.CommitAction{}
		return
	}
	ih.actionChan <- statepkg.CancelAction{}
}
