package state

// Mode decides how keystrokes are interpreted.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeRename
	ModeCreate
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeRename:
		return "rename"
	case ModeCreate:
		return "create"
	case ModeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// EditsText reports whether the mode feeds keystrokes into the input buffer.
func (m Mode) EditsText() bool {
	return m == ModeSearch || m == ModeRename || m == ModeCreate
}

// transitionContext carries the facts nextMode needs about the session.
type transitionContext struct {
	hasEntries bool
	inputEmpty bool
}

func contextFor(state *AppState) transitionContext {
	return transitionContext{
		hasEntries: state.CurrentFile() != nil,
		inputEmpty: state.Input.Len() == 0,
	}
}

// nextMode is the mode transition table. Every non-normal mode is entered from
// normal mode and left after one commit or cancel; rename and create refuse an
// empty commit and stay put.
func nextMode(mode Mode, action Action, ctx transitionContext) Mode {
	switch mode {
	case ModeNormal:
		switch action.(type) {
		case SearchStartAction:
			return ModeSearch
		case RenameStartAction:
			if ctx.hasEntries {
				return ModeRename
			}
		case CreateStartAction:
			return ModeCreate
		case DeleteStartAction:
			return ModeDelete
		}
		return ModeNormal

	case ModeSearch, ModeDelete:
		switch action.(type) {
		case CommitAction, CancelAction:
			return ModeNormal
		}
		return mode

	case ModeRename, ModeCreate:
		switch action.(type) {
		case CommitAction:
			if ctx.inputEmpty {
				return mode
			}
			return ModeNormal
		case CancelAction:
			return ModeNormal
		}
		return mode
	}
	return ModeNormal
}

// acceptsAction reports whether action means anything in mode.
func acceptsAction(mode Mode, action Action) bool {
	switch action.(type) {
	case ResizeAction:
		return true
	case CommitAction, CancelAction:
		return mode != ModeNormal
	case InputCharAction, InputBackspaceAction, InputDeleteAction,
		InputClearAction, InputMoveCursorAction:
		return mode.EditsText()
	}
	return mode == ModeNormal
}
