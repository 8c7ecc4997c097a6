package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game never sees raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, w - steer up
	ActionDown           // Down arrow, s - steer down
	ActionLeft           // Left arrow, a - steer left
	ActionRight          // Right arrow, d - steer right
	ActionPause          // Space - toggle pause while playing
	ActionConfirm        // Enter - play / select difficulty / play again
	ActionBack           // B, Escape - back out of a submenu
	ActionScores         // Tab - open the score table
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DirectionFor returns the steering direction for a movement action.
// The boolean is false for non-movement actions.
func (a Action) DirectionFor() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}
