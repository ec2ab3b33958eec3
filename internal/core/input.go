package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow - move one row up
	ActionDown         // Down arrow - move one row down
	ActionLeft         // Left arrow - move one column left
	ActionRight        // Right arrow - move one column right
	ActionShoot        // Space - fire the single arrow
	ActionQuit         // Window close, Q, Ctrl+C, Esc
	ActionKey          // Any other key; only dismisses the start screen
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
	case ActionShoot:
		return "Shoot"
	case ActionQuit:
		return "Quit"
	case ActionKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// Dir returns the movement direction for an arrow action.
// ok is false for actions that do not move.
func (a Action) Dir() (d Dir, ok bool) {
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

// InputFrame holds the key presses collected between two simulation ticks.
// Presses are kept in arrival order: every press is one discrete move, and
// a move followed by a shot is not the same as a shot followed by a move.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns the presses in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of presses in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}
