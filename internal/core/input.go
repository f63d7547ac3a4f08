package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionConfirm        // Enter, Space - dismiss the open notification
	ActionRestart        // R - start a new run after victory
	ActionBack           // B, Escape - leave the game
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
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a position on the screen, in character cells.
type Point struct {
	X, Y int
}

// InputFrame holds the input collected for one step of the game.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the screen cell the user clicked, if any.
	Pointer *Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer selection at screen position (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Pointer = &Point{X: x, Y: y}
}

// Clear resets the frame for the next input.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}
