package core

// Action represents a discrete command, abstracted from physical key presses.
// Movement and fire are continuous and live directly on InputFrame.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start a game from the title screen
	ActionBack           // Escape - leave a menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit the session
	ActionPause          // P, Escape - pause/unpause
	ActionDebug          // F3, backtick - toggle the debug overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sample for one simulation tick.
type InputFrame struct {
	// Move is the requested direction, each axis clamped to [-1, 1].
	Move Vec2
	// Fire is true while the fire control is held.
	Fire bool
	// FirePressed is true only on the tick the fire control went down.
	FirePressed bool
	// Actions holds the discrete commands triggered this frame.
	Actions map[Action]bool
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

// SetMove stores a movement vector, clamping each axis to [-1, 1].
func (f *InputFrame) SetMove(x, y float64) {
	f.Move = Vec2{X: ClampF(x, -1, 1), Y: ClampF(y, -1, 1)}
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Move = Vec2{}
	f.Fire = false
	f.FirePressed = false
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Held returns a copy that keeps only level-held state (movement and fire).
// Used when one input sample drives several fixed steps in a single frame.
func (f InputFrame) Held() InputFrame {
	return InputFrame{Move: f.Move, Fire: f.Fire}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Move = f.Move
	clone.Fire = f.Fire
	clone.FirePressed = f.FirePressed
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
