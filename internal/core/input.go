package core

// Action is a semantic input signal, abstracted from physical key presses.
// The simulation consumes exactly four of them per tick: the two directional
// holds and the confirm/cancel edges. The platform layer is responsible for
// debouncing, so Confirm and Cancel arrive only on the tick the key goes
// from released to pressed.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - hold, moves the player paddle up
	ActionDown           // S, Down arrow - hold, moves the player paddle down
	ActionConfirm        // Enter, Space - edge, select/serve/pause toggle
	ActionCancel         // Esc, B - edge, back/abandon
	ActionQuit           // Q, Ctrl+C - handled by the platform, never by the core
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
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.actions == nil {
		return false
	}
	return f.actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}
