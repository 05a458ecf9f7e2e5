package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move cursor up
	ActionDown           // S, J, Down arrow - move cursor down
	ActionLeft           // A, H, Left arrow - move cursor left
	ActionRight          // D, L, Right arrow - move cursor right
	ActionSelect         // Space, Enter - tap the cell under the cursor
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - play again after completion
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
	ActionNegate         // Minus - toggle sign of the typed answer
	ActionClear          // Backspace, C - clear the typed answer
	ActionDigit0         // 0..9 follow in order
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionNegate:  "Negate",
	ActionClear:   "Clear",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if d, ok := a.Digit(); ok {
		return "Digit" + string(rune('0'+d))
	}
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// DigitAction returns the action for digit d (0..9).
func DigitAction(d int) Action {
	return ActionDigit0 + Action(Clamp(d, 0, 9))
}

// Digit reports which digit the action stands for.
func (a Action) Digit() (int, bool) {
	if a < ActionDigit0 || a > ActionDigit9 {
		return 0, false
	}
	return int(a - ActionDigit0), true
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
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

// Ordered returns the triggered actions in enum order. Key order within one
// tick is not preserved; hosts that care deliver keys through Game.Press.
func (f InputFrame) Ordered() []Action {
	var out []Action
	for a := ActionUp; a <= ActionDigit9; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
