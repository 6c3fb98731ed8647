package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionDash
	ActionPause
	ActionRestart
	ActionNext // Advance to the next sector after a win
	ActionMute
	ActionConfirm
	ActionMenu
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionForward: "Forward",
	ActionBack:    "Back",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionDash:    "Dash",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionNext:    "Next",
	ActionMute:    "Mute",
	ActionConfirm: "Confirm",
	ActionMenu:    "Menu",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Held reports whether the action describes a continuous control
// (movement, jump, dash) rather than a one-shot command.
func (a Action) Held() bool {
	switch a {
	case ActionForward, ActionBack, ActionLeft, ActionRight, ActionJump, ActionDash:
		return true
	}
	return false
}

// InputFrame is the set of actions active during one frame.
// Held controls stay in the set for as long as the key is considered down;
// commands appear for exactly one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
