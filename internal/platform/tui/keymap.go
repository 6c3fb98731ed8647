package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-fracture/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionForward, false
	case "s", "down":
		return core.ActionBack, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	// Terminals never report a bare shift, so dash gets letter keys
	case "e", "f", "l", "shift+right", "shift+left", "shift+up", "shift+down":
		return core.ActionDash, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "n":
		return core.ActionNext, false
	case "m":
		return core.ActionMute, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionMenu, false
	}
	return core.ActionNone, false
}

// HoldTracker rebuilds "key is down" state from press events. Terminals
// only report presses and auto-repeats, so a held action stays active for
// a while after its most recent press. The first press waits out the
// terminal's repeat delay; once repeats arrive the shorter hold window
// applies. Other actions fire once.
type HoldTracker struct {
	window  time.Duration
	initial time.Duration
	pressed map[core.Action]heldKey
	once    core.InputFrame
}

type heldKey struct {
	at        time.Time
	repeating bool
}

// NewHoldTracker creates a tracker. window is how long a repeating key
// stays held after each repeat; initial covers the gap between the first
// press and the first repeat and is never shorter than window.
func NewHoldTracker(window, initial time.Duration) *HoldTracker {
	return &HoldTracker{
		window:  window,
		initial: max(initial, window),
		pressed: make(map[core.Action]heldKey),
		once:    core.NewInputFrame(),
	}
}

// Press records an action at time now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !a.Held() {
		h.once.Set(a)
		return
	}
	prev, ok := h.pressed[a]
	h.pressed[a] = heldKey{at: now, repeating: ok && h.active(prev, now)}
}

func (h *HoldTracker) active(k heldKey, now time.Time) bool {
	limit := h.initial
	if k.repeating {
		limit = h.window
	}
	return now.Sub(k.at) <= limit
}

// Frame returns the actions active at now and consumes the one-shot ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := h.once.Clone()
	h.once.Clear()
	for a, k := range h.pressed {
		if h.active(k, now) {
			f.Set(a)
		} else {
			delete(h.pressed, a)
		}
	}
	return f
}

// Reset forgets every pressed key.
func (h *HoldTracker) Reset() {
	clear(h.pressed)
	h.once.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRecords
	MenuActionCharacter
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRecords
	case "c":
		return MenuActionCharacter
	}
	return MenuActionNone
}
