package physics

import "math"

// DefaultSpawn is where a fresh agent appears when a world does not set one.
var DefaultSpawn = V3(0, 5, 0)

// Agent is the physical state of the single simulated entity.
type Agent struct {
	Position Vec3
	Velocity Vec3
	Grounded bool // True only in the tick a landing resolved
	// JumpCount is 0 when grounded, 1 after the primary jump and 2 once the
	// airborne jump has been spent.
	JumpCount int
	// LastDash is the clock time of the most recent dash start. It drives
	// both the dash window and the cooldown.
	LastDash float64
}

// NewAgent creates an agent standing still at spawn with a dash ready.
func NewAgent(spawn Vec3) Agent {
	return Agent{
		Position: spawn,
		LastDash: math.Inf(-1),
	}
}

// InputEdgeTracker remembers which buttons were held on the previous tick
// so that jump and dash fire on the press, not while held.
type InputEdgeTracker struct {
	JumpWasHeld bool
	DashWasHeld bool
}

// State is everything the simulation carries from one tick to the next.
type State struct {
	Agent Agent
	Edges InputEdgeTracker
	Clock float64 // Simulated seconds since the state was created
	Won   bool    // Latched once the goal has been reached
}

// NewState creates the initial state for a world.
func NewState(w World) State {
	return State{Agent: NewAgent(w.SpawnPoint())}
}

// Dashing reports whether the dash window is open at the given clock time.
func (a Agent) Dashing(now float64, t Tuning) bool {
	return now-a.LastDash < t.DashDuration
}

// DashReady reports whether the cooldown has elapsed at the given clock time.
func (a Agent) DashReady(now float64, t Tuning) bool {
	return now-a.LastDash > t.DashCooldown
}
