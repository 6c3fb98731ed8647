package physics

import "math"

// Simulator advances a State through a fixed World with fixed tuning.
// It holds no per-tick state of its own; the same Simulator can step any
// number of independent States.
type Simulator struct {
	Tuning Tuning
	World  World
}

// NewSimulator creates a simulator for the given world.
func NewSimulator(t Tuning, w World) *Simulator {
	return &Simulator{Tuning: t, World: w}
}

// Reset returns a fresh state at the world's spawn point.
func (sim *Simulator) Reset() State {
	return NewState(sim.World)
}

// Step runs one tick: input, integration, collision, boundary checks.
// It returns the next state and the events raised; s is not modified.
//
// delta is the real time elapsed since the previous tick. Values above
// Tuning.MaxDelta are clamped so a stalled frame cannot tunnel through a
// platform; negative or NaN values integrate nothing.
func (sim *Simulator) Step(s State, in Input, delta float64) (State, Events) {
	t := sim.Tuning
	delta = clampDelta(delta, t.MaxDelta)

	var ev Events
	a := s.Agent
	now := s.Clock
	dir := in.Direction()

	// Horizontal movement: velocity-set, damped while the dash window is open
	if a.Dashing(now, t) {
		a.Velocity[0] *= t.DashDamping
		a.Velocity[2] *= t.DashDamping
	} else {
		move := dir.Mul(t.MoveSpeed)
		a.Velocity[0] = move.X()
		a.Velocity[2] = move.Z()
	}

	// Jump and double jump, on the rising edge only
	if in.Jump && !s.Edges.JumpWasHeld {
		switch {
		case a.Grounded:
			a.Velocity[1] = t.JumpForce
			a.JumpCount = 1
			a.Grounded = false
			ev.Jumped = true
		case a.JumpCount < 2:
			a.Velocity[1] = t.DoubleJumpForce
			a.JumpCount = 2
			steer := dir.Mul(t.DoubleJumpSteer)
			a.Velocity[0] += steer.X()
			a.Velocity[2] += steer.Z()
			ev.DoubleJumped = true
		}
	}

	// Phase dash, independent of jump state
	if in.Dash && !s.Edges.DashWasHeld && a.DashReady(now, t) && dir.Len() > 0 {
		dash := dir.Mul(t.DashForce)
		a.Velocity[0] = dash.X()
		a.Velocity[2] = dash.Z()
		a.Velocity[1] = t.DashLift
		a.LastDash = now
		ev.Dashed = true
		ev.shake(t.DashShake)
	}

	// Gravity with terminal velocity
	a.Velocity[1] -= t.Gravity * delta
	if a.Velocity[1] < -t.MaxFallSpeed {
		a.Velocity[1] = -t.MaxFallSpeed
	}

	prev := a.Position
	next := prev.Add(a.Velocity.Mul(delta))

	// Landing
	a.Grounded = false
	if hit, ok := resolveLanding(sim.World.Platforms, prev, next, a.Velocity.Y(), t.LandingTolerance); ok {
		if shake := impactShake(hit.Impact, t); shake > 0 {
			ev.Impact = shake
			ev.shake(shake)
		}
		next[1] = hit.Top
		a.Velocity[1] = 0
		a.Grounded = true
		a.JumpCount = 0
		ev.Grounded = true
	}
	a.Position = next

	// Fall-out
	if a.Position.Y() < t.KillPlaneY {
		a = NewAgent(sim.World.SpawnPoint())
		ev.Damage = t.FallDamage
		ev.Respawned = true
		ev.shake(t.FallShake)
	}

	// Goal
	won := s.Won
	if !won && a.Position.Sub(sim.World.Goal).Len() < t.WinRadius {
		won = true
		ev.Won = true
	}

	return State{
		Agent: a,
		Edges: InputEdgeTracker{JumpWasHeld: in.Jump, DashWasHeld: in.Dash},
		Clock: now + delta,
		Won:   won,
	}, ev
}

func clampDelta(delta, max float64) float64 {
	if math.IsNaN(delta) || delta < 0 {
		return 0
	}
	if max > 0 && delta > max {
		return max
	}
	return delta
}
