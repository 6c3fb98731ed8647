package physics

// Input is the button state sampled at the start of a tick.
// All fields report whether the button is currently held.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Dash    bool
}

// Direction returns the normalised horizontal movement direction.
// Forward is -Z, right is +X. Opposing buttons cancel out.
func (in Input) Direction() Vec3 {
	x := axis(in.Right, in.Left)
	z := -axis(in.Forward, in.Back)
	return normalizeOrZero(V3(x, 0, z))
}

// Moving reports whether any movement axis resolves to a direction.
func (in Input) Moving() bool {
	return in.Direction().Len() > 0
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Events are the semantic signals raised by one tick.
type Events struct {
	Damage       int     // Health to remove (fall-out)
	Grounded     bool    // A landing resolved this tick
	Impact       float64 // Landing intensity in [0, 1]; zero for soft landings
	Shake        float64 // Strongest shake request raised this tick
	Won          bool    // Goal reached for the first time
	Respawned    bool    // Agent was reset to spawn
	Jumped       bool
	DoubleJumped bool
	Dashed       bool
}

func (e *Events) shake(v float64) {
	if v > e.Shake {
		e.Shake = v
	}
}
