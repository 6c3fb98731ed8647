package physics

// Tuning holds every constant the simulation depends on.
// Units are world units and seconds.
type Tuning struct {
	MoveSpeed       float64 // Horizontal run speed
	Gravity         float64 // Downward acceleration
	MaxFallSpeed    float64 // Terminal fall speed (positive)
	JumpForce       float64 // Vertical velocity of the grounded jump
	DoubleJumpForce float64 // Vertical velocity of the airborne jump
	DoubleJumpSteer float64 // Horizontal impulse added by the airborne jump

	DashForce    float64 // Horizontal speed at dash start
	DashLift     float64 // Small upward pop at dash start
	DashDuration float64 // Length of the dash window
	DashCooldown float64 // Minimum time between dash starts
	DashDamping  float64 // Per-tick horizontal multiplier while dashing

	LandingTolerance float64 // How far below a top surface a landing still snaps
	ImpactThreshold  float64 // Fall speed above which a landing shakes the camera
	ImpactScale      float64 // Shake per unit of impact speed

	KillPlaneY float64 // Falling below this height respawns the agent
	FallDamage int     // Damage dealt by a fall-out
	WinRadius  float64 // Distance to the goal that counts as reaching it

	MaxDelta float64 // Largest delta a single tick will integrate

	DashShake float64 // Shake raised by a dash
	FallShake float64 // Shake raised by a fall-out
}

// DefaultTuning returns the stock movement feel.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:       8.5,
		Gravity:         40,
		MaxFallSpeed:    40,
		JumpForce:       24,
		DoubleJumpForce: 20,
		DoubleJumpSteer: 5,

		DashForce:    32,
		DashLift:     3,
		DashDuration: 0.2,
		DashCooldown: 0.6,
		DashDamping:  0.96,

		LandingTolerance: 0.2,
		ImpactThreshold:  5,
		ImpactScale:      0.05,

		KillPlaneY: -50,
		FallDamage: 25,
		WinRadius:  3,

		MaxDelta: 0.1,

		DashShake: 0.4,
		FallShake: 0.5,
	}
}
