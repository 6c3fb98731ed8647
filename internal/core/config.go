package core

// RuntimeConfig contains configuration passed to a run at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the UI loop
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the session status the platform needs after each frame.
type GameState struct {
	Health int  // 0..MaxHealth
	Won    bool // Goal reached; latched until restart
	Dead   bool // Health hit zero; latched until restart
	Paused bool
	Reward int // Credits granted by the win, 0 otherwise
}

// Over reports whether the run has ended either way.
func (s GameState) Over() bool {
	return s.Won || s.Dead
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
