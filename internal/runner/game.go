// Package runner implements a play session on top of the physics core:
// health and regeneration, the win and death latches, rewards and the
// terminal projection of the level.
package runner

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-fracture/internal/characters"
	"github.com/vovakirdan/neon-fracture/internal/config"
	"github.com/vovakirdan/neon-fracture/internal/core"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/physics"
)

// Recorder receives the session's progress events. Implementations must
// tolerate being called from the UI goroutine.
type Recorder interface {
	SessionStarted() error
	Died() error
	Cleared(levelIndex int, levelName string, reward int, elapsed time.Duration) error
}

// Options configures a Game.
type Options struct {
	Config    config.RunnerConfig
	Campaign  []levels.Level // Defaults to the built-in sectors
	Character characters.Character
	Recorder  Recorder // nil disables progress recording
}

// Game is one player's run through the campaign.
type Game struct {
	cfg       config.RunnerConfig
	campaign  []levels.Level
	character characters.Character
	recorder  Recorder

	index int
	level levels.Level
	sim   *physics.Simulator
	state physics.State
	last  physics.Events

	health   int
	regenAcc float64 // Seconds accumulated toward the next regen tick
	won      bool
	dead     bool
	paused   bool
	reward   int
	speed    int // Horizontal speed readout

	shake shaker
	frame int
	muted bool
}

// New creates a game. Call Start before stepping it.
func New(opts Options) *Game {
	campaign := opts.Campaign
	if len(campaign) == 0 {
		campaign = levels.All()
	}
	character := opts.Character
	if character.ID == "" {
		character = characters.ByID(characters.DefaultID)
	}
	return &Game{
		cfg:       opts.Config,
		campaign:  campaign,
		character: character,
		recorder:  opts.Recorder,
	}
}

// Start begins a session on the sector at index and counts it as played.
// Out-of-range indices start the first sector.
func (g *Game) Start(index int) {
	g.load(index)
	if g.recorder != nil {
		if err := g.recorder.SessionStarted(); err != nil {
			log.Warn("could not record session start", "err", err)
		}
	}
}

// Restart replays the current sector with full health.
func (g *Game) Restart() {
	g.load(g.index)
}

// Next moves to the following sector, wrapping to the first after the last.
func (g *Game) Next() {
	g.load(levels.NextIndex(g.index, len(g.campaign)))
}

func (g *Game) load(index int) {
	if index < 0 || index >= len(g.campaign) {
		index = 0
	}
	g.index = index
	g.level = g.campaign[index]
	g.sim = physics.NewSimulator(g.cfg.Tuning(), g.level.World())
	g.state = g.sim.Reset()
	g.last = physics.Events{}
	g.health = g.cfg.Session.MaxHealth
	g.regenAcc = 0
	g.won = false
	g.dead = false
	g.paused = false
	g.reward = 0
	g.speed = 0
	g.shake = shaker{}
}

// Step applies one frame of input and advances the simulation by delta
// seconds of real time.
func (g *Game) Step(in core.InputFrame, delta float64) core.StepResult {
	if g.sim == nil {
		g.load(0)
	}
	g.frame++

	// Enter continues from either end screen
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm) && g.dead:
		g.Restart()
		return core.StepResult{State: g.State()}
	case (in.Has(core.ActionNext) || in.Has(core.ActionConfirm)) && g.won:
		g.Next()
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPause) && !g.over():
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if g.over() {
		g.shake.update(delta)
		return core.StepResult{State: g.State()}
	}

	prevClock := g.state.Clock
	next, ev := g.sim.Step(g.state, toPhysicsInput(in), delta)
	g.state = next
	g.last = ev
	dt := next.Clock - prevClock

	g.shake.update(dt)
	if ev.Shake > 0 {
		g.shake.kick(ev.Shake)
	}

	if ev.Damage > 0 {
		g.damage(ev.Damage)
	}
	if ev.Won && !g.dead {
		g.win()
	}
	g.regenerate(dt)

	g.speed = int(math.Round(physics.HorizontalSpeed(g.state.Agent.Velocity) * 10))

	return core.StepResult{State: g.State()}
}

func (g *Game) damage(amount int) {
	g.health = max(g.health-amount, 0)
	if g.health > 0 || g.dead {
		return
	}
	g.dead = true
	if g.recorder != nil {
		if err := g.recorder.Died(); err != nil {
			log.Warn("could not record death", "err", err)
		}
	}
}

func (g *Game) win() {
	if g.won {
		return
	}
	g.won = true
	g.reward = g.cfg.Session.Reward(g.index)
	if g.recorder != nil {
		elapsed := time.Duration(g.state.Clock * float64(time.Second))
		if err := g.recorder.Cleared(g.index, g.level.Name, g.reward, elapsed); err != nil {
			log.Warn("could not record clear", "level", g.level.Name, "err", err)
		}
	}
}

// regenEpsilon absorbs float drift from summing tick deltas.
const regenEpsilon = 1e-9

// regenerate heals RegenAmount every RegenInterval of simulated time while
// the agent is hurt but alive and the sector is not yet cleared.
func (g *Game) regenerate(dt float64) {
	s := g.cfg.Session
	interval := s.RegenInterval().Seconds()
	if interval <= 0 || s.RegenAmount <= 0 || g.won || g.dead || g.health <= 0 || g.health >= s.MaxHealth {
		g.regenAcc = 0
		return
	}

	g.regenAcc += dt
	for g.regenAcc+regenEpsilon >= interval && g.health < s.MaxHealth {
		g.regenAcc -= interval
		g.health = min(g.health+s.RegenAmount, s.MaxHealth)
	}
}

func (g *Game) over() bool {
	return g.won || g.dead
}

// State returns the current session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Health: g.health,
		Won:    g.won,
		Dead:   g.dead,
		Paused: g.paused,
		Reward: g.reward,
	}
}

// SetMuted updates the mute indicator shown in the HUD.
func (g *Game) SetMuted(m bool) {
	g.muted = m
}

// SetCharacter changes the frame the runner is drawn with.
func (g *Game) SetCharacter(c characters.Character) {
	g.character = c
}

// LevelIndex returns the index of the current sector in the campaign.
func (g *Game) LevelIndex() int { return g.index }

// Level returns the current sector.
func (g *Game) Level() levels.Level { return g.level }

// Physics returns the live simulation state.
func (g *Game) Physics() physics.State { return g.state }

// LastEvents returns the events raised by the most recent tick.
func (g *Game) LastEvents() physics.Events { return g.last }

// Speed returns the horizontal speed readout (speed x10, rounded).
func (g *Game) Speed() int { return g.speed }

// Elapsed returns the simulated time spent in the current sector.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.state.Clock * float64(time.Second))
}

// Shake returns the current camera shake intensity in [0, 1].
func (g *Game) Shake() float64 { return float64(g.shake.value) }

func toPhysicsInput(f core.InputFrame) physics.Input {
	return physics.Input{
		Forward: f.Has(core.ActionForward),
		Back:    f.Has(core.ActionBack),
		Left:    f.Has(core.ActionLeft),
		Right:   f.Has(core.ActionRight),
		Jump:    f.Has(core.ActionJump),
		Dash:    f.Has(core.ActionDash),
	}
}
