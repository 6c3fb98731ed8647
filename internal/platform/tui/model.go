package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-fracture/internal/core"
	"github.com/vovakirdan/neon-fracture/internal/runner"
	"github.com/vovakirdan/neon-fracture/internal/settings"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Runner     runner.Options
	StartIndex int
	Screen     core.RuntimeConfig
	Settings   *settings.Manager // nil keeps preferences in memory
}

// GameModel is the Bubble Tea model for one run through the campaign.
type GameModel struct {
	game       *runner.Game
	startIndex int
	screen     *core.Screen
	config     core.RuntimeConfig
	settings   *settings.Manager
	keyMapper  *KeyMapper
	hold       *HoldTracker
	clock      frameClock
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The session starts in Init.
func NewGameModel(opts GameOptions) GameModel {
	prefs := opts.Settings
	if prefs == nil {
		prefs = settings.New(nil)
	}
	s := prefs.Get()

	cfg := opts.Screen
	if cfg.TickRate <= 0 {
		cfg.TickRate = s.TickRate
	}

	game := runner.New(opts.Runner)
	game.SetMuted(s.Muted)

	hold := NewHoldTracker(
		time.Duration(s.HoldWindowMs)*time.Millisecond,
		time.Duration(s.RepeatDelayMs)*time.Millisecond,
	)

	return GameModel{
		game:       game,
		startIndex: opts.StartIndex,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		settings:   prefs,
		keyMapper:  NewKeyMapper(),
		hold:       hold,
	}
}

// Init starts the session and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Start(m.startIndex)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionMute:
		muted, err := m.settings.ToggleMute()
		if err != nil {
			log.Warn("could not save settings", "err", err)
		}
		m.game.SetMuted(muted)
		return m, nil
	case action == core.ActionMenu:
		// Only a paused or finished run can be left
		if st := m.game.State(); st.Over() || st.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	m.hold.Press(action, now)
	return m, nil
}

// handleTick advances the simulation by the real time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	delta := m.clock.delta(now, m.config.TickRate)
	m.game.Step(m.hold.Frame(now), delta)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".fracture", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot dir", "err", err)
		return
	}

	name := fmt.Sprintf("sector%02d_%s.txt", m.game.LevelIndex()+1, time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game returns the running session.
func (m GameModel) Game() *runner.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the campaign in the current terminal until the user quits.
func Run(opts GameOptions) error {
	model := NewGameModel(opts)

	p := tea.NewProgram(
		standalone{model},
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// standalone quits the program where a menu session would go back.
type standalone struct {
	GameModel
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
