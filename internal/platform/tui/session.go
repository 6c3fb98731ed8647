package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-fracture/internal/characters"
	"github.com/vovakirdan/neon-fracture/internal/config"
	"github.com/vovakirdan/neon-fracture/internal/core"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/runner"
	"github.com/vovakirdan/neon-fracture/internal/settings"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store    *storage.Store // nil plays without progress
	Profile  string
	Config   config.RunnerConfig
	Campaign []levels.Level // Custom sectors; empty means the built-in campaign
	Screen   core.RuntimeConfig
	Settings *settings.Manager
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewRecords
)

// SessionModel manages the full flow: menu -> game or records -> menu.
// It is the top-level model for SSH sessions and `fracture menu`.
type SessionModel struct {
	opts     SessionOptions
	view     sessionView
	menu     MenuModel
	game     GameModel
	records  RecordsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}
	if opts.Settings == nil {
		opts.Settings = settings.New(nil)
	}
	m := SessionModel{opts: opts}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) custom() bool {
	return len(m.opts.Campaign) > 0
}

func (m SessionModel) sectors() []levels.Level {
	if m.custom() {
		return m.opts.Campaign
	}
	return levels.All()
}

// newMenu reloads the record so the menu reflects the last run.
func (m SessionModel) newMenu() MenuModel {
	data := MenuData{
		Sectors:   m.sectors(),
		Stats:     storage.DefaultStats(m.opts.Profile),
		UnlockAll: m.custom(),
	}
	if m.opts.Store != nil {
		data.Equipper = m.opts.Store
		if stats, err := m.opts.Store.LoadStats(m.opts.Profile); err != nil {
			log.Warn("could not load stats", "profile", m.opts.Profile, "err", err)
		} else {
			data.Stats = stats
		}
		if !m.custom() {
			if sums, err := m.opts.Store.LevelSummaries(m.opts.Profile); err != nil {
				log.Warn("could not load level summaries", "err", err)
			} else {
				data.Summaries = sums
			}
		}
	}
	if m.opts.Store == nil && !m.custom() {
		data.UnlockAll = true
	}
	return NewMenuModel(data, m.opts.Screen)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Screen.ScreenW = wsm.Width
		m.opts.Screen.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRecords():
		var lister ClearLister
		if m.opts.Store != nil && !m.custom() {
			lister = m.opts.Store
		}
		m.records = NewRecordsModel(lister, m.sectors(), m.menu.cursor, m.opts.Screen.ScreenW, m.opts.Screen.ScreenH)
		m.view = viewRecords
		return m, m.records.Init()
	}

	if index, ok := m.menu.Selected(); ok {
		m.game = NewGameModel(GameOptions{
			Runner:     m.runnerOptions(m.menu.Stats()),
			StartIndex: index,
			Screen:     m.opts.Screen,
			Settings:   m.opts.Settings,
		})
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) runnerOptions(stats storage.PlayerStats) runner.Options {
	opts := runner.Options{
		Config:    m.opts.Config,
		Campaign:  m.opts.Campaign,
		Character: characters.ByID(stats.Equipped),
	}
	// Custom sectors are practice runs and leave the record alone
	if m.opts.Store != nil && !m.custom() {
		opts.Recorder = m.opts.Store.Recorder(m.opts.Profile)
	}
	return opts
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRecords handles updates when on the records screen.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.records.Update(msg)
	if records, ok := next.(RecordsModel); ok {
		m.records = records
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.records.IsGoingBack() {
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewRecords:
		return m.records.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the current terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
