package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-fracture/internal/characters"
	"github.com/vovakirdan/neon-fracture/internal/core"
	"github.com/vovakirdan/neon-fracture/internal/levels"
	"github.com/vovakirdan/neon-fracture/internal/runner"
	"github.com/vovakirdan/neon-fracture/internal/storage"
)

// Equipper changes the equipped frame. *storage.Store satisfies it.
type Equipper interface {
	Equip(profile, id string) (storage.PlayerStats, error)
}

// MenuData is what the sector selector shows.
type MenuData struct {
	Sectors   []levels.Level
	Stats     storage.PlayerStats
	Summaries map[int]storage.LevelSummary
	UnlockAll bool     // Custom campaigns are not gated by progress
	Equipper  Equipper // nil disables frame switching
}

// MenuModel is the Bubble Tea model for the sector selector.
type MenuModel struct {
	data        MenuData
	cursor      int
	width       int
	height      int
	keyMapper   *KeyMapper
	status      string
	quitting    bool
	selected    int // -1 until a sector is picked
	openRecords bool
}

// NewMenuModel creates a new menu model with the cursor on the sector a
// new session would start on.
func NewMenuModel(data MenuData, cfg core.RuntimeConfig) MenuModel {
	if len(data.Sectors) == 0 {
		data.Sectors = levels.All()
	}
	return MenuModel{
		data:      data,
		cursor:    levels.StartIndex(data.Stats.HighestLevel, len(data.Sectors)),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		selected:  -1,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Unlocked reports whether sector i can be played.
func (m MenuModel) Unlocked(i int) bool {
	return m.data.UnlockAll || i <= m.data.Stats.HighestLevel
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.data.Sectors)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if !m.Unlocked(m.cursor) {
			m.status = "Sector locked. Clear the previous sector first."
			return m, nil
		}
		m.selected = m.cursor
		return m, tea.Quit

	case MenuActionRecords:
		m.openRecords = true
		return m, tea.Quit

	case MenuActionCharacter:
		m.cycleCharacter()
	}

	return m, nil
}

// cycleCharacter equips the next owned frame in catalog order.
func (m *MenuModel) cycleCharacter() {
	if m.data.Equipper == nil {
		m.status = "Frame switching needs the stats database."
		return
	}

	var owned []string
	for _, c := range characters.All() {
		if m.data.Stats.Owns(c.ID) {
			owned = append(owned, c.ID)
		}
	}
	if len(owned) < 2 {
		m.status = "No other frames owned."
		return
	}

	next := owned[(slices.Index(owned, m.data.Stats.Equipped)+1)%len(owned)]
	stats, err := m.data.Equipper.Equip(m.data.Stats.Profile, next)
	if err != nil {
		m.status = fmt.Sprintf("Could not equip: %v", err)
		return
	}
	m.data.Stats = stats
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorCyan)))
	menuLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorDim)))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorMagenta)))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorGray)))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("N E O N   F R A C T U R E"), m.width))
	b.WriteString("\n\n")

	frame := characters.ByID(m.data.Stats.Equipped)
	info := fmt.Sprintf("%s  |  %d CR  |  %d runs  |  %d deaths",
		frame.Name, m.data.Stats.Credits, m.data.Stats.GamesPlayed, m.data.Stats.TotalDeaths)
	b.WriteString(centerText(menuDimStyle.Render(info), m.width))
	b.WriteString("\n\n")

	for i, l := range m.data.Sectors {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := ""
		if s, ok := m.data.Summaries[i]; ok && s.Clears > 0 {
			best = "  best " + runner.FormatDuration(s.BestTime)
		}

		line := fmt.Sprintf("%s%-24s%s", cursor, l.Name, best)
		switch {
		case !m.Unlocked(i):
			line = menuLockedStyle.Render(fmt.Sprintf("%s%-24s  [LOCKED]", cursor, l.Name))
		case i == m.cursor:
			line = menuCursorStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  C: Frame  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked sector index and whether one was picked.
func (m MenuModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// Stats returns the record, including any frame change made in the menu.
func (m MenuModel) Stats() storage.PlayerStats {
	return m.data.Stats
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user asked for the records screen.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
