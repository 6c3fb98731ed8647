package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-fracture/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Sector palettes are hex
// strings, so styles are built on first use. Shared by all SSH sessions.
var styleCache = struct {
	sync.RWMutex
	m map[core.Color]lipgloss.Style
}{m: map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}}

func styleFor(c core.Color) lipgloss.Style {
	styleCache.RLock()
	s, ok := styleCache.m[c]
	styleCache.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	styleCache.Lock()
	styleCache.m[c] = s
	styleCache.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
