// Package tui runs the runner inside Bubble Tea: the tick loop, key mapping,
// the sector selector, the records screen and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame deltas in seconds.
type frameClock struct {
	last time.Time
}

// delta returns the time since the previous tick. The first tick after a
// reset reports one nominal frame.
func (c *frameClock) delta(now time.Time, tickRate int) float64 {
	prev := c.last
	c.last = now
	if prev.IsZero() || now.Before(prev) {
		return 1 / float64(max(tickRate, 1))
	}
	return now.Sub(prev).Seconds()
}

func (c *frameClock) reset() {
	c.last = time.Time{}
}
