// Package settings persists per-user presentation preferences.
// Nothing here is visible to the simulation.
package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// AppName is the gdata application directory.
const AppName = "neon-fracture"

const itemKey = "settings"

// Settings are the saved preferences.
type Settings struct {
	Muted         bool `json:"muted"`
	TickRate      int  `json:"tickRate"`      // Frames per second, 0 means the CLI default
	HoldWindowMs  int  `json:"holdWindowMs"`  // How long a repeating key counts as held after its last repeat
	RepeatDelayMs int  `json:"repeatDelayMs"` // How long a first press counts as held while the terminal waits to repeat
}

// Defaults returns the settings used when nothing is saved.
func Defaults() Settings {
	return Settings{
		TickRate:      60,
		HoldWindowMs:  150,
		RepeatDelayMs: 500,
	}
}

func (s *Settings) sanitize() {
	d := Defaults()
	if s.TickRate <= 0 || s.TickRate > 240 {
		s.TickRate = d.TickRate
	}
	if s.HoldWindowMs <= 0 || s.HoldWindowMs > 1000 {
		s.HoldWindowMs = d.HoldWindowMs
	}
	if s.RepeatDelayMs <= 0 || s.RepeatDelayMs > 2000 {
		s.RepeatDelayMs = d.RepeatDelayMs
	}
}

// ItemStore is the key/value backend. *gdata.Manager satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Manager owns the live settings. It is safe for concurrent use by
// several SSH sessions.
type Manager struct {
	mu      sync.Mutex
	store   ItemStore
	current Settings
}

// Open creates a manager backed by the per-user gdata directory and loads
// the saved settings.
func Open() (*Manager, error) {
	gm, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open data dir: %w", err)
	}
	return New(gm), nil
}

// New creates a manager over store and loads the saved settings.
// A nil store keeps settings in memory only.
func New(store ItemStore) *Manager {
	m := &Manager{store: store, current: Defaults()}
	m.load()
	return m
}

func (m *Manager) load() {
	if m.store == nil {
		return
	}

	data, err := m.store.LoadItem(itemKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return
	}
	if len(data) == 0 {
		return
	}

	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return
	}
	s.sanitize()
	m.current = s
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Update applies fn and saves the result.
// The in-memory value changes even when saving fails.
func (m *Manager) Update(fn func(*Settings)) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.current
	fn(&next)
	next.sanitize()
	m.current = next

	if m.store == nil {
		return next, nil
	}
	data, err := json.Marshal(next)
	if err != nil {
		return next, fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.store.SaveItem(itemKey, data); err != nil {
		return next, fmt.Errorf("settings: cannot save: %w", err)
	}
	return next, nil
}

// ToggleMute flips the mute flag and returns the new value.
func (m *Manager) ToggleMute() (bool, error) {
	s, err := m.Update(func(s *Settings) { s.Muted = !s.Muted })
	return s.Muted, err
}
