package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/neon-fracture/internal/characters"
)

// StartingCredits is the balance of a new record.
const StartingCredits = 500

// PlayerStats is the persisted player record.
type PlayerStats struct {
	Profile      string
	Credits      int
	HighestLevel int // Index of the highest unlocked sector
	TotalDeaths  int
	GamesPlayed  int
	LastLogin    time.Time
	Inventory    []string // Owned frame ids
	Equipped     string   // Equipped frame id, always owned
}

// DefaultStats returns the record a new profile starts with.
func DefaultStats(profile string) PlayerStats {
	return PlayerStats{
		Profile:   profile,
		Credits:   StartingCredits,
		Inventory: []string{characters.DefaultID},
		Equipped:  characters.DefaultID,
	}
}

// Owns reports whether the frame is in the inventory.
func (p PlayerStats) Owns(id string) bool {
	return slices.Contains(p.Inventory, id)
}

// normalize repairs records written before inventories existed, or with
// an equipped frame that is no longer owned.
func (p *PlayerStats) normalize() {
	if len(p.Inventory) == 0 {
		p.Inventory = []string{characters.DefaultID}
	}
	if p.Equipped == "" || !p.Owns(p.Equipped) {
		p.Equipped = p.Inventory[0]
	}
	p.HighestLevel = max(p.HighestLevel, 0)
}

// ErrNotOwned is returned when equipping a frame outside the inventory.
var ErrNotOwned = errors.New("frame not owned")

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// loadStats reads a record, falling back to defaults when the row is
// missing and repairing a malformed inventory.
func loadStats(q querier, profile string) (PlayerStats, error) {
	stats := DefaultStats(profile)

	var (
		lastLogin int64
		inventory sql.NullString
		equipped  sql.NullString
	)
	err := q.QueryRow(
		`SELECT credits, highest_level, total_deaths, games_played, last_login, inventory, equipped
		 FROM player_stats WHERE profile = ?`,
		profile,
	).Scan(&stats.Credits, &stats.HighestLevel, &stats.TotalDeaths, &stats.GamesPlayed,
		&lastLogin, &inventory, &equipped)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultStats(profile), nil
	}
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot load stats: %w", err)
	}

	if lastLogin > 0 {
		stats.LastLogin = time.UnixMilli(lastLogin)
	}
	stats.Inventory = nil
	if inventory.Valid {
		var inv []string
		if json.Unmarshal([]byte(inventory.String), &inv) == nil {
			stats.Inventory = inv
		}
	}
	stats.Equipped = equipped.String
	stats.normalize()

	return stats, nil
}

// LoadStats returns the record for a profile. A missing record yields the
// defaults; it is not written until the first update.
func (s *Store) LoadStats(profile string) (PlayerStats, error) {
	return loadStats(s.db, profile)
}

// UpdateStats applies fn to the current record inside a transaction and
// saves the result with a fresh last-login time.
func (s *Store) UpdateStats(profile string, fn func(*PlayerStats) error) (PlayerStats, error) {
	return s.updateStats(profile, func(_ *sql.Tx, p *PlayerStats) error {
		return fn(p)
	})
}

// updateStats is UpdateStats with the transaction exposed to fn, so that
// related rows commit or roll back with the record.
func (s *Store) updateStats(profile string, fn func(*sql.Tx, *PlayerStats) error) (PlayerStats, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	stats, err := loadStats(tx, profile)
	if err != nil {
		return PlayerStats{}, err
	}
	if err := fn(tx, &stats); err != nil {
		return PlayerStats{}, err
	}
	stats.Profile = profile
	stats.LastLogin = s.now()
	stats.normalize()

	inventory, err := json.Marshal(stats.Inventory)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot encode inventory: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO player_stats
		 (profile, credits, highest_level, total_deaths, games_played, last_login, inventory, equipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET
		   credits = excluded.credits,
		   highest_level = excluded.highest_level,
		   total_deaths = excluded.total_deaths,
		   games_played = excluded.games_played,
		   last_login = excluded.last_login,
		   inventory = excluded.inventory,
		   equipped = excluded.equipped`,
		profile, stats.Credits, stats.HighestLevel, stats.TotalDeaths, stats.GamesPlayed,
		stats.LastLogin.UnixMilli(), string(inventory), stats.Equipped,
	)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot save stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot commit stats: %w", err)
	}
	return stats, nil
}

// ResetStats deletes the record and clear times of a profile.
func (s *Store) ResetStats(profile string) error {
	if _, err := s.db.Exec("DELETE FROM player_stats WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot reset stats: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM clears WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot reset clears: %w", err)
	}
	return nil
}

// RecordSession counts a started session.
func (s *Store) RecordSession(profile string) (PlayerStats, error) {
	return s.UpdateStats(profile, func(p *PlayerStats) error {
		p.GamesPlayed++
		return nil
	})
}

// RecordDeath counts a death.
func (s *Store) RecordDeath(profile string) (PlayerStats, error) {
	return s.UpdateStats(profile, func(p *PlayerStats) error {
		p.TotalDeaths++
		return nil
	})
}

// RecordClear credits the reward, unlocks the sector after the cleared one
// and stores the clear time. Either all of it is saved or none of it.
func (s *Store) RecordClear(e ClearEntry, reward int) (PlayerStats, error) {
	return s.updateStats(e.Profile, func(tx *sql.Tx, p *PlayerStats) error {
		p.Credits += reward
		p.HighestLevel = max(p.HighestLevel, e.LevelID+1)
		return insertClear(tx, e)
	})
}

// Equip selects an owned frame.
func (s *Store) Equip(profile, id string) (PlayerStats, error) {
	return s.UpdateStats(profile, func(p *PlayerStats) error {
		if !p.Owns(id) {
			return fmt.Errorf("storage: cannot equip %s: %w", id, ErrNotOwned)
		}
		p.Equipped = id
		return nil
	})
}
