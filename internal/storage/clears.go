package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ClearEntry is one completed run of a sector.
type ClearEntry struct {
	ID        int64
	Profile   string
	LevelID   int
	LevelName string
	Time      time.Duration
	CreatedAt time.Time
}

// LevelSummary aggregates a profile's clears of one sector.
type LevelSummary struct {
	LevelID  int
	Clears   int
	BestTime time.Duration
	LastRun  time.Time
}

func insertClear(tx *sql.Tx, e ClearEntry) error {
	_, err := tx.Exec(
		"INSERT INTO clears (profile, level_id, level_name, millis) VALUES (?, ?, ?, ?)",
		e.Profile, e.LevelID, e.LevelName, e.Time.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save clear: %w", err)
	}
	return nil
}

// BestClears retrieves the fastest N clears of a sector across profiles.
func (s *Store) BestClears(levelID, limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, level_id, level_name, millis, created_at
		 FROM clears
		 WHERE level_id = ?
		 ORDER BY millis ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var (
			e         ClearEntry
			millis    int64
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.Profile, &e.LevelID, &e.LevelName, &millis, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Time = time.Duration(millis) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LevelSummaries returns per-sector aggregates for a profile, keyed by
// level ID. Sectors never cleared are absent.
func (s *Store) LevelSummaries(profile string) (map[int]LevelSummary, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(millis), MAX(created_at)
		 FROM clears
		 WHERE profile = ?
		 GROUP BY level_id`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level summaries: %w", err)
	}
	defer rows.Close()

	out := make(map[int]LevelSummary)
	for rows.Next() {
		var (
			sum     LevelSummary
			best    int64
			lastRun any
		)
		if err := rows.Scan(&sum.LevelID, &sum.Clears, &best, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum.BestTime = time.Duration(best) * time.Millisecond
		sum.LastRun = parseTime(lastRun)
		out[sum.LevelID] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}
