package storage

import "time"

// Recorder binds the store to one profile for the run session.
type Recorder struct {
	store   *Store
	profile string
}

// Recorder returns a recorder for profile.
func (s *Store) Recorder(profile string) *Recorder {
	return &Recorder{store: s, profile: profile}
}

// Profile returns the bound profile name.
func (r *Recorder) Profile() string {
	return r.profile
}

// Stats returns the current record.
func (r *Recorder) Stats() (PlayerStats, error) {
	return r.store.LoadStats(r.profile)
}

// SessionStarted counts a started session.
func (r *Recorder) SessionStarted() error {
	_, err := r.store.RecordSession(r.profile)
	return err
}

// Died counts a death.
func (r *Recorder) Died() error {
	_, err := r.store.RecordDeath(r.profile)
	return err
}

// Cleared credits the reward, unlocks the next sector and stores the
// clear time.
func (r *Recorder) Cleared(levelIndex int, levelName string, reward int, elapsed time.Duration) error {
	_, err := r.store.RecordClear(ClearEntry{
		Profile:   r.profile,
		LevelID:   levelIndex,
		LevelName: levelName,
		Time:      elapsed,
	}, reward)
	return err
}
