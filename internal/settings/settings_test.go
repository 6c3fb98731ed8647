package settings

import (
	"errors"
	"testing"
)

// memStore is an in-memory ItemStore.
type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.items[key] = data
	return nil
}

func TestDefaultsWhenEmpty(t *testing.T) {
	m := New(newMemStore())
	if got := m.Get(); got != Defaults() {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestUpdatePersists(t *testing.T) {
	store := newMemStore()
	m := New(store)

	if _, err := m.Update(func(s *Settings) { s.TickRate = 30 }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	muted, err := m.ToggleMute()
	if err != nil || !muted {
		t.Fatalf("ToggleMute = %v, %v", muted, err)
	}
	if store.saves != 2 {
		t.Errorf("saves = %d, want 2", store.saves)
	}

	reloaded := New(store).Get()
	if !reloaded.Muted || reloaded.TickRate != 30 || reloaded.HoldWindowMs != 150 {
		t.Errorf("reloaded = %+v", reloaded)
	}
}

func TestCorruptDataFallsBack(t *testing.T) {
	store := newMemStore()
	store.items[itemKey] = []byte("{oops")

	if got := New(store).Get(); got != Defaults() {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestLoadErrorFallsBack(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk gone")

	if got := New(store).Get(); got != Defaults() {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestOutOfRangeValuesSanitized(t *testing.T) {
	store := newMemStore()
	store.items[itemKey] = []byte(`{"muted":true,"tickRate":-4,"holdWindowMs":99999,"repeatDelayMs":-1}`)

	got := New(store).Get()
	if !got.Muted || got.TickRate != 60 || got.HoldWindowMs != 150 || got.RepeatDelayMs != 500 {
		t.Errorf("Get() = %+v", got)
	}
}

func TestSaveErrorKeepsMemoryValue(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("read-only")
	m := New(store)

	muted, err := m.ToggleMute()
	if err == nil {
		t.Fatal("expected save error")
	}
	if !muted || !m.Get().Muted {
		t.Error("mute should apply in memory even when saving fails")
	}
}

func TestNilStore(t *testing.T) {
	m := New(nil)
	if _, err := m.Update(func(s *Settings) { s.HoldWindowMs = 200 }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.Get().HoldWindowMs != 200 {
		t.Errorf("HoldWindowMs = %d", m.Get().HoldWindowMs)
	}
}
