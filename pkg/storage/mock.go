package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/jwebster45206/sunken-cathedral/pkg/savegame"
)

// MockStore is an in-memory Store for tests.
type MockStore struct {
	mu        sync.RWMutex
	slots     map[int]*savegame.SaveData
	pingError error
}

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		slots: make(map[int]*savegame.SaveData),
	}
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStore) Close() error {
	return nil
}

func (m *MockStore) SaveSlot(ctx context.Context, slot int, sd *savegame.SaveData) error {
	if sd == nil {
		return errors.New("save data cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *sd
	m.slots[slot] = &saved
	return nil
}

func (m *MockStore) LoadSlot(ctx context.Context, slot int) (*savegame.SaveData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sd, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	loaded := *sd
	return &loaded, nil
}

func (m *MockStore) DeleteSlot(ctx context.Context, slot int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, slot)
	return nil
}

func (m *MockStore) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]SlotInfo, 0, MaxSlots)
	for slot := 1; slot <= MaxSlots; slot++ {
		infos = append(infos, InfoFor(slot, m.slots[slot]))
	}
	return infos, nil
}
