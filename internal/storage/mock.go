package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ewhitmore/blindkeep/pkg/state"
)

// MockStorage is an in-memory Storage for tests. Optional Func fields
// override individual operations; by default every call succeeds.
type MockStorage struct {
	SaveStateFunc func(ctx context.Context, gs *state.GameState) error
	LoadStateFunc func(ctx context.Context) (*state.GameState, error)

	SaveCalls int

	mu    sync.Mutex
	saved []byte
}

var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates an empty in-memory store.
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Ping(ctx context.Context) error { return nil }
func (m *MockStorage) Close() error                   { return nil }

func (m *MockStorage) SaveState(ctx context.Context, gs *state.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++

	if m.SaveStateFunc != nil {
		return m.SaveStateFunc(ctx, gs)
	}

	// Store a deep copy via JSON so later mutations don't leak in.
	data, err := json.Marshal(gs)
	if err != nil {
		return err
	}
	m.saved = data
	return nil
}

func (m *MockStorage) LoadState(ctx context.Context) (*state.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadStateFunc != nil {
		return m.LoadStateFunc(ctx)
	}
	if m.saved == nil {
		return nil, nil
	}
	var gs state.GameState
	if err := json.Unmarshal(m.saved, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

func (m *MockStorage) DeleteState(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}
