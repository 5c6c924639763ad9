// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// MemSlot is an in-memory storage.Slot for tests.
type MemSlot struct {
	mu   sync.Mutex
	data []byte
	ok   bool

	// Error injection
	ReadErr  error
	WriteErr error

	// Writes counts successful Write calls, so tests can assert that
	// a no-op mutation really skipped persistence.
	Writes int
}

// NewMemSlot returns an empty slot (nothing ever written).
func NewMemSlot() *MemSlot { return &MemSlot{} }

// Seed installs a value as if a previous run had written it.
func (m *MemSlot) Seed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.ok = true
}

// Bytes returns the currently stored value, nil if absent.
func (m *MemSlot) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ok {
		return nil
	}
	return append([]byte(nil), m.data...)
}

func (m *MemSlot) Read(ctx context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, false, m.ReadErr
	}
	if !m.ok {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *MemSlot) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.data = append([]byte(nil), data...)
	m.ok = true
	m.Writes++
	return nil
}

func (m *MemSlot) Close() error { return nil }
