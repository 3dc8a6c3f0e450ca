// Package memstore provides an in-memory implementation of store.Store.
// This implementation is designed for fast unit testing and does not
// persist data across processes. It still round-trips entries through the
// record encoding so serialization bugs surface in unit tests.
package memstore

import (
	"fmt"
	"sync"

	"github.com/rwalden/clipwatch/internal/store"
)

// MemoryStore is an in-memory implementation of store.Store.
// It is thread-safe via a mutex and holds only the serialized record.
type MemoryStore struct {
	mu     sync.RWMutex
	record []byte

	// FailSave forces Save to return an error, for exercising the
	// engine's persistence-failure path.
	FailSave bool
}

// NewMemoryStore creates a new in-memory store for testing.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored record with the serialized entries.
func (m *MemoryStore) Save(entries []*store.Entry) error {
	data, err := store.EncodeRecord(entries)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave {
		return fmt.Errorf("save failed")
	}

	m.record = data
	return nil
}

// Load decodes the stored record, or returns an empty list when absent.
func (m *MemoryStore) Load() ([]*store.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return store.DecodeRecord(m.record), nil
}

// Clear deletes the stored record.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = nil
	return nil
}

// Stats reports the stored entry count and serialized size.
func (m *MemoryStore) Stats() (store.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.record == nil {
		return store.Stats{}, nil
	}

	return store.Stats{
		Entries: len(store.DecodeRecord(m.record)),
		Bytes:   int64(len(m.record)),
	}, nil
}

// Close releases resources (no-op for memory store).
func (m *MemoryStore) Close() error {
	return nil
}

// SetRecord overwrites the raw stored record, for testing malformed data.
func (m *MemoryStore) SetRecord(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = data
}
