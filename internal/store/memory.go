package store

import (
	"fmt"
	"sync"

	"importflow/internal/dossier"
)

// Memory is an in-process Store used by tests. It shares the JSON codec
// with the SQLite backend so both round-trip state identically.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrNoState)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (m *Memory) put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

// Corrupt overwrites a key with bytes that will not decode, for exercising
// the seed fallback path in tests.
func (m *Memory) Corrupt(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = []byte("{not json")
}

// LoadDossiers reads the full dossier collection.
func (m *Memory) LoadDossiers() ([]*dossier.Dossier, error) {
	return loadDossiers(m)
}

// SaveDossiers writes the full dossier collection.
func (m *Memory) SaveDossiers(dossiers []*dossier.Dossier) error {
	return saveDossiers(m, dossiers)
}

// LoadRole reads the last-selected acting role.
func (m *Memory) LoadRole() (dossier.Role, error) {
	return loadRole(m)
}

// SaveRole writes the acting role.
func (m *Memory) SaveRole(role dossier.Role) error {
	return saveRole(m, role)
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}
