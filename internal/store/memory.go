package store

import (
	"context"

	"github.com/nibzard/kanban-go/internal/board"
)

// MemoryStore keeps the snapshot in process memory. Nothing survives exit.
type MemoryStore struct {
	raw string
	ok  bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save encodes and keeps the snapshot.
func (m *MemoryStore) Save(ctx context.Context, snapshot board.Snapshot) error {
	data, err := encode("memory", DefaultKey, snapshot)
	if err != nil {
		return err
	}
	m.raw, m.ok = string(data), true
	return nil
}

// Load returns the last saved text.
func (m *MemoryStore) Load(ctx context.Context) (string, bool, error) {
	return m.raw, m.ok, nil
}

// Clear forgets the stored value.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.raw, m.ok = "", false
	return nil
}

// SetRaw stores text verbatim, bypassing encoding. Used to seed malformed data.
func (m *MemoryStore) SetRaw(raw string) {
	m.raw, m.ok = raw, true
}
