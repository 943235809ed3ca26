// Package store persists board snapshots under a fixed key.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/nibzard/kanban-go/internal/board"
)

// DefaultKey is the key a board is stored under unless configured otherwise.
const DefaultKey = "cards"

// ErrStorageUnavailable is matched by every error a backend returns when it
// cannot read or write.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Store reads and writes one serialised snapshot.
type Store interface {
	// Save serialises snapshot and writes it under the store's key.
	Save(ctx context.Context, snapshot board.Snapshot) error
	// Load returns the raw stored text. ok is false when nothing was saved.
	Load(ctx context.Context) (raw string, ok bool, err error)
	// Clear removes the stored value.
	Clear(ctx context.Context) error
}

// StorageError describes a failed store operation.
type StorageError struct {
	Op      string // "save", "load" or "clear"
	Backend string
	Key     string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Backend, e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorageUnavailable.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func storageErr(backend, op, key string, err error) error {
	return &StorageError{Op: op, Backend: backend, Key: key, Err: err}
}

func encode(backend, key string, snapshot board.Snapshot) ([]byte, error) {
	data, err := snapshot.Encode()
	if err != nil {
		return nil, storageErr(backend, "save", key, err)
	}
	return data, nil
}
