package store

import (
	"context"
	"errors"

	"github.com/nibzard/kanban-go/internal/board"
)

// Fallback wraps a primary store and switches to memory the first time the
// primary reports ErrStorageUnavailable. After the switch it never returns
// storage errors, so the board stays usable for the rest of the session.
type Fallback struct {
	primary  Store
	memory   *MemoryStore
	degraded bool
	notify   func(error)
}

// NewFallback returns a Fallback over primary. notify, if non-nil, is called
// once with the error that caused the switch.
func NewFallback(primary Store, notify func(error)) *Fallback {
	return &Fallback{primary: primary, memory: NewMemoryStore(), notify: notify}
}

// Degraded reports whether the store has switched to memory.
func (f *Fallback) Degraded() bool {
	return f.degraded
}

// Save writes to the primary store, or memory once degraded.
func (f *Fallback) Save(ctx context.Context, snapshot board.Snapshot) error {
	if !f.degraded {
		err := f.primary.Save(ctx, snapshot)
		if err == nil || !errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		f.degrade(err)
	}
	return f.memory.Save(ctx, snapshot)
}

// Load reads from the primary store, or memory once degraded. A failed
// primary read degrades and reports no value.
func (f *Fallback) Load(ctx context.Context) (string, bool, error) {
	if !f.degraded {
		raw, ok, err := f.primary.Load(ctx)
		if err == nil || !errors.Is(err, ErrStorageUnavailable) {
			return raw, ok, err
		}
		f.degrade(err)
	}
	return f.memory.Load(ctx)
}

// Clear clears the primary store, or memory once degraded.
func (f *Fallback) Clear(ctx context.Context) error {
	if !f.degraded {
		err := f.primary.Clear(ctx)
		if err == nil || !errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		f.degrade(err)
	}
	return f.memory.Clear(ctx)
}

func (f *Fallback) degrade(err error) {
	f.degraded = true
	if f.notify != nil {
		f.notify(err)
	}
}

// Close closes the primary store.
func (f *Fallback) Close() error {
	return Close(f.primary)
}
