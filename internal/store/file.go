package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/kanban-go/internal/board"
)

// FileStore keeps each key in its own JSON file under Dir.
type FileStore struct {
	Dir string
	Key string
}

// NewFileStore returns a store writing <dir>/<key>.json.
func NewFileStore(dir, key string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data dir is empty")
	}
	if key == "" {
		key = DefaultKey
	}
	if filepath.Base(key) != key {
		return nil, fmt.Errorf("invalid store key %q", key)
	}
	return &FileStore{Dir: dir, Key: key}, nil
}

// Path returns the file backing the key.
func (f *FileStore) Path() string {
	return filepath.Join(f.Dir, f.Key+".json")
}

// Save writes the snapshot with 2-space indentation and a trailing newline.
// The file is replaced atomically so a crash never leaves half a board.
func (f *FileStore) Save(ctx context.Context, snapshot board.Snapshot) error {
	data, err := encode("file", f.Key, snapshot)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return storageErr("file", "save", f.Key, err)
	}
	buf.WriteByte('\n')

	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return storageErr("file", "save", f.Key, fmt.Errorf("create data dir: %w", err))
	}
	tmp, err := os.CreateTemp(f.Dir, "."+f.Key+"-*.tmp")
	if err != nil {
		return storageErr("file", "save", f.Key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return storageErr("file", "save", f.Key, err)
	}
	if err := tmp.Close(); err != nil {
		return storageErr("file", "save", f.Key, err)
	}
	if err := os.Rename(tmp.Name(), f.Path()); err != nil {
		return storageErr("file", "save", f.Key, err)
	}
	return nil
}

// Load returns the file contents, or ok=false if the file does not exist.
func (f *FileStore) Load(ctx context.Context) (string, bool, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, storageErr("file", "load", f.Key, err)
	}
	return string(data), true, nil
}

// Clear deletes the file. A missing file is not an error.
func (f *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(f.Path()); err != nil && !os.IsNotExist(err) {
		return storageErr("file", "clear", f.Key, err)
	}
	return nil
}
