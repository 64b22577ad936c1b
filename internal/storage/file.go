package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend stores the document blob as a JSON file on disk. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated record behind.
type FileBackend struct {
	mu   sync.Mutex
	path string
}

// NewFileBackend creates the data directory if needed and returns a
// backend writing to <dataDir>/<DocumentKey>.json.
func NewFileBackend(dataDir string) (*FileBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{path: filepath.Join(dataDir, DocumentKey+".json")}, nil
}

func (b *FileBackend) Read(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Write(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}

func (b *FileBackend) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(b.path))
	return err
}

func (b *FileBackend) Close() error { return nil }

func (b *FileBackend) Name() string { return "file" }

// Path returns the on-disk location of the record (for logs).
func (b *FileBackend) Path() string { return b.path }
