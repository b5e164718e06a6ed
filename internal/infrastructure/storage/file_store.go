package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists snapshots as JSON files under a directory
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed snapshot store, creating dir if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the snapshot blob for name
func (s *FileStore) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

// Save rewrites the snapshot blob for name. The write goes through a temp
// file and rename so a crash never leaves a half-written snapshot.
func (s *FileStore) Save(_ context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
