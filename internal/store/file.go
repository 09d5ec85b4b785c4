package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileStore persists each collection as <dataDir>/<collection>.json.
// Writes use the temp-file, fsync, rename pattern so a crash mid-write
// leaves the previous document intact.
type fileStore struct {
	dataDir string
}

// NewFileStore creates a file-backed DocumentStore rooted at dataDir.
// The directory is created if it does not exist.
func NewFileStore(dataDir string) (DocumentStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dataDir, err)
	}
	return &fileStore{dataDir: dataDir}, nil
}

func (s *fileStore) path(collection string) string {
	return filepath.Join(s.dataDir, filepath.FromSlash(collection)+".json")
}

func (s *fileStore) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	return data, nil
}

func (s *fileStore) Save(_ context.Context, collection string, data []byte) error {
	path := s.path(collection)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".doc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
