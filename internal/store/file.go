package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"
)

// FileStore keeps the collection slot in a single JSON file. The file
// name doubles as the slot name in logs.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]core.Transaction, error) {
	payload, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return firstRun(ctx, s.path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return decodeOrSeed(ctx, payload, s.path), nil
}

// Save writes the whole collection through a temp file and a rename,
// so a crash mid-write can never leave a partial payload behind.
func (s *FileStore) Save(ctx context.Context, txns []core.Transaction) error {
	payload, err := encodeCollection(txns)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	slog.DebugContext(ctx, "Collection saved to file", "path", s.path, "count", len(txns))
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
